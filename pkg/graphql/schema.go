package graphql

// TypeKind classifies a named type definition.
type TypeKind string

const (
	KindObject    TypeKind = "object"
	KindInterface TypeKind = "interface"
	KindUnion     TypeKind = "union"
	KindEnum      TypeKind = "enum"
	KindScalar    TypeKind = "scalar"
	KindInput     TypeKind = "input"
)

// Schema is the package-owned view of a parsed GraphQL document. Types keep
// their declaration order; built-in and introspection types never appear.
type Schema struct {
	Types []TypeDefinition
}

// Lookup finds a type definition by name.
func (s Schema) Lookup(name string) (TypeDefinition, bool) {
	for _, def := range s.Types {
		if def.Name == name {
			return def, true
		}
	}
	return TypeDefinition{}, false
}

// Objects returns the object type definitions in declaration order. These are
// the candidates for content type generation.
func (s Schema) Objects() []TypeDefinition {
	var out []TypeDefinition
	for _, def := range s.Types {
		if def.Kind == KindObject {
			out = append(out, def)
		}
	}
	return out
}

// TypeDefinition is one named type from the schema. Fields is populated for
// objects and interfaces, Members for unions, EnumValues for enums; all in
// declaration order.
type TypeDefinition struct {
	Name        string
	Kind        TypeKind
	Description string
	Directives  DirectiveList
	Fields      []FieldDefinition
	Members     []string
	EnumValues  []string
}

// FieldDefinition is a named, typed member of an object or interface type.
// Annotations carries the decoded form of Directives; both are populated by
// the parser so consumers never rescan raw directives.
type FieldDefinition struct {
	Name        string
	Description string
	Type        TypeRef
	Directives  DirectiveList
	Annotations Annotations
}

// TypeRef models GraphQL type wrapping. A named reference sets Name; a list
// sets List and Elem. NonNull applies to the level it appears on.
type TypeRef struct {
	Name    string
	List    bool
	Elem    *TypeRef
	NonNull bool
}

// Named returns the innermost named type, unwrapping list levels.
func (r TypeRef) Named() string {
	if r.List && r.Elem != nil {
		return r.Elem.Named()
	}
	return r.Name
}

// String renders the reference in SDL notation, e.g. "[String!]!".
func (r TypeRef) String() string {
	var body string
	if r.List {
		if r.Elem != nil {
			body = "[" + r.Elem.String() + "]"
		} else {
			body = "[]"
		}
	} else {
		body = r.Name
	}
	if r.NonNull {
		body += "!"
	}
	return body
}
