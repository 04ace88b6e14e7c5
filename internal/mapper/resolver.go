package mapper

import (
	"github.com/goliatone/go-ampgen/internal/sanitize"
	"github.com/goliatone/go-ampgen/pkg/amplience"
	pkggraphql "github.com/goliatone/go-ampgen/pkg/graphql"
)

// resolvedKind is the closed set of shapes a named type reference can take.
type resolvedKind int

const (
	resolvedScalar resolvedKind = iota
	resolvedEnum
	resolvedObject
	resolvedUnion
)

type resolvedType struct {
	kind resolvedKind
	name string
	def  pkggraphql.TypeDefinition
}

// resolveNamed classifies a named type reference. Anything that is not a
// union, enum, or object — including names missing from the schema — is
// dispatched as a scalar by name.
func resolveNamed(schema pkggraphql.Schema, name string) resolvedType {
	def, ok := schema.Lookup(name)
	if !ok {
		return resolvedType{kind: resolvedScalar, name: name}
	}
	switch def.Kind {
	case pkggraphql.KindUnion:
		return resolvedType{kind: resolvedUnion, name: name, def: def}
	case pkggraphql.KindEnum:
		return resolvedType{kind: resolvedEnum, name: name, def: def}
	case pkggraphql.KindObject:
		return resolvedType{kind: resolvedObject, name: name, def: def}
	default:
		return resolvedType{kind: resolvedScalar, name: name}
	}
}

// traversal tracks the chain of inline object embeddings so cyclic schemas
// fail fast instead of recursing forever.
type traversal struct {
	visited map[string]bool
	path    []string
}

func newTraversal(root string) *traversal {
	return &traversal{visited: map[string]bool{root: true}, path: []string{root}}
}

func (t *traversal) enter(name string) bool {
	if t.visited[name] {
		return false
	}
	t.visited[name] = true
	t.path = append(t.path, name)
	return true
}

func (t *traversal) leave(name string) {
	delete(t.visited, name)
	t.path = t.path[:len(t.path)-1]
}

func (t *traversal) cycle(name string) []string {
	return append(append([]string(nil), t.path...), name)
}

// objectProperties resolves every eligible field of an object type. Fields
// tagged children or ignore are excluded; required collects the non-nullable
// field names. Both slices keep declaration order.
func (m *Mapper) objectProperties(schema pkggraphql.Schema, def pkggraphql.TypeDefinition, trail *traversal) (map[string]amplience.PropertySchema, []string, []string, error) {
	properties := make(map[string]amplience.PropertySchema)
	var order, required []string

	for _, field := range def.Fields {
		if field.Annotations.Ignore || field.Annotations.Children {
			continue
		}

		descriptor, err := m.resolveField(schema, field, trail)
		if err != nil {
			return nil, nil, nil, err
		}

		properties[field.Name] = descriptor
		order = append(order, field.Name)
		if field.Type.NonNull {
			required = append(required, field.Name)
		}
	}

	return properties, order, required, nil
}

// resolveField produces the property descriptor for one field. The field's
// own description, when present, annotates the outermost descriptor.
func (m *Mapper) resolveField(schema pkggraphql.Schema, field pkggraphql.FieldDefinition, trail *traversal) (amplience.PropertySchema, error) {
	descriptor, err := m.resolveRef(schema, field, field.Type, true, trail)
	if err != nil {
		return amplience.PropertySchema{}, err
	}
	if description := sanitize.Text(field.Description); description != "" {
		descriptor.Description = description
	}
	return descriptor, nil
}

// resolveRef walks the type wrapping: list levels become array descriptors
// around the resolved element, named references dispatch by resolved kind.
// List bounds and array constants only apply to the outermost list level.
func (m *Mapper) resolveRef(schema pkggraphql.Schema, field pkggraphql.FieldDefinition, ref pkggraphql.TypeRef, outermost bool, trail *traversal) (amplience.PropertySchema, error) {
	if ref.List {
		var elem amplience.PropertySchema
		if ref.Elem != nil {
			resolved, err := m.resolveRef(schema, field, *ref.Elem, false, trail)
			if err != nil {
				return amplience.PropertySchema{}, err
			}
			elem = resolved
		}

		out := amplience.PropertySchema{Type: "array", Items: &elem}
		if outermost {
			if args := field.Annotations.List; args != nil {
				out.MinItems = cloneInt(args.MinItems)
				out.MaxItems = cloneInt(args.MaxItems)
			}
			if args := field.Annotations.Const; args != nil && len(args.Items) > 0 {
				out.Const = append([]string(nil), args.Items...)
			}
		}
		return out, nil
	}

	resolved := resolveNamed(schema, ref.Name)
	switch resolved.kind {
	case resolvedUnion:
		targets := make([]string, 0, len(resolved.def.Members))
		for _, member := range resolved.def.Members {
			targets = append(targets, amplience.TypeURI(m.opts.Host, member))
		}
		return amplience.ContentLink(targets), nil

	case resolvedEnum:
		return amplience.PropertySchema{
			Type: "string",
			Enum: append([]string(nil), resolved.def.EnumValues...),
		}, nil

	case resolvedObject:
		if field.Annotations.Link {
			return amplience.ContentLink([]string{amplience.TypeURI(m.opts.Host, resolved.name)}), nil
		}
		return m.inlineObject(schema, resolved.def, trail)

	default:
		return m.scalar(field, resolved.name), nil
	}
}

// inlineObject embeds a nested object descriptor by recursing into the
// referenced type's own fields.
func (m *Mapper) inlineObject(schema pkggraphql.Schema, def pkggraphql.TypeDefinition, trail *traversal) (amplience.PropertySchema, error) {
	if !trail.enter(def.Name) {
		return amplience.PropertySchema{}, &CycleError{TypeName: def.Name, Path: trail.cycle(def.Name)}
	}
	defer trail.leave(def.Name)

	properties, order, required, err := m.objectProperties(schema, def, trail)
	if err != nil {
		return amplience.PropertySchema{}, err
	}

	out := amplience.PropertySchema{
		Type:          "object",
		Properties:    properties,
		PropertyOrder: order,
		Required:      required,
	}
	if description := sanitize.Text(def.Description); description != "" {
		out.Description = description
	}
	return out, nil
}

// scalar maps a scalar (or unresolvable) type name onto its descriptor.
// Unknown names produce an empty descriptor so caller-side custom scalars
// pass through without failing the run.
func (m *Mapper) scalar(field pkggraphql.FieldDefinition, name string) amplience.PropertySchema {
	ann := field.Annotations
	switch name {
	case "String":
		if ann.Const != nil && ann.Const.Item != nil {
			return amplience.PropertySchema{Type: "string", Const: *ann.Const.Item}
		}
		out := amplience.PropertySchema{Type: "string"}
		if ann.Text != nil {
			out.Format = ann.Text.Format
			out.MinLength = cloneInt(ann.Text.MinLength)
			out.MaxLength = cloneInt(ann.Text.MaxLength)
		}
		if len(ann.Examples) > 0 {
			out.Examples = append([]string(nil), ann.Examples...)
		}
		return localize(field, out)

	case "Boolean":
		return localize(field, amplience.PropertySchema{Type: "boolean"})

	case "Int":
		return localize(field, numeric("integer", ann))

	case "Float":
		return localize(field, numeric("number", ann))

	case "AmplienceImage":
		return mediaLink(amplience.ImageLinkURI, amplience.LocalizedImageURI, ann.Localized)

	case "AmplienceVideo":
		return mediaLink(amplience.VideoLinkURI, amplience.LocalizedVideoURI, ann.Localized)

	default:
		return amplience.PropertySchema{}
	}
}

func numeric(typ string, ann pkggraphql.Annotations) amplience.PropertySchema {
	out := amplience.PropertySchema{Type: typ}
	if ann.Number != nil {
		out.Minimum = cloneFloat(ann.Number.Minimum)
		out.Maximum = cloneFloat(ann.Number.Maximum)
	}
	return out
}

// mediaLink picks between the plain and localized canonical reference for a
// media scalar. Media references are never wrapped again.
func mediaLink(plain, localized string, isLocalized bool) amplience.PropertySchema {
	if isLocalized {
		return amplience.PropertySchema{Ref: localized}
	}
	return amplience.PropertySchema{Ref: plain}
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	value := *v
	return &value
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	value := *v
	return &value
}
