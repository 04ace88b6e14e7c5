package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	pkggraphql "github.com/goliatone/go-ampgen/pkg/graphql"
)

// convertSchema flattens the gqlparser AST into the package-owned model.
// Definitions keep their declaration order; built-in, introspection, and
// prelude definitions are dropped.
func convertSchema(schema *ast.Schema) (pkggraphql.Schema, error) {
	defs := make([]*ast.Definition, 0, len(schema.Types))
	for _, def := range schema.Types {
		if def == nil || def.BuiltIn {
			continue
		}
		if strings.HasPrefix(def.Name, "__") {
			continue
		}
		if fromPrelude(def.Position) {
			continue
		}
		defs = append(defs, def)
	}

	sort.SliceStable(defs, func(i, j int) bool {
		return lessPosition(defs[i], defs[j])
	})

	out := pkggraphql.Schema{Types: make([]pkggraphql.TypeDefinition, 0, len(defs))}
	for _, def := range defs {
		converted, err := convertDefinition(def)
		if err != nil {
			return pkggraphql.Schema{}, err
		}
		out.Types = append(out.Types, converted)
	}
	return out, nil
}

func fromPrelude(pos *ast.Position) bool {
	return pos != nil && pos.Src != nil && pos.Src.Name == preludeSourceName
}

func lessPosition(a, b *ast.Definition) bool {
	pa, pb := a.Position, b.Position
	if pa == nil || pb == nil {
		return a.Name < b.Name
	}
	if pa.Src != nil && pb.Src != nil && pa.Src.Name != pb.Src.Name {
		return pa.Src.Name < pb.Src.Name
	}
	if pa.Line != pb.Line {
		return pa.Line < pb.Line
	}
	if pa.Column != pb.Column {
		return pa.Column < pb.Column
	}
	return a.Name < b.Name
}

func convertDefinition(def *ast.Definition) (pkggraphql.TypeDefinition, error) {
	out := pkggraphql.TypeDefinition{
		Name:        def.Name,
		Kind:        convertKind(def.Kind),
		Description: def.Description,
		Directives:  convertDirectives(def.Directives),
	}

	for _, field := range def.Fields {
		if field == nil || strings.HasPrefix(field.Name, "__") {
			continue
		}
		converted, err := convertField(field)
		if err != nil {
			return pkggraphql.TypeDefinition{}, fmt.Errorf("graphql parser: type %q: %w", def.Name, err)
		}
		out.Fields = append(out.Fields, converted)
	}

	if len(def.Types) > 0 {
		out.Members = append([]string(nil), def.Types...)
	}
	for _, value := range def.EnumValues {
		if value == nil {
			continue
		}
		out.EnumValues = append(out.EnumValues, value.Name)
	}

	return out, nil
}

func convertField(field *ast.FieldDefinition) (pkggraphql.FieldDefinition, error) {
	directives := convertDirectives(field.Directives)
	annotations, err := pkggraphql.DecodeAnnotations(directives)
	if err != nil {
		return pkggraphql.FieldDefinition{}, fmt.Errorf("field %q: %w", field.Name, err)
	}

	return pkggraphql.FieldDefinition{
		Name:        field.Name,
		Description: field.Description,
		Type:        convertType(field.Type),
		Directives:  directives,
		Annotations: annotations,
	}, nil
}

func convertType(t *ast.Type) pkggraphql.TypeRef {
	if t == nil {
		return pkggraphql.TypeRef{}
	}
	ref := pkggraphql.TypeRef{NonNull: t.NonNull}
	if t.NamedType != "" {
		ref.Name = t.NamedType
		return ref
	}
	elem := convertType(t.Elem)
	ref.List = true
	ref.Elem = &elem
	return ref
}

func convertDirectives(list ast.DirectiveList) pkggraphql.DirectiveList {
	if len(list) == 0 {
		return nil
	}
	out := make(pkggraphql.DirectiveList, 0, len(list))
	for _, d := range list {
		if d == nil {
			continue
		}
		converted := pkggraphql.Directive{Name: d.Name}
		for _, arg := range d.Arguments {
			if arg == nil {
				continue
			}
			converted.Arguments = append(converted.Arguments, pkggraphql.Argument{
				Name:  arg.Name,
				Value: convertValue(arg.Value),
			})
		}
		out = append(out, converted)
	}
	return out
}

func convertValue(v *ast.Value) pkggraphql.Value {
	if v == nil {
		return pkggraphql.Value{}
	}
	if v.Kind == ast.ListValue {
		items := make([]string, 0, len(v.Children))
		for _, child := range v.Children {
			if child == nil || child.Value == nil {
				continue
			}
			items = append(items, child.Value.Raw)
		}
		return pkggraphql.Value{Items: items}
	}
	return pkggraphql.Value{Raw: v.Raw}
}

func convertKind(kind ast.DefinitionKind) pkggraphql.TypeKind {
	switch kind {
	case ast.Object:
		return pkggraphql.KindObject
	case ast.Interface:
		return pkggraphql.KindInterface
	case ast.Union:
		return pkggraphql.KindUnion
	case ast.Enum:
		return pkggraphql.KindEnum
	case ast.InputObject:
		return pkggraphql.KindInput
	default:
		return pkggraphql.KindScalar
	}
}
