package mapper

import (
	"github.com/goliatone/go-ampgen/pkg/amplience"
	pkggraphql "github.com/goliatone/go-ampgen/pkg/graphql"
)

// localize applies the localization rules to a resolved leaf descriptor. A
// String field carrying nothing but the localized directive collapses to the
// canonical localized-string reference; every other localized leaf nests the
// descriptor inside a localized-value composition under values[].value.
func localize(field pkggraphql.FieldDefinition, descriptor amplience.PropertySchema) amplience.PropertySchema {
	if !field.Annotations.Localized {
		return descriptor
	}

	if len(field.Directives) == 1 && field.Type.Named() == "String" {
		return amplience.PropertySchema{Ref: amplience.LocalizedStringURI}
	}

	return amplience.PropertySchema{
		AllOf: []amplience.PropertySchema{{Ref: amplience.LocalizedValueURI}},
		Properties: map[string]amplience.PropertySchema{
			"values": {
				Items: &amplience.PropertySchema{
					Properties: map[string]amplience.PropertySchema{
						"value": descriptor,
					},
				},
			},
		},
	}
}
