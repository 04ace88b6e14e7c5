// Package mapper turns annotated GraphQL object types into the Dynamic
// Content documents that describe them: the schema body, the schema
// registration, and the content type settings.
package mapper

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-ampgen/internal/sanitize"
	"github.com/goliatone/go-ampgen/pkg/amplience"
	pkggraphql "github.com/goliatone/go-ampgen/pkg/graphql"
)

// Options configures a Mapper.
type Options struct {
	// Host is the schema host every generated URI hangs off. Required.
	Host string

	// ValidationLevel is applied to every schema registration. Defaults to
	// CONTENT_TYPE.
	ValidationLevel amplience.ValidationLevel

	// IconURL overrides the default content type icon.
	IconURL string

	// Visualizations are registered on every generated content type.
	Visualizations []amplience.Visualization
}

// Mapper is the stateless transformation core. Every call recomputes from its
// inputs; instances are safe to share across goroutines.
type Mapper struct {
	opts Options
}

// New creates a Mapper with the supplied options, filling in defaults for the
// optional members.
func New(options Options) *Mapper {
	opts := options
	if opts.ValidationLevel == "" {
		opts.ValidationLevel = amplience.ValidationLevelContentType
	}
	if opts.IconURL == "" {
		opts.IconURL = amplience.DefaultIconURL
	}
	return &Mapper{opts: opts}
}

// Bundle collects the three documents generated for one object type.
type Bundle struct {
	TypeName          string
	Schema            amplience.SchemaDocument
	ContentTypeSchema amplience.ContentTypeSchema
	ContentType       amplience.ContentType
}

// Build generates the full document bundle for one object type.
func (m *Mapper) Build(schema pkggraphql.Schema, def pkggraphql.TypeDefinition) (Bundle, error) {
	body, err := m.SchemaDocument(schema, def)
	if err != nil {
		return Bundle{}, err
	}
	return Bundle{
		TypeName:          def.Name,
		Schema:            body,
		ContentTypeSchema: m.ContentTypeSchema(def),
		ContentType:       m.ContentType(def),
	}, nil
}

// SchemaDocument assembles the JSON schema body for one object type: the
// recursively resolved property map plus whichever trait fragments the
// type's fields opt into. The hierarchy trait is attached only when the type
// declares at least one children field, even though Hierarchy itself is total.
func (m *Mapper) SchemaDocument(schema pkggraphql.Schema, def pkggraphql.TypeDefinition) (amplience.SchemaDocument, error) {
	if m.opts.Host == "" {
		return amplience.SchemaDocument{}, errors.New("mapper: schema host is required")
	}
	if def.Kind != pkggraphql.KindObject {
		return amplience.SchemaDocument{}, fmt.Errorf("mapper: type %q is a %s, content types are built from object types", def.Name, def.Kind)
	}

	properties, order, required, err := m.objectProperties(schema, def, newTraversal(def.Name))
	if err != nil {
		return amplience.SchemaDocument{}, err
	}

	doc := amplience.SchemaDocument{
		Schema:        amplience.SchemaMetaURI,
		ID:            amplience.TypeURI(m.opts.Host, def.Name),
		Title:         amplience.CapitalCase(def.Name),
		Description:   sanitize.Text(def.Description),
		AllOf:         []amplience.PropertySchema{{Ref: amplience.CoreContentURI}},
		Type:          "object",
		Properties:    properties,
		PropertyOrder: order,
		Required:      required,
	}

	doc.Sortable = m.Sortable(def)
	doc.Filterable, err = m.Filterable(def)
	if err != nil {
		return amplience.SchemaDocument{}, err
	}
	if hasChildren(def) {
		doc.Hierarchy = m.Hierarchy(def)
	}

	return doc, nil
}

// ContentTypeSchema builds the registration document pairing the schema URI
// with the body file the writer lays out next to it.
func (m *Mapper) ContentTypeSchema(def pkggraphql.TypeDefinition) amplience.ContentTypeSchema {
	return amplience.ContentTypeSchema{
		Body:            "./schemas/" + amplience.KebabCase(def.Name) + "-schema.json",
		SchemaID:        amplience.TypeURI(m.opts.Host, def.Name),
		ValidationLevel: m.opts.ValidationLevel,
	}
}

// ContentType builds the editor-facing settings document for one type.
func (m *Mapper) ContentType(def pkggraphql.TypeDefinition) amplience.ContentType {
	visualizations := append([]amplience.Visualization(nil), m.opts.Visualizations...)
	if visualizations == nil {
		visualizations = []amplience.Visualization{}
	}
	return amplience.ContentType{
		ContentTypeURI: amplience.TypeURI(m.opts.Host, def.Name),
		Status:         "ACTIVE",
		Settings: amplience.Settings{
			Label:          amplience.CapitalCase(def.Name),
			Icons:          []amplience.Icon{{Size: 256, URL: m.opts.IconURL}},
			Visualizations: visualizations,
			Cards:          []amplience.Card{},
		},
	}
}
