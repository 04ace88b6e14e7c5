package mapper

import (
	internalmapper "github.com/goliatone/go-ampgen/internal/mapper"
	"github.com/goliatone/go-ampgen/pkg/amplience"
	pkggraphql "github.com/goliatone/go-ampgen/pkg/graphql"
)

// Builder converts GraphQL object types into Amplience documents.
type Builder interface {
	// Build produces the full document bundle for one object type.
	Build(schema pkggraphql.Schema, def pkggraphql.TypeDefinition) (Bundle, error)

	// SchemaDocument produces the JSON schema body for one object type.
	SchemaDocument(schema pkggraphql.Schema, def pkggraphql.TypeDefinition) (amplience.SchemaDocument, error)

	// ContentTypeSchema produces the schema registration document.
	ContentTypeSchema(def pkggraphql.TypeDefinition) amplience.ContentTypeSchema

	// ContentType produces the content type settings document.
	ContentType(def pkggraphql.TypeDefinition) amplience.ContentType

	// Sortable produces the sortable trait, or nil when no field opts in.
	Sortable(def pkggraphql.TypeDefinition) *amplience.SortableTrait

	// Hierarchy produces the hierarchy trait for the type.
	Hierarchy(def pkggraphql.TypeDefinition) *amplience.HierarchyTrait

	// Filterable produces the filterable trait, or nil when no field opts in.
	Filterable(def pkggraphql.TypeDefinition) (*amplience.FilterableTrait, error)
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	host            string
	validationLevel amplience.ValidationLevel
	iconURL         string
	visualizations  []amplience.Visualization
}

// WithHost sets the schema host generated URIs hang off. The builder cannot
// produce documents without it.
func WithHost(host string) BuilderOption {
	return func(opts *builderOptions) {
		opts.host = host
	}
}

// WithValidationLevel overrides the validation level stamped on every schema
// registration. Defaults to CONTENT_TYPE.
func WithValidationLevel(level amplience.ValidationLevel) BuilderOption {
	return func(opts *builderOptions) {
		opts.validationLevel = level
	}
}

// WithIcon overrides the default content type icon URL.
func WithIcon(url string) BuilderOption {
	return func(opts *builderOptions) {
		opts.iconURL = url
	}
}

// WithVisualizations registers visualizations on every generated content type.
func WithVisualizations(visualizations ...amplience.Visualization) BuilderOption {
	return func(opts *builderOptions) {
		if len(visualizations) == 0 {
			return
		}
		opts.visualizations = append(opts.visualizations, visualizations...)
	}
}

// NewBuilder returns a Builder backed by the internal implementation. Host
// validation happens when documents are produced, not here.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	return internalmapper.New(internalmapper.Options{
		Host:            cfg.host,
		ValidationLevel: cfg.validationLevel,
		IconURL:         cfg.iconURL,
		Visualizations:  cfg.visualizations,
	})
}
