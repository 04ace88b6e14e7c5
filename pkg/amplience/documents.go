package amplience

import "fmt"

// SchemaDocument is the JSON schema body registered for a content type. It is
// the largest of the three generated documents: the property map plus the
// trait fragments the type opted into.
type SchemaDocument struct {
	Schema        string                    `json:"$schema"`
	ID            string                    `json:"$id"`
	Title         string                    `json:"title,omitempty"`
	Description   string                    `json:"description,omitempty"`
	AllOf         []PropertySchema          `json:"allOf"`
	Type          string                    `json:"type"`
	Properties    map[string]PropertySchema `json:"properties,omitempty"`
	PropertyOrder []string                  `json:"propertyOrder,omitempty"`
	Required      []string                  `json:"required,omitempty"`
	Sortable      *SortableTrait            `json:"trait:sortable,omitempty"`
	Hierarchy     *HierarchyTrait           `json:"trait:hierarchy,omitempty"`
	Filterable    *FilterableTrait          `json:"trait:filterable,omitempty"`
}

// SortableTrait enumerates the sort orders a content type exposes.
type SortableTrait struct {
	SortBy []SortKey `json:"sortBy"`
}

// SortKey names one sort order and the property paths it covers.
type SortKey struct {
	Key   string   `json:"key"`
	Paths []string `json:"paths"`
}

// HierarchyTrait lists the schema URIs a hierarchy node may parent, the
// type's own URI first.
type HierarchyTrait struct {
	ChildContentTypes []string `json:"childContentTypes"`
}

// FilterableTrait enumerates every filter path combination the CMS may use
// when querying items of this type.
type FilterableTrait struct {
	FilterBy []FilterPath `json:"filterBy"`
}

// FilterPath is one combination of property paths filtered together.
type FilterPath struct {
	Paths []string `json:"paths"`
}

// ValidationLevel selects how strictly Dynamic Content validates content
// against a registered schema.
type ValidationLevel string

const (
	ValidationLevelContentType ValidationLevel = "CONTENT_TYPE"
	ValidationLevelSlot        ValidationLevel = "SLOT"
	ValidationLevelPartial     ValidationLevel = "PARTIAL"
)

// ParseValidationLevel maps the textual form (as it appears in configuration
// files and CLI flags) onto a ValidationLevel.
func ParseValidationLevel(raw string) (ValidationLevel, error) {
	switch ValidationLevel(raw) {
	case ValidationLevelContentType, ValidationLevelSlot, ValidationLevelPartial:
		return ValidationLevel(raw), nil
	default:
		return "", fmt.Errorf("amplience: unknown validation level %q", raw)
	}
}

// ContentTypeSchema registers a schema body with the CMS: a relative pointer
// to the body file, the schema URI, and the validation level.
type ContentTypeSchema struct {
	Body            string          `json:"body"`
	SchemaID        string          `json:"schemaId"`
	ValidationLevel ValidationLevel `json:"validationLevel"`
}

// ContentType is the editor-facing registration: label, icons, and
// visualizations for an active content type.
type ContentType struct {
	ContentTypeURI string   `json:"contentTypeUri"`
	Status         string   `json:"status"`
	Settings       Settings `json:"settings"`
}

// Settings holds the presentation configuration nested inside a ContentType.
type Settings struct {
	Label          string          `json:"label"`
	Icons          []Icon          `json:"icons"`
	Visualizations []Visualization `json:"visualizations"`
	Cards          []Card          `json:"cards"`
}

// Icon is a single icon registration; Dynamic Content expects 256px entries.
type Icon struct {
	Size int    `json:"size"`
	URL  string `json:"url"`
}

// Visualization points the editor preview at a templated URI.
type Visualization struct {
	Label        string `json:"label"`
	TemplatedURI string `json:"templatedUri"`
	Default      bool   `json:"default"`
}

// Card configures the content library card preview; same shape as a
// visualization.
type Card struct {
	Label        string `json:"label"`
	TemplatedURI string `json:"templatedUri"`
	Default      bool   `json:"default"`
}
