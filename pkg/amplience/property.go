package amplience

// PropertySchema is the JSON-Schema-flavoured descriptor Dynamic Content uses
// for a single content type property. Descriptors nest recursively through
// Properties and Items; reference compositions keep the referenced fragment in
// AllOf with overrides alongside it. Absent constraints stay nil so the
// marshalled document only carries what was derived from the schema.
type PropertySchema struct {
	Ref           string                    `json:"$ref,omitempty"`
	AllOf         []PropertySchema          `json:"allOf,omitempty"`
	Type          string                    `json:"type,omitempty"`
	Title         string                    `json:"title,omitempty"`
	Description   string                    `json:"description,omitempty"`
	Const         any                       `json:"const,omitempty"`
	Enum          []string                  `json:"enum,omitempty"`
	Format        string                    `json:"format,omitempty"`
	MinLength     *int                      `json:"minLength,omitempty"`
	MaxLength     *int                      `json:"maxLength,omitempty"`
	Minimum       *float64                  `json:"minimum,omitempty"`
	Maximum       *float64                  `json:"maximum,omitempty"`
	Examples      []string                  `json:"examples,omitempty"`
	Properties    map[string]PropertySchema `json:"properties,omitempty"`
	PropertyOrder []string                  `json:"propertyOrder,omitempty"`
	Required      []string                  `json:"required,omitempty"`
	Items         *PropertySchema           `json:"items,omitempty"`
	MinItems      *int                      `json:"minItems,omitempty"`
	MaxItems      *int                      `json:"maxItems,omitempty"`
}

// IsZero reports whether the descriptor carries no information at all. Unknown
// scalars and unresolvable type references produce zero descriptors.
func (p PropertySchema) IsZero() bool {
	return p.Ref == "" && p.AllOf == nil && p.Type == "" && p.Title == "" &&
		p.Description == "" && p.Const == nil && p.Enum == nil && p.Format == "" &&
		p.MinLength == nil && p.MaxLength == nil && p.Minimum == nil && p.Maximum == nil &&
		p.Examples == nil && p.Properties == nil && p.PropertyOrder == nil &&
		p.Required == nil && p.Items == nil && p.MinItems == nil && p.MaxItems == nil
}

// Clone creates a deep copy of the descriptor tree to avoid accidental
// mutation when callers post-process generated documents.
func (p PropertySchema) Clone() PropertySchema {
	cloned := p
	if len(p.AllOf) > 0 {
		cloned.AllOf = make([]PropertySchema, len(p.AllOf))
		for i, member := range p.AllOf {
			cloned.AllOf[i] = member.Clone()
		}
	}
	if len(p.Enum) > 0 {
		cloned.Enum = append([]string(nil), p.Enum...)
	}
	if len(p.Examples) > 0 {
		cloned.Examples = append([]string(nil), p.Examples...)
	}
	if len(p.Properties) > 0 {
		cloned.Properties = make(map[string]PropertySchema, len(p.Properties))
		for name, property := range p.Properties {
			cloned.Properties[name] = property.Clone()
		}
	}
	if len(p.PropertyOrder) > 0 {
		cloned.PropertyOrder = append([]string(nil), p.PropertyOrder...)
	}
	if len(p.Required) > 0 {
		cloned.Required = append([]string(nil), p.Required...)
	}
	if p.Items != nil {
		items := p.Items.Clone()
		cloned.Items = &items
	}
	cloned.MinLength = cloneInt(p.MinLength)
	cloned.MaxLength = cloneInt(p.MaxLength)
	cloned.MinItems = cloneInt(p.MinItems)
	cloned.MaxItems = cloneInt(p.MaxItems)
	cloned.Minimum = cloneFloat(p.Minimum)
	cloned.Maximum = cloneFloat(p.Maximum)
	return cloned
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	clone := *v
	return &clone
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	clone := *v
	return &clone
}

// ContentLink builds the reference composition for a property that links to
// other content items, enumerating the schema URIs it may target.
func ContentLink(targets []string) PropertySchema {
	return PropertySchema{
		AllOf: []PropertySchema{{Ref: ContentLinkURI}},
		Properties: map[string]PropertySchema{
			"contentType": {Enum: append([]string(nil), targets...)},
		},
	}
}
