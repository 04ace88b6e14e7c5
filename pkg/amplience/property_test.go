package amplience_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ampgen/pkg/amplience"
)

func TestPropertySchemaClone(t *testing.T) {
	t.Parallel()

	minLength, maxItems := 2, 4
	minimum := 0.5
	original := amplience.PropertySchema{
		Type:     "array",
		MaxItems: &maxItems,
		Items: &amplience.PropertySchema{
			Type:     "object",
			Required: []string{"title"},
			Properties: map[string]amplience.PropertySchema{
				"title":  {Type: "string", MinLength: &minLength},
				"rating": {Type: "number", Minimum: &minimum},
			},
			PropertyOrder: []string{"title", "rating"},
		},
		AllOf: []amplience.PropertySchema{{Ref: amplience.ContentLinkURI}},
	}

	clone := original.Clone()
	if diff := cmp.Diff(original, clone); diff != "" {
		t.Fatalf("clone is not structurally equal (-original +clone):\n%s", diff)
	}

	*clone.MaxItems = 99
	*clone.Items.Properties["title"].MinLength = 50
	clone.Items.Required[0] = "changed"
	clone.AllOf[0].Ref = "changed"

	if *original.MaxItems != 4 {
		t.Errorf("original maxItems = %d, mutated through the clone", *original.MaxItems)
	}
	if got := *original.Items.Properties["title"].MinLength; got != 2 {
		t.Errorf("original nested minLength = %d, mutated through the clone", got)
	}
	if original.Items.Required[0] != "title" {
		t.Errorf("original required = %v, mutated through the clone", original.Items.Required)
	}
	if original.AllOf[0].Ref != amplience.ContentLinkURI {
		t.Errorf("original allOf ref = %q, mutated through the clone", original.AllOf[0].Ref)
	}
}

func TestPropertySchemaCloneZero(t *testing.T) {
	t.Parallel()

	var zero amplience.PropertySchema
	if !zero.Clone().IsZero() {
		t.Fatalf("clone of a zero descriptor should stay zero")
	}
}
