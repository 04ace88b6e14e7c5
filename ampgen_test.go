package ampgen_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	ampgen "github.com/goliatone/go-ampgen"
	"github.com/goliatone/go-ampgen/pkg/config"
	pkggraphql "github.com/goliatone/go-ampgen/pkg/graphql"
)

const facadeSchema = `type Banner {
  headline: String! @localized
  priority: Int @number(minimum: 1, maximum: 10)
}
`

func TestMapProducesOneBundlePerObjectType(t *testing.T) {
	t.Parallel()

	files := fstest.MapFS{
		"schema.graphql": &fstest.MapFile{Data: []byte(facadeSchema)},
	}

	loader := ampgen.NewLoader(pkggraphql.WithFileSystem(files))
	doc, err := loader.Load(context.Background(), pkggraphql.SourceFromFS("schema.graphql"))
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}

	cfg := config.Config{SchemaHost: "https://schema.example.com"}
	cfg.Output.Dir = t.TempDir()
	result, err := ampgen.GenerateFromDocument(context.Background(), doc, cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if !result.Written {
		t.Error("expected documents to be written")
	}

	if got, want := len(result.Bundles), 1; got != want {
		t.Fatalf("len(bundles) = %d, want %d", got, want)
	}
	bundle := result.Bundles[0]
	if got, want := bundle.Schema.ID, "https://schema.example.com/banner"; got != want {
		t.Errorf("schema id = %q, want %q", got, want)
	}
	if got, want := bundle.ContentType.Settings.Label, "Banner"; got != want {
		t.Errorf("label = %q, want %q", got, want)
	}
	if diff := cmp.Diff([]string{"headline", "priority"}, bundle.Schema.PropertyOrder); diff != "" {
		t.Errorf("property order mismatch (-want +got):\n%s", diff)
	}
}

func TestNewParserRejectsUndeclaredDirectivesWithoutPrelude(t *testing.T) {
	t.Parallel()

	parser := ampgen.NewParser(pkggraphql.WithPrelude(false))
	doc := pkggraphql.MustNewDocument(pkggraphql.SourceFromFile("schema.graphql"), []byte(facadeSchema))
	if _, err := parser.Parse(context.Background(), doc); err == nil {
		t.Fatal("expected undeclared directive error, got nil")
	}
}
