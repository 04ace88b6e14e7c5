package parser

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkggraphql "github.com/goliatone/go-ampgen/pkg/graphql"
)

const annotatedSchema = `type Article {
  title: String! @text(minLength: 2, maxLength: 120) @localized
  slug: String! @const(item: "article")
  rating: Float @number(minimum: 0.5, maximum: 5)
  tags: [String!] @list(minItems: 1, maxItems: 4) @example(items: ["news", "sport"])
  category: Category
  author: Author @link
  related: [Article] @children
  internal: String @ignore
  publishedAt: String @sortable @filterable
}

enum Category {
  NEWS
  SPORT
  CULTURE
}

union Banner = Article | Author

type Author {
  name: String!
  avatar: AmplienceImage
}
`

func parseFixture(t *testing.T) pkggraphql.Schema {
	t.Helper()

	doc := pkggraphql.MustNewDocument(pkggraphql.SourceFromFS("schema.graphql"), []byte(annotatedSchema))
	p := New(pkggraphql.NewParserOptions())
	schema, err := p.Parse(context.Background(), doc)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	return schema
}

func TestParsePreservesDeclarationOrder(t *testing.T) {
	t.Parallel()

	schema := parseFixture(t)

	var names []string
	for _, def := range schema.Types {
		names = append(names, def.Name)
	}
	want := []string{"Article", "Category", "Banner", "Author"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("type order mismatch (-want +got):\n%s", diff)
	}

	article, ok := schema.Lookup("Article")
	if !ok {
		t.Fatalf("Article not found in schema")
	}
	var fields []string
	for _, field := range article.Fields {
		fields = append(fields, field.Name)
	}
	wantFields := []string{"title", "slug", "rating", "tags", "category", "author", "related", "internal", "publishedAt"}
	if diff := cmp.Diff(wantFields, fields); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	category, _ := schema.Lookup("Category")
	if diff := cmp.Diff([]string{"NEWS", "SPORT", "CULTURE"}, category.EnumValues); diff != "" {
		t.Fatalf("enum value order mismatch (-want +got):\n%s", diff)
	}

	banner, _ := schema.Lookup("Banner")
	if banner.Kind != pkggraphql.KindUnion {
		t.Fatalf("Banner kind = %q, want union", banner.Kind)
	}
	if diff := cmp.Diff([]string{"Article", "Author"}, banner.Members); diff != "" {
		t.Fatalf("union member order mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDecodesAnnotations(t *testing.T) {
	t.Parallel()

	schema := parseFixture(t)
	article, _ := schema.Lookup("Article")

	byName := make(map[string]pkggraphql.FieldDefinition, len(article.Fields))
	for _, field := range article.Fields {
		byName[field.Name] = field
	}

	title := byName["title"]
	if title.Annotations.Text == nil || !title.Annotations.Localized {
		t.Fatalf("title annotations = %+v, want text args and localized", title.Annotations)
	}
	if got := *title.Annotations.Text.MinLength; got != 2 {
		t.Fatalf("title minLength = %d, want 2", got)
	}
	if !title.Type.NonNull || title.Type.Named() != "String" {
		t.Fatalf("title type = %s, want String!", title.Type)
	}

	slug := byName["slug"]
	if slug.Annotations.Const == nil || slug.Annotations.Const.Item == nil || *slug.Annotations.Const.Item != "article" {
		t.Fatalf("slug const = %+v, want item \"article\"", slug.Annotations.Const)
	}

	rating := byName["rating"]
	if rating.Annotations.Number == nil || rating.Annotations.Number.Minimum == nil || *rating.Annotations.Number.Minimum != 0.5 {
		t.Fatalf("rating bounds = %+v", rating.Annotations.Number)
	}

	tags := byName["tags"]
	if !tags.Type.List || tags.Type.Named() != "String" {
		t.Fatalf("tags type = %s, want list of String", tags.Type)
	}
	if diff := cmp.Diff([]string{"news", "sport"}, tags.Annotations.Examples); diff != "" {
		t.Fatalf("tags examples mismatch (-want +got):\n%s", diff)
	}

	if !byName["author"].Annotations.Link {
		t.Fatalf("author link annotation missing")
	}
	if !byName["related"].Annotations.Children {
		t.Fatalf("related children annotation missing")
	}
	if !byName["internal"].Annotations.Ignore {
		t.Fatalf("internal ignore annotation missing")
	}
	published := byName["publishedAt"]
	if !published.Annotations.Sortable || !published.Annotations.Filterable {
		t.Fatalf("publishedAt annotations = %+v, want sortable and filterable", published.Annotations)
	}
}

func TestParseHidesPreludeAndBuiltins(t *testing.T) {
	t.Parallel()

	schema := parseFixture(t)

	for _, hidden := range []string{"AmplienceImage", "AmplienceVideo", "String", "Int", "__Schema"} {
		if _, ok := schema.Lookup(hidden); ok {
			t.Fatalf("expected %q to be filtered from the model", hidden)
		}
	}
}

func TestParseWithoutPreludeRejectsUnknownDirectives(t *testing.T) {
	t.Parallel()

	doc := pkggraphql.MustNewDocument(pkggraphql.SourceFromFS("schema.graphql"), []byte(annotatedSchema))
	p := New(pkggraphql.NewParserOptions(pkggraphql.WithPrelude(false)))
	if _, err := p.Parse(context.Background(), doc); err == nil {
		t.Fatalf("expected undefined-directive error without the prelude")
	}
}

func TestParseWithoutPreludeAcceptsSelfContainedSchema(t *testing.T) {
	t.Parallel()

	const selfContained = `directive @sortable on FIELD_DEFINITION

type Event {
  startsAt: String @sortable
}
`
	doc := pkggraphql.MustNewDocument(pkggraphql.SourceFromFS("schema.graphql"), []byte(selfContained))
	p := New(pkggraphql.NewParserOptions(pkggraphql.WithPrelude(false)))
	schema, err := p.Parse(context.Background(), doc)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	event, ok := schema.Lookup("Event")
	if !ok {
		t.Fatalf("Event not found in schema")
	}
	if !event.Fields[0].Annotations.Sortable {
		t.Fatalf("expected sortable annotation on startsAt")
	}
}

func TestParseRejectsMalformedSDL(t *testing.T) {
	t.Parallel()

	doc := pkggraphql.MustNewDocument(pkggraphql.SourceFromFS("broken.graphql"), []byte("type {"))
	p := New(pkggraphql.NewParserOptions())
	if _, err := p.Parse(context.Background(), doc); err == nil {
		t.Fatalf("expected parse error for malformed SDL")
	}
}
