package amplience_test

import (
	"testing"

	"github.com/goliatone/go-ampgen/pkg/amplience"
)

func TestKebabCase(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "pascal", input: "BlogPost", want: "blog-post"},
		{name: "camel", input: "relatedArticles", want: "related-articles"},
		{name: "single word", input: "Article", want: "article"},
		{name: "acronym tail", input: "PageV2", want: "page-v2"},
		{name: "underscores", input: "hero_banner", want: "hero-banner"},
		{name: "already kebab", input: "hero-banner", want: "hero-banner"},
		{name: "empty", input: "", want: ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := amplience.KebabCase(tc.input); got != tc.want {
				t.Fatalf("KebabCase(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestCapitalCase(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{input: "BlogPost", want: "Blog Post"},
		{input: "heroBanner", want: "Hero Banner"},
		{input: "article", want: "Article"},
		{input: "seo_settings", want: "Seo Settings"},
		{input: "", want: ""},
	}

	for _, tc := range cases {
		if got := amplience.CapitalCase(tc.input); got != tc.want {
			t.Fatalf("CapitalCase(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
