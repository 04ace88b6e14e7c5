// Package ampgen turns a GraphQL schema annotated with mapping directives
// into Amplience Dynamic Content documents: one JSON schema body, one schema
// registration, and one content type settings document per object type.
package ampgen

import (
	"context"

	"github.com/goliatone/go-ampgen/pkg/config"
	"github.com/goliatone/go-ampgen/pkg/generator"
	pkggraphql "github.com/goliatone/go-ampgen/pkg/graphql"
	"github.com/goliatone/go-ampgen/pkg/mapper"
)

// Bundle aliases the per-type document bundle so callers of the convenience
// helpers below do not need to import pkg/mapper.
type Bundle = mapper.Bundle

// Config aliases the project configuration loaded from ampgen.yaml/json.
type Config = config.Config

// NewGenerator exposes the pipeline constructor from the top-level module.
func NewGenerator(options ...generator.Option) *generator.Generator {
	return generator.New(options...)
}

// Generate loads the schema from source, maps every object type (or the
// configured subset), and writes the resulting documents. It is the simplest
// entry point for callers that just want the output tree on disk.
func Generate(ctx context.Context, source pkggraphql.Source, cfg config.Config) (generator.Result, error) {
	gen := generator.New(generator.WithConfig(cfg))
	return gen.Generate(ctx, generator.Request{Source: source})
}

// GenerateFromDocument maps a pre-loaded document, bypassing the loader stage
// while still delegating to the generator pipeline.
func GenerateFromDocument(ctx context.Context, doc pkggraphql.Document, cfg config.Config) (generator.Result, error) {
	gen := generator.New(generator.WithConfig(cfg))
	return gen.Generate(ctx, generator.Request{Document: &doc})
}

// Map computes the document bundles for source without touching the
// filesystem, for callers that post-process or upload documents themselves.
func Map(ctx context.Context, source pkggraphql.Source, cfg config.Config) ([]Bundle, error) {
	gen := generator.New(generator.WithConfig(cfg))
	result, err := gen.Generate(ctx, generator.Request{Source: source, DryRun: true})
	if err != nil {
		return nil, err
	}
	return result.Bundles, nil
}
