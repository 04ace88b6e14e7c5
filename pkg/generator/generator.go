// Package generator coordinates the full pipeline from GraphQL schema to
// Amplience document tree: load, parse, map each object type, and write the
// results.
package generator

import (
	"context"
	"errors"
	"fmt"

	internalLoader "github.com/goliatone/go-ampgen/internal/graphql/loader"
	internalParser "github.com/goliatone/go-ampgen/internal/graphql/parser"
	"github.com/goliatone/go-ampgen/pkg/config"
	pkggraphql "github.com/goliatone/go-ampgen/pkg/graphql"
	"github.com/goliatone/go-ampgen/pkg/mapper"
	"github.com/goliatone/go-ampgen/pkg/writer"
)

// Writer persists document bundles. *writer.Writer is the production
// implementation; tests substitute their own.
type Writer interface {
	Write(bundles []mapper.Bundle) (writer.Manifest, error)
}

// Option customises the generator configuration.
type Option func(*Generator)

// WithLoader injects a custom schema loader.
func WithLoader(loader pkggraphql.Loader) Option {
	return func(g *Generator) {
		g.loader = loader
	}
}

// WithParser injects a custom schema parser.
func WithParser(parser pkggraphql.Parser) Option {
	return func(g *Generator) {
		g.parser = parser
	}
}

// WithBuilder injects a custom document builder.
func WithBuilder(builder mapper.Builder) Option {
	return func(g *Generator) {
		g.builder = builder
	}
}

// WithWriter injects the writer that persists generated documents.
func WithWriter(w Writer) Option {
	return func(g *Generator) {
		g.writer = w
	}
}

// WithConfig applies a project configuration: the builder inherits the host
// and registration settings, the writer the output layout, and requests that
// omit Types inherit the configured restriction.
func WithConfig(cfg config.Config) Option {
	return func(g *Generator) {
		g.builder = mapper.NewBuilder(cfg.BuilderOptions()...)
		g.writer = writer.New(writer.WithDir(cfg.Output.Dir), writer.WithDocs(cfg.Output.Docs))
		g.types = append([]string(nil), cfg.Types...)
	}
}

// Generator runs the schema-to-documents pipeline. Missing dependencies are
// initialised with the built-in implementations so callers can start with a
// single constructor call.
type Generator struct {
	loader  pkggraphql.Loader
	parser  pkggraphql.Parser
	builder mapper.Builder
	writer  Writer
	types   []string
}

// New constructs a Generator applying any provided options.
func New(options ...Option) *Generator {
	g := &Generator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

// Request describes the inputs for one generation run.
type Request struct {
	// Source identifies where the schema document lives. Optional when
	// Document is supplied.
	Source pkggraphql.Source

	// Document allows callers to bypass the loader when they already have a
	// payload in hand.
	Document *pkggraphql.Document

	// Types restricts generation to the named object types. Empty falls back
	// to the configured restriction, then to every object type.
	Types []string

	// DryRun computes the bundles without writing anything.
	DryRun bool
}

// Result carries the outcome of a generation run.
type Result struct {
	// Bundles holds the generated documents, one per object type, in schema
	// declaration order.
	Bundles []mapper.Bundle

	// Manifest describes what was written. Zero for dry runs.
	Manifest writer.Manifest

	// Written reports whether the writer ran.
	Written bool
}

// Generate executes the loader, parser, builder, writer sequence.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	doc, err := g.resolveDocument(ctx, req)
	if err != nil {
		return Result{}, err
	}

	schema, err := g.parser.Parse(ctx, doc)
	if err != nil {
		return Result{}, fmt.Errorf("generator: parse schema: %w", err)
	}

	defs, err := g.selectTypes(schema, req.Types)
	if err != nil {
		return Result{}, err
	}

	result := Result{Bundles: make([]mapper.Bundle, 0, len(defs))}
	for _, def := range defs {
		bundle, err := g.builder.Build(schema, def)
		if err != nil {
			return Result{}, fmt.Errorf("generator: build type %q: %w", def.Name, err)
		}
		result.Bundles = append(result.Bundles, bundle)
	}

	if req.DryRun || g.writer == nil {
		return result, nil
	}

	manifest, err := g.writer.Write(result.Bundles)
	if err != nil {
		return Result{}, fmt.Errorf("generator: write documents: %w", err)
	}
	result.Manifest = manifest
	result.Written = true

	return result, nil
}

func (g *Generator) resolveDocument(ctx context.Context, req Request) (pkggraphql.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkggraphql.Document{}, errors.New("generator: source or document is required")
	}
	doc, err := g.loader.Load(ctx, req.Source)
	if err != nil {
		return pkggraphql.Document{}, fmt.Errorf("generator: load document: %w", err)
	}
	return doc, nil
}

// selectTypes resolves the requested type names against the schema, keeping
// schema declaration order. Without a restriction every object type is
// selected.
func (g *Generator) selectTypes(schema pkggraphql.Schema, requested []string) ([]pkggraphql.TypeDefinition, error) {
	names := requested
	if len(names) == 0 {
		names = g.types
	}

	if len(names) == 0 {
		defs := schema.Objects()
		if len(defs) == 0 {
			return nil, errors.New("generator: schema contains no object types")
		}
		return defs, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		def, ok := schema.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("generator: type %q not found in schema", name)
		}
		if def.Kind != pkggraphql.KindObject {
			return nil, fmt.Errorf("generator: type %q is a %s, only object types generate documents", name, def.Kind)
		}
		wanted[name] = true
	}

	var defs []pkggraphql.TypeDefinition
	for _, def := range schema.Objects() {
		if wanted[def.Name] {
			defs = append(defs, def)
		}
	}
	return defs, nil
}

func (g *Generator) applyDefaults() {
	if g.loader == nil {
		g.loader = internalLoader.New(pkggraphql.NewLoaderOptions())
	}
	if g.parser == nil {
		g.parser = internalParser.New(pkggraphql.NewParserOptions())
	}
	if g.builder == nil {
		g.builder = mapper.NewBuilder()
	}
	if g.writer == nil {
		g.writer = writer.New()
	}
}
