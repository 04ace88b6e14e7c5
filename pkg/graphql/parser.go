package graphql

import "context"

// Parser turns a raw SDL document into the package-owned Schema model that
// downstream packages consume.
type Parser interface {
	Parse(ctx context.Context, doc Document) (Schema, error)
}

// ParserOptions exposes the parser toggles.
type ParserOptions struct {
	// DeclarePrelude prepends declarations for the mapping directives and media
	// scalars before parsing, so plain annotated schemas validate without
	// boilerplate. Disable it when the input document declares them itself.
	DeclarePrelude bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithPrelude toggles the built-in directive and scalar declarations.
func WithPrelude(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.DeclarePrelude = enabled
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration. Implementations under internal/graphql should call this
// helper to remain consistent.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		DeclarePrelude: true,
	}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
