package ampgen

import (
	internalLoader "github.com/goliatone/go-ampgen/internal/graphql/loader"
	internalParser "github.com/goliatone/go-ampgen/internal/graphql/parser"
	pkggraphql "github.com/goliatone/go-ampgen/pkg/graphql"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...pkggraphql.LoaderOption) pkggraphql.Loader {
	cfg := pkggraphql.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...pkggraphql.ParserOption) pkggraphql.Parser {
	cfg := pkggraphql.NewParserOptions(options...)
	return internalParser.New(cfg)
}
