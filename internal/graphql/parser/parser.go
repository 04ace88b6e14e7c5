package parser

import (
	"context"
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	pkggraphql "github.com/goliatone/go-ampgen/pkg/graphql"
)

// Parser implements pkggraphql.Parser using gqlparser.
type Parser struct {
	options pkggraphql.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkggraphql.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkggraphql.ParserOptions) pkggraphql.Parser {
	return &Parser{options: options}
}

// Parse validates the SDL payload and converts it into the package-owned
// schema model.
func (p *Parser) Parse(ctx context.Context, doc pkggraphql.Document) (pkggraphql.Schema, error) {
	if err := ctx.Err(); err != nil {
		return pkggraphql.Schema{}, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return pkggraphql.Schema{}, errors.New("graphql parser: document payload is empty")
	}

	sources := make([]*ast.Source, 0, 2)
	if p.options.DeclarePrelude {
		sources = append(sources, &ast.Source{Name: preludeSourceName, Input: preludeSDL})
	}
	sources = append(sources, &ast.Source{Name: sourceName(doc), Input: string(raw)})

	schema, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return pkggraphql.Schema{}, fmt.Errorf("graphql parser: load schema: %w", err)
	}

	converted, err := convertSchema(schema)
	if err != nil {
		return pkggraphql.Schema{}, err
	}
	if len(converted.Types) == 0 {
		return pkggraphql.Schema{}, errors.New("graphql parser: document does not define any types")
	}
	return converted, nil
}

func sourceName(doc pkggraphql.Document) string {
	if loc := doc.Location(); loc != "" {
		return loc
	}
	return "schema.graphql"
}
