package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"

	ampgen "github.com/goliatone/go-ampgen"
	"github.com/goliatone/go-ampgen/pkg/amplience"
	"github.com/goliatone/go-ampgen/pkg/config"
	"github.com/goliatone/go-ampgen/pkg/generator"
	pkggraphql "github.com/goliatone/go-ampgen/pkg/graphql"
)

func main() {
	source := flag.String("source", "schema.graphql", "GraphQL schema path or URL")
	configPath := flag.String("config", "", "configuration file (ampgen.yaml|yml|json discovered in . if empty)")
	host := flag.String("host", "", "schema host, overrides the configured schemaHost")
	out := flag.String("out", "", "output directory, overrides the configured output dir")
	types := flag.String("types", "", "comma-separated object type names (interactive selection on a terminal if empty)")
	level := flag.String("validation-level", "", "validation level: CONTENT_TYPE, SLOT, or PARTIAL")
	docs := flag.Bool("docs", false, "write an index.md summary next to the documents")
	dryRun := flag.Bool("dry-run", false, "compute documents without writing anything")
	flag.Parse()

	ctx := context.Background()

	cfg, err := resolveConfig(*configPath, *host, *out, *level, *docs)
	if err != nil {
		log.Fatalf("Failed to resolve configuration: %v", err)
	}

	src := parseSource(*source)
	if src == nil {
		log.Fatalf("invalid source: %q", *source)
	}

	loader := newLoader(src)
	doc, err := loader.Load(ctx, src)
	if err != nil {
		log.Fatalf("Failed to load schema: %v", err)
	}

	requested := splitTypes(*types)
	if len(requested) == 0 && len(cfg.Types) == 0 && isatty.IsTerminal(os.Stdin.Fd()) {
		requested, err = selectTypes(ctx, doc)
		if errors.Is(err, terminal.InterruptErr) {
			fmt.Println("Aborted.")
			return
		}
		if err != nil {
			log.Fatalf("Failed to select types: %v", err)
		}
	}

	gen := generator.New(generator.WithConfig(cfg))
	result, err := gen.Generate(ctx, generator.Request{
		Document: &doc,
		Types:    requested,
		DryRun:   *dryRun,
	})
	if err != nil {
		log.Fatalf("Failed to generate documents: %v", err)
	}

	if !result.Written {
		fmt.Printf("Computed %d document bundle(s), nothing written.\n", len(result.Bundles))
		return
	}
	fmt.Printf("Wrote %d file(s) under %s\n", len(result.Manifest.Files), result.Manifest.Root)
}

// resolveConfig loads the configuration file when one is given or discovered,
// then layers the flag overrides on top.
func resolveConfig(path, host, out, level string, docs bool) (config.Config, error) {
	var cfg config.Config

	switch {
	case path != "":
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	default:
		if discovered, err := config.Discover("."); err == nil {
			loaded, err := config.Load(discovered)
			if err != nil {
				return config.Config{}, err
			}
			cfg = loaded
		}
	}

	if host != "" {
		cfg.SchemaHost = host
	}
	if cfg.SchemaHost == "" {
		return config.Config{}, errors.New("schema host is required: pass -host or set schemaHost in the configuration file")
	}
	if out != "" {
		cfg.Output.Dir = out
	}
	if level != "" {
		parsed, err := amplience.ParseValidationLevel(level)
		if err != nil {
			return config.Config{}, err
		}
		cfg.ValidationLevel = parsed
	}
	if docs {
		cfg.Output.Docs = true
	}

	return cfg, nil
}

func newLoader(src pkggraphql.Source) pkggraphql.Loader {
	var options []pkggraphql.LoaderOption
	if src.Kind() == pkggraphql.SourceKindURL {
		options = append(options, pkggraphql.WithHTTPFallback(30*time.Second))
	}
	return ampgen.NewLoader(options...)
}

// selectTypes parses the document and offers the schema's object types in a
// multi-select prompt.
func selectTypes(ctx context.Context, doc pkggraphql.Document) ([]string, error) {
	parser := ampgen.NewParser()
	schema, err := parser.Parse(ctx, doc)
	if err != nil {
		return nil, err
	}

	var options []string
	for _, def := range schema.Objects() {
		options = append(options, def.Name)
	}
	if len(options) == 0 {
		return nil, errors.New("schema contains no object types")
	}

	var picked []string
	prompt := &survey.MultiSelect{
		Message: "Select the object types to generate:",
		Options: options,
		Default: options,
	}
	if err := survey.AskOne(prompt, &picked); err != nil {
		return nil, err
	}
	if len(picked) == 0 {
		return nil, errors.New("no types selected")
	}
	return picked, nil
}

func parseSource(raw string) pkggraphql.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkggraphql.SourceFromURL(path)
	}
	return pkggraphql.SourceFromFile(path)
}

func splitTypes(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
