// Package writer lays generated documents out on disk in the tree the
// Amplience CLI imports from: schema bodies under
// content-type-schemas/schemas/, registrations under content-type-schemas/,
// and content type settings under content-types/.
package writer

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/flosch/pongo2/v6"
	json "github.com/goccy/go-json"

	"github.com/goliatone/go-ampgen/pkg/amplience"
	"github.com/goliatone/go-ampgen/pkg/mapper"
)

const (
	schemasDir      = "content-type-schemas/schemas"
	registrationDir = "content-type-schemas"
	contentTypesDir = "content-types"
	indexFile       = "index.md"
)

// Option configures the writer.
type Option func(*Writer)

// WithDir sets the directory the document tree is written under.
func WithDir(dir string) Option {
	return func(w *Writer) {
		if trimmed := strings.TrimSpace(dir); trimmed != "" {
			w.dir = trimmed
		}
	}
}

// WithDocs toggles the generated index.md summarising the written documents.
func WithDocs(enabled bool) Option {
	return func(w *Writer) {
		w.docs = enabled
	}
}

// Writer persists document bundles produced by the mapper.
type Writer struct {
	dir  string
	docs bool
}

// New constructs a Writer. Without options, documents land under "amplience"
// relative to the working directory.
func New(options ...Option) *Writer {
	w := &Writer{dir: "amplience"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}

// Manifest reports what a Write call produced: the root directory and the
// relative paths of every file, in write order.
type Manifest struct {
	Root  string
	Files []string
}

// Write persists one file triplet per bundle, plus the optional index. Bundles
// whose type names collapse to the same file name are rejected.
func (w *Writer) Write(bundles []mapper.Bundle) (Manifest, error) {
	manifest := Manifest{Root: w.dir}
	if len(bundles) == 0 {
		return manifest, nil
	}

	seen := make(map[string]string, len(bundles))
	for _, bundle := range bundles {
		name := amplience.KebabCase(bundle.TypeName)
		if previous, ok := seen[name]; ok {
			return Manifest{}, fmt.Errorf("writer: types %q and %q both write to %q", previous, bundle.TypeName, name)
		}
		seen[name] = bundle.TypeName
	}

	for _, dir := range []string{schemasDir, registrationDir, contentTypesDir} {
		if err := os.MkdirAll(filepath.Join(w.dir, filepath.FromSlash(dir)), 0o755); err != nil {
			return Manifest{}, fmt.Errorf("writer: create %s: %w", dir, err)
		}
	}

	for _, bundle := range bundles {
		name := amplience.KebabCase(bundle.TypeName)
		files := []struct {
			rel string
			doc any
		}{
			{path.Join(schemasDir, name+"-schema.json"), bundle.Schema},
			{path.Join(registrationDir, name+".json"), bundle.ContentTypeSchema},
			{path.Join(contentTypesDir, name+".json"), bundle.ContentType},
		}
		for _, file := range files {
			if err := w.writeJSON(file.rel, file.doc); err != nil {
				return Manifest{}, err
			}
			manifest.Files = append(manifest.Files, file.rel)
		}
	}

	if w.docs {
		if err := w.writeIndex(bundles); err != nil {
			return Manifest{}, err
		}
		manifest.Files = append(manifest.Files, indexFile)
	}

	return manifest, nil
}

func (w *Writer) writeJSON(rel string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("writer: marshal %s: %w", rel, err)
	}
	data = append(data, '\n')

	target := filepath.Join(w.dir, filepath.FromSlash(rel))
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("writer: write %s: %w", rel, err)
	}
	return nil
}

const indexTemplate = `# Generated content types

{% for item in items %}## {{ item.label }}

- Schema ID: ` + "`{{ item.uri }}`" + `
- Schema body: ` + "`{{ item.schema }}`" + `
- Validation level: {{ item.level }}

{% endfor %}`

// writeIndex renders the human-readable summary next to the document tree.
func (w *Writer) writeIndex(bundles []mapper.Bundle) error {
	tmpl, err := pongo2.NewSet("ampgen", pongo2.DefaultLoader).FromString(indexTemplate)
	if err != nil {
		return fmt.Errorf("writer: parse index template: %w", err)
	}

	items := make([]map[string]any, 0, len(bundles))
	for _, bundle := range bundles {
		name := amplience.KebabCase(bundle.TypeName)
		items = append(items, map[string]any{
			"label":  bundle.ContentType.Settings.Label,
			"uri":    bundle.Schema.ID,
			"schema": path.Join(schemasDir, name+"-schema.json"),
			"level":  string(bundle.ContentTypeSchema.ValidationLevel),
		})
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(pongo2.Context{"items": items}, &buf); err != nil {
		return fmt.Errorf("writer: render index: %w", err)
	}

	target := filepath.Join(w.dir, indexFile)
	if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writer: write %s: %w", indexFile, err)
	}
	return nil
}
