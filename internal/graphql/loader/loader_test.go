package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	pkggraphql "github.com/goliatone/go-ampgen/pkg/graphql"
)

const fixtureSDL = "type Article { title: String }\n"

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "schema.graphql")
	if err := os.WriteFile(path, []byte(fixtureSDL), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	l := New(pkggraphql.NewLoaderOptions())
	doc, err := l.Load(context.Background(), pkggraphql.SourceFromFile(path))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if string(doc.Raw()) != fixtureSDL {
		t.Fatalf("loaded payload = %q, want %q", doc.Raw(), fixtureSDL)
	}
}

func TestLoadFromFS(t *testing.T) {
	t.Parallel()

	files := fstest.MapFS{
		"schemas/site.graphql": &fstest.MapFile{Data: []byte(fixtureSDL)},
	}

	l := New(pkggraphql.NewLoaderOptions(pkggraphql.WithFileSystem(files)))
	doc, err := l.Load(context.Background(), pkggraphql.SourceFromFS("schemas/site.graphql"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if string(doc.Raw()) != fixtureSDL {
		t.Fatalf("loaded payload = %q, want %q", doc.Raw(), fixtureSDL)
	}
}

func TestLoadFromFSWithoutFilesystem(t *testing.T) {
	t.Parallel()

	l := New(pkggraphql.NewLoaderOptions())
	if _, err := l.Load(context.Background(), pkggraphql.SourceFromFS("schema.graphql")); err == nil {
		t.Fatalf("expected error when filesystem is not configured")
	}
}

func TestLoadHTTPDisabledByDefault(t *testing.T) {
	t.Parallel()

	l := New(pkggraphql.NewLoaderOptions())
	_, err := l.Load(context.Background(), pkggraphql.SourceFromURL("https://example.com/schema.graphql"))
	if err == nil {
		t.Fatalf("expected http-disabled error")
	}
}

func TestLoadHTTP(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(fixtureSDL))
	}))
	defer server.Close()

	l := New(pkggraphql.NewLoaderOptions(pkggraphql.WithHTTPClient(server.Client())))
	doc, err := l.Load(context.Background(), pkggraphql.SourceFromURL(server.URL))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if string(doc.Raw()) != fixtureSDL {
		t.Fatalf("loaded payload = %q, want %q", doc.Raw(), fixtureSDL)
	}
}

func TestLoadHTTPRejectsErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "missing", http.StatusNotFound)
	}))
	defer server.Close()

	l := New(pkggraphql.NewLoaderOptions(pkggraphql.WithHTTPClient(server.Client())))
	if _, err := l.Load(context.Background(), pkggraphql.SourceFromURL(server.URL)); err == nil {
		t.Fatalf("expected error for 404 response")
	}
}

func TestLoadNilSource(t *testing.T) {
	t.Parallel()

	l := New(pkggraphql.NewLoaderOptions())
	if _, err := l.Load(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil source")
	}
}
