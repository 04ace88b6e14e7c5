package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	pkggraphql "github.com/goliatone/go-ampgen/pkg/graphql"
)

// Loader implements pkggraphql.Loader by delegating to file, fs.FS, or HTTP
// strategies. Construction helpers live in the top-level ampgen package.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ pkggraphql.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkggraphql.LoaderOptions) pkggraphql.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a schema document from the provided source and wraps it in a
// Document.
func (l *Loader) Load(ctx context.Context, src pkggraphql.Source) (pkggraphql.Document, error) {
	if src == nil {
		return pkggraphql.Document{}, errors.New("graphql loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkggraphql.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkggraphql.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case pkggraphql.SourceKindURL:
		if !l.allowHTTP {
			return pkggraphql.Document{}, errors.New("graphql loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("graphql loader: unsupported source kind")
	}
	if err != nil {
		return pkggraphql.Document{}, err
	}

	return pkggraphql.NewDocument(src, data)
}
