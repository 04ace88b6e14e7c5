// Package config loads the project configuration file that drives a
// generation run: the schema host, registration defaults, and output layout.
// Files may be JSON or YAML; both decode into the same structure.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-ampgen/pkg/amplience"
	"github.com/goliatone/go-ampgen/pkg/mapper"
)

// DefaultFileNames are the file names Discover probes, in order.
var DefaultFileNames = []string{"ampgen.yaml", "ampgen.yml", "ampgen.json"}

// Config is the parsed project configuration.
type Config struct {
	// SchemaHost is the base URI generated type URIs hang off. Required.
	SchemaHost string `json:"schemaHost" yaml:"schemaHost"`

	// ValidationLevel applies to every schema registration. Defaults to
	// CONTENT_TYPE.
	ValidationLevel amplience.ValidationLevel `json:"validationLevel" yaml:"validationLevel"`

	// IconURL overrides the default content type icon.
	IconURL string `json:"iconUrl" yaml:"iconUrl"`

	// Visualizations are registered on every generated content type.
	Visualizations []Visualization `json:"visualizations" yaml:"visualizations"`

	// Types restricts generation to the named object types. Empty means every
	// object type in the schema.
	Types []string `json:"types" yaml:"types"`

	// Output controls where and how documents are written.
	Output Output `json:"output" yaml:"output"`
}

// Visualization configures one preview entry on generated content types.
type Visualization struct {
	Label        string `json:"label" yaml:"label"`
	TemplatedURI string `json:"templatedUri" yaml:"templatedUri"`
	Default      bool   `json:"default" yaml:"default"`
}

// Output controls the on-disk layout of a generation run.
type Output struct {
	// Dir is the directory the document tree is written under. Defaults to
	// "amplience".
	Dir string `json:"dir" yaml:"dir"`

	// Docs enables the generated summary index alongside the documents.
	Docs bool `json:"docs" yaml:"docs"`
}

// Load reads and parses the configuration file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Discover probes dir for a configuration file using DefaultFileNames and
// returns the first match.
func Discover(dir string) (string, error) {
	for _, name := range DefaultFileNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("config: no configuration file found in %s", dir)
}

// Parse decodes and validates a configuration payload. The source name only
// feeds error messages.
func Parse(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("config: file %s is empty", source)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: invalid JSON or YAML", source)
		}
	}

	if err := normalise(&cfg, source); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BuilderOptions maps the configuration onto mapper builder options.
func (c Config) BuilderOptions() []mapper.BuilderOption {
	options := []mapper.BuilderOption{
		mapper.WithHost(c.SchemaHost),
		mapper.WithValidationLevel(c.ValidationLevel),
	}
	if c.IconURL != "" {
		options = append(options, mapper.WithIcon(c.IconURL))
	}
	for _, viz := range c.Visualizations {
		options = append(options, mapper.WithVisualizations(amplience.Visualization{
			Label:        viz.Label,
			TemplatedURI: viz.TemplatedURI,
			Default:      viz.Default,
		}))
	}
	return options
}

func normalise(cfg *Config, source string) error {
	cfg.SchemaHost = strings.TrimSuffix(strings.TrimSpace(cfg.SchemaHost), "/")
	if cfg.SchemaHost == "" {
		return fmt.Errorf("config: file %s: schemaHost is required", source)
	}

	if cfg.ValidationLevel == "" {
		cfg.ValidationLevel = amplience.ValidationLevelContentType
	} else {
		level, err := amplience.ParseValidationLevel(string(cfg.ValidationLevel))
		if err != nil {
			return fmt.Errorf("config: file %s: %w", source, err)
		}
		cfg.ValidationLevel = level
	}

	for i, viz := range cfg.Visualizations {
		if strings.TrimSpace(viz.Label) == "" {
			return fmt.Errorf("config: file %s: visualization %d is missing a label", source, i)
		}
		if strings.TrimSpace(viz.TemplatedURI) == "" {
			return fmt.Errorf("config: file %s: visualization %q is missing a templatedUri", source, viz.Label)
		}
	}

	for i, name := range cfg.Types {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return fmt.Errorf("config: file %s: types entry %d is empty", source, i)
		}
		cfg.Types[i] = trimmed
	}

	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "amplience"
	}

	return nil
}
