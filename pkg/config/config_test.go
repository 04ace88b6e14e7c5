package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-ampgen/pkg/amplience"
	"github.com/goliatone/go-ampgen/pkg/config"
	pkggraphql "github.com/goliatone/go-ampgen/pkg/graphql"
	"github.com/goliatone/go-ampgen/pkg/mapper"
)

const yamlConfig = `
schemaHost: https://schema.example.com
validationLevel: SLOT
iconUrl: https://cdn.example.com/icon.png
visualizations:
  - label: Preview
    templatedUri: https://preview.example.com/{{content.sys.id}}
    default: true
types:
  - BlogPost
  - Author
output:
  dir: generated
  docs: true
`

const jsonConfig = `{
  "schemaHost": "https://schema.example.com",
  "output": {"dir": "out"}
}`

func TestParseYAML(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(yamlConfig), "ampgen.yaml")
	require.NoError(t, err)

	assert.Equal(t, "https://schema.example.com", cfg.SchemaHost)
	assert.Equal(t, amplience.ValidationLevelSlot, cfg.ValidationLevel)
	assert.Equal(t, "https://cdn.example.com/icon.png", cfg.IconURL)
	assert.Equal(t, []string{"BlogPost", "Author"}, cfg.Types)
	assert.Equal(t, "generated", cfg.Output.Dir)
	assert.True(t, cfg.Output.Docs)

	require.Len(t, cfg.Visualizations, 1)
	assert.Equal(t, "Preview", cfg.Visualizations[0].Label)
	assert.True(t, cfg.Visualizations[0].Default)
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(jsonConfig), "ampgen.json")
	require.NoError(t, err)

	assert.Equal(t, "https://schema.example.com", cfg.SchemaHost)
	assert.Equal(t, "out", cfg.Output.Dir)
}

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(`schemaHost: https://schema.example.com`), "ampgen.yaml")
	require.NoError(t, err)

	assert.Equal(t, amplience.ValidationLevelContentType, cfg.ValidationLevel)
	assert.Equal(t, "amplience", cfg.Output.Dir)
	assert.Empty(t, cfg.Types)
	assert.False(t, cfg.Output.Docs)
}

func TestParseNormalisesHost(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(`schemaHost: " https://schema.example.com/ "`), "ampgen.yaml")
	require.NoError(t, err)
	assert.Equal(t, "https://schema.example.com", cfg.SchemaHost)
}

func TestParseRejectsMissingHost(t *testing.T) {
	t.Parallel()

	_, err := config.Parse([]byte(`output: {dir: out}`), "ampgen.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schemaHost")
}

func TestParseRejectsUnknownValidationLevel(t *testing.T) {
	t.Parallel()

	_, err := config.Parse([]byte("schemaHost: https://h\nvalidationLevel: LOOSE"), "ampgen.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOOSE")
}

func TestParseRejectsIncompleteVisualization(t *testing.T) {
	t.Parallel()

	payload := "schemaHost: https://h\nvisualizations:\n  - templatedUri: https://preview.example.com"
	_, err := config.Parse([]byte(payload), "ampgen.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "label")
}

func TestParseRejectsEmptyPayload(t *testing.T) {
	t.Parallel()

	_, err := config.Parse([]byte("  \n\t"), "ampgen.yaml")
	require.Error(t, err)
}

func TestParseRejectsMalformedPayload(t *testing.T) {
	t.Parallel()

	_, err := config.Parse([]byte("{schemaHost: [}"), "ampgen.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON or YAML")
}

func TestLoadFromDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "ampgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlConfig), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://schema.example.com", cfg.SchemaHost)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ampgen.json"), []byte(jsonConfig), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ampgen.yaml"), []byte(yamlConfig), 0o644))

	path, err := config.Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ampgen.yaml"), path, "yaml probes before json")
}

func TestDiscoverEmpty(t *testing.T) {
	t.Parallel()

	_, err := config.Discover(t.TempDir())
	require.Error(t, err)
}

func TestBuilderOptions(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(yamlConfig), "ampgen.yaml")
	require.NoError(t, err)

	builder := mapper.NewBuilder(cfg.BuilderOptions()...)
	def := pkggraphql.TypeDefinition{Name: "BlogPost", Kind: pkggraphql.KindObject}

	registration := builder.ContentTypeSchema(def)
	assert.Equal(t, amplience.ValidationLevelSlot, registration.ValidationLevel)

	contentType := builder.ContentType(def)
	require.Len(t, contentType.Settings.Visualizations, 1)
	assert.Equal(t, "Preview", contentType.Settings.Visualizations[0].Label)
	assert.Equal(t, "https://cdn.example.com/icon.png", contentType.Settings.Icons[0].URL)
}
