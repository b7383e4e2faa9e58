package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/conllview/pkg/depgraph"
	cverrors "github.com/matzehuels/conllview/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "surface", cfg.Layer)
	assert.Equal(t, "exec", cfg.Renderer)
	assert.Equal(t, "dot", cfg.DotCommand)
	assert.True(t, cfg.Cache)
	assert.False(t, cfg.AbortOnError)
	assert.Equal(t, depgraph.LayerSurface, cfg.LayerValue())
	assert.Equal(t, depgraph.LabelForm, cfg.LabelValue())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
layer = "pheadrel"
label = "lemma"
renderer = "graphviz"
output_dir = "/tmp/figures"
abort_on_error = true
highlight_feature = "focus"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, depgraph.LayerProjective, cfg.LayerValue())
	assert.Equal(t, depgraph.LabelLemma, cfg.LabelValue())
	assert.Equal(t, "graphviz", cfg.Renderer)
	assert.Equal(t, "/tmp/figures", cfg.OutputDir)
	assert.True(t, cfg.AbortOnError)
	assert.Equal(t, "focus", cfg.HighlightFeature)
	assert.Equal(t, "dot", cfg.DotCommand, "unset keys keep their defaults")
	assert.True(t, cfg.Cache)
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_DefaultFileFromXDG(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, AppName)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`validate = true`), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.ValidateGraphs)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, cverrors.Is(err, cverrors.ErrCodeFileNotFound))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    cverrors.Code
	}{
		{"syntax", `layer = `, cverrors.ErrCodeInvalidInput},
		{"unknown key", `colour = "red"`, cverrors.ErrCodeInvalidInput},
		{"bad layer", `layer = "deep"`, cverrors.ErrCodeInvalidLayer},
		{"bad label", `label = "deprel"`, cverrors.ErrCodeInvalidLabel},
		{"bad renderer", `renderer = "cairo"`, cverrors.ErrCodeInvalidRenderer},
		{"dot with args", `dot_command = "dot -Tsvg"`, cverrors.ErrCodeInvalidRenderer},
		{"empty output dir", `output_dir = ""`, cverrors.ErrCodeInvalidPath},
		{"bad feature", `highlight_feature = "a=b"`, cverrors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Equal(t, tt.code, cverrors.GetCode(err), "error: %v", err)
		})
	}
}

func TestLoad_EmptyHighlightDisablesMarking(t *testing.T) {
	cfg, err := Load(writeConfig(t, `highlight_feature = ""`))
	require.NoError(t, err)
	assert.Empty(t, cfg.HighlightFeature)
}

func TestLoad_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	cfg, err := Load(writeConfig(t, `output_dir = "~/figs"`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "figs"), cfg.OutputDir)
}

func TestDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")
	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/custom-config", AppName), dir)
}

func TestString(t *testing.T) {
	s := Default().String()
	assert.Contains(t, s, `layer = "surface"`)
	assert.Contains(t, s, `cache = true`)
}

func TestPlainString(t *testing.T) {
	s := Default().plainString()
	assert.Contains(t, s, "Layer:surface")
	assert.Contains(t, s, "Cache:true")
	assert.NotContains(t, s, `layer = `)
}
