// Package config loads conllview settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/conllview/config.toml
// (~/.config/conllview/config.toml when XDG_CONFIG_HOME is unset) unless
// --config names another one. A missing default file is not an error.
//
//	layer = "projective"
//	renderer = "graphviz"
//	output_dir = "~/papers/figures"
//	abort_on_error = false
//	highlight_feature = "highlight"
//
// Command-line flags override values from the file, which override
// [Default].
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/conllview/pkg/depgraph"
	cverrors "github.com/matzehuels/conllview/pkg/errors"
	"github.com/matzehuels/conllview/pkg/render/nodelink"
)

// AppName names the configuration and cache directories.
const AppName = "conllview"

// FileName is the configuration file name inside the config directory.
const FileName = "config.toml"

// Config holds user settings.
type Config struct {
	Layer            string `toml:"layer"`
	Label            string `toml:"label"`
	Renderer         string `toml:"renderer"`
	DotCommand       string `toml:"dot_command"`
	OutputDir        string `toml:"output_dir"`
	AbortOnError     bool   `toml:"abort_on_error"`
	ValidateGraphs   bool   `toml:"validate"`
	Cache            bool   `toml:"cache"`
	HighlightFeature string `toml:"highlight_feature"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Layer:            depgraph.LayerSurface.String(),
		Label:            depgraph.LabelForm.String(),
		Renderer:         nodelink.RendererExec,
		DotCommand:       nodelink.DefaultDotCommand,
		OutputDir:        ".",
		Cache:            true,
		HighlightFeature: depgraph.DefaultMarkFeature,
	}
}

// Dir returns the configuration directory using the XDG convention.
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

// DefaultPath returns the path of the default configuration file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the file at path on top of [Default]. An empty path loads the
// default file and tolerates its absence; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, cverrors.Wrap(cverrors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, cverrors.Wrap(cverrors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, cverrors.New(cverrors.ErrCodeInvalidInput,
			"unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	cfg.OutputDir = expandHome(cfg.OutputDir)
	return cfg, cfg.Validate()
}

// Validate checks that every setting has a supported value.
func (c Config) Validate() error {
	if _, err := depgraph.ParseLayer(c.Layer); err != nil {
		return err
	}
	if _, err := depgraph.ParseLabel(c.Label); err != nil {
		return err
	}
	if _, err := nodelink.NewRenderer(c.Renderer, c.DotCommand); err != nil {
		return err
	}
	if err := cverrors.ValidateCommand(c.DotCommand); err != nil {
		return err
	}
	if err := cverrors.ValidateOutputDir(c.OutputDir); err != nil {
		return err
	}
	if c.HighlightFeature != "" {
		if err := cverrors.ValidateFeatureName(c.HighlightFeature); err != nil {
			return err
		}
	}
	return nil
}

// LayerValue returns the parsed annotation layer.
func (c Config) LayerValue() depgraph.Layer {
	l, _ := depgraph.ParseLayer(c.Layer)
	return l
}

// LabelValue returns the parsed node label column.
func (c Config) LabelValue() depgraph.Label {
	l, _ := depgraph.ParseLabel(c.Label)
	return l
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// String renders the configuration as TOML.
func (c Config) String() string {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return c.plainString()
	}
	return sb.String()
}

// plainConfig has Config's fields but none of its methods.
type plainConfig Config

// plainString formats c field by field without calling String.
func (c Config) plainString() string {
	return fmt.Sprintf("%+v", plainConfig(c))
}
