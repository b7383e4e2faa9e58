package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/conllview/pkg/buildinfo"
	"github.com/matzehuels/conllview/pkg/cache"
	"github.com/matzehuels/conllview/pkg/config"
	"github.com/matzehuels/conllview/pkg/errors"
	"github.com/matzehuels/conllview/pkg/observability"
	"github.com/matzehuels/conllview/pkg/render/nodelink"
	"github.com/matzehuels/conllview/pkg/treebank"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger  *log.Logger
	Metrics *observability.Metrics

	// Bound to persistent flags.
	configPath  string
	metricsFile string
}

// New creates a new CLI instance with a default logger and registers it,
// together with a metrics collector, as the observability hooks.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger:  newLogger(w, level),
		Metrics: observability.NewMetrics(appName),
	}
	registerHooks(c.Logger, c.Metrics)
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "conllview visualizes dependency treebanks",
		Long: `conllview reads CoNLL-X treebanks and shows each sentence as a dependency
graph. Graphs can be browsed interactively and exported as Graphviz DOT,
LaTeX tikz-dependency, SVG, PNG, PDF or JSON.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}
	root.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if c.metricsFile == "" {
			return nil
		}
		if err := c.Metrics.WriteTextfile(c.metricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		return nil
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/conllview/config.toml)")
	root.PersistentFlags().StringVar(&c.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on success")

	root.AddCommand(c.viewCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Factories
// =============================================================================

// loadConfig reads the config file and applies explicitly set flags.
func (c *CLI) loadConfig(cmd *cobra.Command, flags *commonFlags) (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return cfg, err
	}
	if flags != nil {
		flags.apply(cmd, &cfg)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	c.Logger.Debug("configuration", "layer", cfg.Layer, "renderer", cfg.Renderer, "cache", cfg.Cache)
	return cfg, nil
}

// newLoader creates a treebank loader for cfg.
func newLoader(cfg config.Config, logger *log.Logger) *treebank.Loader {
	return treebank.NewLoader(treebank.Options{
		Layer:        cfg.LayerValue(),
		Label:        cfg.LabelValue(),
		MarkFeature:  cfg.HighlightFeature,
		Validate:     cfg.ValidateGraphs,
		AbortOnError: cfg.AbortOnError,
		Logger:       logger,
	})
}

// newRenderer creates the configured SVG renderer, behind the render cache
// unless caching is disabled.
func newRenderer(cfg config.Config) (nodelink.Renderer, cache.Cache, error) {
	r, err := nodelink.NewRenderer(cfg.Renderer, cfg.DotCommand)
	if err != nil {
		return nil, nil, err
	}
	c, err := newCache(!cfg.Cache)
	if err != nil {
		return nil, nil, err
	}
	return nodelink.NewCachedRenderer(r, c, nodelink.DefaultCacheTTL), c, nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Input
// =============================================================================

// stdinName labels input read from stdin.
const stdinName = "stdin"

// openInput opens the treebank at path, or stdin for "" and "-".
func openInput(path string) (io.ReadCloser, string, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), stdinName, nil
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", path, err)
	}
	return f, filepath.Base(path), nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/conllview/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
