package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/conllview/pkg/config"
	"github.com/matzehuels/conllview/pkg/depgraph"
	"github.com/matzehuels/conllview/pkg/render/nodelink"
)

// commonFlags are shared by the commands that load a treebank.
// Values only override the config file when the flag was set explicitly.
type commonFlags struct {
	layer        string
	label        string
	renderer     string
	dotCommand   string
	highlight    string
	outputDir    string
	abortOnError bool
	validate     bool
	noCache      bool
}

func (f *commonFlags) register(cmd *cobra.Command) {
	d := config.Default()
	fl := cmd.Flags()
	fl.StringVarP(&f.layer, "layer", "l", d.Layer, "annotation layer: surface (headrel), projective (pheadrel)")
	fl.StringVar(&f.label, "label", d.Label, "node text: form, lemma, cpos, pos")
	fl.StringVar(&f.renderer, "renderer", d.Renderer, "SVG renderer: exec (dot binary), graphviz (built in)")
	fl.StringVar(&f.dotCommand, "dot-command", d.DotCommand, "Graphviz binary used by the exec renderer")
	fl.StringVar(&f.highlight, "highlight-feature", d.HighlightFeature, "token feature that marks a node")
	fl.BoolVar(&f.abortOnError, "abort-on-error", false, "stop at the first sentence that cannot be read")
	fl.BoolVar(&f.validate, "validate", false, "reject sentences whose heads form a cycle")
	fl.BoolVar(&f.noCache, "no-cache", false, "disable the SVG render cache")

	_ = cmd.RegisterFlagCompletionFunc("layer", fixedCompletion(depgraph.Layers()...))
	_ = cmd.RegisterFlagCompletionFunc("label", fixedCompletion(depgraph.Labels()...))
	_ = cmd.RegisterFlagCompletionFunc("renderer", fixedCompletion(nodelink.Renderers()...))
}

// registerOutputDir adds --output-dir for commands that write files.
func (f *commonFlags) registerOutputDir(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", config.Default().OutputDir, "directory for s<n>.<format> files")
}

func (f *commonFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("layer") {
		cfg.Layer = f.layer
	}
	if fl.Changed("label") {
		cfg.Label = f.label
	}
	if fl.Changed("renderer") {
		cfg.Renderer = f.renderer
	}
	if fl.Changed("dot-command") {
		cfg.DotCommand = f.dotCommand
	}
	if fl.Changed("highlight-feature") {
		cfg.HighlightFeature = f.highlight
	}
	if fl.Changed("abort-on-error") {
		cfg.AbortOnError = f.abortOnError
	}
	if fl.Changed("validate") {
		cfg.ValidateGraphs = f.validate
	}
	if fl.Changed("no-cache") {
		cfg.Cache = !f.noCache
	}
	if fl.Lookup("output-dir") != nil && fl.Changed("output-dir") {
		cfg.OutputDir = f.outputDir
	}
}

func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
