package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	roc "github.com/jamesainslie/go-roc"
	"github.com/jamesainslie/go-roc/internal/cfg"
)

// Set by -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootOptions holds the persistent flags shared by every subcommand. Flags
// left unset fall back to the config file and environment.
type rootOptions struct {
	dataset    string
	prevalence int
	threshold  float64
	curve      string
	samplesDir string
	catalog    string
	jitter     bool
	seed       uint64
	jsonOutput bool
	debug      bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "roc-cli",
		Short: "Explore ROC and precision-recall curves for toy classifiers",
		Long: `roc-cli generates labeled score samples, classifies them at a threshold,
and reports the confusion matrix, ROC curve and precision-recall curve.

Defaults come from ROC_CONFIG_FILE or ROC_* environment variables; flags
override both.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.dataset, "dataset", "", "Dataset name (see `roc-cli datasets`)")
	pf.IntVar(&opts.prevalence, "prevalence", 0, "Positive share in percent for parameterized datasets")
	pf.Float64Var(&opts.threshold, "threshold", 0, "Decision threshold; scores at or above it are predicted positive")
	pf.StringVar(&opts.curve, "curve", "", "Active curve: roc or pr")
	pf.StringVar(&opts.samplesDir, "samples", "", "Directory of labeled CSV sample files")
	pf.StringVar(&opts.catalog, "catalog", "", "YAML dataset catalog")
	pf.BoolVar(&opts.jitter, "jitter", false, "Perturb reused positive scores")
	pf.Uint64Var(&opts.seed, "seed", 0, "Seed for --jitter")
	pf.BoolVar(&opts.jsonOutput, "json", false, "Write JSON instead of tables")
	pf.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(newDatasetsCommand(opts))
	cmd.AddCommand(newConfusionCommand(opts))
	cmd.AddCommand(newCurveCommand(opts, roc.CurveROC))
	cmd.AddCommand(newCurveCommand(opts, roc.CurvePR))
	cmd.AddCommand(newPlotCommand(opts))

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}

// settings merges explicitly set flags over the loaded configuration.
func (o *rootOptions) settings(cmd *cobra.Command) (cfg.Settings, error) {
	s, err := cfg.Load()
	if err != nil {
		return s, err
	}

	flags := cmd.Flags()
	if flags.Changed("dataset") {
		s.Dataset = o.dataset
	}
	if flags.Changed("prevalence") {
		p := o.prevalence
		s.Prevalence = &p
	}
	if flags.Changed("threshold") {
		s.Threshold = o.threshold
	}
	if flags.Changed("curve") {
		kind, err := roc.ParseCurveKind(o.curve)
		if err != nil {
			return s, err
		}
		s.Curve = kind
	}
	if flags.Changed("samples") {
		s.SamplesDir = o.samplesDir
		if !flags.Changed("catalog") {
			s.CatalogPath = ""
		}
	}
	if flags.Changed("catalog") {
		s.CatalogPath = o.catalog
		if !flags.Changed("samples") {
			s.SamplesDir = ""
		}
	}
	if flags.Changed("jitter") {
		s.Jitter = o.jitter
	}
	if flags.Changed("seed") {
		s.Seed = o.seed
	}
	if o.debug {
		s.LogLevel = slog.LevelDebug
	}

	if err := cfg.Validate(&s); err != nil {
		return s, err
	}
	return s, nil
}

func (o *rootOptions) view(cmd *cobra.Command) (*roc.View, error) {
	s, err := o.settings(cmd)
	if err != nil {
		return nil, err
	}
	viewOpts, err := s.ViewOptions(s.Logger(cmd.ErrOrStderr()))
	if err != nil {
		return nil, err
	}
	return roc.New(viewOpts...)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
