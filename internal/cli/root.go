package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/motiondump/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// ConfigPath is an optional YAML or CUE config file.
	ConfigPath string

	// Overrides holds values set by flags; non-zero fields win over the config file.
	Overrides config.Config

	// RunIDGenerator allows overriding archive run IDs (for testing).
	// If nil, defaults to store.NewRunID.
	RunIDGenerator func() string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command. Run with file arguments, it dumps
// the placeholder motion of each file into the report.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "motiondump [flags] <lottie.json>...",
		Short: "motiondump - chart placeholder motion in Lottie templates",
		Long: `Dump the animated transform of a template's placeholder layer.

For every Lottie file, motiondump finds the layer named "placeholder", reads the
keyframes of its position, scale and rotation, writes one scatter plot per
animated field as <name>.<field>.svg and collects the plots into motion.html.

Example:
  motiondump resources/templates/ScaleRotate.json
  motiondump --db motion.db --out-dir plots templates/*.json`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				// The formatter cannot be trusted yet, so report in plain text.
				msg := fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
				fmt.Fprintf(cmd.ErrOrStderr(), "Error [%s]: %s\n", ErrCodeConfig, msg)
				return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", ErrCodeConfig, msg))
			}
			configureLogging(cmd, opts.Verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(opts, args, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Dump flags
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (.yaml, .yml or .cue)")
	cmd.Flags().StringVar(&opts.Overrides.Report, "report", "", "HTML report path (default \"motion.html\")")
	cmd.Flags().StringVar(&opts.Overrides.OutDir, "out-dir", "", "directory for SVG plots (default \".\")")
	cmd.Flags().StringVar(&opts.Overrides.Placeholder, "placeholder", "", "layer name to chart (default \"placeholder\")")
	cmd.Flags().StringVar(&opts.Overrides.Database, "db", "", "optional SQLite keyframe archive")
	cmd.Flags().Float64Var(&opts.Overrides.Plot.Width, "plot-width", 0, "plot width in inches")
	cmd.Flags().Float64Var(&opts.Overrides.Plot.Height, "plot-height", 0, "plot height in inches")

	// Add subcommands
	cmd.AddCommand(NewDemoCommand(opts))

	return cmd
}

// configureLogging installs the default slog logger on the command's stderr.
// User-facing output goes through OutputFormatter, not slog.
func configureLogging(cmd *cobra.Command, verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// resolveConfig layers defaults, the optional config file and flag overrides.
func (o *RootOptions) resolveConfig() (config.Config, error) {
	cfg := config.Default()
	if o.ConfigPath != "" {
		fileCfg, err := config.Load(o.ConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.Merge(fileCfg)
	}
	cfg = cfg.Merge(o.Overrides)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
