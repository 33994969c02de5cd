package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/roach88/motiondump/internal/report"
)

// DemoResult is the JSON payload of the demo command.
type DemoResult struct {
	Page       string `json:"page"`
	Animations int    `json:"animations"`
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo <dir>",
		Short: "Write a page that plays every Lottie file in a directory",
		Long: `Write demo.html into the given directory.

The page loads the lottie-player web component and plays each *.json file of
the directory side by side, sorted by name, looping.

Example:
  motiondump demo resources/templates`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runDemo(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	path, count, err := report.WriteDemo(dir)
	if err != nil {
		code := ErrCodeWriteFailed
		if errors.Is(err, fs.ErrNotExist) {
			code = ErrCodeNotFound
		}
		return outputCommandError(formatter, code, "cannot write demo page", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(DemoResult{Page: path, Animations: count})
	}
	return formatter.Success(fmt.Sprintf("Wrote %s with %d animation(s)", path, count))
}
