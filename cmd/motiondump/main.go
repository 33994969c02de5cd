// Command motiondump charts the placeholder motion of Lottie templates.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/motiondump/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// ExitErrors have already been reported through the output formatter.
		// Anything else comes from cobra's flag and argument parsing.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(cli.ExitCommandError)
		}
		os.Exit(exitErr.Code)
	}
}
