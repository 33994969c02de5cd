package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/motiondump/internal/chart"
	"github.com/roach88/motiondump/internal/lottie"
	"github.com/roach88/motiondump/internal/motion"
	"github.com/roach88/motiondump/internal/report"
	"github.com/roach88/motiondump/internal/store"
)

// DumpResult is the JSON payload of a successful dump.
type DumpResult struct {
	Report string              `json:"report"`
	Files  []motion.FileResult `json:"files"`
}

func runDump(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	cfg, err := opts.resolveConfig()
	if err != nil {
		return outputCommandError(formatter, ErrCodeConfig, "invalid configuration", err)
	}
	slog.Debug("config resolved",
		"report", cfg.Report,
		"out_dir", cfg.OutDir,
		"placeholder", cfg.Placeholder,
		"db", cfg.Database)

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return outputCommandError(formatter, ErrCodeWriteFailed, "cannot create output directory", err)
	}

	rep, err := report.Create(cfg.Report)
	if err != nil {
		return outputCommandError(formatter, ErrCodeReport, "cannot create report", err)
	}

	dumper := &motion.Dumper{
		Renderer:    chart.NewSVGRenderer(cfg.Plot.Width, cfg.Plot.Height),
		Report:      rep,
		OutDir:      cfg.OutDir,
		Placeholder: cfg.Placeholder,
		Out:         formatter.DiagnosticWriter(),
	}

	// Setup signal handling so an interrupt stops at the next file boundary.
	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan) // Prevent signal handler leak

	go func() {
		select {
		case sig := <-sigChan:
			slog.Info("received signal, stopping after current file", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if cfg.Database != "" {
		st, err := store.Open(cfg.Database)
		if err != nil {
			_ = rep.Abort()
			return outputCommandError(formatter, ErrCodeDatabase, "cannot open database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}()

		runIDGen := opts.RunIDGenerator
		if runIDGen == nil {
			runIDGen = store.NewRunID
		}
		runID := runIDGen()
		if err := st.BeginRun(ctx, runID, cfg.Report); err != nil {
			_ = rep.Abort()
			return outputCommandError(formatter, ErrCodeDatabase, "cannot record run", err)
		}
		slog.Info("archiving keyframes", "db", cfg.Database, "run_id", runID)
		dumper.Archive = st
		dumper.RunID = runID
	}

	results, err := dumper.Run(ctx, paths)
	if err != nil {
		if abortErr := rep.Abort(); abortErr != nil {
			slog.Error("error closing report", "error", abortErr)
		}
		code := classifyRunError(err)
		_ = formatter.Error(code, err.Error(), nil)
		return WrapExitError(ExitFailure, code, err)
	}

	if err := rep.Close(); err != nil {
		_ = formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, ErrCodeWriteFailed, err)
	}
	formatter.VerboseLog("Wrote %s (%d file(s))", cfg.Report, len(results))

	if formatter.Format == "json" {
		return json.NewEncoder(formatter.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   DumpResult{Report: cfg.Report, Files: results},
			RunID:  dumper.RunID,
		})
	}
	return nil
}

// classifyRunError maps a fatal run error to its error code.
func classifyRunError(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return ErrCodeCancelled
	case errors.Is(err, lottie.ErrMalformedKeyframe),
		errors.Is(err, chart.ErrComponentMismatch),
		errors.Is(err, chart.ErrPaletteExhausted):
		return ErrCodeKeyframes
	case errors.Is(err, motion.ErrUnparsable):
		return ErrCodeParse
	case errors.Is(err, fs.ErrNotExist):
		return ErrCodeNotFound
	default:
		return ErrCodeGeneric
	}
}

// outputCommandError reports an error that prevented the run from starting.
func outputCommandError(formatter *OutputFormatter, code, message string, err error) error {
	_ = formatter.Error(code, fmt.Sprintf("%s: %v", message, err), nil)
	return WrapExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message), err)
}
