// Package motion dumps the placeholder motion of Lottie templates into an
// HTML report.
//
// For every input file the Dumper finds the placeholder layer, reads the
// keyframes of its transform, charts each animated field to an SVG file and
// embeds those SVGs into the report. Problems with one file or one field are
// reported and skipped; anything that makes the keyframes unreadable stops the
// whole run.
package motion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/motiondump/internal/chart"
	"github.com/roach88/motiondump/internal/jsonv"
	"github.com/roach88/motiondump/internal/lottie"
	"github.com/roach88/motiondump/internal/report"
	"github.com/roach88/motiondump/internal/store"
)

// ErrUnparsable marks input files that are not valid JSON.
var ErrUnparsable = errors.New("not valid JSON")

// Archive records dumped keyframes. *store.Store implements it.
type Archive interface {
	WriteDump(ctx context.Context, d store.Dump) error
}

// Dumper runs the dump pipeline over input files.
type Dumper struct {
	Renderer    chart.Renderer
	Report      *report.Writer
	OutDir      string    // where SVG files are written
	Placeholder string    // layer name to look for
	Out         io.Writer // per-item diagnostics, one line each

	// Archive is optional; when set, every dumped field is recorded under RunID.
	Archive Archive
	RunID   string
}

// FileResult summarizes what happened to one input file.
type FileResult struct {
	Path    string        `json:"path"`
	Skipped string        `json:"skipped,omitempty"`
	Fields  []FieldResult `json:"fields,omitempty"`
}

// FieldResult summarizes one transform field of one file.
type FieldResult struct {
	Field     string `json:"field"`
	Skipped   string `json:"skipped,omitempty"`
	Keyframes int    `json:"keyframes,omitempty"`
	SVG       string `json:"svg,omitempty"`
}

// Run dumps every path in order. It stops at the first fatal error and
// returns the results gathered so far along with it.
func (d *Dumper) Run(ctx context.Context, paths []string) ([]FileResult, error) {
	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := d.DumpFile(ctx, path)
		results = append(results, res)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// DumpFile processes a single input file.
func (d *Dumper) DumpFile(ctx context.Context, path string) (FileResult, error) {
	res := FileResult{Path: path}

	if filepath.Ext(path) != ".json" {
		d.notify("%s doesn't look like a Lottie?", path)
		res.Skipped = "not a .json file"
		return res, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := jsonv.Parse(data)
	if err != nil {
		return res, fmt.Errorf("%w: %s: %w", ErrUnparsable, path, err)
	}
	slog.Debug("parsed lottie", "path", path, "bytes", len(data))

	placeholder, err := lottie.FindPlaceholder(doc, d.Placeholder)
	if err != nil {
		d.notify("%s has no placeholder :(", path)
		res.Skipped = err.Error()
		return res, nil
	}
	transform, err := lottie.TransformOf(placeholder)
	if err != nil {
		d.notify("The last item is not a transform!")
		res.Skipped = err.Error()
		return res, nil
	}

	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if err := d.Report.Section(name); err != nil {
		return res, err
	}

	var svgs []string
	for _, field := range lottie.TransformFields {
		fr, err := d.dumpField(ctx, name, stem, transform, field)
		if err != nil {
			return res, fmt.Errorf("%s: %w", path, err)
		}
		res.Fields = append(res.Fields, fr)
		if fr.SVG != "" {
			svgs = append(svgs, fr.SVG)
		}
	}

	for _, svg := range svgs {
		if err := d.Report.EmbedFile(svg); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (d *Dumper) dumpField(ctx context.Context, name, stem string, transform *jsonv.Object, field lottie.Field) (FieldResult, error) {
	fr := FieldResult{Field: field.Name}

	kfs, err := lottie.Keyframes(transform, field)
	if err != nil {
		msg, ok := skipMessage(field, err)
		if !ok {
			return fr, err
		}
		d.notify("%s", msg)
		fr.Skipped = msg
		return fr, nil
	}

	series, err := chart.BuildSeries(kfs, field.Components)
	if err != nil {
		return fr, err
	}

	svgPath := filepath.Join(d.OutDir, stem+"."+field.Name+".svg")
	if err := d.writeSVG(svgPath, field.Name, series); err != nil {
		return fr, err
	}
	d.notify("%s is animated, %d keyframes dumped to %s", field.Name, len(kfs), svgPath)
	slog.Debug("field dumped", "file", name, "field", field.Name, "keyframes", len(kfs), "svg", svgPath)

	if d.Archive != nil {
		err := d.Archive.WriteDump(ctx, store.Dump{
			RunID:     d.RunID,
			File:      name,
			Field:     field.Name,
			SVGPath:   svgPath,
			Transform: transform,
			Keyframes: kfs,
		})
		if err != nil {
			return fr, err
		}
	}

	fr.Keyframes = len(kfs)
	fr.SVG = svgPath
	return fr, nil
}

func (d *Dumper) writeSVG(path, title string, series []chart.Series) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create svg: %w", err)
	}
	if err := d.Renderer.Render(f, title, series); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close svg: %w", err)
	}
	return nil
}

// skipMessage returns the diagnostic for a field-level skip condition.
func skipMessage(field lottie.Field, err error) (string, bool) {
	switch {
	case errors.Is(err, lottie.ErrFieldMissing):
		return fmt.Sprintf("No %s at all?!", field.Name), true
	case errors.Is(err, lottie.ErrNotAnimated):
		return fmt.Sprintf("%s is not animated", field.Name), true
	case errors.Is(err, lottie.ErrNoKeyframes):
		return fmt.Sprintf("%s IS animated but has no keyframes. Very suspicious!", field.Name), true
	default:
		return "", false
	}
}

func (d *Dumper) notify(format string, args ...any) {
	if d.Out == nil {
		return
	}
	fmt.Fprintf(d.Out, format+"\n", args...)
}
