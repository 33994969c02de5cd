// Package report writes the HTML page that collects motion plots.
//
// The page is written incrementally as input files are processed. A run that
// stops early leaves a readable, unterminated document behind.
package report

import (
	"fmt"
	"html"
	"io"
	"os"
)

// DefaultName is the report file name used when none is configured.
const DefaultName = "motion.html"

const (
	header = "<!DOCTYPE html>\n<html>\n<body>\n"
	footer = "</body>\n</html>\n"
)

// Writer appends sections to an HTML report.
type Writer struct {
	w      io.Writer
	closer io.Closer
	done   bool
}

// Create creates or truncates the report at path and writes the document
// header.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	w, err := newWriter(f, f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

// NewWriter writes the document header to w and returns a Writer over it.
// Close and Abort do not close w.
func NewWriter(w io.Writer) (*Writer, error) {
	return newWriter(w, nil)
}

func newWriter(w io.Writer, closer io.Closer) (*Writer, error) {
	if _, err := io.WriteString(w, header); err != nil {
		return nil, fmt.Errorf("write report header: %w", err)
	}
	return &Writer{w: w, closer: closer}, nil
}

// Section starts the part of the report for one input file.
func (w *Writer) Section(name string) error {
	if _, err := fmt.Fprintf(w.w, "<h3>%s</h3>\n", html.EscapeString(name)); err != nil {
		return fmt.Errorf("write section %q: %w", name, err)
	}
	return nil
}

// Embed writes svg into the report verbatim.
func (w *Writer) Embed(svg []byte) error {
	if _, err := w.w.Write(svg); err != nil {
		return fmt.Errorf("embed svg: %w", err)
	}
	if _, err := io.WriteString(w.w, "\n"); err != nil {
		return fmt.Errorf("embed svg: %w", err)
	}
	return nil
}

// EmbedFile reads the SVG at path and embeds it.
func (w *Writer) EmbedFile(path string) error {
	svg, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read svg: %w", err)
	}
	return w.Embed(svg)
}

// Close terminates the document and releases the underlying file.
func (w *Writer) Close() error {
	if w.done {
		return nil
	}
	w.done = true

	_, err := io.WriteString(w.w, footer)
	if err != nil {
		err = fmt.Errorf("write report footer: %w", err)
	}
	if cerr := w.closeUnderlying(); err == nil {
		err = cerr
	}
	return err
}

// Abort releases the underlying file without terminating the document.
func (w *Writer) Abort() error {
	if w.done {
		return nil
	}
	w.done = true
	return w.closeUnderlying()
}

func (w *Writer) closeUnderlying() error {
	if w.closer == nil {
		return nil
	}
	if err := w.closer.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	return nil
}
