// Package config loads motiondump settings.
//
// Settings come from three layers, later layers winning: built-in defaults,
// an optional file (YAML or CUE), then command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/motiondump/internal/chart"
	"github.com/roach88/motiondump/internal/lottie"
	"github.com/roach88/motiondump/internal/report"
)

// ErrUnsupportedFormat is returned for config files that are neither YAML nor CUE.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config holds the settings for one run.
type Config struct {
	// Report is the HTML report path.
	Report string `yaml:"report,omitempty" json:"report,omitempty"`

	// OutDir receives the generated SVG files.
	OutDir string `yaml:"out_dir,omitempty" json:"out_dir,omitempty"`

	// Placeholder is the layer name searched for in each document.
	Placeholder string `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`

	// Database is an optional SQLite keyframe archive. Empty disables it.
	Database string `yaml:"database,omitempty" json:"database,omitempty"`

	Plot PlotConfig `yaml:"plot,omitempty" json:"plot,omitempty"`
}

// PlotConfig sizes each chart, in inches.
type PlotConfig struct {
	Width  float64 `yaml:"width,omitempty" json:"width,omitempty"`
	Height float64 `yaml:"height,omitempty" json:"height,omitempty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Report:      report.DefaultName,
		OutDir:      ".",
		Placeholder: lottie.DefaultPlaceholder,
		Plot: PlotConfig{
			Width:  chart.DefaultWidth,
			Height: chart.DefaultHeight,
		},
	}
}

// Merge returns c with every non-zero field of o applied on top.
func (c Config) Merge(o Config) Config {
	if o.Report != "" {
		c.Report = o.Report
	}
	if o.OutDir != "" {
		c.OutDir = o.OutDir
	}
	if o.Placeholder != "" {
		c.Placeholder = o.Placeholder
	}
	if o.Database != "" {
		c.Database = o.Database
	}
	if o.Plot.Width != 0 {
		c.Plot.Width = o.Plot.Width
	}
	if o.Plot.Height != 0 {
		c.Plot.Height = o.Plot.Height
	}
	return c
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.Report == "":
		return errors.New("report path is empty")
	case c.OutDir == "":
		return errors.New("output directory is empty")
	case c.Placeholder == "":
		return errors.New("placeholder name is empty")
	case c.Plot.Width <= 0 || c.Plot.Height <= 0:
		return fmt.Errorf("plot size %gx%g must be positive", c.Plot.Width, c.Plot.Height)
	}
	return nil
}

// Load reads a config file. The format is chosen by extension: .yaml and
// .yml are YAML, .cue is CUE. Fields absent from the file are left zero so the
// result can be merged over Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		return decodeYAML(data)
	case ".cue":
		return decodeCUE(path, data)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func decodeYAML(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&cfg); err != nil {
		// An empty document is a valid, empty config.
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return cfg, nil
}

var knownCUEFields = map[string]bool{
	"report":      true,
	"out_dir":     true,
	"placeholder": true,
	"database":    true,
	"plot":        true,
}

func decodeCUE(path string, data []byte) (Config, error) {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return Config{}, fmt.Errorf("failed to compile CUE: %w", err)
	}
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return Config{}, fmt.Errorf("invalid CUE config: %w", err)
	}

	iter, err := value.Fields()
	if err != nil {
		return Config{}, fmt.Errorf("invalid CUE config: %w", err)
	}
	for iter.Next() {
		if label := iter.Label(); !knownCUEFields[label] {
			return Config{}, fmt.Errorf("invalid CUE config: unknown field %q", label)
		}
	}

	var cfg Config
	if err := value.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode CUE: %w", err)
	}
	return cfg, nil
}
