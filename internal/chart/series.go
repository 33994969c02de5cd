// Package chart turns keyframe lists into scatter plots.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
	"strconv"

	"gonum.org/v1/plot/plotter"

	"github.com/roach88/motiondump/internal/lottie"
)

var (
	// ErrComponentMismatch is returned when a keyframe carries a different
	// number of values than the field has components.
	ErrComponentMismatch = errors.New("keyframe value count does not match components")

	// ErrPaletteExhausted is returned for fields with more components than
	// Palette has colours.
	ErrPaletteExhausted = errors.New("more series than palette colours")
)

// Palette holds the series colours, assigned by component index.
// Borrowed from matplotlib's tab10 cycle.
var Palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Series is one scalar component of an animated field over time.
type Series struct {
	Name   string
	Color  color.RGBA
	Points plotter.XYs // X is frame time, Y the component value
}

// SortKeyframes orders keyframes by time, in place. Keyframes sharing a time
// keep their relative order.
func SortKeyframes(kfs []lottie.Keyframe) {
	slices.SortStableFunc(kfs, func(a, b lottie.Keyframe) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		default:
			return 0
		}
	})
}

// BuildSeries sorts kfs by time and splits them into one series per
// component. Every keyframe must carry exactly len(components) values.
func BuildSeries(kfs []lottie.Keyframe, components []string) ([]Series, error) {
	if len(components) > len(Palette) {
		return nil, fmt.Errorf("%w: %d components", ErrPaletteExhausted, len(components))
	}

	SortKeyframes(kfs)

	series := make([]Series, len(components))
	for i, name := range components {
		c, err := ParseHexColor(Palette[i])
		if err != nil {
			return nil, err
		}
		series[i] = Series{Name: name, Color: c, Points: make(plotter.XYs, 0, len(kfs))}
	}

	for _, kf := range kfs {
		if len(kf.Values) != len(components) {
			return nil, fmt.Errorf("%w: %q wrong length for %v", ErrComponentMismatch, components, kf.Values)
		}
		for i, v := range kf.Values {
			series[i].Points = append(series[i].Points, plotter.XY{X: kf.Time, Y: v})
		}
	}
	return series, nil
}

// ParseHexColor parses a "#rrggbb" string into an opaque colour.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: want #rrggbb", s)
	}
	n, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
}
