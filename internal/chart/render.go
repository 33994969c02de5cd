package chart

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Renderer draws a titled scatter plot of series to w.
type Renderer interface {
	Render(w io.Writer, title string, series []Series) error
}

// Default plot size, in inches.
const (
	DefaultWidth  = 6.4
	DefaultHeight = 4.8
)

// SVGRenderer renders plots as SVG documents with gonum/plot.
type SVGRenderer struct {
	Width  vg.Length
	Height vg.Length
}

// NewSVGRenderer creates an SVGRenderer for a plot of the given size in inches.
func NewSVGRenderer(widthIn, heightIn float64) SVGRenderer {
	return SVGRenderer{
		Width:  vg.Length(widthIn) * vg.Inch,
		Height: vg.Length(heightIn) * vg.Inch,
	}
}

// Render implements Renderer.
func (r SVGRenderer) Render(w io.Writer, title string, series []Series) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "frame"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for _, s := range series {
		scatter, err := plotter.NewScatter(s.Points)
		if err != nil {
			return fmt.Errorf("series %q: %w", s.Name, err)
		}
		scatter.GlyphStyle.Color = s.Color
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)
		// Single-component fields have an unnamed series; leave it out of the legend.
		if s.Name != "" {
			p.Legend.Add(s.Name, scatter)
		}
	}

	canvas := vgsvg.New(r.Width, r.Height)
	p.Draw(draw.New(canvas))
	if _, err := canvas.WriteTo(w); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
