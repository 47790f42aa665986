package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvlca/ca"
)

// Point colors: rows in red, columns in blue — the conventional symmetric
// map styling.
var (
	rowColor = color.RGBA{R: 0xc4, G: 0x1e, B: 0x3a, A: 0xff}
	colColor = color.RGBA{R: 0x1e, G: 0x4e, B: 0xc4, A: 0xff}
)

// ScatterMap draws the symmetric factorial map of res — row and column
// points together on axes 1×2, each labeled — and saves it to opts.Path.
// Axis titles carry the percentage of inertia each axis explains.
//
// Remember the sign caveat from the package doc: a mirrored map is the
// same solution.
//
// Errors: ErrNilResult, ErrNoAxes, ErrEmptyPath, ErrBadDims, plus any
// save error from the plot backend.
func ScatterMap(res *ca.Result, opts *MapOptions) error {
	if res == nil {
		return ErrNilResult
	}
	if res.Axes() < 2 {
		return ErrNoAxes
	}

	o := MapOptions{}
	if opts != nil {
		o = *opts
	}
	if o.Path == "" {
		return ErrEmptyPath
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Width == 0 {
		o.Width = DefaultMapSize
	}
	if o.Height == 0 {
		o.Height = DefaultMapSize
	}
	if o.Width < 0 || o.Height < 0 {
		return ErrBadDims
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = fmt.Sprintf("Axis 1 (%.1f%%)", res.InertiaPercent[0])
	p.Y.Label.Text = fmt.Sprintf("Axis 2 (%.1f%%)", res.InertiaPercent[1])
	p.Add(plotter.NewGrid())

	if err := addSide(p, res.RowCoords, res.RowLabels, "rows", rowColor); err != nil {
		return fmt.Errorf("render: ScatterMap: %w", err)
	}
	if err := addSide(p, res.ColCoords, res.ColLabels, "columns", colColor); err != nil {
		return fmt.Errorf("render: ScatterMap: %w", err)
	}

	width := vg.Length(o.Width) * vg.Centimeter
	height := vg.Length(o.Height) * vg.Centimeter
	if err := p.Save(width, height, o.Path); err != nil {
		return fmt.Errorf("render: ScatterMap: %w", err)
	}

	return nil
}

// addSide plots one labeled point cloud (rows or columns) on the first
// factorial plane.
func addSide(p *plot.Plot, coords *mat.Dense, labels []string, legend string, c color.RGBA) error {
	n, _ := coords.Dims()
	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		pts[i].X = coords.At(i, 0)
		pts[i].Y = coords.At(i, 1)
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = c
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)
	p.Legend.Add(legend, scatter)

	names, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
	if err != nil {
		return err
	}
	p.Add(names)

	return nil
}
