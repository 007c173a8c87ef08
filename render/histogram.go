// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"os"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

// Grid describes a tiled set of histograms.
type Grid struct {
	Rows, Cols int
	Bins       int

	// XMax and YMax fix the axis ranges of every tile
	// if non-zero.
	XMax, YMax float64

	// Mark is the x position of the dashed reference line.
	Mark float64
}

// DefaultGrid is the layout of the significant organism dN/dS figure.
var DefaultGrid = Grid{Rows: 7, Cols: 3, Bins: 21, XMax: 7, YMax: 800, Mark: 1}

// Histograms writes a PDF to path of one histogram per organism in order,
// tiled according to g. Each tile is annotated with the number of values
// below and at or above g.Mark. Organisms beyond the grid capacity are
// not drawn.
func Histograms(path string, values map[string][]float64, order []string, g Grid) error {
	if len(order) == 0 {
		return ErrNoData
	}
	if g.Rows < 1 || g.Cols < 1 {
		return fmt.Errorf("render: invalid grid %dx%d", g.Rows, g.Cols)
	}
	plots := make([][]*plot.Plot, g.Rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, g.Cols)
		for c := range plots[r] {
			i := r*g.Cols + c
			if i >= len(order) {
				p := plot.New()
				p.HideAxes()
				plots[r][c] = p
				continue
			}
			p, err := histogram(order[i], values[order[i]], g)
			if err != nil {
				return err
			}
			plots[r][c] = p
		}
	}

	w, h := 12*vg.Inch, 18*vg.Inch
	img := vgpdf.New(w, h)
	dc := draw.New(img)
	t := draw.Tiles{
		Rows: g.Rows, Cols: g.Cols,
		PadX: vg.Millimeter, PadY: vg.Millimeter,
		PadTop: vg.Points(5), PadBottom: vg.Points(5),
		PadLeft: vg.Points(5), PadRight: vg.Points(5),
	}
	canvases := plot.Align(plots, t, dc)
	for r := range plots {
		for c := range plots[r] {
			plots[r][c].Draw(canvases[r][c])
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = img.WriteTo(f)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func histogram(org string, vals []float64, g Grid) (*plot.Plot, error) {
	p := newPlot(Title(org))
	var below int
	for _, v := range vals {
		if v < g.Mark {
			below++
		}
	}
	if len(vals) != 0 {
		bins := g.Bins
		if bins < 1 {
			bins = 21
		}
		hist, err := plotter.NewHist(plotter.Values(vals), bins)
		if err != nil {
			return nil, err
		}
		hist.FillColor = blue
		p.Add(hist)
	}

	xmax, ymax := g.XMax, g.YMax
	if xmax != 0 {
		p.X.Min, p.X.Max = 0, xmax
	}
	if ymax != 0 {
		p.Y.Min, p.Y.Max = 0, ymax
	} else {
		ymax = p.Y.Max
	}

	mark, err := plotter.NewLine(plotter.XYs{{X: g.Mark, Y: 0}, {X: g.Mark, Y: ymax}})
	if err != nil {
		return nil, err
	}
	mark.Color = black
	mark.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(mark)

	if xmax == 0 {
		xmax = p.X.Max
	}
	note, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: 0.7 * xmax, Y: 0.7 * ymax}},
		Labels: []string{fmt.Sprintf("%d < %v\n%d >= %v", below, g.Mark, len(vals)-below, g.Mark)},
	})
	if err != nil {
		return nil, err
	}
	p.Add(note)
	return p, nil
}

// Title returns the display form of an organism key, "homo_sapiens"
// becoming "Homo sapiens". Only the genus and species are kept.
func Title(org string) string {
	f := strings.FieldsFunc(org, func(r rune) bool { return r == '_' || r == ' ' })
	if len(f) > 2 {
		f = f[:2]
	}
	s := strings.ToLower(strings.Join(f, " "))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
