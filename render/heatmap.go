// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// presence is a plotter.GridXYZ view of a matrix with rows drawn
// top to bottom.
type presence struct {
	m *mat.Dense
}

func (g presence) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}
func (g presence) Z(c, r int) float64 {
	rows, _ := g.m.Dims()
	return g.m.At(rows-1-r, c)
}
func (g presence) X(c int) float64 { return float64(c) }
func (g presence) Y(r int) float64 { return float64(r) }

// twoColour is a palette.Palette of absent and present colours.
type twoColour []color.Color

func (p twoColour) Colors() []color.Color { return p }

// HeatMap writes a presence grid of m to path with rows labelled by rows
// and columns by cols. Zero cells are drawn white and non-zero cells blue.
func HeatMap(path, title string, rows, cols []string, m *mat.Dense) error {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return ErrNoData
	}
	if r != len(rows) || c != len(cols) {
		return fmt.Errorf("render: %dx%d labels for %dx%d matrix", len(rows), len(cols), r, c)
	}
	p := newPlot(title)
	hm := plotter.NewHeatMap(presence{m}, twoColour{white, blue})
	hm.Min, hm.Max = 0, 1
	p.Add(hm)

	labels := make([]string, len(rows))
	for i, l := range rows {
		labels[len(rows)-1-i] = l
	}
	p.NominalX(cols...)
	p.NominalY(labels...)
	rotateX(p)

	w := vg.Length(c)*vg.Points(12) + 2*vg.Inch
	h := vg.Length(r)*vg.Points(12) + 2*vg.Inch
	return p.Save(w, h, path)
}
