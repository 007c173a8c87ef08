// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Scatter writes a scatter of values against nominal labels to path. With
// logY the y axis is logarithmic and every value must be positive.
func Scatter(path, title string, labels []string, values []float64, logY bool) error {
	if len(values) == 0 {
		return ErrNoData
	}
	if len(labels) != len(values) {
		return fmt.Errorf("render: %d labels for %d values", len(labels), len(values))
	}
	p := newPlot(title)
	xys := make(plotter.XYs, len(values))
	for i, v := range values {
		if logY && v <= 0 {
			return fmt.Errorf("render: non-positive value %v for %s on log axis", v, labels[i])
		}
		xys[i] = plotter.XY{X: float64(i), Y: v}
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	sc.Color = blue
	p.Add(sc)
	if logY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{}
	}
	p.NominalX(labels...)
	rotateX(p)
	return p.Save(Width, Height, path)
}

// Bars writes a bar chart of values against nominal labels to path.
func Bars(path, title string, labels []string, values []float64) error {
	if len(values) == 0 {
		return ErrNoData
	}
	if len(labels) != len(values) {
		return fmt.Errorf("render: %d labels for %d values", len(labels), len(values))
	}
	p := newPlot(title)
	b, err := plotter.NewBarChart(plotter.Values(values), vg.Points(10))
	if err != nil {
		return err
	}
	b.Color = blue
	p.Add(b)
	p.NominalX(labels...)
	rotateX(p)
	return p.Save(Width, Height, path)
}
