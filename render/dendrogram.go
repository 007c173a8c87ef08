// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/biogo/proteoglycan/phylo"
)

// Dendrogram writes the tree layout l to path. Tips are labelled and, if
// internal is true, so are named internal nodes.
func Dendrogram(path, title string, l *phylo.Layout, internal bool) error {
	if l == nil || len(l.Labels) == 0 {
		return ErrNoData
	}
	p := newPlot(title)
	p.HideAxes()
	for _, s := range l.Segments {
		ln, err := plotter.NewLine(plotter.XYs{{X: s.X1, Y: s.Y1}, {X: s.X2, Y: s.Y2}})
		if err != nil {
			return err
		}
		ln.Color = black
		p.Add(ln)
	}

	var tips, inner plotter.XYLabels
	for _, lb := range l.Labels {
		switch {
		case lb.Tip:
			tips.XYs = append(tips.XYs, plotter.XY{X: lb.X, Y: lb.Y})
			tips.Labels = append(tips.Labels, lb.Name)
		case internal && lb.Name != "":
			inner.XYs = append(inner.XYs, plotter.XY{X: lb.X, Y: lb.Y})
			inner.Labels = append(inner.Labels, lb.Name)
		}
	}
	for _, set := range []struct {
		xyl    plotter.XYLabels
		colour color.Color
	}{{tips, black}, {inner, blue}} {
		if len(set.xyl.Labels) == 0 {
			continue
		}
		labels, err := plotter.NewLabels(set.xyl)
		if err != nil {
			return err
		}
		for i := range labels.TextStyle {
			labels.TextStyle[i].Color = set.colour
		}
		p.Add(labels)
	}

	size := Height
	if l.Mode == phylo.Circular {
		p.X.Padding, p.Y.Padding = vg.Inch, vg.Inch
		return p.Save(size, size, path)
	}
	return p.Save(Width, size, path)
}
