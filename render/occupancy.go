// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"gonum.org/v1/plot/plotter"

	"github.com/biogo/proteoglycan/msa"
)

// Occupancy writes a step plot of the number of non-gap residues in each
// alignment column of gene to path.
func Occupancy(path, gene string, prof *msa.Profile) error {
	if prof == nil || prof.Len() == 0 {
		return ErrNoData
	}
	p := newPlot(fmt.Sprintf("%s column occupancy", gene))
	p.X.Label.Text = "Column"
	p.Y.Label.Text = "Residues"

	var xys plotter.XYs
	prof.Do(func(start, end, n int) {
		xys = append(xys, plotter.XY{X: float64(start), Y: float64(n)}, plotter.XY{X: float64(end), Y: float64(n)})
	})
	ln, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	ln.Color = blue
	p.Add(ln)
	p.Y.Min, p.Y.Max = 0, float64(prof.Rows())
	return p.Save(Width, Width/2, path)
}
