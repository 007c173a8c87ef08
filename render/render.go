// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws the study figures with gonum plot. The output
// format of each figure is chosen by the extension of its path.
package render

import (
	"errors"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("render: no data")

// Default figure dimensions.
var (
	Width  = 8 * vg.Inch
	Height = 10 * vg.Inch
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
	black = color.Black
)

func newPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	return p
}

// rotateX turns the x tick labels to read vertically.
func rotateX(p *plot.Plot) {
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
}
