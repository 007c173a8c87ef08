// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"image/png"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/check.v1"

	"github.com/biogo/biogo/index/kmerindex"

	"github.com/biogo/proteoglycan/msa"
	"github.com/biogo/proteoglycan/phylo"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func isPDF(c *check.C, path string) {
	b, err := ioutil.ReadFile(path)
	c.Assert(err, check.Equals, nil)
	c.Check(bytes.HasPrefix(b, []byte("%PDF")), check.Equals, true, check.Commentf("%s", path))
}

func (s *S) TestTitle(c *check.C) {
	for _, t := range []struct{ in, want string }{
		{"homo_sapiens", "Homo sapiens"},
		{"anas_platyrhynchos_platyrhynchos", "Anas platyrhynchos"},
		{"Danio Rerio", "Danio rerio"},
		{"", ""},
	} {
		c.Check(Title(t.in), check.Equals, t.want)
	}
}

func (s *S) TestHistograms(c *check.C) {
	dir := c.MkDir()
	path := filepath.Join(dir, "histograms.pdf")
	vals := map[string][]float64{
		"homo_sapiens": {0.1, 0.2, 0.5, 1, 1, 1, 2.5},
		"mus_musculus": {0.3, 1, 1},
		"danio_rerio":  nil,
	}
	err := Histograms(path, vals, []string{"homo_sapiens", "mus_musculus", "danio_rerio"}, Grid{Rows: 2, Cols: 2, Bins: 21, XMax: 7, YMax: 10, Mark: 1})
	c.Assert(err, check.Equals, nil)
	isPDF(c, path)

	c.Check(Histograms(path, vals, nil, DefaultGrid), check.Equals, ErrNoData)
	c.Check(Histograms(path, vals, []string{"homo_sapiens"}, Grid{}), check.NotNil)
}

func (s *S) TestHeatMap(c *check.C) {
	dir := c.MkDir()
	path := filepath.Join(dir, "heatmap.pdf")
	m := mat.NewDense(2, 3, []float64{1, 0, 1, 0, 1, 1})
	c.Assert(HeatMap(path, "Gene function", []string{"Acan", "Xylt1"}, []string{"a", "b", "c"}, m), check.Equals, nil)
	isPDF(c, path)

	c.Check(HeatMap(path, "", []string{"Acan"}, []string{"a", "b", "c"}, m), check.NotNil)

	g := presence{m}
	cols, rows := g.Dims()
	c.Check(cols, check.Equals, 3)
	c.Check(rows, check.Equals, 2)
	c.Check(g.Z(0, 1), check.Equals, 1.0)
	c.Check(g.Z(0, 0), check.Equals, 0.0)
}

func (s *S) TestCharts(c *check.C) {
	dir := c.MkDir()
	path := filepath.Join(dir, "taxa_info.pdf")
	c.Assert(Scatter(path, "Clades", []string{"Euteleostomi", "Chondrichthyes"}, []float64{120, 3}, true), check.Equals, nil)
	isPDF(c, path)
	c.Check(Scatter(path, "Clades", []string{"a"}, []float64{0}, true), check.ErrorMatches, "render: non-positive value .*")
	c.Check(Scatter(path, "Clades", []string{"a", "b"}, []float64{1}, false), check.NotNil)

	path = filepath.Join(dir, "bars.pdf")
	c.Assert(Bars(path, "Significant organisms", []string{"bone_cartilage", "cartilage", "neither"}, []float64{14, 4, 3}), check.Equals, nil)
	isPDF(c, path)
	c.Check(Bars(path, "", nil, nil), check.Equals, ErrNoData)
}

func (s *S) TestDendrogram(c *check.C) {
	t, err := phylo.Parse("((Homo_sapiens,Mus_musculus)Mammalia,Danio_rerio)Euteleostomi;")
	c.Assert(err, check.Equals, nil)
	dir := c.MkDir()
	for _, mode := range []phylo.Mode{phylo.Rectangular, phylo.Circular} {
		l, err := phylo.NewLayout(t, mode)
		c.Assert(err, check.Equals, nil)
		path := filepath.Join(dir, "tree.pdf")
		c.Assert(Dendrogram(path, "global", l, true), check.Equals, nil)
		isPDF(c, path)
	}
	c.Check(Dendrogram(filepath.Join(dir, "x.pdf"), "", nil, false), check.Equals, ErrNoData)
}

func (s *S) TestOccupancy(c *check.C) {
	prof, err := msa.Occupancy(msa.Set{
		"a": "ATG--A",
		"b": "ATGC-A",
	})
	c.Assert(err, check.Equals, nil)
	path := filepath.Join(c.MkDir(), "occupancy.pdf")
	c.Assert(Occupancy(path, "Acan", prof), check.Equals, nil)
	isPDF(c, path)
	c.Check(Occupancy(path, "Acan", nil), check.Equals, ErrNoData)
}

func (s *S) TestRainbow(c *check.C) {
	var buf bytes.Buffer
	seq := strings.Repeat("ACGTTGCAAGGCTTAC-", 40)
	c.Assert(Rainbow(&buf, "Acan", seq, 6, 20, 10), check.Equals, nil)
	img, err := png.Decode(&buf)
	c.Assert(err, check.Equals, nil)
	c.Check(img.Bounds().Dy(), check.Equals, 10)
	c.Check(img.Bounds().Dx(), check.Equals, 640/20)

	c.Check(Rainbow(&buf, "short", "ACGT", 6, 20, 10), check.NotNil)

	err = Rainbow(&buf, "Acan", seq, kmerindex.MinKmerLen-1, 20, 10)
	c.Assert(err, check.NotNil)
	c.Check(strings.HasPrefix(err.Error(), "render: "), check.Equals, true)
}

func (s *S) TestNewPlot(c *check.C) {
	p := newPlot("Acan")
	c.Assert(p, check.NotNil)
	c.Check(p.Title.Text, check.Equals, "Acan")
}
