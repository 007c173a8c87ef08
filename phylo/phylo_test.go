// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phylo

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const global = "((Homo_sapiens,Mus_musculus)Mammalia,(Danio_rerio,Takifugu_rubripes)Actinopteri,Drosophila_melanogaster);"

func (s *S) TestParsePrune(c *check.C) {
	t, err := Parse(global + "\n")
	c.Assert(err, check.Equals, nil)
	c.Check(Tips(t), check.DeepEquals, []string{
		"Danio_rerio", "Drosophila_melanogaster", "Homo_sapiens", "Mus_musculus", "Takifugu_rubripes",
	})

	p, err := Prune(t, []string{"Homo Sapiens", "danio_rerio", "Mus musculus", "Pan troglodytes"})
	c.Assert(err, check.Equals, nil)
	c.Check(Tips(p), check.DeepEquals, []string{"Danio_rerio", "Homo_sapiens", "Mus_musculus"})
	c.Check(len(Tips(t)), check.Equals, 5)

	_, err = Prune(t, []string{"Homo sapiens"})
	c.Check(err, check.Equals, ErrNoTips)

	_, err = Parse("((a,b);")
	c.Check(err, check.NotNil)
}

func (s *S) TestDistances(c *check.C) {
	d := Jaccard([]float64{1, 1, 0, 0}, []float64{1, 0, 1, 0})
	c.Check(math.Abs(d-2.0/3) < 1e-12, check.Equals, true, check.Commentf("got %v", d))
	c.Check(Jaccard([]float64{0, 0}, []float64{0, 0}), check.Equals, 0.0)
	c.Check(Euclidean([]float64{0, 0}, []float64{3, 4}), check.Equals, 5.0)
}

func (s *S) TestCluster(c *check.C) {
	names := []string{"homo sapiens", "danio rerio", "mus musculus", "takifugu rubripes"}
	m := mat.NewDense(4, 4, []float64{
		1, 1, 1, 0,
		0, 1, 0, 1,
		1, 1, 1, 0,
		0, 1, 0, 1,
	})
	cl, err := Cluster(names, m, nil)
	c.Assert(err, check.Equals, nil)
	c.Check(cl.Order, check.DeepEquals, []int{0, 2, 1, 3})
	c.Check(cl.Leaves, check.DeepEquals, []string{"homo sapiens", "mus musculus", "danio rerio", "takifugu rubripes"})
	c.Check(cl.Newick, check.Equals,
		"((homo_sapiens:0,mus_musculus:0):0.375,(danio_rerio:0,takifugu_rubripes:0):0.375);")

	t, err := Parse(cl.Newick)
	c.Assert(err, check.Equals, nil)
	c.Check(len(Tips(t)), check.Equals, 4)

	_, err = Cluster(names[:2], m, nil)
	c.Check(err, check.NotNil)
}

func (s *S) TestLayout(c *check.C) {
	t, err := Parse("((a,b)x,c)r;")
	c.Assert(err, check.Equals, nil)

	l, err := NewLayout(t, Rectangular)
	c.Assert(err, check.Equals, nil)
	pos := make(map[string]Label)
	for _, lb := range l.Labels {
		pos[lb.Name] = lb
	}
	c.Check(pos["r"], check.Equals, Label{X: 0, Y: 1.25, Name: "r"})
	c.Check(pos["x"], check.Equals, Label{X: 1, Y: 0.5, Name: "x"})
	c.Check(pos["a"], check.Equals, Label{X: 2, Y: 0, Name: "a", Tip: true})
	c.Check(pos["c"], check.Equals, Label{X: 2, Y: 2, Name: "c", Tip: true})
	c.Check(len(l.Segments), check.Equals, 6)

	l, err = NewLayout(t, Circular)
	c.Assert(err, check.Equals, nil)
	for _, lb := range l.Labels {
		if lb.Tip {
			c.Check(math.Abs(math.Hypot(lb.X, lb.Y)-2) < 1e-9, check.Equals, true, check.Commentf("%s", lb.Name))
		}
		if lb.Name == "r" {
			c.Check(math.Hypot(lb.X, lb.Y) < 1e-9, check.Equals, true)
		}
	}
	c.Check(len(l.Segments) > 6, check.Equals, true)

	_, err = NewLayout(t, Mode(7))
	c.Check(err, check.NotNil)
}

func (s *S) TestCommunities(c *check.C) {
	names := []string{"homo sapiens", "danio rerio", "mus musculus", "takifugu rubripes", "ciona intestinalis"}
	m := mat.NewDense(5, 4, []float64{
		1, 1, 1, 0,
		0, 1, 0, 1,
		1, 1, 1, 0,
		0, 1, 0, 1,
		0, 0, 0, 0,
	})
	g, err := NewSimilarityGraph(names, m, nil, 0.5)
	c.Assert(err, check.Equals, nil)
	c.Check(g.Communities(1), check.DeepEquals, [][]string{
		{"danio rerio", "takifugu rubripes"},
		{"homo sapiens", "mus musculus"},
		{"ciona intestinalis"},
	})

	var buf bytes.Buffer
	c.Assert(g.WriteDOT(&buf, "organisms"), check.Equals, nil)
	c.Check(strings.Contains(buf.String(), `"homo sapiens" -- "mus musculus"`), check.Equals, true, check.Commentf("%s", buf.String()))

	_, err = NewSimilarityGraph(names[:1], m, nil, 0.5)
	c.Check(err, check.NotNil)
}
