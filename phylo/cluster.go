// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phylo

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Distance returns the dissimilarity of two presence vectors.
type Distance func(a, b []float64) float64

// Jaccard returns the Jaccard distance of the sets of non-zero elements
// of a and b. Two empty sets have distance zero.
func Jaccard(a, b []float64) float64 {
	var inter, union int
	for i := range a {
		x, y := a[i] != 0, b[i] != 0
		if x && y {
			inter++
		}
		if x || y {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return 1 - float64(inter)/float64(union)
}

// Euclidean returns the Euclidean distance between a and b.
func Euclidean(a, b []float64) float64 { return floats.Distance(a, b, 2) }

// Clustering is the result of agglomerative clustering.
type Clustering struct {
	// Newick is the cluster tree with merge heights as branch lengths.
	Newick string

	// Leaves holds the row names in tree order.
	Leaves []string

	// Order holds the row indices in tree order.
	Order []int
}

type cluster struct {
	members []int
	nwk     string
	height  float64
}

// Cluster performs average linkage agglomerative clustering of the rows of
// m, named by names, under dist. Jaccard is used if dist is nil. At each
// step the closest pair of clusters is merged, ties broken by the lowest
// row indices.
func Cluster(names []string, m *mat.Dense, dist Distance) (*Clustering, error) {
	r, _ := m.Dims()
	if r != len(names) {
		return nil, fmt.Errorf("phylo: %d names for %d rows", len(names), r)
	}
	if r == 0 {
		return nil, errors.New("phylo: no rows to cluster")
	}
	if dist == nil {
		dist = Jaccard
	}

	d := mat.NewSymDense(r, nil)
	for i := 0; i < r; i++ {
		for j := i + 1; j < r; j++ {
			d.SetSym(i, j, dist(m.RawRowView(i), m.RawRowView(j)))
		}
	}

	clusters := make([]*cluster, r)
	for i, n := range names {
		clusters[i] = &cluster{members: []int{i}, nwk: newickName(n)}
	}
	for len(clusters) > 1 {
		bi, bj, best := 0, 1, math.Inf(1)
		for i := range clusters {
			for j := i + 1; j < len(clusters); j++ {
				v := linkage(d, clusters[i], clusters[j])
				if v < best {
					bi, bj, best = i, j, v
				}
			}
		}
		a, b := clusters[bi], clusters[bj]
		h := best / 2
		merged := &cluster{
			members: append(append([]int(nil), a.members...), b.members...),
			nwk: fmt.Sprintf("(%s:%s,%s:%s)", a.nwk, length(h-a.height),
				b.nwk, length(h-b.height)),
			height: h,
		}
		clusters[bi] = merged
		clusters = append(clusters[:bj], clusters[bj+1:]...)
	}

	c := &Clustering{Newick: clusters[0].nwk + ";", Order: clusters[0].members}
	c.Leaves = make([]string, len(c.Order))
	for i, k := range c.Order {
		c.Leaves[i] = names[k]
	}
	return c, nil
}

func linkage(d *mat.SymDense, a, b *cluster) float64 {
	var sum float64
	for _, i := range a.members {
		for _, j := range b.members {
			sum += d.At(i, j)
		}
	}
	return sum / float64(len(a.members)*len(b.members))
}

func length(v float64) string {
	if v < 0 {
		v = 0
	}
	return fmt.Sprintf("%.4g", v)
}

// newickName replaces the characters Newick reserves.
func newickName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ':
			return '_'
		case '(', ')', ',', ':', ';', '[', ']', '\'':
			return '-'
		}
		return r
	}, s)
}
