// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phylo

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

// orgNode is a named graph node with DOT support.
type orgNode struct {
	id   int64
	name string
}

func (n orgNode) ID() int64     { return n.id }
func (n orgNode) DOTID() string { return n.name }

// simEdge is a similarity weighted edge.
type simEdge struct {
	from, to orgNode
	weight   float64
}

var _ encoding.Attributer = simEdge{}

func (e simEdge) From() graph.Node         { return e.from }
func (e simEdge) To() graph.Node           { return e.to }
func (e simEdge) ReversedEdge() graph.Edge { return simEdge{from: e.to, to: e.from, weight: e.weight} }
func (e simEdge) Weight() float64          { return e.weight }
func (e simEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "weight", Value: strconv.FormatFloat(e.weight, 'f', 3, 64)}}
}

// SimilarityGraph is an undirected graph of rows joined when their
// similarity, one minus their distance, is at least a threshold.
type SimilarityGraph struct {
	names []string
	g     *simple.WeightedUndirectedGraph
}

// NewSimilarityGraph returns the similarity graph of the rows of m named
// by names under dist, with edges for pairs of similarity at least thresh.
// Jaccard is used if dist is nil.
func NewSimilarityGraph(names []string, m *mat.Dense, dist Distance, thresh float64) (*SimilarityGraph, error) {
	r, _ := m.Dims()
	if r != len(names) {
		return nil, fmt.Errorf("phylo: %d names for %d rows", len(names), r)
	}
	if dist == nil {
		dist = Jaccard
	}
	g := simple.NewWeightedUndirectedGraph(0, 0)
	nodes := make([]orgNode, r)
	for i, n := range names {
		nodes[i] = orgNode{id: int64(i), name: n}
		g.AddNode(nodes[i])
	}
	for i := 0; i < r; i++ {
		for j := i + 1; j < r; j++ {
			sim := 1 - dist(m.RawRowView(i), m.RawRowView(j))
			if sim < thresh || sim <= 0 {
				continue
			}
			g.SetWeightedEdge(simEdge{from: nodes[i], to: nodes[j], weight: sim})
		}
	}
	return &SimilarityGraph{names: names, g: g}, nil
}

// Communities returns the Louvain communities of the graph at the given
// resolution. Members of each community are sorted, and communities are
// ordered by decreasing size then first member.
func (s *SimilarityGraph) Communities(resolution float64) [][]string {
	r := community.Modularize(s.g, resolution, nil)
	var comms [][]string
	for _, c := range r.Communities() {
		members := make([]string, 0, len(c))
		for _, n := range c {
			members = append(members, s.names[n.ID()])
		}
		sort.Strings(members)
		comms = append(comms, members)
	}
	sort.Slice(comms, func(i, j int) bool {
		if len(comms[i]) != len(comms[j]) {
			return len(comms[i]) > len(comms[j])
		}
		return comms[i][0] < comms[j][0]
	})
	return comms
}

// WriteDOT writes the graph to w in DOT format.
func (s *SimilarityGraph) WriteDOT(w io.Writer, name string) error {
	b, err := dot.Marshal(s.g, name, "", "\t")
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}
