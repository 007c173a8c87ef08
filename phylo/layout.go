// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phylo

import (
	"errors"
	"math"

	"github.com/evolbioinfo/gotree/tree"
)

// Mode is a dendrogram layout style.
type Mode int

const (
	Rectangular Mode = iota
	Circular
)

// Segment is a line segment of a dendrogram.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Label is a named node position.
type Label struct {
	X, Y float64
	Name string
	Tip  bool
}

// Layout is a drawable dendrogram.
type Layout struct {
	Mode     Mode
	Segments []Segment
	Labels   []Label
}

// arcStep is the greatest angle spanned by a single segment of a circular
// layout arc.
const arcStep = math.Pi / 90

type node struct {
	name     string
	children []*node
	x, y     float64
}

// NewLayout lays out t in the given mode. Branch lengths are ignored: tips
// are aligned and each internal node is placed one unit before its deepest
// child. Tips are spaced one unit apart in traversal order; in circular
// mode they are placed evenly around the full circle.
func NewLayout(t *tree.Tree, mode Mode) (*Layout, error) {
	if t == nil || t.Root() == nil {
		return nil, errors.New("phylo: empty tree")
	}
	root := build(t.Root(), nil)

	var tips []*node
	var height func(n *node) int
	height = func(n *node) int {
		if len(n.children) == 0 {
			tips = append(tips, n)
			return 0
		}
		var h int
		for _, c := range n.children {
			if ch := height(c) + 1; ch > h {
				h = ch
			}
		}
		n.x = -float64(h)
		return h
	}
	depth := height(root)
	var place func(n *node)
	place = func(n *node) {
		n.x += float64(depth)
		if len(n.children) == 0 {
			return
		}
		for _, c := range n.children {
			place(c)
		}
		n.y = (n.children[0].y + n.children[len(n.children)-1].y) / 2
	}
	for i, n := range tips {
		n.y = float64(i)
	}
	place(root)

	l := &Layout{Mode: mode}
	switch mode {
	case Rectangular:
		l.rectangular(root)
	case Circular:
		l.circular(root, len(tips))
	default:
		return nil, errors.New("phylo: unknown layout mode")
	}
	return l, nil
}

func build(n, parent *tree.Node) *node {
	b := &node{name: n.Name()}
	for _, c := range n.Neigh() {
		if c == parent {
			continue
		}
		b.children = append(b.children, build(c, n))
	}
	return b
}

func (l *Layout) rectangular(n *node) {
	l.Labels = append(l.Labels, Label{X: n.x, Y: n.y, Name: n.name, Tip: len(n.children) == 0})
	if len(n.children) == 0 {
		return
	}
	first, last := n.children[0], n.children[len(n.children)-1]
	l.Segments = append(l.Segments, Segment{X1: n.x, Y1: first.y, X2: n.x, Y2: last.y})
	for _, c := range n.children {
		l.Segments = append(l.Segments, Segment{X1: n.x, Y1: c.y, X2: c.x, Y2: c.y})
		l.rectangular(c)
	}
}

func (l *Layout) circular(n *node, tips int) {
	angle := func(y float64) float64 { return 2 * math.Pi * y / float64(tips) }
	polar := func(r, a float64) (x, y float64) { return r * math.Cos(a), r * math.Sin(a) }

	x, y := polar(n.x, angle(n.y))
	l.Labels = append(l.Labels, Label{X: x, Y: y, Name: n.name, Tip: len(n.children) == 0})
	if len(n.children) == 0 {
		return
	}
	a0, a1 := angle(n.children[0].y), angle(n.children[len(n.children)-1].y)
	steps := int(math.Ceil((a1 - a0) / arcStep))
	for i := 0; i < steps; i++ {
		x1, y1 := polar(n.x, a0+(a1-a0)*float64(i)/float64(steps))
		x2, y2 := polar(n.x, a0+(a1-a0)*float64(i+1)/float64(steps))
		l.Segments = append(l.Segments, Segment{X1: x1, Y1: y1, X2: x2, Y2: y2})
	}
	for _, c := range n.children {
		a := angle(c.y)
		x1, y1 := polar(n.x, a)
		x2, y2 := polar(c.x, a)
		l.Segments = append(l.Segments, Segment{X1: x1, Y1: y1, X2: x2, Y2: y2})
		l.circular(c, tips)
	}
}
