// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package phylo provides Newick tree handling, presence vector clustering
// and dendrogram layout for the organism phylogenies.
package phylo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/evolbioinfo/gotree/io/newick"
	"github.com/evolbioinfo/gotree/tree"
)

// ErrNoTips is returned when pruning would leave fewer than two tips.
var ErrNoTips = errors.New("phylo: fewer than two tips retained")

// Parse parses a Newick tree. Tip and internal names may use underscores
// in place of spaces.
func Parse(nwk string) (*tree.Tree, error) {
	t, err := newick.NewParser(strings.NewReader(strings.TrimSpace(nwk))).Parse()
	if err != nil {
		return nil, fmt.Errorf("phylo: %w", err)
	}
	return t, nil
}

// Tips returns the tip names of t in sorted order.
func Tips(t *tree.Tree) []string {
	tips := t.SortedTips()
	names := make([]string, len(tips))
	for i, n := range tips {
		names[i] = n.Name()
	}
	return names
}

// Prune removes from t every tip not named in keep, matching names with
// NameKey. The pruned tree is returned as a new tree and t is unaltered.
func Prune(t *tree.Tree, keep []string) (*tree.Tree, error) {
	want := make(map[string]bool, len(keep))
	for _, k := range keep {
		want[NameKey(k)] = true
	}
	p, err := Parse(t.Newick())
	if err != nil {
		return nil, err
	}
	var (
		drop []string
		kept int
	)
	for _, n := range p.Tips() {
		if want[NameKey(n.Name())] {
			kept++
			continue
		}
		drop = append(drop, n.Name())
	}
	if kept < 2 {
		return nil, ErrNoTips
	}
	if len(drop) == 0 {
		return p, nil
	}
	err = p.RemoveTips(false, drop...)
	if err != nil {
		return nil, fmt.Errorf("phylo: %w", err)
	}
	return p, nil
}

// NameKey returns the comparison form of an organism name. Case, spaces
// and underscores are not significant.
func NameKey(s string) string {
	return strings.ToLower(strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '_'
	}), "_"))
}
