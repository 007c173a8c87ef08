// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msa

import (
	"github.com/biogo/store/step"
)

// count is an int satisfying the step.Equaler interface.
type count int

// Equal returns whether c equals e. Equal assumes the underlying type of e is a count.
func (c count) Equal(e step.Equaler) bool { return c == e.(count) }

func inc(e step.Equaler) step.Equaler { return e.(count) + 1 }

// Profile is the per-column residue occupancy of an alignment.
type Profile struct {
	vec  *step.Vector
	rows int
}

// Occupancy returns the number of non-gap residues in each column of s.
func Occupancy(s Set) (*Profile, error) {
	err := s.Validate()
	if err != nil {
		return nil, err
	}
	n := s.Len()
	if n == 0 {
		return nil, ErrEmpty
	}
	vec, err := step.New(0, n, count(0))
	if err != nil {
		return nil, err
	}
	for _, seq := range s {
		start := -1
		for i := 0; i <= len(seq); i++ {
			gap := i == len(seq) || seq[i] == Gap
			switch {
			case !gap && start < 0:
				start = i
			case gap && start >= 0:
				if err := vec.ApplyRange(start, i, inc); err != nil {
					return nil, err
				}
				start = -1
			}
		}
	}
	return &Profile{vec: vec, rows: len(s)}, nil
}

// Len returns the number of alignment columns.
func (p *Profile) Len() int { return p.vec.Len() }

// Rows returns the number of sequences the profile was built from.
func (p *Profile) Rows() int { return p.rows }

// At returns the number of residues in column i.
func (p *Profile) At(i int) int {
	e, err := p.vec.At(i)
	if err != nil {
		panic(err)
	}
	return int(e.(count))
}

// Do calls fn for each run of columns with equal occupancy.
func (p *Profile) Do(fn func(start, end, n int)) {
	p.vec.Do(func(start, end int, e step.Equaler) {
		fn(start, end, int(e.(count)))
	})
}

// Fractions returns the per-column occupancy as a fraction of the rows.
func (p *Profile) Fractions() []float64 {
	f := make([]float64, p.Len())
	p.Do(func(start, end, n int) {
		v := float64(n) / float64(p.rows)
		for i := start; i < end; i++ {
			f[i] = v
		}
	})
	return f
}
