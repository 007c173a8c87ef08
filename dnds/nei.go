// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dnds

import (
	"errors"
	"math"
)

var (
	ErrFrame        = errors.New("dnds: sequences not in codon frame")
	ErrNoCodons     = errors.New("dnds: no comparable codons")
	ErrNoSites      = errors.New("dnds: no synonymous or non-synonymous sites")
	ErrSaturated    = errors.New("dnds: substitutions saturated")
	ErrNoSynonymous = errors.New("dnds: no synonymous substitutions")
)

// Estimator estimates the dN/dS ratio of a pair of equal length coding
// sequences whose length is a multiple of 3.
type Estimator interface {
	Estimate(a, b string) (float64, error)
}

// EstimatorFunc is a function satisfying the Estimator interface.
type EstimatorFunc func(a, b string) (float64, error)

// Estimate returns f(a, b).
func (f EstimatorFunc) Estimate(a, b string) (float64, error) { return f(a, b) }

// NeiGojobori implements the Nei and Gojobori (1986) unweighted pathway
// method with Jukes-Cantor correction of the proportions of differences.
// Codons containing ambiguous letters or encoding stops in either sequence
// are excluded.
type NeiGojobori struct{}

// Counts holds the site and difference counts of a sequence pair.
type Counts struct {
	Codons int
	S, N   float64 // Synonymous and non-synonymous sites.
	Sd, Nd float64 // Synonymous and non-synonymous differences.
}

// Count returns the site and difference counts of a and b.
func (NeiGojobori) Count(a, b string) (Counts, error) {
	var c Counts
	if len(a) != len(b) {
		return c, ErrLengthMismatch
	}
	if len(a)%3 != 0 {
		return c, ErrFrame
	}
	for i := 0; i < len(a); i += 3 {
		x := upper(a[i : i+3])
		y := upper(b[i : i+3])
		if !x.valid() || !y.valid() || x.isStop() || y.isStop() {
			continue
		}
		c.Codons++
		sx, sy := x.synSites(), y.synSites()
		c.S += (sx + sy) / 2
		c.N += (6 - sx - sy) / 2
		sd, nd := differences(x, y)
		c.Sd += sd
		c.Nd += nd
	}
	if c.Codons == 0 {
		return c, ErrNoCodons
	}
	return c, nil
}

// Estimate returns dN/dS for a and b.
func (ng NeiGojobori) Estimate(a, b string) (float64, error) {
	c, err := ng.Count(a, b)
	if err != nil {
		return math.NaN(), err
	}
	if c.S == 0 || c.N == 0 {
		return math.NaN(), ErrNoSites
	}
	ds, err := jukesCantor(c.Sd / c.S)
	if err != nil {
		return math.NaN(), err
	}
	if ds == 0 {
		return math.NaN(), ErrNoSynonymous
	}
	dn, err := jukesCantor(c.Nd / c.N)
	if err != nil {
		return math.NaN(), err
	}
	return dn / ds, nil
}

// jukesCantor returns the Jukes-Cantor corrected distance for the
// proportion of differing sites p.
func jukesCantor(p float64) (float64, error) {
	if p >= 0.75 {
		return math.Inf(1), ErrSaturated
	}
	if p == 0 {
		return 0, nil
	}
	return -0.75 * math.Log(1-4*p/3), nil
}

func upper(s string) codon {
	var c codon
	for i := range c {
		b := s[i]
		if 'a' <= b && b <= 'z' {
			b -= 'a' - 'A'
		}
		c[i] = b
	}
	return c
}
