// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dnds provides pairwise cleaning of aligned coding sequences and
// estimation of the ratio of non-synonymous to synonymous substitution rates.
//
// Ratios below 1 indicate purifying selection, above 1 positive selection,
// and 1 is neutral. Scorer maps every pair it cannot evaluate to Neutral.
package dnds

import "errors"

// ErrLengthMismatch is returned by Clean when the aligned sequences differ
// in length.
var ErrLengthMismatch = errors.New("dnds: aligned sequences differ in length")

const gap = '-'

// legal returns whether b is an unambiguous nucleotide.
func legal(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T', 'a', 'c', 'g', 't':
		return true
	}
	return false
}

// Clean removes every column of the aligned pair a, b where either holds a
// gap and, if checkChars is true, where either holds anything other than an
// unambiguous nucleotide. The returned sequences are each trimmed to the
// largest multiple of 3 so that they are in codon frame.
func Clean(a, b string, checkChars bool) (string, string, error) {
	if len(a) != len(b) {
		return "", "", ErrLengthMismatch
	}
	ca := make([]byte, 0, len(a))
	cb := make([]byte, 0, len(b))
	for i := 0; i < len(a); i++ {
		x, y := a[i], b[i]
		if x == gap || y == gap {
			continue
		}
		if checkChars && !(legal(x) && legal(y)) {
			continue
		}
		ca = append(ca, x)
		cb = append(cb, y)
	}
	return string(ca[:len(ca)-len(ca)%3]), string(cb[:len(cb)-len(cb)%3]), nil
}
