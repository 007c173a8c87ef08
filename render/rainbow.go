// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"gonum.org/v1/plot/palette"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/index/kmerindex"
	"github.com/biogo/biogo/seq/linear"
	"github.com/biogo/graphics/kmercolor"
)

// Rainbow writes a PNG k-mer rainbow of the nucleotide sequence s, one
// column per chunk of s. Letters other than ACGT, including gaps, are
// removed before indexing.
func Rainbow(w io.Writer, id, s string, k, chunk, height int) error {
	if k < kmerindex.MinKmerLen {
		return fmt.Errorf("render: k-mer length %d below minimum %d", k, kmerindex.MinKmerLen)
	}
	s = strings.Map(func(r rune) rune {
		switch r {
		case 'A', 'C', 'G', 'T', 'a', 'c', 'g', 't':
			return r
		}
		return -1
	}, s)
	if chunk < 1 || len(s) < 2*chunk {
		return fmt.Errorf("render: sequence %s too short for chunk size %d", id, chunk)
	}
	seq := linear.NewSeq(id, alphabet.BytesToLetters([]byte(s)), alphabet.DNA)
	index, err := kmerindex.New(k, seq)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	base := palette.HSVA{H: 0, S: 1, V: 0, A: 1}
	rainbow := kmercolor.NewKmerRainbow(image.Rect(0, 0, seq.Len()/chunk, height), index, base)
	for i := 0; (i+1)*chunk < seq.Len(); i++ {
		rainbow.Paint(kmercolor.V, i, chunk, i, i+1)
	}
	return png.Encode(w, rainbow)
}
