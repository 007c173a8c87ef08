// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msa

import (
	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
	"github.com/biogo/biogo/seq/multi"
)

// Consensus returns the column consensus of s.
func Consensus(id string, s Set) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	ms := &multi.Multi{
		Annotation:     seq.Annotation{ID: id, Alpha: alphabet.DNAgapped},
		ColumnConsense: seq.DefaultQConsensus,
	}
	for _, o := range s.Organisms() {
		err := ms.Add(linear.NewSeq(o, alphabet.BytesToLetters([]byte(s[o])), alphabet.DNAgapped))
		if err != nil {
			return "", err
		}
	}
	c := ms.Consensus(true)
	b := make([]byte, len(c.Seq))
	for i, ql := range c.Seq {
		b[i] = byte(ql.L)
	}
	return string(b), nil
}
