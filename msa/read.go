// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msa

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// ReadFasta reads an aligned multi-FASTA. The whole header line names the
// organism and repeated headers concatenate.
func ReadFasta(r io.Reader) (Set, error) {
	s := make(Set)
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNAgapped)))
	for sc.Next() {
		seq := sc.Seq().(*linear.Seq)
		org := seq.Name()
		if d := seq.Description(); d != "" {
			org += " " + d
		}
		s[org] += seq.Seq.String()
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}
	if len(s) == 0 {
		return nil, ErrEmpty
	}
	return s, nil
}

// ReadClustal reads ClustalW interleaved blocks. Each sequence line holds an
// organism name and an alignment fragment, optionally followed by a residue
// count. The CLUSTAL header and conservation lines are ignored.
func ReadClustal(r io.Reader) (Set, error) {
	s := make(Set)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 1<<20)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(text, "CLUSTAL") || strings.HasPrefix(text, "MUSCLE") {
			continue
		}
		if text == "" || text[0] == ' ' || text[0] == '\t' {
			// Block separators and conservation lines.
			continue
		}
		f := strings.Fields(text)
		if len(f) < 2 {
			return nil, fmt.Errorf("msa: line %d: missing alignment fragment for %q", line, f[0])
		}
		s[f[0]] += f[1]
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(s) == 0 {
		return nil, ErrEmpty
	}
	return s, nil
}
