// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package msa provides reading, summarising and writing of per-gene multiple
// sequence alignments of orthologous coding sequences.
package msa

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Gap is the alignment gap letter.
const Gap = '-'

var (
	ErrRagged = errors.New("msa: sequences differ in length")
	ErrEmpty  = errors.New("msa: empty alignment")
)

// Set is a single gene alignment, mapping organism to aligned sequence.
type Set map[string]string

// Alignments maps gene name to the gene's alignment.
type Alignments map[string]Set

// Organisms returns the sorted organism names of the set.
func (s Set) Organisms() []string {
	orgs := make([]string, 0, len(s))
	for o := range s {
		orgs = append(orgs, o)
	}
	sort.Strings(orgs)
	return orgs
}

// Len returns the alignment length. Len is only meaningful for a set that
// passes Validate.
func (s Set) Len() int {
	for _, seq := range s {
		return len(seq)
	}
	return 0
}

// Validate returns ErrEmpty for an empty set and ErrRagged if any two
// sequences have different lengths.
func (s Set) Validate() error {
	if len(s) == 0 {
		return ErrEmpty
	}
	l := -1
	for o, seq := range s {
		if l < 0 {
			l = len(seq)
			continue
		}
		if len(seq) != l {
			return fmt.Errorf("%w: %q has length %d, want %d", ErrRagged, o, len(seq), l)
		}
	}
	return nil
}

// Genes returns the sorted gene names held by a.
func (a Alignments) Genes() []string {
	gs := make([]string, 0, len(a))
	for g := range a {
		gs = append(gs, g)
	}
	sort.Strings(gs)
	return gs
}

// Format specifies an alignment text format.
type Format int

const (
	Auto    Format = iota // Detect from the first non-blank line.
	Fasta                 // ">organism" header lines followed by sequence lines.
	Clustal               // ClustalW interleaved blocks.
)

// Read reads a single alignment in the given format.
func Read(r io.Reader, f Format) (Set, error) {
	if f == Auto {
		br := bufio.NewReader(r)
		var err error
		f, err = detect(br)
		if err != nil {
			return nil, err
		}
		r = br
	}
	switch f {
	case Fasta:
		return ReadFasta(r)
	case Clustal:
		return ReadClustal(r)
	}
	return nil, fmt.Errorf("msa: unknown format %d", f)
}

func detect(br *bufio.Reader) (Format, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				return 0, ErrEmpty
			}
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		err = br.UnreadByte()
		if err != nil {
			return 0, err
		}
		if b == '>' {
			return Fasta, nil
		}
		return Clustal, nil
	}
}

// GeneName returns the gene name encoded in an alignment file name: the base
// name up to the first underscore, or without its extension when there is
// no underscore.
func GeneName(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "_"); i >= 0 {
		return base[:i]
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ReadDir reads every regular file in dir as an alignment. Files naming the
// same gene are merged, sequences of the same organism concatenating in
// file name order.
func ReadDir(dir string, f Format) (Alignments, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	a := make(Alignments)
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		s, err := readFile(path, f)
		if err != nil {
			return nil, fmt.Errorf("msa: %s: %w", path, err)
		}
		g := GeneName(e.Name())
		dst, ok := a[g]
		if !ok {
			a[g] = s
			continue
		}
		for o, seq := range s {
			dst[o] += seq
		}
	}
	return a, nil
}

func readFile(path string, f Format) (Set, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Read(fh, f)
}
