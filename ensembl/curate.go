// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ensembl

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

var (
	ErrEmptyOrthologData = errors.New("ensembl: empty ortholog data")
	ErrEmptyHomology     = errors.New("ensembl: empty homology information")
	ErrEmptySequence     = errors.New("ensembl: empty sequence")
)

// Response is the decoded homology endpoint response.
type Response struct {
	Data []Data `json:"data"`
}

// Data holds the homologies of a single queried gene.
type Data struct {
	ID         string     `json:"id"`
	Homologies []Homology `json:"homologies"`
}

// Homology is a source/target orthologue pair.
type Homology struct {
	Type   string  `json:"type"`
	Source *Member `json:"source"`
	Target *Member `json:"target"`
}

// Member is one side of a Homology.
type Member struct {
	Species  string  `json:"species"`
	ID       string  `json:"id"`
	Protein  string  `json:"protein_id"`
	AlignSeq string  `json:"align_seq"`
	PercID   float64 `json:"perc_id"`
	PercPos  float64 `json:"perc_pos"`
}

// Decode reads a homology response from r.
func Decode(r io.Reader) (*Response, error) {
	var resp Response
	err := json.NewDecoder(r).Decode(&resp)
	if err != nil {
		return nil, fmt.Errorf("ensembl: %w", err)
	}
	return &resp, nil
}

// Curated holds the unique organisms and the orthologue sequences of a gene.
type Curated struct {
	// Organisms is the sorted set of source and target species.
	Organisms []string

	// Sequences maps target species to aligned target sequence.
	Sequences map[string]string
}

// Curate extracts the unique organisms and target sequences of the gene id
// from resp. Missing data, homologies, members or species are reported with
// errors wrapping ErrEmptyOrthologData and ErrEmptyHomology. A target with
// an empty sequence is reported with an error wrapping ErrEmptySequence.
func Curate(id string, resp *Response) (*Curated, error) {
	if resp == nil || len(resp.Data) == 0 {
		return nil, fmt.Errorf("gene %s orthologs not found: %w", id, ErrEmptyOrthologData)
	}
	hs := resp.Data[0].Homologies
	if len(hs) == 0 {
		return nil, fmt.Errorf("gene %s ortholog homologies not found: %w", id, ErrEmptyOrthologData)
	}

	seen := make(map[string]bool)
	c := Curated{Sequences: make(map[string]string)}
	for i, h := range hs {
		switch {
		case h.Source == nil:
			return nil, fmt.Errorf("gene %s ortholog %d has no source: %w", id, i, ErrEmptyHomology)
		case h.Target == nil:
			return nil, fmt.Errorf("gene %s ortholog %d has no target: %w", id, i, ErrEmptyHomology)
		case h.Source.Species == "":
			return nil, fmt.Errorf("gene %s ortholog %d has no source species: %w", id, i, ErrEmptyHomology)
		case h.Target.Species == "":
			return nil, fmt.Errorf("gene %s ortholog %d has no target species: %w", id, i, ErrEmptyHomology)
		case h.Target.AlignSeq == "":
			return nil, fmt.Errorf("gene %s ortholog %s: %w", id, h.Target.Species, ErrEmptySequence)
		}
		for _, sp := range []string{h.Source.Species, h.Target.Species} {
			if !seen[sp] {
				seen[sp] = true
				c.Organisms = append(c.Organisms, sp)
			}
		}
		if _, ok := c.Sequences[h.Target.Species]; !ok {
			c.Sequences[h.Target.Species] = h.Target.AlignSeq
		}
	}
	sort.Strings(c.Organisms)
	return &c, nil
}

// WriteOrganisms writes one organism per line with underscores replaced by
// spaces.
func WriteOrganisms(w io.Writer, orgs []string) error {
	bw := bufio.NewWriter(w)
	for _, o := range orgs {
		_, err := fmt.Fprintln(bw, strings.Replace(o, "_", " ", -1))
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteSequences writes seqs as FASTA in species order with gaps removed
// and sequence lines wrapped at 60 columns.
func WriteSequences(w io.Writer, seqs map[string]string) error {
	species := make([]string, 0, len(seqs))
	for sp := range seqs {
		species = append(species, sp)
	}
	sort.Strings(species)

	bw := bufio.NewWriter(w)
	for _, sp := range species {
		s := strings.Replace(seqs[sp], "-", "", -1)
		fmt.Fprintf(bw, ">%s\n", sp)
		for len(s) > 60 {
			fmt.Fprintln(bw, s[:60])
			s = s[60:]
		}
		if len(s) != 0 {
			fmt.Fprintln(bw, s)
		}
	}
	return bw.Flush()
}
