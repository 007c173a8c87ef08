// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blast summarises NCBI BLAST JSON (BlastOutput2) reports of gene
// sequences searched against other organisms.
package blast

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// MinCoverage is the query coverage percentage below which hits are
// dropped.
const MinCoverage = 75

// ErrAccess is returned when a level of the BLAST report is missing.
var ErrAccess = errors.New("blast: report level not accessible")

type output struct {
	BlastOutput2 []struct {
		Report *struct {
			Results *struct {
				Search *search `json:"search"`
			} `json:"results"`
		} `json:"report"`
	} `json:"BlastOutput2"`
}

type search struct {
	QueryLen int `json:"query_len"`
	Hits     []struct {
		Description []struct {
			Title   string `json:"title"`
			SciName string `json:"sciname"`
		} `json:"description"`
		HSPs []hsp `json:"hsps"`
	} `json:"hits"`
}

type hsp struct {
	EValue    float64 `json:"evalue"`
	Identity  int     `json:"identity"`
	AlignLen  int     `json:"align_len"`
	QueryFrom int     `json:"query_from"`
	QueryTo   int     `json:"query_to"`
}

// Hit is the best scoring alignment of the query to a subject.
type Hit struct {
	Title          string
	ScientificName string

	// Coverage and Identity are percentages rounded to
	// one decimal place.
	Coverage float64
	EValue   float64
	Identity float64
}

// Decode reads a BLAST JSON report from r and returns, for each hit, the
// values of its HSP with the highest query coverage. Hits with a coverage
// below MinCoverage are omitted.
func Decode(r io.Reader) ([]Hit, error) {
	var out output
	err := json.NewDecoder(r).Decode(&out)
	if err != nil {
		return nil, fmt.Errorf("blast: %w", err)
	}
	switch {
	case len(out.BlastOutput2) == 0:
		return nil, fmt.Errorf("output: %w", ErrAccess)
	case out.BlastOutput2[0].Report == nil:
		return nil, fmt.Errorf("report: %w", ErrAccess)
	case out.BlastOutput2[0].Report.Results == nil:
		return nil, fmt.Errorf("results: %w", ErrAccess)
	case out.BlastOutput2[0].Report.Results.Search == nil:
		return nil, fmt.Errorf("search results: %w", ErrAccess)
	}
	s := out.BlastOutput2[0].Report.Results.Search
	if len(s.Hits) == 0 {
		return nil, fmt.Errorf("hits: %w", ErrAccess)
	}
	if s.QueryLen <= 0 {
		return nil, fmt.Errorf("query length: %w", ErrAccess)
	}

	var hits []Hit
	for _, h := range s.Hits {
		var (
			best Hit
			ok   bool
		)
		for _, p := range h.HSPs {
			cov := percent(p.QueryTo-p.QueryFrom, s.QueryLen)
			if cov <= best.Coverage {
				continue
			}
			ok = true
			best.Coverage = cov
			best.EValue = p.EValue
			best.Identity = percent(p.Identity, p.AlignLen)
		}
		if !ok || best.Coverage < MinCoverage {
			continue
		}
		if len(h.Description) != 0 {
			best.Title = h.Description[0].Title
			best.ScientificName = h.Description[0].SciName
		}
		hits = append(hits, best)
	}
	return hits, nil
}

// percent returns 100*n/d rounded to one decimal place.
func percent(n, d int) float64 {
	if d <= 0 {
		return 0
	}
	return math.Round(float64(n)/float64(d)*1000) / 10
}

// Header is the leading explanation block of a report.
const Header = "GENE NAME\nORGANISM TITLE\nQUERY COVERAGE (%), E-VALUE, IDENTITY (%)\n\n"

// WriteReport writes the hits of gene as a report section. Nothing is
// written if hits is empty.
func WriteReport(w io.Writer, gene string, hits []Hit) error {
	if len(hits) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "%s\n", gene)
	if err != nil {
		return err
	}
	for _, h := range hits {
		_, err = fmt.Fprintf(w, "%s\n%s%%, %s, %s%%\n", h.Title, format(h.Coverage), format(h.EValue), format(h.Identity))
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w)
	return err
}

func format(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
