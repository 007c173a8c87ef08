// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dnds

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/biogo/proteoglycan/msa"
)

// Matrix holds pairwise scores indexed by first organism, second organism
// and gene.
type Matrix map[string]map[string]map[string]float64

// Compute scores every ordered pair of orgs for every gene in a. Pairs of an
// organism with itself and pairs where either organism lacks the gene score
// Neutral. At most workers pairs are scored concurrently; workers < 2 scores
// sequentially.
func Compute(a msa.Alignments, orgs []string, s Scorer, workers int) Matrix {
	m := make(Matrix, len(orgs))
	for _, o1 := range orgs {
		m[o1] = make(map[string]map[string]float64, len(orgs))
		for _, o2 := range orgs {
			m[o1][o2] = make(map[string]float64, len(a))
		}
	}
	if workers < 1 {
		workers = 1
	}

	var (
		limit = make(chan struct{}, workers)
		wg    sync.WaitGroup
		mu    sync.Mutex
	)
	set := func(o1, o2, g string, v float64) {
		mu.Lock()
		m[o1][o2][g] = v
		m[o2][o1][g] = v
		mu.Unlock()
	}
	for i, o1 := range orgs {
		for _, o2 := range orgs[i:] {
			for g, aln := range a {
				if o1 == o2 {
					set(o1, o2, g, Neutral)
					continue
				}
				s1, s2 := aln[o1], aln[o2]
				if s1 == "" || s2 == "" {
					set(o1, o2, g, Neutral)
					continue
				}
				wg.Add(1)
				limit <- struct{}{}
				go func(o1, o2, g, s1, s2 string) {
					defer func() { <-limit; wg.Done() }()
					set(o1, o2, g, s.Score(s1, s2))
				}(o1, o2, g, s1, s2)
			}
		}
	}
	wg.Wait()
	return m
}

// Genes returns the sorted genes scored in m.
func (m Matrix) Genes() []string {
	seen := make(map[string]bool)
	for _, row := range m {
		for _, gs := range row {
			for g := range gs {
				seen[g] = true
			}
		}
	}
	genes := make([]string, 0, len(seen))
	for g := range seen {
		genes = append(genes, g)
	}
	sort.Strings(genes)
	return genes
}

// WriteCSV writes the scores of org against every organism in m as CSV with
// one row per organism and one column per gene.
func (m Matrix) WriteCSV(w io.Writer, org string) error {
	row, ok := m[org]
	if !ok {
		return fmt.Errorf("dnds: no scores for %q", org)
	}
	genes := m.Genes()
	orgs := make([]string, 0, len(row))
	for o := range row {
		orgs = append(orgs, o)
	}
	sort.Strings(orgs)

	cw := csv.NewWriter(w)
	err := cw.Write(append([]string{"Organism"}, genes...))
	if err != nil {
		return err
	}
	rec := make([]string, len(genes)+1)
	for _, o := range orgs {
		rec[0] = o
		for i, g := range genes {
			v, ok := row[o][g]
			if !ok {
				v = Neutral
			}
			rec[i+1] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadValues returns the sorted scores held in a CSV written by WriteCSV.
// The header row and the first column are ignored, as are empty fields.
func ReadValues(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	var vals []float64
	for line := 0; ; line++ {
		rec, err := cr.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if line == 0 || len(rec) < 2 {
			continue
		}
		for _, f := range rec[1:] {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("dnds: line %d: %w", line+1, err)
			}
			vals = append(vals, v)
		}
	}
	sort.Float64s(vals)
	return vals, nil
}
