// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// alnstats calculates and prints alignment statistics for each gene in the
// alignments data directory: the number of sequences, the number of
// columns, the Min, Max, Avg and N50 ungapped sequence lengths, and the
// mean column occupancy. Optionally it writes the gene consensus
// sequences, column occupancy plots and consensus k-mer rainbows.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"gonum.org/v1/gonum/stat"

	"github.com/biogo/proteoglycan/msa"
	"github.com/biogo/proteoglycan/render"
)

// alnStats contains the statistics of a gene alignment. Lengths are
// ungapped lengths in base pairs.
type alnStats struct {
	name    string
	seqs    int
	columns int
	min     int
	max     int
	avg     float64
	n50     int
	occ     float64 // Mean fraction of residues per column.
}

var (
	data      = flag.String("data", filepath.Join("src", "data"), "data specifies the root of the project data tree.")
	dir       = flag.String("in", "", "in specifies the alignments directory (default {data}/alignments).")
	format    = flag.String("format", "auto", "format specifies the alignment format: auto, fasta or clustal.")
	consensus = flag.String("consensus", "", "consensus specifies a FASTA file to write gene consensus sequences to.")
	plots     = flag.String("plots", "", "plots specifies a directory to write column occupancy plots to.")
	rainbows  = flag.String("rainbows", "", "rainbows specifies a directory to write consensus k-mer rainbows to.")
	k         = flag.Int("k", 6, "k specifies the rainbow kmer size.")
	chunk     = flag.Int("chunk", 20, "chunk specifies the rainbow chunk width.")
	help      = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *dir == "" {
		*dir = filepath.Join(*data, "alignments")
	}
	var f msa.Format
	switch *format {
	case "auto":
		f = msa.Auto
	case "fasta":
		f = msa.Fasta
	case "clustal":
		f = msa.Clustal
	default:
		log.Fatalf("unknown alignment format %q", *format)
	}

	alns, err := msa.ReadDir(*dir, f)
	if err != nil {
		log.Fatalf("failed to read alignments: %v", err)
	}
	for _, d := range []string{*plots, *rainbows} {
		if d == "" {
			continue
		}
		err = os.MkdirAll(d, 0o775)
		if err != nil {
			log.Fatalf("failed to create output directory: %v", err)
		}
	}

	var cw *fasta.Writer
	if *consensus != "" {
		cf, err := os.Create(*consensus)
		if err != nil {
			log.Fatalf("failed to create consensus file: %v", err)
		}
		defer cf.Close()
		cw = fasta.NewWriter(cf, 60)
	}

	for _, gene := range alns.Genes() {
		set := alns[gene]
		s, err := stats(gene, set)
		if err != nil {
			log.Printf("skipping %s: %v", gene, err)
			continue
		}
		fmt.Printf("%+v\n", s)

		if *plots != "" {
			prof, err := msa.Occupancy(set)
			if err != nil {
				log.Fatalf("failed to profile %s: %v", gene, err)
			}
			err = render.Occupancy(filepath.Join(*plots, gene+".pdf"), gene, prof)
			if err != nil {
				log.Fatalf("failed to plot %s: %v", gene, err)
			}
		}
		if cw == nil && *rainbows == "" {
			continue
		}
		cons, err := msa.Consensus(gene, set)
		if err != nil {
			log.Fatalf("failed to build consensus of %s: %v", gene, err)
		}
		if cw != nil {
			_, err = cw.Write(linear.NewSeq(gene, alphabet.BytesToLetters([]byte(cons)), alphabet.DNAgapped))
			if err != nil {
				log.Fatalf("failed to write consensus of %s: %v", gene, err)
			}
		}
		if *rainbows != "" {
			err = rainbow(filepath.Join(*rainbows, gene+".png"), gene, cons)
			if err != nil {
				log.Printf("no rainbow for %s: %v", gene, err)
			}
		}
	}
}

func stats(gene string, set msa.Set) (alnStats, error) {
	b := alnStats{name: gene, min: math.MaxInt32}
	err := set.Validate()
	if err != nil {
		return b, err
	}
	b.seqs = len(set)
	b.columns = set.Len()
	if b.seqs == 0 || b.columns == 0 {
		return b, msa.ErrEmpty
	}

	var (
		seqlens []int
		size    int
	)
	for _, seq := range set {
		n := len(seq) - strings.Count(seq, string(msa.Gap))
		seqlens = append(seqlens, n)
		size += n
		if n < b.min {
			b.min = n
		}
		if n > b.max {
			b.max = n
		}
	}
	b.avg = float64(size) / float64(b.seqs)

	// Sort in descending order of sequence length.
	sort.Sort(sort.Reverse(sort.IntSlice(seqlens)))
	for i, csum := 0, 0; i < len(seqlens); i++ {
		csum += seqlens[i]
		if csum >= size/2 {
			b.n50 = seqlens[i]
			break
		}
	}

	prof, err := msa.Occupancy(set)
	if err != nil {
		return b, err
	}
	b.occ = stat.Mean(prof.Fractions(), nil)
	return b, nil
}

func rainbow(path, gene, cons string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = render.Rainbow(f, gene, cons, *k, *chunk, 100)
	if err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
