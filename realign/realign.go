// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// realign performs multiple alignment of the curated orthologue sequences
// of each study gene using MUSCLE or MAFFT, writing aligned FASTA to the
// alignments data directory.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/biogo/proteoglycan/genes"
	"github.com/biogo/proteoglycan/msa"
)

var (
	data    = flag.String("data", filepath.Join("src", "data"), "data specifies the root of the project data tree.")
	in      = flag.String("genes", "", "genes specifies the gene list (default {data}/genes/genes.txt).")
	aligner = flag.String("aligner", "muscle", "aligner specifies the aligner to use: muscle or mafft.")
	width   = flag.Int("width", 60, "width specifies the FASTA line width.")
	help    = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *in == "" {
		*in = filepath.Join(*data, "genes", "genes.txt")
	}

	var a msa.Aligner
	switch *aligner {
	case "muscle":
		a = msa.Muscle
	case "mafft":
		a = msa.Mafft
	default:
		log.Fatalf("unknown aligner %q", *aligner)
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("failed to open gene list: %v", err)
	}
	list, err := genes.ReadList(f)
	f.Close()
	if err != nil {
		log.Fatalf("failed to read gene list: %v", err)
	}

	out := filepath.Join(*data, "alignments")
	err = os.MkdirAll(out, 0o775)
	if err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}
	for _, g := range list {
		fmt.Fprintf(os.Stderr, "Aligning %v.\n", g)
		err := realign(g, a, filepath.Join(*data, "organisms"), out)
		if err != nil {
			log.Fatalf("failed to align %v: %v", g, err)
		}
	}
}

func realign(g genes.Gene, a msa.Aligner, src, dst string) error {
	f, err := os.Open(filepath.Join(src, g.String()+".txt"))
	if err != nil {
		return err
	}
	set, err := msa.Realign(f, a)
	f.Close()
	if err != nil {
		return err
	}

	o, err := os.Create(filepath.Join(dst, g.String()+".fasta"))
	if err != nil {
		return err
	}
	err = write(o, set)
	if err != nil {
		o.Close()
		return err
	}
	return o.Close()
}

func write(w io.Writer, set msa.Set) error {
	fw := fasta.NewWriter(w, *width)
	for _, org := range set.Organisms() {
		s := linear.NewSeq(org, alphabet.BytesToLetters([]byte(set[org])), alphabet.DNAgapped)
		_, err := fw.Write(s)
		if err != nil {
			return err
		}
	}
	return nil
}
