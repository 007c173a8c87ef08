// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// curate reads the stored Ensembl orthologue records of the study genes
// and writes, for each gene, the list of unique organisms and the FASTA
// of orthologue sequences to the organisms data directory.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/biogo/proteoglycan/ensembl"
	"github.com/biogo/proteoglycan/genes"
)

var (
	data = flag.String("data", filepath.Join("src", "data"), "data specifies the root of the project data tree.")
	in   = flag.String("genes", "", "genes specifies the gene list (default {data}/genes/genes.txt).")
	keep = flag.Bool("keep-going", false, "keep-going specifies that curation failures are reported and skipped.")
	help = flag.Bool("help", false, "help prints this message.")
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

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("failed to open gene list: %v", err)
	}
	list, err := genes.ReadList(f)
	f.Close()
	if err != nil {
		log.Fatalf("failed to read gene list: %v", err)
	}

	src := filepath.Join(*data, "orthologs")
	dst := filepath.Join(*data, "organisms")
	err = os.MkdirAll(dst, 0o775)
	if err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	var failed int
	for _, g := range list {
		err := curate(g, src, dst)
		if err != nil {
			if !*keep {
				log.Fatalf("failed to curate %v: %v", g, err)
			}
			log.Printf("skipping %v: %v", g, err)
			failed++
		}
	}
	fmt.Fprintf(os.Stderr, "Curated %d of %d genes.\n", len(list)-failed, len(list))
}

func curate(g genes.Gene, src, dst string) error {
	f, err := ensembl.OpenRecord(src, g.ID)
	if err != nil {
		return err
	}
	resp, err := ensembl.Decode(f)
	f.Close()
	if err != nil {
		return err
	}
	c, err := ensembl.Curate(g.ID, resp)
	if err != nil {
		return err
	}

	err = create(filepath.Join(dst, g.ID+".txt"), func(w io.Writer) error {
		return ensembl.WriteOrganisms(w, c.Organisms)
	})
	if err != nil {
		return err
	}
	return create(filepath.Join(dst, g.String()+".txt"), func(w io.Writer) error {
		return ensembl.WriteSequences(w, c.Sequences)
	})
}

func create(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = fn(f)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
