// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// taxa catalogs the organisms carrying orthologues of each study gene and
// collects their taxonomic lineages from EBI or NCBI.
//
// The catalog files gene_frequencies.txt, genes_organisms.txt,
// organisms_genes.txt and organisms_genes_vectors.txt are written to the
// genes data directory and the lineages to phylogeny/taxa_info.txt.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/biogo/proteoglycan/genes"
	"github.com/biogo/proteoglycan/taxon"
)

var (
	data    = flag.String("data", filepath.Join("src", "data"), "data specifies the root of the project data tree.")
	in      = flag.String("genes", "", "genes specifies the gene list (default {data}/genes/genes.txt).")
	source  = flag.String("source", "ebi", "source specifies the taxonomy service: ebi or entrez.")
	email   = flag.String("email", "", "email specifies the email address sent to NCBI (required for entrez).")
	retries = flag.Int("retry", 5, "retry specifies the number of attempts to retrieve entrez records.")
	delay   = flag.Duration("delay", taxon.DefaultDelay, "delay specifies the pause between lineage lookups.")
	catOnly = flag.Bool("catalog", false, "catalog specifies that only the catalog files are written.")
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

	var src taxon.Source
	switch *source {
	case "ebi":
		src = taxon.EBI{HTTPClient: &http.Client{Timeout: time.Minute}}
	case "entrez":
		if *email == "" && !*catOnly {
			flag.Usage()
			os.Exit(1)
		}
		src = taxon.Entrez{Email: *email, Retries: *retries}
	default:
		log.Fatalf("unknown taxonomy source %q", *source)
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

	cat, err := taxon.ReadCatalog(filepath.Join(*data, "organisms"), list)
	if err != nil {
		log.Fatalf("failed to build catalog: %v", err)
	}
	geneDir := filepath.Join(*data, "genes")
	for _, out := range []struct {
		name  string
		write func(io.Writer) error
	}{
		{"gene_frequencies.txt", cat.WriteGeneFrequencies},
		{"genes_organisms.txt", cat.WriteGenesOrganisms},
		{"organisms_genes.txt", cat.WriteOrganismsGenes},
		{"organisms_genes_vectors.txt", cat.WriteVectors},
	} {
		err = create(filepath.Join(geneDir, out.name), out.write)
		if err != nil {
			log.Fatalf("failed to write %s: %v", out.name, err)
		}
	}
	fmt.Fprintf(os.Stderr, "Cataloged %d organisms over %d genes.\n", len(cat.Organisms()), len(cat.Genes()))
	if *catOnly {
		return
	}

	path := filepath.Join(*data, "phylogeny", "taxa_info.txt")
	err = os.MkdirAll(filepath.Dir(path), 0o775)
	if err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}
	err = create(path, func(w io.Writer) error {
		skipped, err := taxon.Collect(context.Background(), src, cat.Organisms(), w, *delay)
		for _, org := range skipped {
			fmt.Fprintf(os.Stderr, "Failed to find taxon information for organism: %s\n", org)
		}
		return err
	})
	if err != nil {
		log.Fatalf("failed to collect lineages: %v", err)
	}
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
