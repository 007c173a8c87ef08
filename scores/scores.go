// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// scores computes the pairwise dN/dS ratios of the significant organisms
// for every gene alignment and writes one CSV per organism, with a row for
// each partner organism and a column for each gene, to the dnds data
// directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/biogo/proteoglycan/dnds"
	"github.com/biogo/proteoglycan/msa"
	"github.com/biogo/proteoglycan/organisms"
)

var (
	data    = flag.String("data", filepath.Join("src", "data"), "data specifies the root of the project data tree.")
	sig     = flag.String("orgs", "", "orgs specifies the significant organisms file (default {data}/phylogeny/significant_organisms.txt).")
	chars   = flag.Bool("check", true, "check specifies that alignment columns with ambiguous letters are removed.")
	workers = flag.Int("workers", runtime.NumCPU(), "workers specifies the number of concurrent estimates.")
	verbose = flag.Bool("v", false, "v specifies that estimator failures are logged.")
	help    = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *sig == "" {
		*sig = filepath.Join(*data, "phylogeny", "significant_organisms.txt")
	}

	f, err := os.Open(*sig)
	if err != nil {
		log.Fatalf("failed to open significant organisms: %v", err)
	}
	orgs, err := organisms.ReadSignificant(f)
	f.Close()
	if err != nil {
		log.Fatalf("failed to read significant organisms: %v", err)
	}

	alns, err := msa.ReadDir(filepath.Join(*data, "alignments"), msa.Auto)
	if err != nil {
		log.Fatalf("failed to read alignments: %v", err)
	}
	for _, g := range alns.Genes() {
		if err := alns[g].Validate(); err != nil {
			log.Fatalf("invalid alignment %s: %v", g, err)
		}
	}

	s := dnds.Scorer{CheckChars: *chars}
	if *verbose {
		s.Logger = log.New(os.Stderr, "dnds: ", log.Lshortfile)
	}
	fmt.Fprintf(os.Stderr, "Scoring %d organisms over %d genes.\n", len(orgs), len(alns))
	m := dnds.Compute(alns, orgs, s, *workers)

	out := filepath.Join(*data, "dnds")
	err = os.MkdirAll(out, 0o775)
	if err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}
	for _, org := range orgs {
		f, err := os.Create(filepath.Join(out, org+".csv"))
		if err != nil {
			log.Fatalf("failed to create scores file: %v", err)
		}
		err = m.WriteCSV(f, org)
		if err != nil {
			log.Fatalf("failed to write scores of %s: %v", org, err)
		}
		err = f.Close()
		if err != nil {
			log.Fatalf("failed to close scores of %s: %v", org, err)
		}
	}
}
