// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// orthologs retrieves the Ensembl orthologue records of the study genes,
// writing one JSON record per gene to the orthologs data directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/biogo/proteoglycan/ensembl"
	"github.com/biogo/proteoglycan/genes"
)

var (
	data  = flag.String("data", filepath.Join("src", "data"), "data specifies the root of the project data tree.")
	in    = flag.String("genes", "", "genes specifies the gene list (default {data}/genes/genes.txt).")
	base  = flag.String("base", ensembl.DefaultBaseURL, "base specifies the Ensembl REST server.")
	delay = flag.Duration("delay", ensembl.DefaultDelay, "delay specifies the pause between requests.")
	help  = flag.Bool("help", false, "help prints this message.")
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

	out := filepath.Join(*data, "orthologs")
	err = os.MkdirAll(out, 0o775)
	if err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	c := &ensembl.Client{
		BaseURL:    *base,
		HTTPClient: &http.Client{Timeout: time.Minute},
		Delay:      *delay,
		Logger:     log.New(os.Stderr, "", log.LstdFlags),
	}
	err = c.Collect(context.Background(), list, out)
	if err != nil {
		log.Fatalf("failed to collect orthologues: %v", err)
	}
	fmt.Fprintf(os.Stderr, "Retrieved orthologues of %d genes.\n", len(list))
}
