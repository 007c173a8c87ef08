// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Convert a gene multiple-sequence alignment in FASTA or ClustalW format
// to PHYLIP (sequential) format.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/biogo/proteoglycan/msa"
)

var (
	inf  = flag.String("inf", "", "input alignment filename, defaults to stdin")
	outf = flag.String("outf", "", "output PHYLIP filename, defaults to stdout")
	help = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	in := os.Stdin
	if *inf != "" {
		f, err := os.Open(*inf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open alignment file: %v.", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}
	set, err := msa.Read(in, msa.Auto)
	if err != nil {
		log.Fatalf("failed to read alignment: %v", err)
	}

	out := os.Stdout
	if *outf != "" {
		of, err := os.Create(*outf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open PHYLIP file: %v.", err)
			os.Exit(1)
		}
		defer of.Close()
		out = of
	}
	err = msa.WritePhylip(out, set, log.New(os.Stderr, "WARNING: ", 0))
	if err != nil {
		log.Fatalf("failed to write PHYLIP: %v", err)
	}
}
