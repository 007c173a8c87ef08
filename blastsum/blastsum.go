// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// blastsum summarises the BLAST JSON results of the study genes, keeping
// hits with high query coverage, into a single text report.
package main

import (
	"bufio"
	"errors"
	"flag"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/proteoglycan/blast"
)

var (
	data = flag.String("data", filepath.Join("src", "data"), "data specifies the root of the project data tree.")
	in   = flag.String("in", "", "in specifies the BLAST results directory (default {data}/genes/blast).")
	out  = flag.String("out", "", "out specifies the report file (default {data}/genes/blast_results.txt).")
	help = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *in == "" {
		*in = filepath.Join(*data, "genes", "blast")
	}
	if *out == "" {
		*out = filepath.Join(*data, "genes", "blast_results.txt")
	}

	fis, err := ioutil.ReadDir(*in)
	if err != nil {
		log.Fatalf("failed to read BLAST directory: %v", err)
	}
	of, err := os.Create(*out)
	if err != nil {
		log.Fatalf("failed to create report: %v", err)
	}
	w := bufio.NewWriter(of)
	w.WriteString(blast.Header)
	for _, fi := range fis {
		if fi.IsDir() || strings.HasPrefix(fi.Name(), ".") {
			continue
		}
		gene := strings.SplitN(fi.Name(), ".", 2)[0]
		f, err := os.Open(filepath.Join(*in, fi.Name()))
		if err != nil {
			log.Fatalf("failed to open BLAST result: %v", err)
		}
		hits, err := blast.Decode(f)
		f.Close()
		if errors.Is(err, blast.ErrAccess) {
			continue
		}
		if err != nil {
			log.Fatalf("failed to read BLAST result %s: %v", fi.Name(), err)
		}
		err = blast.WriteReport(w, gene, hits)
		if err != nil {
			log.Fatalf("failed to write report: %v", err)
		}
	}
	err = w.Flush()
	if err != nil {
		log.Fatalf("failed to write report: %v", err)
	}
	err = of.Close()
	if err != nil {
		log.Fatalf("failed to close report: %v", err)
	}
}
