// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// genefunc draws the study genes against their functional classes.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/biogo/proteoglycan/genes"
	"github.com/biogo/proteoglycan/render"
)

var (
	data = flag.String("data", filepath.Join("src", "data"), "data specifies the root of the project data tree.")
	in   = flag.String("genes", "", "genes specifies a gene list to draw (default all study genes).")
	out  = flag.String("out", "", "out specifies the figure file (default {data}/visualizations/genes/functions.pdf).")
	help = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *out == "" {
		*out = filepath.Join(*data, "visualizations", "genes", "functions.pdf")
	}

	names := genes.Names()
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			log.Fatalf("failed to open gene list: %v", err)
		}
		list, err := genes.ReadList(f)
		f.Close()
		if err != nil {
			log.Fatalf("failed to read gene list: %v", err)
		}
		names = names[:0]
		for _, g := range list {
			names = append(names, g.Name)
		}
	}

	m, fns := genes.FunctionMatrix(names)
	err := os.MkdirAll(filepath.Dir(*out), 0o775)
	if err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}
	err = render.HeatMap(*out, "Proteoglycan pathway gene functions", names, fns, m)
	if err != nil {
		log.Fatalf("failed to draw gene functions: %v", err)
	}
}
