// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dndsplot draws the dN/dS distribution of each significant organism as a
// grid of histograms, and prints summary statistics of each distribution.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/biogo/proteoglycan/dnds"
	"github.com/biogo/proteoglycan/organisms"
	"github.com/biogo/proteoglycan/render"
)

var (
	data = flag.String("data", filepath.Join("src", "data"), "data specifies the root of the project data tree.")
	out  = flag.String("out", "", "out specifies the figure file (default {data}/visualizations/dnds/histograms.pdf).")
	xmax = flag.Float64("xmax", render.DefaultGrid.XMax, "xmax specifies the x axis limit, 0 for automatic.")
	ymax = flag.Float64("ymax", render.DefaultGrid.YMax, "ymax specifies the y axis limit, 0 for automatic.")
	help = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *out == "" {
		*out = filepath.Join(*data, "visualizations", "dnds", "histograms.pdf")
	}

	f, err := os.Open(filepath.Join(*data, "phylogeny", "significant_organisms.txt"))
	if err != nil {
		log.Fatalf("failed to open significant organisms: %v", err)
	}
	orgs, err := organisms.ReadSignificant(f)
	f.Close()
	if err != nil {
		log.Fatalf("failed to read significant organisms: %v", err)
	}

	values := make(map[string][]float64, len(orgs))
	var max float64
	for _, org := range orgs {
		f, err := os.Open(filepath.Join(*data, "dnds", org+".csv"))
		if err != nil {
			log.Fatalf("failed to open scores: %v", err)
		}
		v, err := dnds.ReadValues(f)
		f.Close()
		if err != nil {
			log.Fatalf("failed to read scores of %s: %v", org, err)
		}
		values[org] = v
		if len(v) == 0 {
			continue
		}
		max = floats.Max(append([]float64{max}, v...))
		fmt.Printf("%s\tn=%d\tmean=%.3f\tmedian=%.3f\n", org, len(v), stat.Mean(v, nil), stat.Quantile(0.5, stat.Empirical, v, nil))
	}
	fmt.Fprintf(os.Stderr, "Maximum dN/dS: %v\n", max)

	err = os.MkdirAll(filepath.Dir(*out), 0o775)
	if err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}
	g := render.DefaultGrid
	g.XMax, g.YMax = *xmax, *ymax
	err = render.Histograms(*out, values, orgs, g)
	if err != nil {
		log.Fatalf("failed to draw histograms: %v", err)
	}
}
