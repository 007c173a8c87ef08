// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// classify draws the frequency of organism clades recorded in the taxa
// info file and the grouping of the significant organisms by skeletal
// tissue and habitat.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/biogo/proteoglycan/organisms"
	"github.com/biogo/proteoglycan/render"
	"github.com/biogo/proteoglycan/taxon"
)

var (
	data   = flag.String("data", filepath.Join("src", "data"), "data specifies the root of the project data tree.")
	column = flag.Int("column", taxon.CladeColumn, "column specifies the taxa info column to count.")
	linear = flag.Bool("linear", false, "linear specifies a linear frequency axis.")
	help   = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	out := filepath.Join(*data, "visualizations", "taxa")
	err := os.MkdirAll(out, 0o775)
	if err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	f, err := os.Open(filepath.Join(*data, "phylogeny", "taxa_info.txt"))
	if err != nil {
		log.Fatalf("failed to open taxa info: %v", err)
	}
	counts, err := taxon.CladeCounts(f, *column)
	f.Close()
	if err != nil {
		log.Fatalf("failed to read taxa info: %v", err)
	}
	clades := make([]string, 0, len(counts))
	for c := range counts {
		clades = append(clades, c)
	}
	sort.Strings(clades)
	freqs := make([]float64, len(clades))
	for i, c := range clades {
		freqs[i] = float64(counts[c])
		fmt.Printf("%s\t%d\n", c, counts[c])
	}
	err = render.Scatter(filepath.Join(out, "taxa_info.pdf"),
		"Frequency of organisms classification based on bone, or cartilage, presence",
		clades, freqs, !*linear)
	if err != nil {
		log.Fatalf("failed to draw clade frequencies: %v", err)
	}

	f, err = os.Open(filepath.Join(*data, "phylogeny", "significant_organisms.txt"))
	if err != nil {
		log.Fatalf("failed to open significant organisms: %v", err)
	}
	orgs, err := organisms.ReadSignificant(f)
	f.Close()
	if err != nil {
		log.Fatalf("failed to read significant organisms: %v", err)
	}
	for _, g := range []organisms.Grouping{organisms.BoneGroups, organisms.HabitatGroups} {
		n := make([]float64, len(g.Classes))
		idx := make(map[string]int, len(g.Classes))
		for i, c := range g.Classes {
			idx[c] = i
		}
		for _, o := range orgs {
			c, ok := g.Class(o)
			if !ok {
				log.Printf("no %s class for %s", g.Name, o)
				continue
			}
			n[idx[c]]++
		}
		err = render.Bars(filepath.Join(out, g.Name+".pdf"), "Significant organisms by "+g.Name, g.Classes, n)
		if err != nil {
			log.Fatalf("failed to draw %s groups: %v", g.Name, err)
		}
	}
}
