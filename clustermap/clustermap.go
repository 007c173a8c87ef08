// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// clustermap clusters the organism gene presence vectors by organism and
// by gene and draws the reordered presence matrix. The organism cluster
// tree is written in Newick format and, optionally, the organism
// similarity graph and its communities.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/biogo/proteoglycan/phylo"
	"github.com/biogo/proteoglycan/render"
	"github.com/biogo/proteoglycan/taxon"
)

var (
	data       = flag.String("data", filepath.Join("src", "data"), "data specifies the root of the project data tree.")
	metric     = flag.String("metric", "euclidean", "metric specifies the vector distance: euclidean or jaccard.")
	out        = flag.String("out", "", "out specifies the figure file (default {data}/visualizations/clusters/genes_clustermap.pdf).")
	dot        = flag.String("dot", "", "dot specifies a file to write the organism Jaccard similarity graph to.")
	thresh     = flag.Float64("thresh", 0.8, "thresh specifies the minimum similarity of graph edges.")
	resolution = flag.Float64("resolution", 1, "resolution specifies the community detection resolution.")
	help       = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *out == "" {
		*out = filepath.Join(*data, "visualizations", "clusters", "genes_clustermap.pdf")
	}
	var dist phylo.Distance
	switch *metric {
	case "euclidean":
		dist = phylo.Euclidean
	case "jaccard":
		dist = phylo.Jaccard
	default:
		log.Fatalf("unknown metric %q", *metric)
	}

	f, err := os.Open(filepath.Join(*data, "genes", "organisms_genes_vectors.txt"))
	if err != nil {
		log.Fatalf("failed to open gene vectors: %v", err)
	}
	orgs, genes, m, err := taxon.ReadVectors(f)
	f.Close()
	if err != nil {
		log.Fatalf("failed to read gene vectors: %v", err)
	}

	rows, err := phylo.Cluster(orgs, m, dist)
	if err != nil {
		log.Fatalf("failed to cluster organisms: %v", err)
	}
	cols, err := phylo.Cluster(genes, mat.DenseCopyOf(m.T()), dist)
	if err != nil {
		log.Fatalf("failed to cluster genes: %v", err)
	}
	ordered := mat.NewDense(len(rows.Order), len(cols.Order), nil)
	for i, r := range rows.Order {
		for j, c := range cols.Order {
			ordered.Set(i, j, m.At(r, c))
		}
	}

	err = os.MkdirAll(filepath.Dir(*out), 0o775)
	if err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}
	err = render.HeatMap(*out, "Organisms gene presence", rows.Leaves, cols.Leaves, ordered)
	if err != nil {
		log.Fatalf("failed to draw clustermap: %v", err)
	}
	nwk := strings.TrimSuffix(*out, filepath.Ext(*out)) + ".nwk"
	err = os.WriteFile(nwk, []byte(rows.Newick+"\n"), 0o664)
	if err != nil {
		log.Fatalf("failed to write cluster tree: %v", err)
	}

	if *dot == "" {
		return
	}
	g, err := phylo.NewSimilarityGraph(orgs, m, phylo.Jaccard, *thresh)
	if err != nil {
		log.Fatalf("failed to build similarity graph: %v", err)
	}
	df, err := os.Create(*dot)
	if err != nil {
		log.Fatalf("failed to create graph file: %v", err)
	}
	err = g.WriteDOT(df, "organisms")
	if err != nil {
		log.Fatalf("failed to write similarity graph: %v", err)
	}
	err = df.Close()
	if err != nil {
		log.Fatalf("failed to close graph file: %v", err)
	}
	for i, c := range g.Communities(*resolution) {
		fmt.Printf("%d\t%d\t%s\n", i, len(c), strings.Join(c, "/"))
	}
}
