// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// phylogeny draws the global organism phylogeny in standard and radial
// layouts, one tree per gene restricted to the organisms carrying that
// gene, and the significant organism phylogeny.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/evolbioinfo/gotree/tree"

	"github.com/biogo/proteoglycan/phylo"
	"github.com/biogo/proteoglycan/render"
	"github.com/biogo/proteoglycan/taxon"
)

var (
	data   = flag.String("data", filepath.Join("src", "data"), "data specifies the root of the project data tree.")
	global = flag.String("tree", "", "tree specifies the global Newick tree (default {data}/phylogeny/phyliptree.phy).")
	sig    = flag.String("sig", "", "sig specifies the significant organisms Newick tree (default {data}/phylogeny/sig_orgs_phyliptree.phy).")
	genes  = flag.Bool("genes", true, "genes specifies that per gene trees are drawn.")
	help   = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *global == "" {
		*global = filepath.Join(*data, "phylogeny", "phyliptree.phy")
	}
	if *sig == "" {
		*sig = filepath.Join(*data, "phylogeny", "sig_orgs_phyliptree.phy")
	}
	out := filepath.Join(*data, "visualizations", "phylogeny")

	t, err := read(*global)
	if err != nil {
		log.Fatalf("failed to read global tree: %v", err)
	}
	err = draw(t, filepath.Join(out, "standard", "global.pdf"), "", phylo.Rectangular, false)
	if err != nil {
		log.Fatalf("failed to draw global tree: %v", err)
	}
	err = draw(t, filepath.Join(out, "radial", "global.pdf"), "", phylo.Circular, false)
	if err != nil {
		log.Fatalf("failed to draw radial global tree: %v", err)
	}

	if *genes {
		f, err := os.Open(filepath.Join(*data, "genes", "genes_organisms.txt"))
		if err != nil {
			log.Fatalf("failed to open gene organisms: %v", err)
		}
		order, orgs, err := taxon.ReadGeneOrganisms(f)
		f.Close()
		if err != nil {
			log.Fatalf("failed to read gene organisms: %v", err)
		}
		for _, g := range order {
			p, err := phylo.Prune(t, orgs[g])
			if err != nil {
				log.Printf("no tree for %s: %v", g, err)
				continue
			}
			for _, mode := range []struct {
				dir  string
				mode phylo.Mode
			}{{"standard", phylo.Rectangular}, {"radial", phylo.Circular}} {
				err = draw(p, filepath.Join(out, mode.dir, g+".pdf"), g, mode.mode, false)
				if err != nil {
					log.Fatalf("failed to draw %s tree: %v", g, err)
				}
			}
		}
	}

	st, err := read(*sig)
	if errors.Is(err, os.ErrNotExist) {
		return
	}
	if err != nil {
		log.Fatalf("failed to read significant organisms tree: %v", err)
	}
	err = draw(st, filepath.Join(out, "sig_orgs_phylo.pdf"), "Significant organisms phylogenetic relationship", phylo.Circular, true)
	if err != nil {
		log.Fatalf("failed to draw significant organisms tree: %v", err)
	}
}

func read(path string) (*tree.Tree, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return phylo.Parse(string(b))
}

func draw(t *tree.Tree, path, title string, mode phylo.Mode, internal bool) error {
	l, err := phylo.NewLayout(t, mode)
	if err != nil {
		return err
	}
	err = os.MkdirAll(filepath.Dir(path), 0o775)
	if err != nil {
		return err
	}
	err = render.Dendrogram(path, title, l, internal)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
