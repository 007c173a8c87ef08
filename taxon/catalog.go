// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package taxon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/biogo/proteoglycan/genes"
)

// TaxaInfoHeader is the header line of a taxa info file.
const TaxaInfoHeader = "Kingdom,Subkingdom,Phylum,Clade,Subphylum,Clade,Class,Subclass,Superorder,Order,Suborder,Subsuborder,Family,Genus,Species"

// Catalog records which organisms carry orthologues of which genes.
// Organisms and genes are kept in first seen order.
type Catalog struct {
	orgs    []string
	orgGene map[string][]string

	genes   []string
	geneOrg map[string][]string
	seen    map[[2]string]bool
}

// NewCatalog returns an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		orgGene: make(map[string][]string),
		geneOrg: make(map[string][]string),
		seen:    make(map[[2]string]bool),
	}
}

// Add reads the organism lines of an ortholog organism file for gene.
// Only lines starting with '>' are organisms, and each is normalized with
// NormalizeName. Repeated organisms within a gene are counted once.
func (c *Catalog) Add(gene string, r io.Reader) error {
	if _, ok := c.geneOrg[gene]; !ok {
		c.genes = append(c.genes, gene)
		c.geneOrg[gene] = nil
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1<<20)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, ">") {
			continue
		}
		org := NormalizeName(line)
		if org == "" {
			continue
		}
		k := [2]string{gene, org}
		if c.seen[k] {
			continue
		}
		c.seen[k] = true
		if _, ok := c.orgGene[org]; !ok {
			c.orgs = append(c.orgs, org)
		}
		c.orgGene[org] = append(c.orgGene[org], gene)
		c.geneOrg[gene] = append(c.geneOrg[gene], org)
	}
	return sc.Err()
}

// ReadCatalog builds a Catalog from the organism files {name}_{id}.txt in
// dir for each gene in list.
func ReadCatalog(dir string, list []genes.Gene) (*Catalog, error) {
	c := NewCatalog()
	for _, g := range list {
		f, err := os.Open(filepath.Join(dir, g.String()+".txt"))
		if err != nil {
			return nil, err
		}
		err = c.Add(g.Name, f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("taxon: %s: %w", g, err)
		}
	}
	return c, nil
}

// Organisms returns the organisms in c.
func (c *Catalog) Organisms() []string { return append([]string(nil), c.orgs...) }

// Genes returns the genes in c.
func (c *Catalog) Genes() []string { return append([]string(nil), c.genes...) }

// Frequency returns the number of genes org carries.
func (c *Catalog) Frequency(org string) int { return len(c.orgGene[org]) }

// GenesOf returns the genes carried by org.
func (c *Catalog) GenesOf(org string) []string { return c.orgGene[org] }

// OrganismsOf returns the organisms carrying gene.
func (c *Catalog) OrganismsOf(gene string) []string { return c.geneOrg[gene] }

// WriteGeneFrequencies writes the per organism gene counts.
func (c *Catalog) WriteGeneFrequencies(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Organism,Gene Frequency")
	for _, o := range c.orgs {
		fmt.Fprintf(bw, "%s,%d\n", o, c.Frequency(o))
	}
	return bw.Flush()
}

// WriteGenesOrganisms writes the organisms of each gene separated by '/'.
func (c *Catalog) WriteGenesOrganisms(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Gene,Organisms")
	for _, g := range c.genes {
		fmt.Fprintf(bw, "%s,%s\n", g, strings.Join(c.geneOrg[g], "/"))
	}
	return bw.Flush()
}

// WriteOrganismsGenes writes the genes of each organism separated by spaces.
func (c *Catalog) WriteOrganismsGenes(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Organism,Genes")
	for _, o := range c.orgs {
		fmt.Fprintf(bw, "%s,%s\n", o, strings.Join(c.orgGene[o], " "))
	}
	return bw.Flush()
}

// Vectors returns the organism by gene presence matrix of c with rows in
// Organisms order and columns in Genes order.
func (c *Catalog) Vectors() *mat.Dense {
	if len(c.orgs) == 0 || len(c.genes) == 0 {
		return nil
	}
	col := make(map[string]int, len(c.genes))
	for j, g := range c.genes {
		col[g] = j
	}
	m := mat.NewDense(len(c.orgs), len(c.genes), nil)
	for i, o := range c.orgs {
		for _, g := range c.orgGene[o] {
			m.Set(i, col[g], 1)
		}
	}
	return m
}

// WriteVectors writes the presence matrix of c as CSV with a header of
// gene names.
func (c *Catalog) WriteVectors(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Organism,%s\n", strings.Join(c.genes, ","))
	m := c.Vectors()
	for i, o := range c.orgs {
		bw.WriteString(o)
		for j := range c.genes {
			bw.WriteByte(',')
			bw.WriteString(strconv.Itoa(int(m.At(i, j))))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadVectors parses a file written by WriteVectors.
func ReadVectors(r io.Reader) (orgs, geneNames []string, m *mat.Dense, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1<<20)
	var data []float64
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			continue
		}
		f := strings.Split(text, ",")
		if line == 1 {
			geneNames = f[1:]
			continue
		}
		if len(f) != len(geneNames)+1 {
			return nil, nil, nil, fmt.Errorf("taxon: line %d: %d fields for %d genes", line, len(f)-1, len(geneNames))
		}
		orgs = append(orgs, f[0])
		for _, v := range f[1:] {
			x, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("taxon: line %d: %w", line, err)
			}
			data = append(data, x)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, nil, err
	}
	if len(orgs) == 0 || len(geneNames) == 0 {
		return nil, nil, nil, errors.New("taxon: no vectors")
	}
	return orgs, geneNames, mat.NewDense(len(orgs), len(geneNames), data), nil
}

// ReadGeneOrganisms parses a file written by WriteGenesOrganisms, returning
// the genes in file order and the organisms of each.
func ReadGeneOrganisms(r io.Reader) (order []string, orgs map[string][]string, err error) {
	orgs = make(map[string][]string)
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1<<20)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if line == 1 || text == "" {
			continue
		}
		i := strings.Index(text, ",")
		if i < 0 {
			return nil, nil, fmt.Errorf("taxon: line %d: missing organisms field", line)
		}
		g := text[:i]
		if _, ok := orgs[g]; !ok {
			order = append(order, g)
		}
		for _, o := range strings.Split(text[i+1:], "/") {
			if o = strings.TrimSpace(o); o != "" {
				orgs[g] = append(orgs[g], o)
			}
		}
		if orgs[g] == nil {
			orgs[g] = []string{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return order, orgs, nil
}
