// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package taxon

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/ncbi/entrez"
)

const taxonomyDB = "taxonomy"

// Entrez is a Source backed by the NCBI taxonomy database.
type Entrez struct {
	// Tool and Email identify the client to NCBI. Email is required.
	Tool  string
	Email string

	// Retries is the number of fetch attempts. One attempt is made
	// if Retries is less than one.
	Retries int
}

// Lineage returns the lineage of org held by NCBI taxonomy.
func (e Entrez) Lineage(ctx context.Context, org string) (Lineage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tool := e.Tool
	if tool == "" {
		tool = "biogo.proteoglycan"
	}

	h := entrez.History{}
	s, err := entrez.DoSearch(taxonomyDB, org+"[Scientific Name]", nil, &h, tool, e.Email)
	if err != nil {
		return nil, fmt.Errorf("taxon: search %s: %w", org, err)
	}
	if s.Count == 0 {
		return nil, fmt.Errorf("%s: %w", org, ErrNotFound)
	}

	var (
		buf bytes.Buffer
		p   = &entrez.Parameters{RetMax: 1, RetMode: "xml"}
	)
	for t := 0; t < e.Retries || t == 0; t++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		buf.Reset()
		var r io.ReadCloser
		r, err = entrez.Fetch(taxonomyDB, p, tool, e.Email, &h)
		if err != nil {
			continue
		}
		_, err = io.Copy(&buf, r)
		r.Close()
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("taxon: fetch %s: %w", org, err)
	}

	taxa, err := decodeTaxaSet(&buf)
	if err != nil {
		return nil, fmt.Errorf("taxon: %s: %w", org, err)
	}
	for _, t := range taxa {
		if strings.EqualFold(t.ScientificName, org) || len(taxa) == 1 {
			l := t.lineage()
			if l == nil {
				break
			}
			return l, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", org, ErrNotFound)
}

type taxaSet struct {
	Taxa []taxonXML `xml:"Taxon"`
}

type taxonXML struct {
	TaxID          string `xml:"TaxId"`
	ScientificName string `xml:"ScientificName"`
	Rank           string `xml:"Rank"`
	Lineage        string `xml:"Lineage"`
}

// lineage returns the lineage below the "cellular organisms" root.
func (t taxonXML) lineage() Lineage {
	var l Lineage
	for _, n := range strings.Split(t.Lineage, ";") {
		n = strings.TrimSpace(n)
		if n == "" || n == "cellular organisms" {
			continue
		}
		l = append(l, n)
	}
	return l
}

func decodeTaxaSet(r io.Reader) ([]taxonXML, error) {
	var ts taxaSet
	err := xml.NewDecoder(r).Decode(&ts)
	if err != nil {
		return nil, err
	}
	return ts.Taxa, nil
}
