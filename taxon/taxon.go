// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package taxon provides taxonomic lineage lookup and the organism and gene
// catalogs built from curated ortholog organism files.
package taxon

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by a Source when an organism is not known.
var ErrNotFound = errors.New("taxon: organism not found")

// RequestError is returned when a taxonomy server responds with a status
// other than 200 OK or 404 Not Found.
type RequestError struct {
	StatusCode int
	URL        string
	Organism   string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("taxon: expected status code 200, found %d for %q at %s", e.StatusCode, e.Organism, e.URL)
}

// Lineage is an ordered list of rank names from the root of the taxonomy.
type Lineage []string

// ParseLineage parses a semicolon separated lineage such as
// "Eukaryota; Metazoa; Chordata; ". Separators are dropped and the
// remaining words each become a rank name.
func ParseLineage(s string) Lineage {
	f := strings.Fields(strings.Replace(s, ";", " ", -1))
	if len(f) == 0 {
		return nil
	}
	return Lineage(f)
}

// Source is a taxonomy service.
type Source interface {
	// Lineage returns the lineage of the organism named by a normalized
	// binomial name.
	Lineage(ctx context.Context, org string) (Lineage, error)
}

// Record returns the taxa info line for org: the comma separated lineage
// followed by the species epithet.
func Record(org string, l Lineage) string {
	_, species := Binomial(org)
	return strings.Join(append(append([]string(nil), l...), species), ",")
}

// Binomial returns the genus and species words of org.
func Binomial(org string) (genus, species string) {
	f := strings.Fields(org)
	switch len(f) {
	case 0:
		return "", ""
	case 1:
		return f[0], ""
	}
	return f[0], f[1]
}

// NormalizeName converts an ortholog file organism line such as
// ">canis_familiaris" to the title cased binomial form, "Canis Familiaris".
// Canis familiaris is unknown to the taxonomy services and is mapped to
// "Canis lupus".
func NormalizeName(s string) string {
	s = strings.TrimSpace(strings.Replace(strings.TrimPrefix(s, ">"), "_", " ", -1))
	s = title(s)
	if strings.Contains(s, "Canis Familiaris") {
		return "Canis lupus"
	}
	return s
}

func title(s string) string {
	b := []byte(strings.ToLower(s))
	start := true
	for i, c := range b {
		isLetter := 'a' <= c && c <= 'z'
		if start && isLetter {
			b[i] = c - 'a' + 'A'
		}
		start = !isLetter && !('0' <= c && c <= '9')
	}
	return string(b)
}
