// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package taxon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
)

// DefaultEBIBaseURL is the ENA taxonomy scientific name endpoint.
const DefaultEBIBaseURL = "http://www.ebi.ac.uk/ena/data/taxonomy/v1/taxon/scientific-name"

// EBI is a Source backed by the ENA taxonomy REST service.
type EBI struct {
	// BaseURL is the scientific name endpoint. DefaultEBIBaseURL
	// is used if empty.
	BaseURL string

	// HTTPClient is used to perform requests. http.DefaultClient is
	// used if nil.
	HTTPClient *http.Client
}

// URL returns the lookup URL for org.
func (e EBI) URL(org string) string {
	base := e.BaseURL
	if base == "" {
		base = DefaultEBIBaseURL
	}
	genus, species := Binomial(org)
	return fmt.Sprintf("%s/%s%%20%s", strings.TrimRight(base, "/"), url.PathEscape(genus), url.PathEscape(species))
}

// Lineage returns the lineage of org. A 404 response returns ErrNotFound
// and any other non-200 response a *RequestError.
func (e EBI) Lineage(ctx context.Context, org string) (Lineage, error) {
	u := e.URL(org)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	hc := e.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		io.Copy(ioutil.Discard, resp.Body)
		return nil, fmt.Errorf("%s: %w", org, ErrNotFound)
	default:
		io.Copy(ioutil.Discard, resp.Body)
		return nil, &RequestError{StatusCode: resp.StatusCode, URL: u, Organism: org}
	}

	var recs []struct {
		Lineage string `json:"lineage"`
	}
	err = json.NewDecoder(resp.Body).Decode(&recs)
	if err != nil {
		return nil, fmt.Errorf("taxon: %s: %w", org, err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%s: %w", org, ErrNotFound)
	}
	l := ParseLineage(recs[0].Lineage)
	if l == nil {
		return nil, fmt.Errorf("%s: empty lineage: %w", org, ErrNotFound)
	}
	return l, nil
}
