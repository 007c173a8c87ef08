// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ensembl retrieves and curates orthologue records from the Ensembl
// REST homology endpoint.
package ensembl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/biogo/proteoglycan/genes"
)

// DefaultBaseURL is the Ensembl REST server.
const DefaultBaseURL = "https://rest.ensembl.org"

// DefaultDelay is the pause between sequential homology requests.
const DefaultDelay = 300 * time.Millisecond

// RequestError is returned when the server responds with a status other
// than 200 OK.
type RequestError struct {
	StatusCode int
	URL        string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("ensembl: expected status code 200, found %d for %s", e.StatusCode, e.URL)
}

// Client is an Ensembl REST client.
type Client struct {
	// BaseURL is the server root. DefaultBaseURL is used if empty.
	BaseURL string

	// HTTPClient is used to perform requests. http.DefaultClient is
	// used if nil.
	HTTPClient *http.Client

	// Delay is the pause between requests made by Collect.
	// DefaultDelay is used if zero.
	Delay time.Duration

	// Logger receives progress lines if not nil.
	Logger *log.Logger
}

// URL returns the homology query URL for the Ensembl gene id.
func (c *Client) URL(id string) string {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return fmt.Sprintf("%s/homology/id/%s?type=orthologues;sequence=dna;cigar_line=0", strings.TrimRight(base, "/"), id)
}

// Homology returns the raw JSON orthologue record for the Ensembl gene id.
func (c *Client) Homology(ctx context.Context, id string) ([]byte, error) {
	url := c.URL(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		io.Copy(ioutil.Discard, resp.Body)
		return nil, &RequestError{StatusCode: resp.StatusCode, URL: url}
	}
	return ioutil.ReadAll(resp.Body)
}

// Collect retrieves the orthologue record of each gene and writes it to
// dir as {id}.txt, pausing between requests. Collect stops at the first
// failed request.
func (c *Client) Collect(ctx context.Context, list []genes.Gene, dir string) error {
	delay := c.Delay
	if delay == 0 {
		delay = DefaultDelay
	}
	for i, g := range list {
		if i != 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
		if c.Logger != nil {
			c.Logger.Printf("retrieving orthologues of %v", g)
		}
		b, err := c.Homology(ctx, g.ID)
		if err != nil {
			return fmt.Errorf("ensembl: gene %v: %w", g, err)
		}
		err = ioutil.WriteFile(filepath.Join(dir, g.ID+".txt"), b, 0o664)
		if err != nil {
			return err
		}
	}
	return nil
}

// IsNotFound returns whether err reports a 404 response.
func IsNotFound(err error) bool {
	var re *RequestError
	return errors.As(err, &re) && re.StatusCode == http.StatusNotFound
}

// OpenRecord opens the stored orthologue record of the gene id in dir.
func OpenRecord(dir, id string) (*os.File, error) {
	return os.Open(filepath.Join(dir, id+".txt"))
}
