// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ensembl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/check.v1"

	"github.com/biogo/proteoglycan/genes"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const record = `{"data":[{"id":"ENSG00000157766","homologies":[
{"type":"ortholog_one2one","source":{"species":"homo_sapiens","id":"ENSG00000157766","align_seq":"ATG-AAA"},
 "target":{"species":"mus_musculus","id":"ENSMUSG00000030607","align_seq":"ATGCAAA"}},
{"type":"ortholog_one2one","source":{"species":"homo_sapiens","id":"ENSG00000157766","align_seq":"ATGAAA"},
 "target":{"species":"danio_rerio","id":"ENSDARG00000011821","align_seq":"ATG--AAA"}}
]}]}`

func (s *S) TestHomology(c *check.C) {
	var gotPath, gotQuery, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery = r.URL.Path, r.URL.RawQuery
		gotType = r.Header.Get("Content-Type")
		if strings.HasSuffix(r.URL.Path, "missing") {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, record)
	}))
	defer srv.Close()

	cl := &Client{BaseURL: srv.URL + "/"}
	b, err := cl.Homology(context.Background(), "ENSG00000157766")
	c.Assert(err, check.Equals, nil)
	c.Check(string(b), check.Equals, record)
	c.Check(gotPath, check.Equals, "/homology/id/ENSG00000157766")
	c.Check(gotQuery, check.Equals, "type=orthologues;sequence=dna;cigar_line=0")
	c.Check(gotType, check.Equals, "application/json")

	_, err = cl.Homology(context.Background(), "missing")
	var re *RequestError
	c.Assert(errors.As(err, &re), check.Equals, true)
	c.Check(re.StatusCode, check.Equals, http.StatusNotFound)
	c.Check(IsNotFound(err), check.Equals, true)
}

func (s *S) TestCollect(c *check.C) {
	var n int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n++
		if strings.HasSuffix(r.URL.Path, "bad") {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprintf(w, `{"data":[{"id":%q}]}`, filepath.Base(r.URL.Path))
	}))
	defer srv.Close()

	dir := c.MkDir()
	cl := &Client{BaseURL: srv.URL, Delay: time.Millisecond}
	err := cl.Collect(context.Background(), []genes.Gene{{Name: "Acan", ID: "a1"}, {Name: "Xylt1", ID: "x1"}}, dir)
	c.Assert(err, check.Equals, nil)
	c.Check(n, check.Equals, 2)
	b, err := ioutil.ReadFile(filepath.Join(dir, "x1.txt"))
	c.Assert(err, check.Equals, nil)
	c.Check(string(b), check.Equals, `{"data":[{"id":"x1"}]}`)

	err = cl.Collect(context.Background(), []genes.Gene{{Name: "Acan", ID: "bad"}, {Name: "Xylt1", ID: "x2"}}, dir)
	var re *RequestError
	c.Check(errors.As(err, &re), check.Equals, true)
	c.Check(n, check.Equals, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cl.Delay = time.Hour
	err = cl.Collect(ctx, []genes.Gene{{Name: "Acan", ID: "a1"}, {Name: "Xylt1", ID: "x1"}}, dir)
	c.Check(err, check.Not(check.Equals), nil)
}

func (s *S) TestCurate(c *check.C) {
	resp, err := Decode(strings.NewReader(record))
	c.Assert(err, check.Equals, nil)
	cur, err := Curate("ENSG00000157766", resp)
	c.Assert(err, check.Equals, nil)
	c.Check(cur.Organisms, check.DeepEquals, []string{"danio_rerio", "homo_sapiens", "mus_musculus"})
	c.Check(cur.Sequences, check.DeepEquals, map[string]string{
		"mus_musculus": "ATGCAAA",
		"danio_rerio":  "ATG--AAA",
	})

	var buf bytes.Buffer
	c.Assert(WriteOrganisms(&buf, cur.Organisms), check.Equals, nil)
	c.Check(buf.String(), check.Equals, "danio rerio\nhomo sapiens\nmus musculus\n")

	buf.Reset()
	c.Assert(WriteSequences(&buf, cur.Sequences), check.Equals, nil)
	c.Check(buf.String(), check.Equals, ">danio_rerio\nATGAAA\n>mus_musculus\nATGCAAA\n")
}

func (s *S) TestCurateErrors(c *check.C) {
	for i, t := range []struct {
		json string
		err  error
	}{
		{json: `{}`, err: ErrEmptyOrthologData},
		{json: `{"data":[]}`, err: ErrEmptyOrthologData},
		{json: `{"data":[{"homologies":[]}]}`, err: ErrEmptyOrthologData},
		{json: `{"data":[{"homologies":[{"target":{"species":"a","align_seq":"A"}}]}]}`, err: ErrEmptyHomology},
		{json: `{"data":[{"homologies":[{"source":{"species":"a"}}]}]}`, err: ErrEmptyHomology},
		{json: `{"data":[{"homologies":[{"source":{},"target":{"species":"b","align_seq":"A"}}]}]}`, err: ErrEmptyHomology},
		{json: `{"data":[{"homologies":[{"source":{"species":"a"},"target":{"align_seq":"A"}}]}]}`, err: ErrEmptyHomology},
		{json: `{"data":[{"homologies":[{"source":{"species":"a"},"target":{"species":"b"}}]}]}`, err: ErrEmptySequence},
	} {
		resp, err := Decode(strings.NewReader(t.json))
		c.Assert(err, check.Equals, nil, check.Commentf("Test %d", i))
		_, err = Curate("g", resp)
		c.Check(errors.Is(err, t.err), check.Equals, true, check.Commentf("Test %d: %v", i, err))
	}

	_, err := Decode(strings.NewReader(`{"data":`))
	c.Check(err, check.NotNil)
}

func (s *S) TestWrapSequences(c *check.C) {
	var buf bytes.Buffer
	long := strings.Repeat("ACGT", 20)
	c.Assert(WriteSequences(&buf, map[string]string{"x": long}), check.Equals, nil)
	c.Check(buf.String(), check.Equals, ">x\n"+long[:60]+"\n"+long[60:]+"\n")
}
