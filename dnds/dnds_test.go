// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dnds

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"gopkg.in/check.v1"

	"github.com/biogo/proteoglycan/msa"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestClean(c *check.C) {
	for i, t := range []struct {
		a, b       string
		checkChars bool
		ca, cb     string
	}{
		{a: "ATGAAA", b: "ATGAAG", ca: "ATGAAA", cb: "ATGAAG"},
		{a: "AT-GAAACC", b: "ATGGA-ACC", ca: "ATGAAC", cb: "ATGAAC"},
		{a: "---", b: "ATG", ca: "", cb: ""},
		{a: "ATGNAAAC", b: "ATGCARAC", checkChars: false, ca: "ATGNAA", cb: "ATGCAR"},
		{a: "ATGNAAAC", b: "ATGCARAC", checkChars: true, ca: "ATGAAC", cb: "ATGAAC"},
		{a: "atg-cc", b: "atgacc", ca: "atg", cb: "atg"},
		{a: "", b: "", ca: "", cb: ""},
	} {
		ca, cb, err := Clean(t.a, t.b, t.checkChars)
		c.Check(err, check.Equals, nil, check.Commentf("Test %d", i))
		c.Check(ca, check.Equals, t.ca, check.Commentf("Test %d", i))
		c.Check(cb, check.Equals, t.cb, check.Commentf("Test %d", i))
	}

	_, _, err := Clean("ATG", "AT", false)
	c.Check(err, check.Equals, ErrLengthMismatch)
}

func (s *S) TestCleanInvariant(c *check.C) {
	a := "ATG-CCAAT--GGCTTACG-A"
	b := "A-GCCCA-TAAGGC-TACGTA"
	for _, chars := range []bool{false, true} {
		ca, cb, err := Clean(a, b, chars)
		c.Assert(err, check.Equals, nil)
		c.Check(len(ca), check.Equals, len(cb))
		c.Check(len(ca)%3, check.Equals, 0)
		c.Check(strings.ContainsRune(ca, '-'), check.Equals, false)
		c.Check(strings.ContainsRune(cb, '-'), check.Equals, false)
	}
}

func (s *S) TestSites(c *check.C) {
	for _, t := range []struct {
		codon string
		syn   float64
	}{
		{"CTT", 1},
		{"AAA", 1.0 / 3},
		{"GGG", 1},
		{"ATG", 0},
		{"TGG", 0},
	} {
		c.Check(upper(t.codon).synSites(), check.Equals, t.syn, check.Commentf("codon %s", t.codon))
	}
}

func (s *S) TestDifferences(c *check.C) {
	syn, non := differences(upper("CTT"), upper("CTC"))
	c.Check(syn, check.Equals, 1.0)
	c.Check(non, check.Equals, 0.0)

	syn, non = differences(upper("CCC"), upper("ACC"))
	c.Check(syn, check.Equals, 0.0)
	c.Check(non, check.Equals, 1.0)

	// CTT to ATA: via ATT (Leu→Ile→Ile) or CTA (Leu→Leu→Ile).
	syn, non = differences(upper("CTT"), upper("ATA"))
	c.Check(syn, check.Equals, 1.0)
	c.Check(non, check.Equals, 1.0)
}

func (s *S) TestNeiGojobori(c *check.C) {
	var ng NeiGojobori

	v, err := ng.Estimate("CTTAAAGGGCCC", "CTCAAAGGGCCC")
	c.Check(err, check.Equals, nil)
	c.Check(v, check.Equals, 0.0)

	v, err = ng.Estimate("CTTAAAGGGCCC", "CTCAAAGGGACC")
	c.Check(err, check.Equals, nil)
	c.Check(math.Abs(v-0.32703) < 1e-4, check.Equals, true, check.Commentf("got %v", v))

	cnt, err := ng.Count("CTTAAAGGGCCC", "ctcaaagggacc")
	c.Check(err, check.Equals, nil)
	c.Check(cnt.Codons, check.Equals, 4)
	c.Check(math.Abs(cnt.S-10.0/3) < 1e-12, check.Equals, true)
	c.Check(cnt.Sd, check.Equals, 1.0)
	c.Check(cnt.Nd, check.Equals, 1.0)

	_, err = ng.Estimate("CTTAAAGGGCCC", "ATTAAAGGGCCC")
	c.Check(err, check.Equals, ErrNoSynonymous)

	_, err = ng.Estimate("TAANNN", "TAGAAA")
	c.Check(err, check.Equals, ErrNoCodons)

	_, err = ng.Estimate("ATGA", "ATGC")
	c.Check(err, check.Equals, ErrFrame)

	_, err = ng.Estimate("CTTAAA", "CTCAAA")
	c.Check(err, check.Equals, ErrSaturated)
}

func (s *S) TestScoreNeutral(c *check.C) {
	failing := []Estimator{
		EstimatorFunc(func(a, b string) (float64, error) { return 0, errors.New("did not converge") }),
		EstimatorFunc(func(a, b string) (float64, error) { return math.NaN(), nil }),
		EstimatorFunc(func(a, b string) (float64, error) { return math.Inf(1), nil }),
		EstimatorFunc(func(a, b string) (float64, error) { panic("singular matrix") }),
	}
	for i, est := range failing {
		sc := Scorer{Estimator: est, CheckChars: true}
		c.Check(sc.Score("CTTAAAGGGCCC", "CTCAAAGGGACC"), check.Equals, Neutral, check.Commentf("Test %d", i))
	}

	called := false
	sc := Scorer{Estimator: EstimatorFunc(func(a, b string) (float64, error) {
		called = true
		return 0.5, nil
	})}
	for i, t := range []struct{ a, b string }{
		{"ATGAAA", "ATGAAA"},
		{"ATG-AA", "ATGCAA"},
		{"atgaaa", "ATGAAA"},
		{"---AT", "ATGAT"},
		{"ATG", "AT"},
	} {
		c.Check(sc.Score(t.a, t.b), check.Equals, Neutral, check.Commentf("Test %d", i))
	}
	c.Check(called, check.Equals, false)
}

func (s *S) TestScore(c *check.C) {
	var sc Scorer
	c.Check(sc.Score("CTTAAAGGGCCC", "CTCAAAGGGACC"), check.Equals, 0.33)
	c.Check(sc.Score("CTTAAAGGG-CCC", "CTCAAAGGGAACC"), check.Equals, 0.33)
	c.Check(sc.Score("CTTAAAGGGCCC", "ATTAAAGGGCCC"), check.Equals, Neutral)
}

func (s *S) TestCompute(c *check.C) {
	a := msa.Alignments{
		"Acan": {
			"homo_sapiens": "CTTAAAGGGCCC",
			"mus_musculus": "CTCAAAGGGACC",
		},
		"Xylt1": {
			"homo_sapiens": "CTTAAAGGGCCC",
			"danio_rerio":  "CTCAAAGGGCCC",
		},
	}
	orgs := []string{"danio_rerio", "homo_sapiens", "mus_musculus"}
	for _, workers := range []int{0, 1, 4} {
		m := Compute(a, orgs, Scorer{}, workers)
		c.Check(m["homo_sapiens"]["mus_musculus"]["Acan"], check.Equals, 0.33)
		c.Check(m["mus_musculus"]["homo_sapiens"]["Acan"], check.Equals, 0.33)
		c.Check(m["homo_sapiens"]["danio_rerio"]["Xylt1"], check.Equals, 0.0)
		c.Check(m["homo_sapiens"]["homo_sapiens"]["Acan"], check.Equals, Neutral)
		c.Check(m["danio_rerio"]["mus_musculus"]["Acan"], check.Equals, Neutral)
		c.Check(m["danio_rerio"]["mus_musculus"]["Xylt1"], check.Equals, Neutral)
		c.Check(m.Genes(), check.DeepEquals, []string{"Acan", "Xylt1"})
	}
}

func (s *S) TestCSV(c *check.C) {
	m := Matrix{
		"homo_sapiens": {
			"homo_sapiens": {"Acan": 1, "Xylt1": 1},
			"mus_musculus": {"Acan": 0.33, "Xylt1": 2.5},
		},
	}
	var buf bytes.Buffer
	c.Assert(m.WriteCSV(&buf, "homo_sapiens"), check.Equals, nil)
	c.Check(buf.String(), check.Equals,
		"Organism,Acan,Xylt1\n"+
			"homo_sapiens,1,1\n"+
			"mus_musculus,0.33,2.5\n")

	vals, err := ReadValues(&buf)
	c.Assert(err, check.Equals, nil)
	c.Check(vals, check.DeepEquals, []float64{0.33, 1, 1, 2.5})

	c.Check(m.WriteCSV(&buf, "danio_rerio"), check.NotNil)
}
