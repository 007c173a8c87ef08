// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msa

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const fastaAln = `>homo_sapiens
ATG---AAA
CCC
>mus_musculus
ATGCCCAAA
CC-
>danio_rerio
ATGCC-AAA
CCC
`

const clustalAln = `CLUSTAL W (1.83) multiple sequence alignment


homo_sapiens      ATG---AAA 6
mus_musculus      ATGCCCAAA 9
                  ***   ***

homo_sapiens      CCC 9
mus_musculus      CC- 11
                  **
`

func (s *S) TestReadFasta(c *check.C) {
	set, err := ReadFasta(strings.NewReader(fastaAln))
	c.Assert(err, check.Equals, nil)
	c.Check(set, check.DeepEquals, Set{
		"homo_sapiens": "ATG---AAACCC",
		"mus_musculus": "ATGCCCAAACC-",
		"danio_rerio":  "ATGCC-AAACCC",
	})
	c.Check(set.Validate(), check.Equals, nil)
	c.Check(set.Len(), check.Equals, 12)
	c.Check(set.Organisms(), check.DeepEquals, []string{"danio_rerio", "homo_sapiens", "mus_musculus"})
}

func (s *S) TestReadFastaRepeatedHeader(c *check.C) {
	set, err := ReadFasta(strings.NewReader(">homo sapiens\nATG\n>mus musculus\nATC\n>homo sapiens\nGGG\n"))
	c.Assert(err, check.Equals, nil)
	c.Check(set, check.DeepEquals, Set{
		"homo sapiens": "ATGGGG",
		"mus musculus": "ATC",
	})
	c.Check(errors.Is(set.Validate(), ErrRagged), check.Equals, true)
}

func (s *S) TestReadClustal(c *check.C) {
	set, err := ReadClustal(strings.NewReader(clustalAln))
	c.Assert(err, check.Equals, nil)
	c.Check(set, check.DeepEquals, Set{
		"homo_sapiens": "ATG---AAACCC",
		"mus_musculus": "ATGCCCAAACC-",
	})
}

func (s *S) TestReadAuto(c *check.C) {
	for i, t := range []struct {
		in   string
		want int
	}{
		{in: fastaAln, want: 3},
		{in: clustalAln, want: 2},
	} {
		set, err := Read(strings.NewReader(t.in), Auto)
		c.Check(err, check.Equals, nil, check.Commentf("Test %d", i))
		c.Check(len(set), check.Equals, t.want, check.Commentf("Test %d", i))
	}
	_, err := Read(strings.NewReader("  \n"), Auto)
	c.Check(err, check.Equals, ErrEmpty)

	pad := strings.Repeat(" \n", 5000)
	set, err := Read(strings.NewReader(pad+fastaAln), Auto)
	c.Check(err, check.Equals, nil)
	c.Check(len(set), check.Equals, 3)
	set, err = Read(strings.NewReader(pad+clustalAln), Auto)
	c.Check(err, check.Equals, nil)
	c.Check(len(set), check.Equals, 2)
	_, err = Read(strings.NewReader(pad), Auto)
	c.Check(err, check.Equals, ErrEmpty)
}

func (s *S) TestGeneName(c *check.C) {
	for _, t := range []struct{ in, want string }{
		{"alignments/Fam20c_ENSG00000177706.txt", "Fam20c"},
		{"Acan.aln", "Acan"},
		{"Xylt1", "Xylt1"},
	} {
		c.Check(GeneName(t.in), check.Equals, t.want)
	}
}

func (s *S) TestReadDir(c *check.C) {
	dir := c.MkDir()
	c.Assert(os.WriteFile(filepath.Join(dir, "Acan_ENSG1.txt"), []byte(fastaAln), 0o644), check.Equals, nil)
	c.Assert(os.WriteFile(filepath.Join(dir, "Xylt1_ENSG2.aln"), []byte(clustalAln), 0o644), check.Equals, nil)
	a, err := ReadDir(dir, Auto)
	c.Assert(err, check.Equals, nil)
	c.Check(a.Genes(), check.DeepEquals, []string{"Acan", "Xylt1"})
	c.Check(a["Acan"]["homo_sapiens"], check.Equals, "ATG---AAACCC")
	c.Check(a["Xylt1"]["mus_musculus"], check.Equals, "ATGCCCAAACC-")
}

func (s *S) TestOccupancy(c *check.C) {
	set, err := ReadFasta(strings.NewReader(fastaAln))
	c.Assert(err, check.Equals, nil)
	p, err := Occupancy(set)
	c.Assert(err, check.Equals, nil)
	c.Check(p.Len(), check.Equals, 12)
	c.Check(p.Rows(), check.Equals, 3)
	var got []int
	for i := 0; i < p.Len(); i++ {
		got = append(got, p.At(i))
	}
	c.Check(got, check.DeepEquals, []int{3, 3, 3, 2, 2, 1, 3, 3, 3, 3, 3, 2})
	f := p.Fractions()
	c.Check(f[5], check.Equals, 1.0/3)
	c.Check(f[0], check.Equals, 1.0)

	var runs int
	p.Do(func(start, end, n int) { runs++ })
	c.Check(runs, check.Equals, 5)

	_, err = Occupancy(Set{"a": "AC", "b": "A"})
	c.Check(errors.Is(err, ErrRagged), check.Equals, true)
}

func (s *S) TestConsensus(c *check.C) {
	cons, err := Consensus("Acan", Set{
		"a": "ACGT",
		"b": "ACGA",
		"c": "ACGA",
	})
	c.Assert(err, check.Equals, nil)
	c.Check(strings.ToUpper(cons), check.Equals, "ACGA")
}

func (s *S) TestWritePhylip(c *check.C) {
	var buf bytes.Buffer
	err := WritePhylip(&buf, Set{"mus": "AC-T", "homo": "ACGT"}, nil)
	c.Assert(err, check.Equals, nil)
	c.Check(buf.String(), check.Equals, "2 4\nhomo ACGT\nmus AC-T\n")

	c.Check(WritePhylip(&buf, Set{}, nil), check.Equals, ErrEmpty)
}

func (s *S) TestAlignerCommand(c *check.C) {
	_, err := Aligner(0).Command()
	c.Check(err, check.Equals, ErrAligner)
}
