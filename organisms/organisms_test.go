// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package organisms

import (
	"strings"
	"testing"

	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestReadSignificant(c *check.C) {
	const in = "Class,Organism\n" +
		"Mammalia,Homo sapiens\n" +
		"Actinopteri,Danio  rerio\n" +
		"\n" +
		"Mammalia,Homo Sapiens\n"
	orgs, err := ReadSignificant(strings.NewReader(in))
	c.Assert(err, check.Equals, nil)
	c.Check(orgs, check.DeepEquals, []string{"homo_sapiens", "danio_rerio"})

	_, err = ReadSignificant(strings.NewReader("Class,Organism\nMammalia\n"))
	c.Check(err, check.ErrorMatches, "organisms: line 2: .*")
}

func (s *S) TestGroups(c *check.C) {
	for _, g := range []Grouping{BoneGroups, HabitatGroups} {
		c.Check(len(g.Organisms()), check.Equals, 21, check.Commentf("%s", g.Name))
		var n int
		for _, cl := range g.Classes {
			n += len(g.Members(cl))
		}
		c.Check(n, check.Equals, 21, check.Commentf("%s", g.Name))
	}
	c.Check(BoneGroups.Members(CartilageOnly), check.DeepEquals,
		[]string{"callorhinchus_milii", "eptatretus_burgeri", "latimeria_chalumnae", "petromyzon_marinus"})
	cl, ok := HabitatGroups.Class("ornithorhynchus_anatinus")
	c.Check(ok, check.Equals, true)
	c.Check(cl, check.Equals, TerrestrialAquatic)
	_, ok = BoneGroups.Class("pan_troglodytes")
	c.Check(ok, check.Equals, false)
}
