// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"testing"

	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestAmbiguityCheckDefault(c *check.C) {
	f := flag.Lookup("check")
	c.Assert(f, check.NotNil)
	c.Check(f.DefValue, check.Equals, "true")
	c.Check(*chars, check.Equals, true)
}
