// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dnds

import (
	"fmt"
	"log"
	"math"
	"strings"
)

// Neutral is the score given to pairs without measurable divergence and
// to pairs the estimator fails on.
const Neutral = 1.0

// Scorer scores aligned coding sequence pairs.
type Scorer struct {
	// Estimator is the dN/dS estimator. If nil, NeiGojobori is used.
	Estimator Estimator

	// CheckChars specifies that columns holding ambiguous letters are
	// removed during cleaning.
	CheckChars bool

	// Logger receives a line for each estimator failure if not nil.
	Logger *log.Logger
}

// Score returns the dN/dS ratio of the aligned pair a, b rounded to two
// decimal places. Score never fails: pairs that clean to empty or identical
// sequences, and pairs for which the estimator returns an error, a
// non-finite value or panics, score Neutral.
func (s Scorer) Score(a, b string) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			s.logf("recovered from estimator panic: %v", r)
			score = Neutral
		}
	}()

	ca, cb, err := Clean(a, b, s.CheckChars)
	if err != nil {
		s.logf("%v", err)
		return Neutral
	}
	if len(ca) == 0 || len(cb) == 0 || strings.EqualFold(ca, cb) {
		return Neutral
	}

	est := s.Estimator
	if est == nil {
		est = NeiGojobori{}
	}
	v, err := est.Estimate(ca, cb)
	if err != nil {
		s.logf("%v", err)
		return Neutral
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		s.logf("non-finite estimate: %v", v)
		return Neutral
	}
	return math.Round(v*100) / 100
}

func (s Scorer) logf(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Output(3, fmt.Sprintf(format, args...))
	}
}
