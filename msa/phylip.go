// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msa

import (
	"bufio"
	"fmt"
	"io"
	"log"
)

// WritePhylip writes s to w in sequential PHYLIP format. Names longer than
// the 10 characters of strict PHYLIP are written in full and reported to l
// if it is not nil.
func WritePhylip(w io.Writer, s Set, l *log.Logger) error {
	if err := s.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", len(s), s.Len())
	for _, o := range s.Organisms() {
		if len(o) > 10 && l != nil {
			l.Printf("WARNING: Sequence ID %s is longer than 10 characters", o)
		}
		fmt.Fprintf(bw, "%s %s\n", o, s[o])
	}
	return bw.Flush()
}
