// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package taxon

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// DefaultDelay is the pause between sequential lineage lookups.
const DefaultDelay = 200 * time.Millisecond

// Collect writes the TaxaInfoHeader and a Record line for each organism in
// orgs looked up from src, pausing delay between lookups. A non-positive
// delay is replaced by DefaultDelay. Organisms src does not know are
// skipped and returned; any other lookup failure stops collection.
func Collect(ctx context.Context, src Source, orgs []string, w io.Writer, delay time.Duration) (skipped []string, err error) {
	if delay <= 0 {
		delay = DefaultDelay
	}
	bw := bufio.NewWriter(w)
	defer func() {
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
	}()
	fmt.Fprintln(bw, TaxaInfoHeader)
	for i, org := range orgs {
		if i != 0 {
			select {
			case <-ctx.Done():
				return skipped, ctx.Err()
			case <-time.After(delay):
			}
		}
		l, err := src.Lineage(ctx, org)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				skipped = append(skipped, org)
				continue
			}
			return skipped, err
		}
		fmt.Fprintln(bw, Record(org, l))
	}
	return skipped, nil
}

// CladeColumn is the taxa info column counted by CladeCounts.
const CladeColumn = 5

// CladeCounts returns the number of taxa info records holding each value
// in the given column. The header line is ignored, as are records too short
// to hold the column.
func CladeCounts(r io.Reader, column int) (map[string]int, error) {
	counts := make(map[string]int)
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1<<20)
	for line := 1; sc.Scan(); line++ {
		if line == 1 {
			continue
		}
		f := strings.Split(strings.TrimRight(sc.Text(), "\r"), ",")
		if len(f) <= column {
			continue
		}
		counts[f[column]]++
	}
	return counts, sc.Err()
}
