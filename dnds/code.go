// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dnds

// Standard genetic code in TCAG order.
const (
	bases       = "TCAG"
	translation = "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"
	stop        = '*'
)

var baseIndex = [256]int8{}

func init() {
	for i := range baseIndex {
		baseIndex[i] = -1
	}
	for i := 0; i < len(bases); i++ {
		baseIndex[bases[i]] = int8(i)
		baseIndex[bases[i]+'a'-'A'] = int8(i)
	}
}

// codon is an upper case nucleotide triplet.
type codon [3]byte

// valid returns whether all positions of c are unambiguous nucleotides.
func (c codon) valid() bool {
	return baseIndex[c[0]] >= 0 && baseIndex[c[1]] >= 0 && baseIndex[c[2]] >= 0
}

// aa returns the amino acid encoded by c under the standard code. c must be valid.
func (c codon) aa() byte {
	return translation[16*int(baseIndex[c[0]])+4*int(baseIndex[c[1]])+int(baseIndex[c[2]])]
}

func (c codon) isStop() bool { return c.aa() == stop }

// synSites returns the number of synonymous sites of c, counting each
// position as the fraction of its three point mutations that preserve the
// encoded amino acid.
func (c codon) synSites() float64 {
	aa := c.aa()
	var s float64
	for p := 0; p < 3; p++ {
		var n int
		for i := 0; i < len(bases); i++ {
			if bases[i] == c[p] {
				continue
			}
			m := c
			m[p] = bases[i]
			if m.aa() == aa {
				n++
			}
		}
		s += float64(n) / 3
	}
	return s
}

// differences returns the synonymous and non-synonymous differences between
// c and d, averaged over the mutational pathways between them that do not
// pass through a stop codon.
func differences(c, d codon) (syn, non float64) {
	var pos []int
	for p := 0; p < 3; p++ {
		if c[p] != d[p] {
			pos = append(pos, p)
		}
	}
	if len(pos) == 0 {
		return 0, 0
	}

	var paths int
	for _, order := range permutations(pos) {
		var s, n float64
		cur := c
		ok := true
		for _, p := range order {
			next := cur
			next[p] = d[p]
			if next != d && next.isStop() {
				ok = false
				break
			}
			if next.aa() == cur.aa() {
				s++
			} else {
				n++
			}
			cur = next
		}
		if !ok {
			continue
		}
		paths++
		syn += s
		non += n
	}
	if paths == 0 {
		return 0, float64(len(pos))
	}
	return syn / float64(paths), non / float64(paths)
}

func permutations(p []int) [][]int {
	if len(p) <= 1 {
		return [][]int{append([]int(nil), p...)}
	}
	var perms [][]int
	for i := range p {
		rest := make([]int, 0, len(p)-1)
		rest = append(rest, p[:i]...)
		rest = append(rest, p[i+1:]...)
		for _, q := range permutations(rest) {
			perms = append(perms, append([]int{p[i]}, q...))
		}
	}
	return perms
}
