// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package organisms holds the significant organisms of the study and their
// groupings by skeletal tissue and habitat.
package organisms

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Key returns the lower case underscore separated form of an organism
// name, "Homo sapiens" becoming "homo_sapiens".
func Key(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}

// ReadSignificant reads a significant organisms file, a header line
// followed by class,name records, and returns the organism keys in file
// order.
func ReadSignificant(r io.Reader) ([]string, error) {
	var orgs []string
	seen := make(map[string]bool)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if line == 1 || text == "" {
			continue
		}
		f := strings.Split(text, ",")
		if len(f) < 2 {
			return nil, fmt.Errorf("organisms: line %d: missing name field", line)
		}
		k := Key(f[1])
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		orgs = append(orgs, k)
	}
	return orgs, sc.Err()
}

// Grouping maps organisms to a class.
type Grouping struct {
	Name    string
	Classes []string
	class   map[string]string
}

// Class returns the class of org and whether org is grouped.
func (g Grouping) Class(org string) (string, bool) {
	c, ok := g.class[org]
	return c, ok
}

// Members returns the sorted organisms of class.
func (g Grouping) Members(class string) []string {
	var m []string
	for o, c := range g.class {
		if c == class {
			m = append(m, o)
		}
	}
	sort.Strings(m)
	return m
}

// Organisms returns the sorted grouped organisms.
func (g Grouping) Organisms() []string {
	o := make([]string, 0, len(g.class))
	for k := range g.class {
		o = append(o, k)
	}
	sort.Strings(o)
	return o
}

// Bone classes.
const (
	BoneCartilage = "bone_cartilage"
	CartilageOnly = "cartilage"
	Neither       = "neither"
)

// Habitat classes.
const (
	Terrestrial        = "terrestrial"
	Aquatic            = "aquatic"
	TerrestrialAquatic = "terrestrial/aquatic"
)

// BoneGroups groups the significant organisms by presence of bone and
// cartilage.
var BoneGroups = Grouping{
	Name:    "bone",
	Classes: []string{BoneCartilage, CartilageOnly, Neither},
	class: map[string]string{
		"homo_sapiens":                     BoneCartilage,
		"mus_musculus":                     BoneCartilage,
		"ornithorhynchus_anatinus":         BoneCartilage,
		"danio_rerio":                      BoneCartilage,
		"oryzias_latipes_hsok":             BoneCartilage,
		"takifugu_rubripes":                BoneCartilage,
		"lepisosteus_oculatus":             BoneCartilage,
		"anas_platyrhynchos_platyrhynchos": BoneCartilage,
		"gallus_gallus":                    BoneCartilage,
		"chrysemys_picta_bellii":           BoneCartilage,
		"crocodylus_porosus":               BoneCartilage,
		"notechis_scutatus":                BoneCartilage,
		"anolis_carolinensis":              BoneCartilage,
		"xenopus_tropicalis":               BoneCartilage,
		"callorhinchus_milii":              CartilageOnly,
		"latimeria_chalumnae":              CartilageOnly,
		"petromyzon_marinus":               CartilageOnly,
		"eptatretus_burgeri":               CartilageOnly,
		"ciona_intestinalis":               Neither,
		"drosophila_melanogaster":          Neither,
		"caenorhabditis_elegans":           Neither,
	},
}

// HabitatGroups groups the significant organisms by habitat.
var HabitatGroups = Grouping{
	Name:    "habitat",
	Classes: []string{Terrestrial, Aquatic, TerrestrialAquatic},
	class: map[string]string{
		"homo_sapiens":                     Terrestrial,
		"mus_musculus":                     Terrestrial,
		"ornithorhynchus_anatinus":         TerrestrialAquatic,
		"danio_rerio":                      Aquatic,
		"oryzias_latipes_hsok":             Aquatic,
		"takifugu_rubripes":                Aquatic,
		"lepisosteus_oculatus":             Aquatic,
		"anas_platyrhynchos_platyrhynchos": TerrestrialAquatic,
		"gallus_gallus":                    Terrestrial,
		"chrysemys_picta_bellii":           Aquatic,
		"crocodylus_porosus":               TerrestrialAquatic,
		"notechis_scutatus":                Terrestrial,
		"anolis_carolinensis":              Terrestrial,
		"xenopus_tropicalis":               TerrestrialAquatic,
		"callorhinchus_milii":              Aquatic,
		"latimeria_chalumnae":              Aquatic,
		"petromyzon_marinus":               Aquatic,
		"eptatretus_burgeri":               Aquatic,
		"ciona_intestinalis":               Aquatic,
		"drosophila_melanogaster":          Terrestrial,
		"caenorhabditis_elegans":           TerrestrialAquatic,
	},
}
