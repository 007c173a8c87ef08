// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package genes holds the proteoglycan pathway gene set used by the
// comparative analysis tools and their functional classification.
package genes

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Gene is a study gene identified by its symbol and Ensembl ID.
type Gene struct {
	Name string
	ID   string
}

// String returns the file name stem used for per-gene data files.
func (g Gene) String() string { return g.Name + "_" + g.ID }

// ReadList reads a headerless "name,id" CSV gene list.
func ReadList(r io.Reader) ([]Gene, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	var gs []Gene
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("genes: line %d: expected name and id, got %d fields", line, len(rec))
		}
		name, id := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])
		if name == "" || id == "" {
			return nil, fmt.Errorf("genes: line %d: empty name or id", line)
		}
		gs = append(gs, Gene{Name: name, ID: id})
	}
	if len(gs) == 0 {
		return nil, errors.New("genes: empty gene list")
	}
	return gs, nil
}

// Gene symbols.
const (
	Acan       = "Acan"
	Arsa       = "Arsa"
	Arsb       = "Arsb"
	Arsc       = "Arsc"
	Arsd       = "Arsd"
	Arse       = "Arse"
	Arsf       = "Arsf"
	Arsg       = "Arsg"
	Arsi       = "Arsi"
	Arsj       = "Arsj"
	Arsk       = "Arsk"
	B3galt6    = "B3galt6"
	B3gat3     = "B3gat3"
	B4galt7    = "B4galt7"
	Chpf       = "Chpf"
	Chpf2      = "Chpf2"
	Chst1      = "Chst1"
	Chst11     = "Chst11"
	Chst12     = "Chst12"
	Chst13     = "Chst13"
	Chst14     = "Chst14"
	Chst15     = "Chst15"
	Chst2      = "Chst2"
	Chst3      = "Chst3"
	Chst4      = "Chst4"
	Chst7      = "Chst7"
	Chst9      = "Chst9"
	Chsy1      = "Chsy1"
	Chsy3      = "Chsy3"
	Csgalnact1 = "Csgalnact1"
	Csgalnact2 = "Csgalnact2"
	Dse        = "Dse"
	Ext1       = "Ext1"
	Ext2       = "Ext2"
	Fam20a     = "Fam20a"
	Fam20b     = "Fam20b"
	Fam20c     = "Fam20c"
	Galns      = "Galns"
	Glb1       = "Glb1"
	Gns        = "Gns"
	Gusb       = "Gusb"
	Ids        = "Ids"
	Prg4       = "Prg4"
	Sgsh       = "Sgsh"
	Sulf1      = "Sulf1"
	Sulf2      = "Sulf2"
	Sumf1      = "Sumf1"
	Sumf2      = "Sumf2"
	Ust        = "Ust"
	Xylt1      = "Xylt1"
	Xylt2      = "Xylt2"
)

// Functional classes.
const (
	CoreProtein           = "CoreProtein"
	Xylosyltransferase    = "Xylosyltransferase"
	Galactosyltransferase = "Galactosyltransferase"
	Glucuronyltransferase = "Glucuronyltransferase"
	Glycosyltransferase   = "Glycosyltransferase"
	Sulfotransferase      = "Sulfotransferase"
	Sulfatase             = "Sulfatase"
	Kinase                = "Kinase"
	Epimerase             = "Epimerase"
	Glycosidase           = "Glycosidase"
	Sulfohydrolase        = "Sulfohydrolase"
)

var functions = map[string]string{
	Acan:       CoreProtein,
	Arsa:       Sulfatase,
	Arsb:       Sulfatase,
	Arsc:       Sulfatase,
	Arsd:       Sulfatase,
	Arse:       Sulfatase,
	Arsf:       Sulfatase,
	Arsg:       Sulfatase,
	Arsi:       Sulfatase,
	Arsj:       Sulfatase,
	Arsk:       Sulfatase,
	B3galt6:    Galactosyltransferase,
	B3gat3:     Glucuronyltransferase,
	B4galt7:    Galactosyltransferase,
	Chpf:       Glucuronyltransferase,
	Chpf2:      Glucuronyltransferase,
	Chst1:      Sulfotransferase,
	Chst11:     Sulfotransferase,
	Chst12:     Sulfotransferase,
	Chst13:     Sulfotransferase,
	Chst14:     Sulfotransferase,
	Chst15:     Sulfotransferase,
	Chst2:      Sulfotransferase,
	Chst3:      Sulfotransferase,
	Chst4:      Sulfotransferase,
	Chst7:      Sulfotransferase,
	Chst9:      Sulfotransferase,
	Chsy1:      Galactosyltransferase,
	Chsy3:      Galactosyltransferase,
	Csgalnact1: Galactosyltransferase,
	Csgalnact2: Galactosyltransferase,
	Dse:        Epimerase,
	Ext1:       Glycosyltransferase,
	Ext2:       Glycosyltransferase,
	Fam20a:     Kinase,
	Fam20b:     Kinase,
	Fam20c:     Kinase,
	Galns:      Sulfatase,
	Glb1:       Glycosidase,
	Gns:        Sulfatase,
	Gusb:       Glycosidase,
	Ids:        Sulfatase,
	Prg4:       CoreProtein,
	Sgsh:       Sulfohydrolase,
	Sulf1:      Sulfatase,
	Sulf2:      Sulfatase,
	Sumf1:      Sulfatase,
	Sumf2:      Sulfatase,
	Ust:        Sulfotransferase,
	Xylt1:      Xylosyltransferase,
	Xylt2:      Xylosyltransferase,
}

// Function returns the functional class of the named gene. Lookup is
// case-insensitive on the gene symbol.
func Function(name string) (string, bool) {
	if f, ok := functions[name]; ok {
		return f, true
	}
	for g, f := range functions {
		if strings.EqualFold(g, name) {
			return f, true
		}
	}
	return "", false
}

// Names returns the sorted study gene symbols.
func Names() []string {
	n := make([]string, 0, len(functions))
	for g := range functions {
		n = append(n, g)
	}
	sort.Strings(n)
	return n
}

// Functions returns the sorted set of functional classes.
func Functions() []string {
	seen := make(map[string]bool)
	var fs []string
	for _, f := range functions {
		if !seen[f] {
			seen[f] = true
			fs = append(fs, f)
		}
	}
	sort.Strings(fs)
	return fs
}

// FunctionMatrix returns a len(names)×len(Functions()) 0/1 matrix marking
// the class of each named gene, and the column labels. Genes without a
// known class have an all-zero row.
func FunctionMatrix(names []string) (*mat.Dense, []string) {
	cols := Functions()
	idx := make(map[string]int, len(cols))
	for i, f := range cols {
		idx[f] = i
	}
	m := mat.NewDense(len(names), len(cols), nil)
	for i, g := range names {
		if f, ok := Function(g); ok {
			m.Set(i, idx[f], 1)
		}
	}
	return m, cols
}
