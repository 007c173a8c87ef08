// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msa

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/biogo/external/mafft"
	"github.com/biogo/external/muscle"
)

// Aligner specifies an external multiple sequence aligner.
type Aligner int

const (
	Muscle Aligner = iota + 1
	Mafft
)

// ErrAligner is returned for an unknown Aligner value.
var ErrAligner = errors.New("msa: no valid aligner specified")

// Command returns the aligner command reading FASTA from stdin and writing
// aligned FASTA to stdout.
func (a Aligner) Command() (*exec.Cmd, error) {
	switch a {
	case Muscle:
		return muscle.Muscle{Quiet: true}.BuildCommand()
	case Mafft:
		return mafft.Mafft{InFile: "-", Auto: true, Quiet: true}.BuildCommand()
	}
	return nil, ErrAligner
}

// Realign aligns the unaligned multi-FASTA read from in using a and returns
// the resulting alignment.
func Realign(in io.Reader, a Aligner) (Set, error) {
	cmd, err := a.Command()
	if err != nil {
		return nil, err
	}
	var out, stderr bytes.Buffer
	cmd.Stdin = in
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	err = cmd.Run()
	if err != nil {
		return nil, fmt.Errorf("msa: %s: %v: %s", cmd.Path, err, strings.TrimSpace(stderr.String()))
	}
	return ReadFasta(&out)
}
