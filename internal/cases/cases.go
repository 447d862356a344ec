// Package cases loads reference vectors for the matching operations from
// YAML and checks the implementations against them.
package cases

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/glaslos/stringmatch/kmp"
	"github.com/glaslos/stringmatch/z"
)

//go:embed testdata/cases.yaml
var defaultCases []byte

// A Case is one input and its expected output. LPS cases read only
// Pattern; Z-array cases read only Text.
type Case struct {
	Name    string `yaml:"name"`
	Text    string `yaml:"text"`
	Pattern string `yaml:"pattern"`
	Want    []int  `yaml:"want"`
}

// A Set groups cases by the operation they exercise.
type Set struct {
	LPS    []Case `yaml:"lps"`
	KMP    []Case `yaml:"kmp"`
	ZArray []Case `yaml:"zarray"`
	Z      []Case `yaml:"z"`
}

// Len returns the total number of cases in s.
func (s Set) Len() int { return len(s.LPS) + len(s.KMP) + len(s.ZArray) + len(s.Z) }

// Op names an operation under test.
type Op string

const (
	OpLPS    Op = "lps"
	OpKMP    Op = "kmp"
	OpZArray Op = "zarray"
	OpZ      Op = "z"
)

// Run computes the output of op for c.
func (op Op) Run(c Case) []int {
	switch op {
	case OpLPS:
		return kmp.LPSString(c.Pattern)
	case OpKMP:
		return kmp.SearchString(c.Text, c.Pattern)
	case OpZArray:
		return z.ArrayString(c.Text)
	case OpZ:
		return z.SearchString(c.Text, c.Pattern)
	}
	panic(fmt.Sprintf("unknown op %q", string(op)))
}

// A Failure is a case whose computed output differs from Want.
type Failure struct {
	Op   Op
	Case Case
	Got  []int
}

func (f Failure) String() string {
	return fmt.Sprintf("%s %q (text=%q pattern=%q): got %v, want %v",
		f.Op, f.Case.Name, f.Case.Text, f.Case.Pattern, f.Got, f.Case.Want)
}

// Load decodes a case set from r.
func Load(r io.Reader) (Set, error) {
	var s Set
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		return Set{}, fmt.Errorf("decode cases: %w", err)
	}
	return s, nil
}

// LoadFile decodes the case set stored at path.
func LoadFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return Set{}, fmt.Errorf("open cases: %w", err)
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return Set{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Default returns the built-in reference vectors.
func Default() Set {
	s, err := Load(bytes.NewReader(defaultCases))
	if err != nil {
		panic(err) // embedded file is fixed at build time
	}
	return s
}

// Check runs every case in s and returns the ones that fail.
func Check(s Set) []Failure {
	var failures []Failure
	for _, group := range []struct {
		op    Op
		cases []Case
	}{
		{OpLPS, s.LPS},
		{OpKMP, s.KMP},
		{OpZArray, s.ZArray},
		{OpZ, s.Z},
	} {
		for _, c := range group.cases {
			// nil and empty compare equal
			if got := group.op.Run(c); !slices.Equal(got, c.Want) {
				failures = append(failures, Failure{Op: group.op, Case: c, Got: got})
			}
		}
	}
	return failures
}
