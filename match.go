// Package stringmatch finds every exact occurrence of a pattern in a text
// with one of two linear-time scans, Knuth-Morris-Pratt (package kmp) or
// the Z-algorithm (package z), and builds on the occurrences: index and
// count queries, replacement and highlighting.
//
// Text and pattern are compared byte by byte; there is no normalization,
// case folding or decoding.
package stringmatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/glaslos/stringmatch/kmp"
	"github.com/glaslos/stringmatch/z"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for an unrecognized name.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// An Algorithm selects the scan used to find occurrences.
// Both scans have the same signature and find the same occurrences;
// they differ in what the raw per-position array reports.
//
// Only KMP and Z are valid. The methods that scan a text panic when
// called on any other value; use ParseAlgorithm or Set to obtain one
// from user input.
type Algorithm int

const (
	// KMP reports, at each text index, the length of the longest prefix
	// of the pattern ending there. A full match marks where an
	// occurrence ends.
	KMP Algorithm = iota
	// Z reports, at each text index, the length of the longest prefix of
	// the pattern starting there. A full match marks where an occurrence
	// starts.
	Z
)

// Default is the algorithm used by the package-level functions.
const Default = KMP

var algorithmNames = map[Algorithm]string{
	KMP: "kmp",
	Z:   "z",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm returns the algorithm with the given name. Names are
// case-insensitive; "knuth-morris-pratt" and "zalgorithm" are accepted as
// long forms.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "kmp", "knuth-morris-pratt":
		return KMP, nil
	case "z", "zalgorithm", "z-algorithm":
		return Z, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Set implements flag.Value and pflag.Value.
func (a *Algorithm) Set(name string) error {
	v, err := ParseAlgorithm(name)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Type implements pflag.Value.
func (a *Algorithm) Type() string { return "algorithm" }

// Func returns the scan behind a. It panics if a is neither KMP nor Z.
func (a Algorithm) Func() func(text, pattern []byte) []int {
	switch a {
	case KMP:
		return kmp.Search[byte]
	case Z:
		return z.Search[byte]
	}
	panic(fmt.Sprintf("stringmatch: %v is not a valid algorithm", a))
}

// Scan returns the raw per-position array of a for text and pattern.
// It has len(text) entries, except that KMP returns an empty array for an
// empty pattern.
func (a Algorithm) Scan(text, pattern string) []int {
	return a.Func()([]byte(text), []byte(pattern))
}

// A Match is the half-open span [Start, End) of one occurrence,
// in byte offsets into the text.
type Match struct {
	Start, End int
}

// Len returns the length of the span.
func (m Match) Len() int { return m.End - m.Start }

func (m Match) String() string { return fmt.Sprintf("[%d,%d)", m.Start, m.End) }

// Occurrences returns every occurrence of pattern in text, overlapping
// ones included, ordered by Start. An empty pattern has no occurrences.
func (a Algorithm) Occurrences(text, pattern string) []Match {
	m := len(pattern)
	if m == 0 || m > len(text) {
		return nil
	}
	var matches []Match
	for i, v := range a.Scan(text, pattern) {
		if v != m {
			continue
		}
		switch a {
		case KMP: // occurrence ends at i
			matches = append(matches, Match{i - m + 1, i + 1})
		case Z: // occurrence starts at i
			matches = append(matches, Match{i, i + m})
		}
	}
	return matches
}

// Index returns the offset of the first occurrence of pattern in text,
// or -1 if there is none.
func (a Algorithm) Index(text, pattern string) int {
	if matches := a.Occurrences(text, pattern); len(matches) > 0 {
		return matches[0].Start
	}
	return -1
}

// LastIndex returns the offset of the last occurrence of pattern in text,
// or -1 if there is none.
func (a Algorithm) LastIndex(text, pattern string) int {
	if matches := a.Occurrences(text, pattern); len(matches) > 0 {
		return matches[len(matches)-1].Start
	}
	return -1
}

// Count returns the number of occurrences of pattern in text, counting
// overlapping ones: Count("aaaa", "aa") is 3.
func (a Algorithm) Count(text, pattern string) int {
	return len(a.Occurrences(text, pattern))
}

// Contains reports whether pattern occurs in text.
func (a Algorithm) Contains(text, pattern string) bool {
	return a.Index(text, pattern) >= 0
}

// NonOverlapping selects, leftmost first, the occurrences that do not
// overlap an earlier selected one. matches must be ordered by Start.
func NonOverlapping(matches []Match) []Match {
	var out []Match
	end := 0
	for _, m := range matches {
		if m.Start < end {
			continue
		}
		out = append(out, m)
		end = m.End
	}
	return out
}

// Occurrences calls Default.Occurrences.
func Occurrences(text, pattern string) []Match { return Default.Occurrences(text, pattern) }

// Index calls Default.Index.
func Index(text, pattern string) int { return Default.Index(text, pattern) }

// LastIndex calls Default.LastIndex.
func LastIndex(text, pattern string) int { return Default.LastIndex(text, pattern) }

// Count calls Default.Count.
func Count(text, pattern string) int { return Default.Count(text, pattern) }

// Contains calls Default.Contains.
func Contains(text, pattern string) bool { return Default.Contains(text, pattern) }
