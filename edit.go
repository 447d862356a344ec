package stringmatch

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidSpan is wrapped by the errors reporting an out-of-bounds or
// overlapping span.
var ErrInvalidSpan = errors.New("invalid span")

// An Edit describes the replacement of a portion of a text.
type Edit struct {
	Start, End int    // byte offsets of the region to replace
	New        string // the replacement
}

// Apply applies a sequence of edits to src and returns the result.
// Edits are applied in order of start offset; edits with the same start
// offset are applied in the order they were provided.
//
// Apply returns an error wrapping ErrInvalidSpan if any edit is out of
// bounds, or if any pair of edits is overlapping.
func Apply(src string, edits []Edit) (string, error) {
	edits, size, err := validate(src, edits)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(size)
	pos := 0
	for _, edit := range edits {
		b.WriteString(src[pos:edit.Start])
		b.WriteString(edit.New)
		pos = edit.End
	}
	b.WriteString(src[pos:])

	if b.Len() != size {
		panic(fmt.Sprintf("stringmatch: applied edits produced %d bytes, want %d", b.Len(), size))
	}
	return b.String(), nil
}

// SortEdits orders a slice of Edits by (start, end) offset.
// This ordering puts insertions (end = start) before replacements
// (end > start) at the same point, and keeps the order of multiple
// insertions at the same point.
func SortEdits(edits []Edit) {
	slices.SortStableFunc(edits, compareEdits)
}

func compareEdits(a, b Edit) int {
	if a.Start != b.Start {
		return a.Start - b.Start
	}
	return a.End - b.End
}

// validate checks that edits are consistent with src,
// and returns the size of the patched output.
// It may return a different slice.
func validate(src string, edits []Edit) ([]Edit, int, error) {
	if !slices.IsSortedFunc(edits, compareEdits) {
		edits = slices.Clone(edits)
		SortEdits(edits)
	}

	size := len(src)
	lastEnd := 0
	for _, edit := range edits {
		if !(0 <= edit.Start && edit.Start <= edit.End && edit.End <= len(src)) {
			return nil, 0, fmt.Errorf("%w: edit [%d,%d) out of bounds of %d bytes",
				ErrInvalidSpan, edit.Start, edit.End, len(src))
		}
		if edit.Start < lastEnd {
			return nil, 0, fmt.Errorf("%w: edit [%d,%d) overlaps the previous edit",
				ErrInvalidSpan, edit.Start, edit.End)
		}
		size += len(edit.New) + edit.Start - edit.End
		lastEnd = edit.End
	}
	return edits, size, nil
}

// Replace returns a copy of text with the first n non-overlapping
// occurrences of pattern, found by a, replaced by repl. Occurrences are
// chosen leftmost first. If n < 0 every such occurrence is replaced.
// An empty pattern matches nowhere, so text is returned unchanged.
func (a Algorithm) Replace(text, pattern, repl string, n int) string {
	matches := NonOverlapping(a.Occurrences(text, pattern))
	if n >= 0 && n < len(matches) {
		matches = matches[:n]
	}
	if len(matches) == 0 {
		return text
	}
	edits := make([]Edit, len(matches))
	for i, m := range matches {
		edits[i] = Edit{Start: m.Start, End: m.End, New: repl}
	}
	out, err := Apply(text, edits)
	if err != nil {
		panic(err) // occurrences are in bounds and disjoint
	}
	return out
}

// ReplaceAll calls Default.Replace for every occurrence.
func ReplaceAll(text, pattern, repl string) string {
	return Default.Replace(text, pattern, repl, -1)
}
