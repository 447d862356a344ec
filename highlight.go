package stringmatch

import (
	"fmt"
	"slices"
	"strings"
)

// Highlight renders text with every byte covered by matches passed
// through f(segment, true) and every other run passed through
// f(segment, false). Overlapping and adjacent matches are merged into a
// single segment, so "aaaa" matched by "aa" yields one marked run.
func Highlight(text string, matches []Match, f func(s string, matched bool) string) (string, error) {
	spans, err := merge(text, matches)
	if err != nil {
		return "", err
	}
	return Snippet{Start: 0, End: len(text), Spans: spans}.Render(text, f), nil
}

// A Snippet is a region of a text holding one or more matched spans with
// some surrounding context.
type Snippet struct {
	// The region of the text, context included.
	Start, End int
	// The merged matched spans inside the region, in text offsets.
	Spans []Match
}

// Snippets groups matches into regions of text with up to context bytes
// on either side. Regions whose context would touch are combined.
func Snippets(text string, matches []Match, context int) ([]Snippet, error) {
	spans, err := merge(text, matches)
	if err != nil {
		return nil, err
	}
	context = max(context, 0)

	var snippets []Snippet
	var s *Snippet
	for _, span := range spans {
		start := max(span.Start-context, 0)
		end := min(span.End+context, len(text))
		if s != nil && start <= s.End {
			// within range of the previous snippet
			s.End = end
			s.Spans = append(s.Spans, span)
			continue
		}
		snippets = append(snippets, Snippet{Start: start, End: end, Spans: []Match{span}})
		s = &snippets[len(snippets)-1]
	}
	return snippets, nil
}

// Render returns the region of text covered by s, formatted with f as in
// Highlight.
func (s Snippet) Render(text string, f func(s string, matched bool) string) string {
	b := new(strings.Builder)
	last := s.Start
	for _, span := range s.Spans {
		if last < span.Start {
			b.WriteString(f(text[last:span.Start], false))
		}
		b.WriteString(f(text[span.Start:span.End], true))
		last = span.End
	}
	if last < s.End {
		b.WriteString(f(text[last:s.End], false))
	}
	return b.String()
}

// merge validates matches against text and returns them sorted with
// overlapping and adjacent spans combined. Empty spans are dropped.
func merge(text string, matches []Match) ([]Match, error) {
	for _, m := range matches {
		if !(0 <= m.Start && m.Start <= m.End && m.End <= len(text)) {
			return nil, fmt.Errorf("%w: match %v out of bounds of %d bytes", ErrInvalidSpan, m, len(text))
		}
	}
	sorted := slices.Clone(matches)
	slices.SortFunc(sorted, func(a, b Match) int {
		if a.Start != b.Start {
			return a.Start - b.Start
		}
		return a.End - b.End
	})

	var spans []Match
	for _, m := range sorted {
		if m.Len() == 0 {
			continue
		}
		if n := len(spans); n > 0 && m.Start <= spans[n-1].End {
			spans[n-1].End = max(spans[n-1].End, m.End)
			continue
		}
		spans = append(spans, m)
	}
	return spans, nil
}
