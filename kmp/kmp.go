// Package kmp implements the Knuth-Morris-Pratt prefix function and the
// linear scan that consumes it.
//
// Both operations are pure: they allocate their own result and never
// retain or modify their arguments.
package kmp

// LPS returns the prefix function of pattern: lps[i] is the length of the
// longest proper prefix of pattern[0..i] that is also a suffix of it.
// lps[0] is always 0. An empty pattern yields an empty table.
func LPS[T comparable](pattern []T) []int {
	m := len(pattern)
	lps := make([]int, m)
	i, j := 1, 0 // j is the length of the prefix matched so far
	for i < m {
		switch {
		case pattern[i] == pattern[j]:
			j++
			lps[i] = j
			i++
		case j > 0:
			// fall back without consuming pattern[i]
			j = lps[j-1]
		default:
			lps[i] = 0
			i++
		}
	}
	return lps
}

// LPSString is LPS over the bytes of pattern.
func LPSString(pattern string) []int { return LPS([]byte(pattern)) }
