package kmp

// Search scans text for pattern and returns the match state at every text
// position: result[i] is the length of the longest prefix of pattern that
// ends at text[i]. result[i] == len(pattern) marks an occurrence ending at i.
// After a full match the scan continues from the pattern's longest border,
// so overlapping occurrences are reported.
//
// The result has len(text) entries. An empty pattern yields an empty
// result, as does an empty text.
func Search[T comparable](text, pattern []T) []int {
	n, m := len(text), len(pattern)
	if m == 0 {
		return []int{}
	}
	lps := LPS(pattern)
	state := make([]int, n)
	i, j := 0, 0 // i indexes text, j is the matched length of pattern
	for i < n {
		if pattern[j] == text[i] {
			j++
			// progress is keyed by the index just consumed
			state[i] = j
			i++
		}
		if j == m {
			j = lps[j-1]
		} else if i < n && pattern[j] != text[i] {
			if j > 0 {
				j = lps[j-1]
			} else {
				state[i] = 0
				i++
			}
		}
	}
	return state
}

// SearchString is Search over the bytes of text and pattern.
func SearchString(text, pattern string) []int {
	return Search([]byte(text), []byte(pattern))
}
