package z

// Search returns, for every position i of text, the length of the longest
// prefix of pattern that starts at text[i]. result[i] == len(pattern) marks
// an occurrence starting at i.
//
// The pattern's own Z-array stands in for the self-referential lookup of
// Array, and the window never grows past len(pattern). The result always
// has len(text) entries; it is all zeros when pattern is empty.
func Search[T comparable](text, pattern []T) []int {
	n, m := len(text), len(pattern)
	zs := make([]int, n)
	if m == 0 {
		return zs
	}
	zp := Array(pattern)

	// [l, r] is the window of text known to match a prefix of pattern.
	l, r := 0, -1
	for i := 0; i < n; i++ {
		if i > r {
			l, r = i, i
			r += extend(pattern, text, l, r)
			zs[i] = r - l
			r--
			continue
		}
		k := i - l
		if zp[k] < r-i+1 {
			zs[i] = zp[k]
			continue
		}
		l = i
		r += extend(pattern, text, l, r)
		zs[i] = r - l
		r--
	}
	return zs
}

// SearchString is Search over the bytes of text and pattern.
func SearchString(text, pattern string) []int {
	return Search([]byte(text), []byte(pattern))
}
