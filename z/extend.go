package z

// The explicit capacity in s[i:j:j] leads to more efficient code.

// extend returns how far the window ending at r (exclusive) can grow: the
// length of the common prefix of ref[r-l:] and s[r:]. Both Array and Search
// grow their window only through extend.
func extend[T comparable](ref, s []T, l, r int) int {
	return commonPrefixLen(ref[r-l:len(ref):len(ref)], s[r:len(s):len(s)])
}

// commonPrefixLen returns the length of the common prefix of a and b.
func commonPrefixLen[T comparable](a, b []T) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
