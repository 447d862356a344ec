// Package z implements the Z-algorithm: the Z-array of a sequence and the
// same window scan run against a second sequence to find a pattern.
package z

// Array returns the Z-array of s. For i > 0, Z[i] is the length of the
// longest substring starting at s[i] that is also a prefix of s.
// Z[0] is len(s) by convention. An empty s yields an empty array.
func Array[T comparable](s []T) []int {
	n := len(s)
	if n == 0 {
		return []int{}
	}
	zs := make([]int, n)
	zs[0] = n

	// [l, r] is the rightmost window known to match a prefix of s.
	l, r := 0, 0
	for i := 1; i < n; i++ {
		if i > r {
			l, r = i, i
			r += extend(s, s, l, r)
			zs[i] = r - l
			r--
			continue
		}
		k := i - l
		if zs[k] < r-i+1 {
			zs[i] = zs[k]
			continue
		}
		l = i
		r += extend(s, s, l, r)
		zs[i] = r - l
		r--
	}
	return zs
}

// ArrayString is Array over the bytes of s.
func ArrayString(s string) []int { return Array([]byte(s)) }
