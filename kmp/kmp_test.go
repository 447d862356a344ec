package kmp

import (
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLPS(t *testing.T) {
	for _, test := range []struct {
		pattern string
		want    []int
	}{
		{"", []int{}},
		{"A", []int{0}},
		{"ABCDE", []int{0, 0, 0, 0, 0}},
		{"AAAAA", []int{0, 1, 2, 3, 4}},
		{"ABABAB", []int{0, 0, 1, 2, 3, 4}},
		{"AABAACAABAA", []int{0, 1, 0, 1, 2, 0, 1, 2, 3, 4, 5}},
		{"aabaacaadaa", []int{0, 1, 0, 1, 2, 0, 1, 2, 0, 1, 2}},
		{"abacabab", []int{0, 0, 1, 0, 1, 2, 3, 2}},
	} {
		require.Equal(t, test.want, LPSString(test.pattern), "LPS(%q)", test.pattern)
	}
}

func TestLPSAllSame(t *testing.T) {
	for k := 1; k <= 32; k++ {
		lps := LPSString(strings.Repeat("x", k))
		for i, v := range lps {
			if v != i {
				t.Fatalf("LPS(x*%d)[%d] = %d, want %d", k, i, v, i)
			}
		}
	}
}

func TestLPSGeneric(t *testing.T) {
	require.Equal(t, []int{0, 1, 0, 1, 2}, LPS([]rune("ωωaωω")))
	require.Equal(t, []int{0, 0, 1, 2}, LPS([]int{7, 8, 7, 8}))
}

func TestSearch(t *testing.T) {
	for _, test := range []struct {
		name, text, pattern string
		want                []int
	}{
		{"empty text", "", "ABC", []int{}},
		{"empty pattern", "ABCABC", "", []int{}},
		{"empty both", "", "", []int{}},
		{"not found", "ABCDEFG", "XYZ", []int{0, 0, 0, 0, 0, 0, 0}},
		{"at start", "ABCDEF", "ABC", []int{1, 2, 3, 0, 0, 0}},
		{"at end", "XYZABC", "ABC", []int{0, 0, 0, 1, 2, 3}},
		{"non-overlapping", "ABCXYZABC", "ABC", []int{1, 2, 3, 0, 0, 0, 1, 2, 3}},
		{"overlapping", "ababab", "abab", []int{1, 2, 3, 4, 3, 4}},
		{"resets", "ABABDABACDABABCABAB", "ABABCABAB",
			[]int{1, 2, 3, 4, 0, 1, 2, 3, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"text shorter", "ABC", "ABCDE", []int{1, 2, 3}},
		{"single char", "aXaa", "a", []int{1, 0, 1, 1}},
	} {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, SearchString(test.text, test.pattern))
		})
	}
}

// The zero recorded on a zero-progress mismatch is keyed by the current
// index, while progress is keyed by the index just consumed.
func TestSearchIndexing(t *testing.T) {
	got := SearchString("ABABDABACDABABCABAB", "ABABCABAB")
	require.Equal(t, 0, got[4])  // 'D' after "ABAB": falls back to 2, then 0
	require.Equal(t, 3, got[7])  // "ABA" consumed
	require.Equal(t, 0, got[8])  // 'C' mismatches after fallback
	require.Equal(t, 9, got[18]) // full occurrence ends here
}

func TestSearchPure(t *testing.T) {
	text, pattern := []byte("abcabcabd"), []byte("abcabd")
	a := Search(text, pattern)
	b := Search(text, pattern)
	require.Equal(t, a, b)
	require.Equal(t, "abcabcabd", string(text))
	require.Equal(t, "abcabd", string(pattern))
	require.Equal(t, LPS(pattern), LPS(pattern))
}

// longestBorder returns the length of the longest prefix of pattern that
// ends at text[i], computed naively.
func longestBorder(text, pattern string, i int) int {
	best := 0
	for k := 1; k <= len(pattern) && k <= i+1; k++ {
		if text[i+1-k:i+1] == pattern[:k] {
			best = k
		}
	}
	return best
}

// naiveLPS computes the prefix function by trying every border.
func naiveLPS(p string) []int {
	lps := make([]int, len(p))
	for i := range p {
		for k := i; k > 0; k-- {
			if p[:k] == p[i+1-k:i+1] {
				lps[i] = k
				break
			}
		}
	}
	return lps
}

// randstr returns a random string of length n made of characters from s.
func randstr(s string, n int) string {
	x := make([]byte, n)
	for i := range x {
		x[i] = s[rand.Intn(len(s))]
	}
	return string(x)
}

func TestRandSearch(t *testing.T) {
	rand.Seed(1)
	for i := 0; i < 2000; i++ {
		text := randstr("abc", rand.Intn(24))
		pattern := randstr("ab", 1+rand.Intn(6))

		lps := LPSString(pattern)
		if want := naiveLPS(pattern); !slices.Equal(lps, want) {
			t.Fatalf("LPS(%q) = %v, want %v", pattern, lps, want)
		}
		if lps[0] != 0 {
			t.Fatalf("LPS(%q)[0] = %d", pattern, lps[0])
		}

		got := SearchString(text, pattern)
		if len(got) != len(text) {
			t.Fatalf("Search(%q, %q) has %d entries, want %d", text, pattern, len(got), len(text))
		}
		for j := range got {
			if want := longestBorder(text, pattern, j); got[j] != want {
				t.Fatalf("Search(%q, %q)[%d] = %d, want %d", text, pattern, j, got[j], want)
			}
		}
	}
}

func TestSearchConcurrent(t *testing.T) {
	for i := 0; i < 8; i++ {
		text := strings.Repeat("ABABCABAB", i+1)
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Parallel()
			got := SearchString(text, "ABABCABAB")
			want := make([]int, len(text))
			for j := range want {
				want[j] = longestBorder(text, "ABABCABAB", j)
			}
			require.Equal(t, want, got)
			require.Equal(t, []int{0, 0, 1, 2, 0, 1, 2, 3, 4}, LPSString("ABABCABAB"))
		})
	}
}

func BenchmarkSearch(b *testing.B) {
	text := strings.Repeat("ab", 1<<15) + "abc"
	pattern := strings.Repeat("ab", 64) + "c"
	b.Run("bytes", func(b *testing.B) {
		tb, pb := []byte(text), []byte(pattern)
		for i := 0; i < b.N; i++ {
			Search(tb, pb)
		}
	})
	b.Run("runes", func(b *testing.B) {
		tr, pr := []rune(text), []rune(pattern)
		for i := 0; i < b.N; i++ {
			Search(tr, pr)
		}
	})
}
