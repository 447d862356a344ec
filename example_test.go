package stringmatch_test

import (
	"fmt"
	"strings"

	"github.com/glaslos/stringmatch"
)

func ExampleAlgorithm_Scan() {
	fmt.Println(stringmatch.KMP.Scan("ABCXYZABC", "ABC"))
	fmt.Println(stringmatch.Z.Scan("ABCXYZABC", "ABC"))
	// Output:
	// [1 2 3 0 0 0 1 2 3]
	// [3 0 0 0 0 0 3 0 0]
}

func ExampleOccurrences() {
	fmt.Println(stringmatch.Occurrences("aaaaa", "aa"))
	// Output: [[0,2) [1,3) [2,4) [3,5)]
}

func ExampleHighlight() {
	text := "The red fox jumped over the red fence"
	out, _ := stringmatch.Highlight(text, stringmatch.Occurrences(text, "red"), func(s string, matched bool) string {
		if matched {
			return strings.ToUpper(s)
		}
		return s
	})
	fmt.Println(out)
	// Output: The RED fox jumped over the RED fence
}

func ExampleAlgorithm_Replace() {
	fmt.Println(stringmatch.Z.Replace("aaaaa", "aa", "b", -1))
	// Output: bba
}
