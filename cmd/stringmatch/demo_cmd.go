package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/glaslos/stringmatch/kmp"
	"github.com/glaslos/stringmatch/z"
)

const (
	demoPattern = "AABAACAABAA"
	demoText    = "ABABDABACDABABCABAB"
	demoSearch  = "ABABCABAB"
	demoZString = "aabaabcaxaabaabcy"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replay the reference sample runs",
		Run: func(cmd *cobra.Command, args []string) {
			runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(w io.Writer) {
	fmt.Fprint(w, color.CyanString("=== LPS ===\n"))
	fmt.Fprintf(w, "Pattern: %s\n", demoPattern)
	fmt.Fprintf(w, "LPS Array: %s\n", formatInts(kmp.LPSString(demoPattern)))

	fmt.Fprint(w, "\n"+color.CyanString("=== KMP search ===\n"))
	fmt.Fprintf(w, "Text: %s\n", demoText)
	fmt.Fprintf(w, "Pattern: %s\n", demoSearch)
	fmt.Fprintf(w, "Match state: %s\n", formatInts(kmp.SearchString(demoText, demoSearch)))

	fmt.Fprint(w, "\n"+color.CyanString("=== Z-array ===\n"))
	fmt.Fprintf(w, "String: %s\n", demoZString)
	fmt.Fprintf(w, "Z-array: %s\n", formatInts(z.ArrayString(demoZString)))

	fmt.Fprint(w, "\n"+color.CyanString("=== Z search ===\n"))
	fmt.Fprintf(w, "Text: %s\n", demoText)
	fmt.Fprintf(w, "Pattern: %s\n", demoSearch)
	fmt.Fprintf(w, "Z-array: %s\n", formatInts(z.SearchString(demoText, demoSearch)))
}
