package main

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/glaslos/stringmatch"
)

// highlight marks matched segments in bold yellow.
func highlight(s string, matched bool) string {
	if matched {
		return color.New(color.FgYellow, color.Bold).Sprint(s)
	}
	return s
}

func newFindCmd(opts *options) *cobra.Command {
	var context int

	cmd := &cobra.Command{
		Use:   "find <text> <pattern>",
		Short: "List and highlight the occurrences of a pattern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, pattern := args[0], args[1]
			w := cmd.OutOrStdout()

			matches := opts.algo.Occurrences(text, pattern)
			slog.Debug("found occurrences", "algo", opts.algo, "count", len(matches))
			if len(matches) == 0 {
				fmt.Fprintln(w, color.RedString("no occurrences"))
				return nil
			}
			for _, m := range matches {
				fmt.Fprintln(w, m)
			}

			if context < 0 {
				out, err := stringmatch.Highlight(text, matches, highlight)
				if err != nil {
					return fmt.Errorf("failed to highlight: %w", err)
				}
				fmt.Fprintln(w, out)
				return nil
			}
			snippets, err := stringmatch.Snippets(text, matches, context)
			if err != nil {
				return fmt.Errorf("failed to build snippets: %w", err)
			}
			for _, s := range snippets {
				fmt.Fprintf(w, "%s %s\n", color.CyanString("%d:", s.Start), s.Render(text, highlight))
			}
			return nil
		},
	}
	addAlgoFlag(cmd, opts)
	cmd.Flags().IntVarP(&context, "context", "C", -1, "Bytes of context around occurrences (-1 prints the whole text)")
	return cmd
}

func newReplaceCmd(opts *options) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "replace <text> <pattern> <replacement>",
		Short: "Replace non-overlapping occurrences of a pattern",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			slog.Debug("replacing", "algo", opts.algo, "n", n)
			fmt.Fprintln(cmd.OutOrStdout(), opts.algo.Replace(args[0], args[1], args[2], n))
		},
	}
	addAlgoFlag(cmd, opts)
	cmd.Flags().IntVarP(&n, "count", "n", -1, "Maximum number of replacements (-1 for all)")
	return cmd
}
