package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/glaslos/stringmatch/kmp"
	"github.com/glaslos/stringmatch/z"
)

func newLPSCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lps <pattern>",
		Short: "Print the KMP prefix function of a pattern",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			slog.Debug("computing lps", "pattern_len", len(args[0]))
			fmt.Fprintln(cmd.OutOrStdout(), formatInts(kmp.LPSString(args[0])))
		},
	}
}

func newZArrayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zarray <string>",
		Short: "Print the Z-array of a string",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			slog.Debug("computing z-array", "len", len(args[0]))
			fmt.Fprintln(cmd.OutOrStdout(), formatInts(z.ArrayString(args[0])))
		},
	}
}

func newScanCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <text> <pattern>",
		Short: "Print the per-position array of a scan",
		Long: `Print the per-position array of a scan over text.

With --algo kmp entry i is the length of the longest prefix of the pattern
ending at text[i]; with --algo z it is the length of the longest prefix
starting at text[i]. An entry equal to the pattern length marks an
occurrence.`,
		Args: cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			text, pattern := args[0], args[1]
			slog.Debug("scanning", "algo", opts.algo, "text_len", len(text), "pattern_len", len(pattern))
			fmt.Fprintln(cmd.OutOrStdout(), formatInts(opts.algo.Scan(text, pattern)))
		},
	}
	addAlgoFlag(cmd, opts)
	return cmd
}
