package main

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/glaslos/stringmatch/internal/cases"
)

func newCheckCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the scans against a golden case file",
		Long: `Run every case of a YAML case file through the four operations
(lps, kmp, zarray, z) and report mismatches. Without --file the built-in
reference vectors are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			set := cases.Default()
			if file != "" {
				var err error
				if set, err = cases.LoadFile(file); err != nil {
					return fmt.Errorf("failed to load cases: %w", err)
				}
			}
			slog.Info("checking cases", "file", file, "count", set.Len())

			w := cmd.OutOrStdout()
			failures := cases.Check(set)
			for _, f := range failures {
				fmt.Fprintf(w, "%s %s\n", color.RedString("FAIL"), f)
			}
			if len(failures) > 0 {
				return fmt.Errorf("%d of %d cases failed", len(failures), set.Len())
			}
			fmt.Fprintf(w, "%s %d cases\n", color.GreenString("PASS"), set.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML case file (defaults to the built-in vectors)")
	return cmd
}
