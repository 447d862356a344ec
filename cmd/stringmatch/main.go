// Command stringmatch inspects the KMP and Z-algorithm scans: it prints
// their arrays, finds and highlights occurrences, replays the reference
// sample runs and checks golden case files.
package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/glaslos/stringmatch"
	"github.com/glaslos/stringmatch/internal/logging"
)

type options struct {
	verbose  bool
	logLevel string
	noColor  bool
	algo     stringmatch.Algorithm
}

func newRootCmd() *cobra.Command {
	opts := &options{algo: stringmatch.Default}

	rootCmd := &cobra.Command{
		Use:   "stringmatch",
		Short: "Exact string matching with KMP and the Z-algorithm",
		Long: `stringmatch runs the Knuth-Morris-Pratt and Z-algorithm scans.

- lps, zarray: print the auxiliary arrays built from a single string
- scan: print the per-position array of a scan over a text
- find, replace: work with the occurrences of a pattern
- demo: replay the reference sample runs
- check: verify the scans against a golden case file`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := logging.ParseLevel(opts.logLevel)
			if opts.verbose {
				level = slog.LevelDebug
			}
			logging.Init(cmd.ErrOrStderr(), level)
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newLPSCmd(),
		newZArrayCmd(),
		newScanCmd(opts),
		newFindCmd(opts),
		newReplaceCmd(opts),
		newDemoCmd(),
		newCheckCmd(),
	)
	return rootCmd
}

// addAlgoFlag registers the --algo flag shared by the scanning commands.
func addAlgoFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().VarP(&opts.algo, "algo", "a", "Scan algorithm (kmp, z)")
}

// formatInts renders an array the way the sample runs print it.
func formatInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
