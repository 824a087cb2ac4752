package main

import (
	"fmt"
	"os"

	"github.com/KromDaniel/thompson/pkg/thompson"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "thompson",
	Short: "Whole-input regular expression matching with Thompson automata",
	Long: `Thompson compiles a small regular-expression language into a
nondeterministic automaton and decides whether entire inputs match.

Supported syntax:
  ab     concatenation
  a|b    alternation
  (ab)   grouping
  a* a+ a?  zero or more, one or more, zero or one
  \x     the byte x taken literally`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log compilation stages to stderr")
}

// compileOptions returns the options shared by every subcommand. Verbose
// output goes to the command's error stream.
func compileOptions(cmd *cobra.Command) thompson.Options {
	return thompson.Options{
		Verbose:   verbose,
		LogOutput: cmd.ErrOrStderr(),
	}
}
