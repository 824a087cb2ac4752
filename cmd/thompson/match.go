package main

import (
	"errors"
	"fmt"

	"github.com/KromDaniel/thompson/pkg/thompson"
	"github.com/spf13/cobra"
)

var matchFlags struct {
	strict bool
	dump   bool
}

// errRejected is returned by match --strict when an input does not match.
var errRejected = errors.New("one or more inputs were rejected")

var matchCmd = &cobra.Command{
	Use:   "match PATTERN INPUT...",
	Short: "Report whether each input matches the pattern",
	Long: `Compile PATTERN and print true or false for each INPUT, one per line.
An input matches only if the pattern covers all of it.

Examples:
  # Alternation inside a group
  thompson match 'a*(b|c)d' aaacd bd abcd

  # Fail if any input is rejected
  thompson match --strict '(ab)+' ab abab`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().BoolVar(&matchFlags.strict, "strict", false, "exit non-zero if any input is rejected")
	matchCmd.Flags().BoolVar(&matchFlags.dump, "dump", false, "print the compiled automaton before the results")
}

func runMatch(cmd *cobra.Command, args []string) error {
	re, err := thompson.CompileWith(args[0], compileOptions(cmd))
	if err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}

	out := cmd.OutOrStdout()
	if matchFlags.dump {
		fmt.Fprintln(out, re.Dump())
	}

	rejected := false
	for _, input := range args[1:] {
		ok := re.MatchString(input)
		rejected = rejected || !ok
		fmt.Fprintln(out, ok)
	}

	if matchFlags.strict && rejected {
		return errRejected
	}
	return nil
}
