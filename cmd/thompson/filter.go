package main

import (
	"fmt"
	"io"
	"os"

	"github.com/KromDaniel/thompson/pkg/thompson"
	"github.com/KromDaniel/thompson/stream"
	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:   "filter PATTERN [FILE]",
	Short: "Print the lines that match the pattern entirely",
	Long: `Read FILE (or stdin) line by line and print each line that the
pattern matches as a whole. Line terminators are not part of the matched text.

Examples:
  thompson filter '(0|1|2|3|4|5|6|7|8|9)+' numbers.txt
  cat words.txt | thompson filter '(a|b)*abb'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFilter,
}

func init() {
	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	re, err := thompson.CompileWith(args[0], compileOptions(cmd))
	if err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}

	in := cmd.InOrStdin()
	if len(args) == 2 && args[1] != "-" {
		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	if _, err := io.Copy(cmd.OutOrStdout(), stream.LineFilter(in, re.Match)); err != nil {
		return fmt.Errorf("failed to filter input: %w", err)
	}
	return nil
}
