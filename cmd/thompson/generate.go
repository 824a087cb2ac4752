package main

import (
	"fmt"

	"github.com/KromDaniel/thompson/pkg/thompson"
	"github.com/spf13/cobra"
)

var generateFlags struct {
	name       string
	pkg        string
	output     string
	testInputs []string
}

var generateCmd = &cobra.Command{
	Use:   "generate PATTERN",
	Short: "Generate a standalone Go matcher for a pattern",
	Long: `Compile PATTERN and write Go source for a matcher type with
MatchString and MatchBytes methods. The generated code has no dependency on
this module. Without --output the source is written to stdout.

Examples:
  thompson generate '(0|1)+' --name Binary --package matchers --output binary.go

  # Also write binary_test.go asserting the given inputs
  thompson generate '(0|1)+' --name Binary --package matchers --output binary.go \
      --test-input 0101 --test-input 012`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateFlags.name, "name", "", "exported type name of the generated matcher (required)")
	generateCmd.Flags().StringVar(&generateFlags.pkg, "package", "main", "package name of the generated file")
	generateCmd.Flags().StringVarP(&generateFlags.output, "output", "o", "", "output file (default stdout)")
	generateCmd.Flags().StringArrayVar(&generateFlags.testInputs, "test-input", nil, "input to assert in a generated test file (repeatable)")
	_ = generateCmd.MarkFlagRequired("name")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts := thompson.GenerateOptions{
		Pattern:    args[0],
		Name:       generateFlags.name,
		Package:    generateFlags.pkg,
		OutputFile: generateFlags.output,
		TestInputs: generateFlags.testInputs,
		Verbose:    verbose,
		LogOutput:  cmd.ErrOrStderr(),
	}

	if opts.OutputFile == "" || opts.OutputFile == "-" {
		if len(opts.TestInputs) > 0 {
			return fmt.Errorf("--test-input requires --output")
		}
		return thompson.GenerateTo(cmd.OutOrStdout(), opts)
	}

	if err := thompson.Generate(opts); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", opts.OutputFile)
	return nil
}
