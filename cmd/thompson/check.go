package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/KromDaniel/thompson/metrics"
	"github.com/KromDaniel/thompson/pkg/thompson"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var checkFlags struct {
	metrics bool
}

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Run a YAML suite of accept and reject cases",
	Long: `Compile every pattern in a suite file and verify that each listed
input is accepted or rejected as expected.

Suite Format (YAML):
  cases:
    - pattern: "a*(b|c)d"
      accept: ["aaacd", "bd"]
      reject: ["aaaaaaabcd", ""]
    - pattern: "a**"
      error: true   # the pattern must fail to parse

Examples:
  thompson check cases.yaml

  # Print Prometheus metrics for the run
  thompson check cases.yaml --metrics`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkFlags.metrics, "metrics", false, "print metrics in Prometheus text format after the run")
}

// Suite is a set of membership cases.
type Suite struct {
	Cases []Case `yaml:"cases"`
}

// Case lists inputs a pattern must accept and reject.
type Case struct {
	Pattern string   `yaml:"pattern"`
	Accept  []string `yaml:"accept"`
	Reject  []string `yaml:"reject"`
	Error   bool     `yaml:"error"`
}

// errSuiteFailed is returned when any case in a suite fails.
var errSuiteFailed = errors.New("suite failed")

func loadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(suite.Cases) == 0 {
		return nil, fmt.Errorf("%s: no cases", path)
	}
	return &suite, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	suite, err := loadSuite(args[0])
	if err != nil {
		return err
	}

	opts := compileOptions(cmd)
	reg := prometheus.NewRegistry()
	if checkFlags.metrics {
		if opts.Metrics, err = metrics.New(reg); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	failures, inputs := 0, 0
	for _, c := range suite.Cases {
		inputs += len(c.Accept) + len(c.Reject)
		failures += checkCase(out, c, opts)
	}

	fmt.Fprintf(out, "%d cases, %d inputs, %d failures\n", len(suite.Cases), inputs, failures)
	if checkFlags.metrics {
		if err := metrics.WriteText(out, reg); err != nil {
			return err
		}
	}
	if failures > 0 {
		return errSuiteFailed
	}
	return nil
}

// checkCase runs one case and returns the number of failed expectations.
func checkCase(out io.Writer, c Case, opts thompson.Options) int {
	re, err := thompson.CompileWith(c.Pattern, opts)
	if c.Error {
		if err == nil {
			fmt.Fprintf(out, "FAIL %q: compiled, want parse error\n", c.Pattern)
			return 1
		}
		return 0
	}
	if err != nil {
		fmt.Fprintf(out, "FAIL %q: %v\n", c.Pattern, err)
		return 1
	}

	failures := 0
	for _, in := range c.Accept {
		if !re.MatchString(in) {
			fmt.Fprintf(out, "FAIL %q: rejected %q, want accepted\n", c.Pattern, in)
			failures++
		}
	}
	for _, in := range c.Reject {
		if re.MatchString(in) {
			fmt.Fprintf(out, "FAIL %q: accepted %q, want rejected\n", c.Pattern, in)
			failures++
		}
	}
	return failures
}
