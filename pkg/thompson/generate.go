package thompson

import (
	"errors"
	"fmt"
	"io"

	"github.com/KromDaniel/thompson/internal/compiler"
)

// GenerateOptions configures Go source generation.
type GenerateOptions struct {
	// Pattern is the pattern to compile.
	Pattern string

	// Name is the exported type name of the generated matcher
	// (e.g., "Digits" generates type Digits with MatchString and MatchBytes).
	Name string

	// Package is the Go package name for the generated code.
	Package string

	// OutputFile is the path where generated code will be written.
	OutputFile string

	// TestInputs, if non-empty, also generates <output>_test.go asserting
	// the generated matcher's answer for each input.
	TestInputs []string

	// Verbose logs each compilation stage to LogOutput.
	Verbose bool

	// LogOutput receives verbose output (default os.Stderr).
	LogOutput io.Writer
}

// Validate checks if the options are valid.
func (o GenerateOptions) Validate() error {
	if o.Name == "" {
		return errors.New("name cannot be empty")
	}
	if o.Package == "" {
		return errors.New("package cannot be empty")
	}
	if o.OutputFile == "" {
		return errors.New("output file cannot be empty")
	}
	return nil
}

// Generate compiles opts.Pattern and writes a standalone Go matcher for it.
func Generate(opts GenerateOptions) error {
	g, err := newGenerator(opts)
	if err != nil {
		return err
	}
	if err := g.Generate(); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	return nil
}

// GenerateTo is like Generate but writes the matcher source to w and never
// writes a test file. opts.OutputFile is not required.
func GenerateTo(w io.Writer, opts GenerateOptions) error {
	if opts.OutputFile == "" {
		opts.OutputFile = "-"
	}
	opts.TestInputs = nil
	g, err := newGenerator(opts)
	if err != nil {
		return err
	}
	if err := g.Render(w); err != nil {
		return fmt.Errorf("failed to render code: %w", err)
	}
	return nil
}

func newGenerator(opts GenerateOptions) (*compiler.Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	c := compiler.New(compiler.Config{
		Pattern:   opts.Pattern,
		Verbose:   opts.Verbose,
		LogOutput: opts.LogOutput,
	})
	a, err := c.CompilePattern(opts.Pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pattern: %w", err)
	}

	g, err := compiler.NewGenerator(a, compiler.GenerateConfig{
		Pattern:        opts.Pattern,
		Name:           opts.Name,
		Package:        opts.Package,
		OutputFile:     opts.OutputFile,
		TestFileInputs: opts.TestInputs,
	}, c.Logger())
	if err != nil {
		return nil, err
	}
	return g, nil
}
