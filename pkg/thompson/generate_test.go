package thompson

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    GenerateOptions
		wantErr bool
	}{
		{"valid", GenerateOptions{Pattern: "a", Name: "A", Package: "p", OutputFile: "a.go"}, false},
		{"empty pattern is valid", GenerateOptions{Name: "A", Package: "p", OutputFile: "a.go"}, false},
		{"missing name", GenerateOptions{Pattern: "a", Package: "p", OutputFile: "a.go"}, true},
		{"missing package", GenerateOptions{Pattern: "a", Name: "A", OutputFile: "a.go"}, true},
		{"missing output", GenerateOptions{Pattern: "a", Name: "A", Package: "p"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "digits.go")

	err := Generate(GenerateOptions{
		Pattern:    "(0|1)+",
		Name:       "Binary",
		Package:    "matchers",
		OutputFile: out,
		TestInputs: []string{"0101", "012"},
	})
	require.NoError(t, err)

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(src), `Code generated by thompson for pattern "(0|1)+". DO NOT EDIT.`)
	require.Contains(t, string(src), "package matchers")
	require.Contains(t, string(src), "func (Binary) MatchString(")

	testSrc, err := os.ReadFile(filepath.Join(dir, "digits_test.go"))
	require.NoError(t, err)
	require.Contains(t, string(testSrc), `{"0101", true}`)
	require.Contains(t, string(testSrc), `{"012", false}`)
}

func TestGenerateErrors(t *testing.T) {
	dir := t.TempDir()

	err := Generate(GenerateOptions{Pattern: "a)", Name: "A", Package: "p", OutputFile: filepath.Join(dir, "a.go")})
	var ute *UnexpectedTokenError
	require.ErrorAs(t, err, &ute)

	err = Generate(GenerateOptions{Pattern: "a", Name: "lower", Package: "p", OutputFile: filepath.Join(dir, "a.go")})
	require.ErrorContains(t, err, "not an exported Go identifier")

	_, statErr := os.Stat(filepath.Join(dir, "a.go"))
	require.True(t, os.IsNotExist(statErr))
}

func TestGenerateTo(t *testing.T) {
	var buf bytes.Buffer
	err := GenerateTo(&buf, GenerateOptions{
		Pattern:    "ab*",
		Name:       "AB",
		Package:    "main",
		TestInputs: []string{"ignored"},
	})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "var CompiledAB = AB{}")
	require.Contains(t, buf.String(), "func (AB) MatchBytes(")
}
