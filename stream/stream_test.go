package stream

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/KromDaniel/thompson/internal/compiler"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BufferSize != 64*1024 {
		t.Errorf("DefaultConfig().BufferSize = %d, want %d", cfg.BufferSize, 64*1024)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "zero buffer size is valid",
			cfg:     Config{BufferSize: 0},
			wantErr: false,
		},
		{
			name:    "positive buffer size",
			cfg:     Config{BufferSize: 1},
			wantErr: false,
		},
		{
			name:    "negative buffer size",
			cfg:     Config{BufferSize: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidBufferSize) {
				t.Errorf("Validate() error = %v, want ErrInvalidBufferSize", err)
			}
		})
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	if got := (Config{}).ApplyDefaults().BufferSize; got != DefaultBufferSize {
		t.Errorf("ApplyDefaults().BufferSize = %d, want %d", got, DefaultBufferSize)
	}
	if got := (Config{BufferSize: 7}).ApplyDefaults().BufferSize; got != 7 {
		t.Errorf("ApplyDefaults() overrode an explicit buffer size: %d", got)
	}
}

// countingMachine accepts inputs made only of 'a' and counts bytes fed.
type countingMachine struct {
	alive bool
	fed   int
}

func (m *countingMachine) Reset() { m.alive, m.fed = true, 0 }

func (m *countingMachine) Feed(p []byte) bool {
	for _, c := range p {
		m.fed++
		if c != 'a' {
			m.alive = false
			return false
		}
	}
	return m.alive
}

func (m *countingMachine) Accepting() bool { return m.alive }

func TestAcceptsStopsOnDeadMachine(t *testing.T) {
	m := &countingMachine{}
	input := "aab" + strings.Repeat("a", 1000)

	ok, err := Accepts(strings.NewReader(input), m, Config{BufferSize: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected rejection")
	}
	if m.fed > 4 {
		t.Errorf("fed %d bytes after the machine died, want at most one chunk", m.fed)
	}
}

func TestAcceptsReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Accepts(iotest.ErrReader(boom), &countingMachine{}, Config{})
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want %v", err, boom)
	}

	_, err = Accepts(strings.NewReader("a"), &countingMachine{}, Config{BufferSize: -5})
	if !errors.Is(err, ErrInvalidBufferSize) {
		t.Errorf("error = %v, want ErrInvalidBufferSize", err)
	}
}

func TestAcceptsMatchesInMemoryResult(t *testing.T) {
	patterns := []string{"a*(b|c)d", "(ab)+", "", "(a|b)*abb"}
	inputs := []string{"", "aaacd", "abab", "ab", "aababb", "aaaaaaabcd", strings.Repeat("ab", 500)}

	for _, pattern := range patterns {
		a, err := compiler.New(compiler.Config{}).CompilePattern(pattern)
		if err != nil {
			t.Fatalf("CompilePattern(%q) error: %v", pattern, err)
		}
		runner := a.NewRunner()
		for _, in := range inputs {
			want := a.AcceptsString(in)
			for _, size := range []int{1, 2, 3, 7, 64, 0} {
				readers := map[string]io.Reader{
					"plain":    strings.NewReader(in),
					"one-byte": iotest.OneByteReader(strings.NewReader(in)),
					"data-err": iotest.DataErrReader(strings.NewReader(in)),
				}
				for name, r := range readers {
					got, err := Accepts(r, runner, Config{BufferSize: size})
					if err != nil {
						t.Fatalf("Accepts error: %v", err)
					}
					if got != want {
						t.Errorf("pattern %q input %q size %d reader %s: got %v, want %v",
							pattern, in, size, name, got, want)
					}
				}
			}
		}
	}
}
