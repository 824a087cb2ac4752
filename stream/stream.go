// Package stream provides whole-input matching over an io.Reader.
//
// Input is read in fixed-size chunks and fed to an incremental matcher, so
// memory use does not depend on the size of the input. Reading stops as soon
// as the matcher has no live states, since no suffix can make the input
// match after that.
//
// Example usage with a compiled pattern:
//
//	file, _ := os.Open("large.log")
//	defer file.Close()
//
//	ok, err := re.MatchReader(file, stream.Config{
//	    BufferSize: 2 * 1024 * 1024, // 2MB chunks
//	})
package stream

import (
	"errors"
	"fmt"
	"io"
)

// DefaultBufferSize is the chunk size used when Config.BufferSize is zero.
const DefaultBufferSize = 64 * 1024

// Machine is an incremental whole-input matcher.
type Machine interface {
	// Reset rewinds the machine to its initial state.
	Reset()
	// Feed consumes p and reports whether further input could still match.
	Feed(p []byte) bool
	// Accepting reports whether the input consumed so far matches.
	Accepting() bool
}

// Config configures streaming matching behavior.
type Config struct {
	// BufferSize is the chunk size for reading from the io.Reader.
	// Default: 64KB (65536).
	// Larger values reduce syscall overhead but use more memory.
	BufferSize int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BufferSize: DefaultBufferSize,
	}
}

// ErrInvalidBufferSize is returned when Config.BufferSize is negative.
var ErrInvalidBufferSize = errors.New("stream: buffer size must not be negative")

// Validate validates the Config and returns an error if invalid.
func (c Config) Validate() error {
	if c.BufferSize < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBufferSize, c.BufferSize)
	}
	return nil
}

// ApplyDefaults returns a Config with defaults applied for any zero values.
func (c Config) ApplyDefaults() Config {
	result := c
	if result.BufferSize == 0 {
		result.BufferSize = DefaultBufferSize
	}
	return result
}

// Accepts resets m, feeds it everything read from r and reports whether the
// whole stream matches. Errors from r other than io.EOF are returned.
func Accepts(r io.Reader, m Machine, cfg Config) (bool, error) {
	if err := cfg.Validate(); err != nil {
		return false, err
	}
	cfg = cfg.ApplyDefaults()

	m.Reset()
	buf := make([]byte, cfg.BufferSize)
	for {
		n, err := r.Read(buf)
		if n > 0 && !m.Feed(buf[:n]) {
			return false, nil
		}
		if err == io.EOF {
			return m.Accepting(), nil
		}
		if err != nil {
			return false, fmt.Errorf("stream: read: %w", err)
		}
	}
}
