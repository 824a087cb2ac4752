package thompson

import (
	"regexp"
	"strings"
	"testing"

	"github.com/KromDaniel/thompson/stream"
)

var benchCases = []struct {
	name    string
	pattern string
	input   string
}{
	{"Alternation", "a*(b|c)d", strings.Repeat("a", 64) + "cd"},
	{"GroupPlus", "(ab)+", strings.Repeat("ab", 512)},
	{"OptionalChain", "a?a?a?a?a?a?a?a?aaaaaaaa", strings.Repeat("a", 12)},
	{"Pathological", strings.Repeat("a?", 24) + strings.Repeat("a", 24), strings.Repeat("a", 24)},
}

func BenchmarkMatchString(b *testing.B) {
	for _, bc := range benchCases {
		re := MustCompile(bc.pattern)
		std := regexp.MustCompile("^(?:" + bc.pattern + ")$")

		b.Run(bc.name+"/thompson", func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(bc.input)))
			for i := 0; i < b.N; i++ {
				re.MatchString(bc.input)
			}
		})
		b.Run(bc.name+"/stdlib", func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(bc.input)))
			for i := 0; i < b.N; i++ {
				std.MatchString(bc.input)
			}
		})
	}
}

func BenchmarkMatchReader(b *testing.B) {
	re := MustCompile("(ab)+")
	input := strings.Repeat("ab", 1<<16)
	cfg := stream.Config{BufferSize: 4096}

	b.ReportAllocs()
	b.SetBytes(int64(len(input)))
	for i := 0; i < b.N; i++ {
		if _, err := re.MatchReader(strings.NewReader(input), cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompile(b *testing.B) {
	for _, bc := range benchCases {
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Compile(bc.pattern); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
