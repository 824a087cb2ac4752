package thompson

import (
	"regexp"
	"strings"
	"testing"
)

// patternBytes is the subset of the syntax shared with package regexp.
const patternBytes = "abc|*+?()"

func FuzzMatchAgreesWithRegexp(f *testing.F) {
	f.Add("a*(b|c)c", "aaacc")
	f.Add("(ab)+", "abab")
	f.Add("(ab)?", "abab")
	f.Add("a?a?a?aaa", "aaaa")
	f.Add("", "")
	f.Add("(a|)*b", "aab")
	f.Add("((a|b)*c)+", "abcbc")

	f.Fuzz(func(t *testing.T, pattern, input string) {
		if len(pattern) > 64 || len(input) > 256 {
			return
		}
		for i := 0; i < len(pattern); i++ {
			if strings.IndexByte(patternBytes, pattern[i]) < 0 {
				return
			}
		}

		re, err := Compile(pattern)
		if err != nil {
			return // Invalid pattern is acceptable.
		}
		// Must not panic, and must agree with itself over bytes and strings.
		got := re.MatchString(input)
		if got != re.Match([]byte(input)) {
			t.Fatalf("MatchString and Match disagree for %q on %q", pattern, input)
		}

		std, err := regexp.Compile(`^(?:` + pattern + `)$`)
		if err != nil {
			return // Forms such as a+? are lazy operators there and errors here.
		}
		if want := std.MatchString(input); got != want {
			t.Fatalf("pattern %q input %q: got %v, regexp says %v", pattern, input, got, want)
		}
	})
}

func FuzzCompile(f *testing.F) {
	f.Add(`a\*b`)
	f.Add(`((a)`)
	f.Add(`\`)
	f.Add(`|||`)
	f.Add("\xff*")

	f.Fuzz(func(t *testing.T, pattern string) {
		if len(pattern) > 256 {
			return
		}
		re, err := Compile(pattern)
		if err != nil {
			return
		}
		if re.String() != pattern {
			t.Fatalf("String() = %q, want %q", re.String(), pattern)
		}
		_ = re.MatchString(pattern)
	})
}
