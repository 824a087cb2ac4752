// Package codegen provides code generation helpers and constants.
package codegen

import "go/token"

// Variable names used in generated code
const (
	InputName    = "input"
	InputLenName = "l"
	OffsetName   = "offset"
	CurrentName  = "current"
	NextName     = "next"
	ByteName     = "c"
	StateName    = "s"
	TargetName   = "t"
)

// Suffixes of the package-level tables emitted for a matcher.
const (
	DeltaSuffix      = "Delta"
	StartSuffix      = "Start"
	AcceptSuffix     = "Accept"
	NumStatesSuffix  = "NumStates"
	StartMaskSuffix  = "StartMask"
	AcceptMaskSuffix = "AcceptMask"
)

// TableName returns the unexported package-level identifier for one of a
// matcher's tables, e.g. TableName("Email", DeltaSuffix) is "emailDelta".
func TableName(name, suffix string) string {
	return LowerFirst(name) + suffix
}

// IsIdentifier reports whether name is a valid, non-keyword Go identifier.
func IsIdentifier(name string) bool {
	return token.IsIdentifier(name)
}

// IsExported reports whether name starts with an upper-case ASCII letter.
func IsExported(name string) bool {
	return name != "" && name[0] >= 'A' && name[0] <= 'Z'
}

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'A' && c <= 'Z' {
		return string(c+'a'-'A') + s[1:]
	}
	return s
}
