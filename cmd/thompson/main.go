// Thompson compiles small regular expressions into Thompson automata and
// decides whole-input membership.
//
// Usage:
//
//	# Test inputs against a pattern
//	thompson match 'a*(b|c)d' aaacd aaaaaaabcd
//
//	# Generate a standalone Go matcher
//	thompson generate '(0|1)+' --name Binary --package matchers --output binary.go
//
//	# Run a YAML suite of accept/reject cases
//	thompson check cases.yaml --metrics
//
//	# Print the lines of a file that match entirely
//	thompson filter '(0|1|2|3|4|5|6|7|8|9)+' numbers.txt
package main

func main() {
	Execute()
}
