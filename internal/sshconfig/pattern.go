package sshconfig

import (
	"regexp"
	"strings"
)

// wildcardChars are the characters that promote a Host pattern from a
// literal name to a matchable pattern. "!" only negates at the leading
// position but its presence anywhere still marks the pattern as
// non-literal, matching OpenSSH's treatment.
const wildcardChars = "*?!"

// isWildcardPattern reports whether the pattern needs compilation rather
// than exact string comparison.
func isWildcardPattern(pattern string) bool {
	return strings.ContainsAny(pattern, wildcardChars)
}

// patternMatcher is a compiled wildcard pattern: an anchored regular
// expression plus the negation flag from a leading "!".
type patternMatcher struct {
	re      *regexp.Regexp
	negated bool
}

var patternReplacer = strings.NewReplacer(
	".", `\.`,
	"*", ".*",
	"?", ".",
)

// compilePattern builds the matcher for a wildcard pattern. A leading "!"
// is consumed before compilation; "*" matches any sequence, "?" any single
// character, and "." is taken literally. The expression is anchored at
// both ends.
func compilePattern(pattern string) patternMatcher {
	negated := strings.HasPrefix(pattern, "!")
	if negated {
		pattern = pattern[1:]
	}
	expr := "^" + patternReplacer.Replace(pattern) + "$"
	return patternMatcher{re: regexp.MustCompile(expr), negated: negated}
}

// SplitPatterns tokenizes the value of a Host line into its individual
// patterns. Unquoted whitespace separates patterns; a double-quoted span
// forms a single pattern that may contain whitespace.
func SplitPatterns(value string) []string {
	var patterns []string
	var current strings.Builder
	inQuotes := false

	flush := func() {
		if current.Len() > 0 {
			patterns = append(patterns, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}

	for _, c := range value {
		switch {
		case c == '"':
			if inQuotes {
				flush()
			}
			inQuotes = !inQuotes
		case !inQuotes && (c == ' ' || c == '\t'):
			flush()
		default:
			current.WriteRune(c)
		}
	}
	flush()

	return patterns
}
