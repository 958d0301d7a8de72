// Package matcher implements the small glob dialect used by the ignore
// and screenshot rules: "*" matches any run of characters, including
// none, and everything else matches literally. Patterns apply to whole
// base names and are case-sensitive.
package matcher

import "strings"

// Match reports whether name matches pattern.
func Match(pattern, name string) bool {
	if !strings.Contains(pattern, "*") {
		return pattern == name
	}

	segments := strings.Split(pattern, "*")
	last := len(segments) - 1

	// Leading literal anchors at the start.
	if !strings.HasPrefix(name, segments[0]) {
		return false
	}
	rest := name[len(segments[0]):]

	// Interior literals are consumed left to right at their earliest
	// occurrence. Taking the earliest leaves the longest possible
	// remainder, which never rules out a match a later one would allow.
	for _, segment := range segments[1:last] {
		if segment == "" {
			continue
		}
		idx := strings.Index(rest, segment)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(segment):]
	}

	// Trailing literal anchors at the end.
	return strings.HasSuffix(rest, segments[last])
}

// MatchAny returns the first pattern in declared order that matches
// name, and whether any did.
func MatchAny(patterns []string, name string) (string, bool) {
	for _, pattern := range patterns {
		if Match(pattern, name) {
			return pattern, true
		}
	}
	return "", false
}
