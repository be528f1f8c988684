package ui

import "regexp"

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes SGR escape sequences. Used by view tests to assert on
// plain text.
func stripANSI(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}
