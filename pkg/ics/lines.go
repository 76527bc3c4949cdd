package ics

import "strings"

// Line is one trimmed, non-empty physical line of ICS text.
type Line struct {
	Text string
	// Raw is the line as received, minus its line terminator. RFC 5545
	// unfolding needs the whitespace that Text drops.
	Raw string
	// Folded reports whether the raw line began with a space or tab,
	// which RFC 5545 uses to mark a folded continuation.
	Folded bool
}

// Tokenize splits raw text into trimmed, non-empty lines. CRLF and LF line
// endings are both accepted.
func Tokenize(text string) []Line {
	rawLines := strings.Split(text, "\n")
	lines := make([]Line, 0, len(rawLines))
	for _, raw := range rawLines {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		lines = append(lines, Line{
			Text:   trimmed,
			Raw:    strings.TrimSuffix(raw, "\r"),
			Folded: raw[0] == ' ' || raw[0] == '\t',
		})
	}
	return lines
}
