package ics

import "strings"

// ContinuationFunc decides whether a line continues the value of the
// previous property instead of starting a new one.
type ContinuationFunc func(Line) bool

// SplitProperty splits a KEY:VALUE line at its first colon. The value keeps
// everything after that colon verbatim. ok is false when the line has no
// colon or the key would be empty.
func SplitProperty(text string) (key, value string, ok bool) {
	key, value, found := strings.Cut(text, ":")
	if !found || key == "" {
		return "", "", false
	}
	return key, value, true
}

// MixedCaseContinuation treats a line as a continuation unless the text
// before its first colon is already upper-case. Folded values in real feeds
// tend to start with prose or URLs, which fail that test.
//
// Property parameters such as DTSTART;TZID=Europe/Paris contain lower-case
// letters and are therefore folded into the previous value.
func MixedCaseContinuation(l Line) bool {
	key, _, ok := SplitProperty(l.Text)
	if !ok {
		return true
	}
	return key != strings.ToUpper(key)
}

// FoldedContinuation marks the lines RFC 5545 unfolding joins: a continuation
// is a line that started with whitespace. Lines without a usable KEY: prefix
// are continuations as well. Pair it with NewUnfoldingGrouper so the
// whitespace inside values survives.
func FoldedContinuation(l Line) bool {
	if l.Folded {
		return true
	}
	_, _, ok := SplitProperty(l.Text)
	return !ok
}

// ContinuationByName resolves a configured folding strategy. Unknown names
// fall back to the mixed-case heuristic.
func ContinuationByName(name string) ContinuationFunc {
	switch foldingName(name) {
	case FoldingRFC:
		return FoldedContinuation
	default:
		return MixedCaseContinuation
	}
}

const (
	FoldingHeuristic = "heuristic"
	FoldingRFC       = "rfc"
)

func foldingName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
