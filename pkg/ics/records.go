package ics

import "strings"

// RawRecord maps property keys to their (unfolded) values.
type RawRecord map[string]string

// Grouper turns tokenized lines into records.
type Grouper struct {
	isContinuation ContinuationFunc
	// verbatim reads values from Line.Raw and strips exactly one fold
	// indicator from continuations.
	verbatim bool
}

func NewGrouper(isContinuation ContinuationFunc) *Grouper {
	if isContinuation == nil {
		isContinuation = MixedCaseContinuation
	}
	return &Grouper{isContinuation: isContinuation}
}

// NewUnfoldingGrouper unfolds lines as RFC 5545 does: CRLF followed by one
// space or tab is removed and everything else, whitespace included, is kept.
func NewUnfoldingGrouper() *Grouper {
	return &Grouper{isContinuation: FoldedContinuation, verbatim: true}
}

// GrouperByName resolves a configured folding strategy ("heuristic" or
// "rfc"). Unknown names fall back to the mixed-case heuristic.
func GrouperByName(name string) *Grouper {
	if foldingName(name) == FoldingRFC {
		return NewUnfoldingGrouper()
	}
	return NewGrouper(MixedCaseContinuation)
}

// Records groups lines into one record per END-terminated block. A line whose
// first three characters are "END" closes the current record and is skipped.
// Records without any property are dropped.
func (g *Grouper) Records(lines []Line) []RawRecord {
	records := make([]RawRecord, 0)
	i := 0
	for i < len(lines) {
		record := RawRecord{}
		prevKey := ""
		for i < len(lines) && !strings.HasPrefix(lines[i].Text, "END") {
			prevKey = g.consume(record, prevKey, lines[i])
			i++
		}
		if len(record) > 0 {
			records = append(records, record)
		}
		// skip the END line
		i++
	}
	return records
}

// Record reads the calendar header segment into a single record. The header
// carries no BEGIN/END framing; should any END line appear, the groups are
// merged and later keys win.
func (g *Grouper) Record(lines []Line) RawRecord {
	merged := RawRecord{}
	for _, record := range g.Records(lines) {
		for k, v := range record {
			merged[k] = v
		}
	}
	return merged
}

func (g *Grouper) consume(record RawRecord, prevKey string, line Line) string {
	text := line.Text
	if g.verbatim {
		text = line.Raw
		if line.Folded {
			text = text[1:]
		}
	}
	if !g.isContinuation(line) {
		if key, value, ok := SplitProperty(text); ok {
			record[key] = value
			return key
		}
	}
	// A continuation before any property has nowhere to go.
	if prevKey == "" {
		return prevKey
	}
	record[prevKey] += text
	return prevKey
}
