package ics

import (
	"errors"
	"strings"
)

const (
	calendarBegin = "BEGIN:VCALENDAR"
	calendarEnd   = "END:VCALENDAR"
	blockBegin    = "BEGIN:"
)

var (
	ErrMissingCalendarBegin = errors.New("missing " + calendarBegin)
	ErrMissingCalendarEnd   = errors.New("missing " + calendarEnd)
)

// Segments is a calendar document cut in two: the calendar-level properties
// and everything from the first nested block onwards.
type Segments struct {
	Header string
	Events string
}

// SplitCalendar slices a VCALENDAR document into its header and events
// segments. The header runs from the end of BEGIN:VCALENDAR to the first
// BEGIN: marker; the events segment runs from that marker up to END:VCALENDAR.
//
// Unless strict is set, missing markers are tolerated: the document start or
// end stands in for them and the affected segment may come out empty.
func SplitCalendar(text string, strict bool) (Segments, error) {
	rest := strings.TrimSpace(text)
	if strings.HasPrefix(rest, calendarBegin) {
		rest = strings.TrimSpace(rest[len(calendarBegin):])
	} else if strict {
		return Segments{}, ErrMissingCalendarBegin
	}

	end := strings.Index(rest, calendarEnd)
	if end < 0 {
		if strict {
			return Segments{}, ErrMissingCalendarEnd
		}
		end = len(rest)
	}
	body := rest[:end]

	begin := strings.Index(body, blockBegin)
	if begin < 0 {
		return Segments{Header: body}, nil
	}
	return Segments{Header: body[:begin], Events: body[begin:]}, nil
}
