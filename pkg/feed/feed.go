package feed

import (
	"time"

	"github.com/klokku/taskfeed/pkg/ics"
)

// Feed is the raw result of a fetch, cut into its two segments.
type Feed struct {
	Header string
	Events string
}

type Metadata struct {
	CalScale    string
	Description string
	Name        string
}

// Event is identified by its UID alone, see Equal.
type Event struct {
	UID       string
	CreatedAt time.Time
	StartAt   time.Time
	EndAt     time.Time
	Title     string
}

// Equal compares events by UID only.
func (e Event) Equal(other Event) bool {
	return e.UID == other.UID
}

// StartsAfter reports whether e starts strictly later than other, which is
// the order events are listed in.
func (e Event) StartsAfter(other Event) bool {
	return e.StartAt.After(other.StartAt)
}

func NewMetadata(record ics.RawRecord) Metadata {
	return Metadata{
		CalScale:    record["CALSCALE"],
		Description: record["X-WR-CALDESC"],
		Name:        record["X-WR-CALNAME"],
	}
}

// EventBuilder turns raw VEVENT records into events.
type EventBuilder struct {
	Convention MonthConvention
}

func (b EventBuilder) Build(record ics.RawRecord) Event {
	return Event{
		UID:       record["UID"],
		CreatedAt: ParseDateTime(record["DTSTAMP"], b.Convention),
		StartAt:   ParseDateTime(record["DTSTART"], b.Convention),
		EndAt:     ParseDateTime(record["DTEND"], b.Convention),
		Title:     record["SUMMARY"],
	}
}

func (b EventBuilder) BuildAll(records []ics.RawRecord) []Event {
	events := make([]Event, 0, len(records))
	for _, record := range records {
		if len(record) == 0 {
			continue
		}
		events = append(events, b.Build(record))
	}
	return events
}
