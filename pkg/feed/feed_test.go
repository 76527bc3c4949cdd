package feed

import (
	"testing"
	"time"

	"github.com/klokku/taskfeed/pkg/ics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadata(t *testing.T) {
	t.Run("should read calendar properties", func(t *testing.T) {
		metadata := NewMetadata(ics.RawRecord{
			"CALSCALE":     "GREGORIAN",
			"X-WR-CALDESC": "Course deadlines",
			"X-WR-CALNAME": "Canvas",
			"VERSION":      "2.0",
		})

		assert.Equal(t, Metadata{CalScale: "GREGORIAN", Description: "Course deadlines", Name: "Canvas"}, metadata)
	})

	t.Run("should default missing properties to empty strings", func(t *testing.T) {
		assert.Equal(t, Metadata{}, NewMetadata(ics.RawRecord{}))
		assert.Equal(t, Metadata{}, NewMetadata(nil))
	})
}

func TestEventBuilder_Build(t *testing.T) {
	builder := EventBuilder{Convention: MonthRFC}

	t.Run("should read event properties", func(t *testing.T) {
		event := builder.Build(ics.RawRecord{
			"BEGIN":   "VEVENT",
			"UID":     "abc123",
			"DTSTAMP": "20240101T000000Z",
			"DTSTART": "20240201T100000Z",
			"DTEND":   "20240201T110000Z",
			"SUMMARY": "Meeting",
		})

		assert.Equal(t, "abc123", event.UID)
		assert.Equal(t, "Meeting", event.Title)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), event.CreatedAt)
		assert.Equal(t, time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC), event.StartAt)
		assert.Equal(t, time.Date(2024, 2, 1, 11, 0, 0, 0, time.UTC), event.EndAt)
	})

	t.Run("should default missing properties", func(t *testing.T) {
		event := builder.Build(ics.RawRecord{"UID": "only-uid"})

		assert.Equal(t, "only-uid", event.UID)
		assert.Empty(t, event.Title)
		assert.Equal(t, Epoch, event.CreatedAt)
		assert.Equal(t, Epoch, event.StartAt)
		assert.Equal(t, Epoch, event.EndAt)
	})

	t.Run("should skip empty records", func(t *testing.T) {
		events := builder.BuildAll([]ics.RawRecord{{"UID": "a"}, {}, {"UID": "b"}})

		require.Len(t, events, 2)
		assert.Equal(t, "a", events[0].UID)
		assert.Equal(t, "b", events[1].UID)
	})
}

func TestEvent_Equal(t *testing.T) {
	builder := EventBuilder{Convention: MonthRFC}
	a := builder.Build(ics.RawRecord{"UID": "same", "SUMMARY": "First", "DTSTART": "20240101T000000Z"})
	b := builder.Build(ics.RawRecord{"UID": "same", "SUMMARY": "Second", "DTSTART": "20250101T000000Z"})
	c := builder.Build(ics.RawRecord{"UID": "other", "SUMMARY": "First", "DTSTART": "20240101T000000Z"})

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
}

func TestEvent_StartsAfter(t *testing.T) {
	early := Event{UID: "early", StartAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	late := Event{UID: "late", StartAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}

	assert.True(t, late.StartsAfter(early))
	assert.False(t, early.StartsAfter(late))
	assert.False(t, early.StartsAfter(early))
}
