package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateTime_RFC(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  time.Time
	}{
		{name: "full datetime", value: "20240115T093000Z", want: time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC)},
		{name: "december", value: "20241231T235959Z", want: time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)},
		{name: "date only is midnight", value: "20240115", want: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)},
		{name: "missing seconds", value: "20240115T0930", want: time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC)},
		{name: "empty", value: "", want: Epoch},
		{name: "too short", value: "202401", want: Epoch},
		{name: "not a number", value: "2024AB15T093000Z", want: Epoch},
		{name: "signed field", value: "2024-115T093000Z", want: Epoch},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseDateTime(tc.value, MonthRFC))
		})
	}
}

func TestParseDateTime_Legacy(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  time.Time
	}{
		{name: "month digits are zero-based", value: "20240115T093000Z", want: time.Date(2024, time.February, 15, 9, 30, 0, 0, time.UTC)},
		{name: "december rolls into next year", value: "20241215T080000Z", want: time.Date(2025, time.January, 15, 8, 0, 0, 0, time.UTC)},
		{name: "overflowing day normalizes", value: "20240131T000000Z", want: time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)},
		{name: "empty", value: "", want: Epoch},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseDateTime(tc.value, MonthLegacy))
		})
	}
}

func TestParseDateTime_IsRepeatable(t *testing.T) {
	first := ParseDateTime("20240115T093000Z", MonthRFC)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ParseDateTime("20240115T093000Z", MonthRFC))
	}
	assert.Equal(t, int64(1705311000000), first.UnixMilli())
}

func TestMonthConventionByName(t *testing.T) {
	assert.Equal(t, MonthRFC, MonthConventionByName("rfc"))
	assert.Equal(t, MonthRFC, MonthConventionByName(" RFC"))
	assert.Equal(t, MonthLegacy, MonthConventionByName("legacy"))
	assert.Equal(t, MonthLegacy, MonthConventionByName("whatever"))
	assert.Equal(t, int64(0), Epoch.UnixMilli())
}
