package feed

import (
	"strconv"
	"strings"
	"time"
)

// MonthConvention selects how the two month digits of an ICS datetime are read.
type MonthConvention string

const (
	// MonthLegacy uses the digits as a zero-based month index, so "01" is
	// February and "12" rolls over into January of the following year.
	// Feeds served by earlier releases were interpreted this way.
	MonthLegacy MonthConvention = "legacy"
	// MonthRFC uses the digits as the calendar month.
	MonthRFC MonthConvention = "rfc"
)

// Epoch is the instant assigned to missing or unparsable timestamps.
var Epoch = time.UnixMilli(0).UTC()

func MonthConventionByName(name string) MonthConvention {
	if MonthConvention(strings.ToLower(strings.TrimSpace(name))) == MonthRFC {
		return MonthRFC
	}
	return MonthLegacy
}

// ParseDateTime reads a basic ICS UTC datetime (YYYYMMDDTHHMMSSZ) by fixed
// offsets. The T separator and trailing Z are skipped, not checked. Time
// fields past the end of a shorter value count as zero, so a plain YYYYMMDD
// date is midnight UTC. Anything unreadable yields Epoch.
func ParseDateTime(value string, convention MonthConvention) time.Time {
	if len(value) < 8 {
		return Epoch
	}
	var fields [6]int
	offsets := [6][2]int{{0, 4}, {4, 6}, {6, 8}, {9, 11}, {11, 13}, {13, 15}}
	for i, o := range offsets {
		n, ok := numberAt(value, o[0], o[1])
		if !ok {
			return Epoch
		}
		fields[i] = n
	}

	month := fields[1]
	if convention != MonthRFC {
		month++
	}
	return time.Date(fields[0], time.Month(month), fields[2], fields[3], fields[4], fields[5], 0, time.UTC)
}

func numberAt(value string, from, to int) (int, bool) {
	if from >= len(value) {
		return 0, true
	}
	digits := value[from:min(to, len(value))]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}
