package feed

import (
	"sort"
	"time"
)

// SortByStartDesc returns a copy of events ordered most-future first. Events
// with equal start times keep their relative order.
func SortByStartDesc(events []Event) []Event {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartsAfter(sorted[j])
	})
	return sorted
}

// StartingAfter takes events from the front of a descending list while they
// start strictly after threshold. It stops at the first event that does not,
// so later qualifying events are never reached.
func StartingAfter(sorted []Event, threshold time.Time) []Event {
	relevant := make([]Event, 0, len(sorted))
	for _, e := range sorted {
		if !e.StartAt.After(threshold) {
			break
		}
		relevant = append(relevant, e)
	}
	return relevant
}
