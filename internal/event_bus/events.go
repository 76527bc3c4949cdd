package event_bus

import "time"

const (
	FeedProcessedType EventType = "feed.processed"
	FeedFailedType    EventType = "feed.failed"
)

// FeedProcessed is published after a pipeline run produced a result.
type FeedProcessed struct {
	// Link is redacted down to scheme and host.
	Link     string
	Parsed   int
	Returned int
	Duration time.Duration
}

// FeedFailed is published when a run ended with an error after validation.
type FeedFailed struct {
	Link string
	// Reason is one of "fetch", "malformed" or "error".
	Reason   string
	Err      error
	Duration time.Duration
}
