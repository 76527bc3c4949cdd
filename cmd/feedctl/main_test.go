package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/klokku/taskfeed/pkg/feed"
	"github.com/stretchr/testify/assert"
)

func TestPrintEvents(t *testing.T) {
	var out bytes.Buffer
	events := []feed.Event{
		{UID: "b", Title: "Exam", StartAt: time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)},
		{UID: "a", Title: "Essay due", StartAt: time.Date(2024, 5, 12, 23, 59, 0, 0, time.UTC)},
	}

	printEvents(&out, feed.Metadata{Name: "Spring term"}, events)

	assert.Equal(t, "Spring term (2 events)\n"+
		"2024-05-20T09:00:00Z  Exam\n"+
		"2024-05-12T23:59:00Z  Essay due\n", out.String())
}
