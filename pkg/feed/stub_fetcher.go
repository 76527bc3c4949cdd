package feed

import (
	"context"

	"github.com/klokku/taskfeed/pkg/ics"
)

// StubFetcher serves a fixed document and records the links it was asked for.
type StubFetcher struct {
	Body  string
	Err   error
	Calls []string
}

func NewStubFetcher(body string) *StubFetcher {
	return &StubFetcher{Body: body}
}

func (s *StubFetcher) Fetch(ctx context.Context, link string) (Feed, error) {
	s.Calls = append(s.Calls, link)
	if s.Err != nil {
		return Feed{}, s.Err
	}
	segments, err := ics.SplitCalendar(s.Body, false)
	if err != nil {
		return Feed{}, err
	}
	return Feed{Header: segments.Header, Events: segments.Events}, nil
}
