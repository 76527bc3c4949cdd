package feed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/klokku/taskfeed/internal/config"
	"github.com/klokku/taskfeed/internal/event_bus"
	"github.com/klokku/taskfeed/internal/utils"
	"github.com/klokku/taskfeed/pkg/ics"
	log "github.com/sirupsen/logrus"
)

var (
	ErrValidation    = errors.New("invalid request")
	ErrFetch         = errors.New("failed to fetch feed")
	ErrMalformedFeed = errors.New("malformed feed")
)

type Service interface {
	// Run fetches the calendar at link and returns its metadata with the
	// events starting after the given epoch milliseconds, most-future first.
	Run(ctx context.Context, link string, after int64) (Metadata, []Event, error)
}

type ServiceImpl struct {
	fetcher Fetcher
	grouper *ics.Grouper
	builder EventBuilder
	bus     *event_bus.EventBus
	clock   utils.Clock
}

func NewService(fetcher Fetcher, cfg config.Feed, bus *event_bus.EventBus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{
		fetcher: fetcher,
		grouper: ics.GrouperByName(cfg.Folding),
		builder: EventBuilder{Convention: MonthConventionByName(cfg.MonthConvention)},
		bus:     bus,
		clock:   clock,
	}
}

// ValidateRequest checks caller input before anything is fetched.
func ValidateRequest(link string, after int64) error {
	if !strings.HasPrefix(link, "https://") {
		return fmt.Errorf("%w: link must start with https://", ErrValidation)
	}
	if after < 0 {
		return fmt.Errorf("%w: after must not be negative", ErrValidation)
	}
	return nil
}

func (s *ServiceImpl) Run(ctx context.Context, link string, after int64) (Metadata, []Event, error) {
	if err := ValidateRequest(link, after); err != nil {
		return Metadata{}, nil, err
	}

	started := s.clock.Now()
	fetched, err := s.fetcher.Fetch(ctx, link)
	if err != nil {
		s.publish(ctx, event_bus.FeedFailedType, event_bus.FeedFailed{
			Link:     redactLink(link),
			Reason:   failureReason(err),
			Err:      err,
			Duration: s.clock.Now().Sub(started),
		})
		return Metadata{}, nil, err
	}

	metadata := NewMetadata(s.grouper.Record(ics.Tokenize(fetched.Header)))
	events := s.builder.BuildAll(s.grouper.Records(ics.Tokenize(fetched.Events)))
	relevant := StartingAfter(SortByStartDesc(events), time.UnixMilli(after).UTC())

	log.Debugf("Feed %s: %d events parsed, %d after %d", redactLink(link), len(events), len(relevant), after)
	s.publish(ctx, event_bus.FeedProcessedType, event_bus.FeedProcessed{
		Link:     redactLink(link),
		Parsed:   len(events),
		Returned: len(relevant),
		Duration: s.clock.Now().Sub(started),
	})

	return metadata, relevant, nil
}

func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, data any) {
	if s.bus == nil {
		return
	}
	// Notification failures never fail the run.
	if err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, data)); err != nil {
		log.Warnf("failed to publish %s: %v", eventType, err)
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrFetch):
		return "fetch"
	case errors.Is(err, ErrMalformedFeed):
		return "malformed"
	default:
		return "error"
	}
}
