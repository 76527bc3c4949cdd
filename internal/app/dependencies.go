package app

import (
	"github.com/klokku/taskfeed/internal/config"
	"github.com/klokku/taskfeed/internal/event_bus"
	"github.com/klokku/taskfeed/internal/metrics"
	"github.com/klokku/taskfeed/internal/utils"
	"github.com/klokku/taskfeed/pkg/feed"
	"github.com/klokku/taskfeed/pkg/health"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Clock    utils.Clock
	EventBus *event_bus.EventBus
	Metrics  *metrics.Metrics

	FeedFetcher feed.Fetcher
	FeedService feed.Service
	FeedHandler *feed.Handler

	HealthHandler *health.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}
	deps.EventBus = event_bus.NewEventBus()
	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.New()
		deps.Metrics.Subscribe(deps.EventBus)
	}
	subscribeFailureLog(deps.EventBus)

	deps.FeedFetcher = feed.NewHTTPFetcher(cfg.Feed)
	deps.FeedService = feed.NewService(deps.FeedFetcher, cfg.Feed, deps.EventBus, deps.Clock)
	deps.FeedHandler = feed.NewHandler(deps.FeedService, deps.Clock)

	deps.HealthHandler = health.NewHandler(deps.Clock)

	return deps
}

func subscribeFailureLog(bus *event_bus.EventBus) {
	event_bus.SubscribeTyped(bus, event_bus.FeedFailedType, func(e event_bus.EventT[event_bus.FeedFailed]) error {
		log.WithFields(log.Fields{
			"link":     e.Data.Link,
			"reason":   e.Data.Reason,
			"duration": e.Data.Duration,
		}).Warnf("feed run failed: %v", e.Data.Err)
		return nil
	})
}
