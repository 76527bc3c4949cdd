package metrics

import (
	"net/http"

	"github.com/klokku/taskfeed/internal/event_bus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "taskfeed"

// Metrics records pipeline outcomes reported on the event bus.
type Metrics struct {
	registry    *prometheus.Registry
	runsTotal   *prometheus.CounterVec
	eventsTotal *prometheus.CounterVec
	runDuration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_runs_total",
			Help:      "Number of feed pipeline runs by result",
		}, []string{"result"}),
		eventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_events_total",
			Help:      "Number of events parsed from feeds and returned to callers",
		}, []string{"stage"}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_run_duration_seconds",
			Help:      "Time spent fetching and processing a feed",
			Buckets:   prometheus.DefBuckets,
		}, []string{"result"}),
	}
	m.registry.MustRegister(
		m.runsTotal, m.eventsTotal, m.runDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Subscribe wires the collectors to the feed events published on bus.
func (m *Metrics) Subscribe(bus *event_bus.EventBus) (unsubscribe func()) {
	unsubProcessed := event_bus.SubscribeTyped(bus, event_bus.FeedProcessedType,
		func(e event_bus.EventT[event_bus.FeedProcessed]) error {
			m.runsTotal.WithLabelValues("ok").Inc()
			m.eventsTotal.WithLabelValues("parsed").Add(float64(e.Data.Parsed))
			m.eventsTotal.WithLabelValues("returned").Add(float64(e.Data.Returned))
			m.runDuration.WithLabelValues("ok").Observe(e.Data.Duration.Seconds())
			return nil
		})
	unsubFailed := event_bus.SubscribeTyped(bus, event_bus.FeedFailedType,
		func(e event_bus.EventT[event_bus.FeedFailed]) error {
			m.runsTotal.WithLabelValues(e.Data.Reason).Inc()
			m.runDuration.WithLabelValues(e.Data.Reason).Observe(e.Data.Duration.Seconds())
			return nil
		})
	return func() {
		unsubProcessed()
		unsubFailed()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
