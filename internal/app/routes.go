package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Health
	r.HandleFunc("/health", deps.HealthHandler.GetHealth).Methods("GET")

	// Tasks (calendar feed)
	r.HandleFunc("/api/tasks", deps.FeedHandler.GetTasks).Methods("GET")

	// Metrics
	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics.Handler()).Methods("GET")
	}
}
