package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/klokku/taskfeed/internal/config"
	log "github.com/sirupsen/logrus"
)

const ConfigPath = "./config/application.yaml"

// Application wires configuration, router, and server lifecycle.
type Application struct {
	cfg    config.Application
	router *mux.Router
	srv    *http.Server
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load(ConfigPath)
	if err != nil {
		return nil, err
	}
	return NewApplicationWithConfig(cfg), nil
}

func NewApplicationWithConfig(cfg config.Application) *Application {
	deps := BuildDependencies(cfg)
	r := NewRouter(deps)

	srv := &http.Server{
		Handler:     r,
		Addr:        fmt.Sprintf(":%d", cfg.Port),
		ReadTimeout: 15 * time.Second,
		// Writes wait for the upstream feed, so leave room past its timeout.
		WriteTimeout: cfg.Feed.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, router: r, srv: srv}
}

func NewRouter(deps *Dependencies) *mux.Router {
	r := mux.NewRouter()
	SetupMiddleware(r)
	RegisterRoutes(r, deps)
	return r
}

// Run starts the HTTP server and blocks.
func (a *Application) Run() error {
	log.Infof("api listening on http://localhost%s", a.srv.Addr)
	return a.srv.ListenAndServe()
}
