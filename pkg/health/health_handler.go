package health

import (
	"net/http"
	"time"

	"github.com/klokku/taskfeed/internal/rest"
	"github.com/klokku/taskfeed/internal/utils"
)

type Handler struct {
	clock utils.Clock
}

type StatusDTO struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func NewHandler(clock utils.Clock) *Handler {
	return &Handler{clock: clock}
}

// GetHealth godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} StatusDTO
// @Router /health [get]
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, StatusDTO{
		Status:    "OK",
		Timestamp: h.clock.Now().UTC().Format(time.RFC3339Nano),
	})
}
