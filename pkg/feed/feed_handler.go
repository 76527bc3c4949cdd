package feed

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/klokku/taskfeed/internal/rest"
	"github.com/klokku/taskfeed/internal/utils"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service Service
	clock   utils.Clock
}

type MetadataDTO struct {
	CalScale    string `json:"calScale"`
	Description string `json:"description"`
	Name        string `json:"name"`
}

// EventDTO carries timestamps as Unix epoch milliseconds.
type EventDTO struct {
	UID       string `json:"uid"`
	CreatedAt int64  `json:"createdAt"`
	StartAt   int64  `json:"startAt"`
	EndAt     int64  `json:"endAt"`
	Title     string `json:"title"`
}

type TasksDTO struct {
	Metadata  MetadataDTO `json:"metadata"`
	Events    []EventDTO  `json:"events"`
	Timestamp string      `json:"timestamp"`
}

func NewHandler(service Service, clock utils.Clock) *Handler {
	return &Handler{service: service, clock: clock}
}

// GetTasks godoc
// @Summary Get upcoming calendar events
// @Description Fetch an ICS feed and list the events starting after a given instant, most-future first
// @Tags Tasks
// @Produce json
// @Param link query string true "ICS feed URL (https)"
// @Param after query int true "Threshold in Unix epoch milliseconds"
// @Success 200 {object} TasksDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Failure 422 {object} rest.ErrorResponse "Malformed feed"
// @Failure 502 {object} rest.ErrorResponse "Feed could not be fetched"
// @Router /api/tasks [get]
func (h *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	link := r.URL.Query().Get("link")
	afterString := r.URL.Query().Get("after")
	if afterString == "" {
		rest.WriteError(w, http.StatusBadRequest, "Missing after", "'after' must be a non-negative epoch millisecond timestamp")
		return
	}
	after, err := strconv.ParseInt(afterString, 10, 64)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid after format", "'after' must be a non-negative epoch millisecond timestamp")
		return
	}

	metadata, events, err := h.service.Run(r.Context(), link, after)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			rest.WriteError(w, http.StatusBadRequest, "Invalid request", err.Error())
		case errors.Is(err, ErrMalformedFeed):
			rest.WriteError(w, http.StatusUnprocessableEntity, "Malformed feed", err.Error())
		case errors.Is(err, ErrFetch):
			rest.WriteError(w, http.StatusBadGateway, "Unable to fetch feed", err.Error())
		default:
			log.Errorf("failed to process feed: %v", err)
			rest.WriteError(w, http.StatusInternalServerError, "Unable to process feed", err.Error())
		}
		return
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, eventToDTO(e))
	}

	rest.WriteJSON(w, http.StatusOK, TasksDTO{
		Metadata:  metadataToDTO(metadata),
		Events:    dtos,
		Timestamp: h.clock.Now().UTC().Format(time.RFC3339Nano),
	})
}

func metadataToDTO(m Metadata) MetadataDTO {
	return MetadataDTO{
		CalScale:    m.CalScale,
		Description: m.Description,
		Name:        m.Name,
	}
}

func eventToDTO(e Event) EventDTO {
	return EventDTO{
		UID:       e.UID,
		CreatedAt: e.CreatedAt.UnixMilli(),
		StartAt:   e.StartAt.UnixMilli(),
		EndAt:     e.EndAt.UnixMilli(),
		Title:     e.Title,
	}
}
