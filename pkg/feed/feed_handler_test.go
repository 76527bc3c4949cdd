package feed

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/klokku/taskfeed/internal/rest"
	"github.com/klokku/taskfeed/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test setup helper
func setupHandlerTest(t *testing.T, fetcher *StubFetcher) *Handler {
	service, _ := setupService(t, fetcher, nil)
	return NewHandler(service, &utils.MockClock{FixedNow: now})
}

func tasksRequest(params map[string]string) *http.Request {
	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	return httptest.NewRequest(http.MethodGet, "/api/tasks?"+query.Encode(), nil)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) rest.ErrorResponse {
	var response rest.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	return response
}

func TestGetTasks(t *testing.T) {
	// Setup
	handler := setupHandlerTest(t, NewStubFetcher(sampleCalendar))
	req := tasksRequest(map[string]string{"link": "https://example.com/cal.ics", "after": "0"})
	w := httptest.NewRecorder()

	// Call the handler
	handler.GetTasks(w, req)

	// Check response
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response TasksDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, MetadataDTO{Name: "Test Cal"}, response.Metadata)
	assert.Equal(t, "2024-01-20T08:00:00Z", response.Timestamp)
	require.Len(t, response.Events, 1)
	assert.Equal(t, EventDTO{
		UID:       "abc123",
		CreatedAt: 1706745600000, // 2024-02-01T00:00:00Z
		StartAt:   1709287200000, // 2024-03-01T10:00:00Z
		EndAt:     1709290800000, // 2024-03-01T11:00:00Z
		Title:     "Meeting",
	}, response.Events[0])
}

func TestGetTasks_EmptyResultIsAList(t *testing.T) {
	handler := setupHandlerTest(t, NewStubFetcher(sampleCalendar))
	req := tasksRequest(map[string]string{"link": "https://example.com/cal.ics", "after": "4102444800000"})
	w := httptest.NewRecorder()

	handler.GetTasks(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"events":[]`)
}

func TestGetTasks_InvalidParameters(t *testing.T) {
	testCases := []struct {
		name    string
		params  map[string]string
		message string
	}{
		{name: "missing after", params: map[string]string{"link": "https://example.com/cal.ics"}, message: "Missing after"},
		{name: "after is not a number", params: map[string]string{"link": "https://example.com/cal.ics", "after": "yesterday"}, message: "Invalid after format"},
		{name: "negative after", params: map[string]string{"link": "https://example.com/cal.ics", "after": "-5"}, message: "Invalid request"},
		{name: "missing link", params: map[string]string{"after": "0"}, message: "Invalid request"},
		{name: "http link", params: map[string]string{"link": "http://example.com/cal.ics", "after": "0"}, message: "Invalid request"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := NewStubFetcher(sampleCalendar)
			handler := setupHandlerTest(t, fetcher)
			w := httptest.NewRecorder()

			handler.GetTasks(w, tasksRequest(tc.params))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.message, decodeError(t, w).Error)
			assert.Empty(t, fetcher.Calls)
		})
	}
}

func TestGetTasks_FetchFailures(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "unreachable feed", err: errors.Join(ErrFetch, errors.New("dial tcp: connection refused")), status: http.StatusBadGateway},
		{name: "malformed feed", err: errors.Join(ErrMalformedFeed, errors.New("missing END:VCALENDAR")), status: http.StatusUnprocessableEntity},
		{name: "unexpected error", err: errors.New("boom"), status: http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := NewStubFetcher("")
			fetcher.Err = tc.err
			handler := setupHandlerTest(t, fetcher)
			w := httptest.NewRecorder()

			handler.GetTasks(w, tasksRequest(map[string]string{"link": "https://example.com/cal.ics", "after": "0"}))

			assert.Equal(t, tc.status, w.Code)
			response := decodeError(t, w)
			assert.NotEmpty(t, response.Error)
			assert.Contains(t, response.Details, tc.err.Error())
		})
	}
}
