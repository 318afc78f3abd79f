package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/asm2526/schedule-manager-app/internal/middlewares"
	"github.com/asm2526/schedule-manager-app/internal/models"
)

// DayLister defines the interface that the service must implement.
type DayLister interface {
	EventsForDay(ctx context.Context, username, date string) ([]models.EventDB, error)
}

// ListEventsResponse represents the events of one day, ordered by start
// time.
// swagger:model ListEventsResponse
type ListEventsResponse struct {
	// Calendar day
	// default: 2025-03-14
	Date string `json:"date"`

	// Events ascending by start time
	Events []EventResponse `json:"events"`
}

// NewListEventsHandler returns an HTTP handler for listing a day's events.
// @Summary List events for a day
// @Description Returns the authenticated user's events for the given date (today when omitted), ascending by start time
// @Tags events
// @Produce json
// @Param date query string false "Calendar day, YYYY-MM-DD"
// @Success 200 {object} handlers.ListEventsResponse "Events for the day"
// @Failure 400 {object} handlers.EventErrorResponse "Invalid date"
// @Failure 401 {object} handlers.EventErrorResponse "Unauthorized"
// @Router /events [get]
// @Security BearerAuth
func NewListEventsHandler(svc DayLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := middlewares.GetUsernameFromContext(r.Context())
		if username == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(EventErrorResponse{Error: "Unauthorized"})
			return
		}

		date := r.URL.Query().Get("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		events, err := svc.EventsForDay(r.Context(), username, date)
		if err != nil {
			writeEventError(w, err)
			return
		}

		resp := ListEventsResponse{
			Date:   date,
			Events: make([]EventResponse, 0, len(events)),
		}
		for _, ev := range events {
			resp.Events = append(resp.Events, newEventResponse(ev))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
