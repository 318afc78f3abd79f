package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/asm2526/schedule-manager-app/internal/middlewares"
)

// EventAdder defines the interface that the service must implement.
type EventAdder interface {
	AddEvent(ctx context.Context, username, title, date, start, end string, durationMinutes int) (int64, error)
}

// CreateEventRequest represents the JSON body for creating an event.
// Either end or a positive duration_minutes must be supplied.
// swagger:model CreateEventRequest
type CreateEventRequest struct {
	// Title
	// required: true
	// default: Standup
	Title string `json:"title"`

	// Calendar day
	// required: true
	// default: 2025-03-14
	Date string `json:"date"`

	// Start time, 24-hour clock
	// required: true
	// default: 09:00
	Start string `json:"start"`

	// End time, 24-hour clock
	// default: 09:30
	End string `json:"end,omitempty"`

	// Duration in minutes, alternative to end
	// default: 30
	DurationMinutes int `json:"duration_minutes,omitempty"`
}

// CreateEventResponse represents a successful event creation response
// swagger:model CreateEventResponse
type CreateEventResponse struct {
	// Assigned event id
	// default: 1
	ID int64 `json:"id"`
}

// NewCreateEventHandler returns an HTTP handler for adding an event.
// @Summary Add an event
// @Description Creates a new event for the authenticated user. Accepts either an end time or a duration.
// @Tags events
// @Accept json
// @Produce json
// @Param createEventRequest body handlers.CreateEventRequest true "Event to create"
// @Success 201 {object} handlers.CreateEventResponse "Event created"
// @Failure 400 {object} handlers.EventErrorResponse "Validation failure"
// @Failure 401 {object} handlers.EventErrorResponse "Unauthorized"
// @Router /events [post]
// @Security BearerAuth
func NewCreateEventHandler(svc EventAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := middlewares.GetUsernameFromContext(r.Context())
		if username == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(EventErrorResponse{Error: "Unauthorized"})
			return
		}

		var req CreateEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(EventErrorResponse{Error: "invalid request body"})
			return
		}

		id, err := svc.AddEvent(r.Context(), username, req.Title, req.Date, req.Start, req.End, req.DurationMinutes)
		if err != nil {
			writeEventError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateEventResponse{ID: id})
	}
}
