package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asm2526/schedule-manager-app/internal/middlewares"
	"github.com/asm2526/schedule-manager-app/internal/services"
)

// EventUpdater defines the interface that the service must implement.
type EventUpdater interface {
	UpdateEvent(ctx context.Context, username string, id int64, title, date, start, end string, durationMinutes int) error
}

// UpdateEventRequest represents the JSON body for editing an event.
// swagger:model UpdateEventRequest
type UpdateEventRequest struct {
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

// UpdateEventResponse represents a successful update response
// swagger:model UpdateEventResponse
type UpdateEventResponse struct {
	// Success message
	// default: Event updated
	Message string `json:"message"`
}

// NewUpdateEventHandler returns an HTTP handler for editing an event.
// @Summary Update an event
// @Description Replaces the title and times of an event owned by the authenticated user. A missing id is an error, not a no-op.
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event id"
// @Param updateEventRequest body handlers.UpdateEventRequest true "New event fields"
// @Success 200 {object} handlers.UpdateEventResponse "Event updated"
// @Failure 400 {object} handlers.EventErrorResponse "Validation failure"
// @Failure 401 {object} handlers.EventErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.EventErrorResponse "Event not found"
// @Router /events/{id} [put]
// @Security BearerAuth
func NewUpdateEventHandler(svc EventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := middlewares.GetUsernameFromContext(r.Context())
		if username == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(EventErrorResponse{Error: "Unauthorized"})
			return
		}

		id, err := services.ParseEventID(chi.URLParam(r, "id"))
		if err != nil {
			writeEventError(w, err)
			return
		}

		var req UpdateEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(EventErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.UpdateEvent(r.Context(), username, id, req.Title, req.Date, req.Start, req.End, req.DurationMinutes); err != nil {
			writeEventError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateEventResponse{Message: "Event updated"})
	}
}
