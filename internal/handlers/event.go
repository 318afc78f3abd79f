package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/asm2526/schedule-manager-app/internal/logger"
	"github.com/asm2526/schedule-manager-app/internal/models"
	"github.com/asm2526/schedule-manager-app/internal/services"
	"github.com/asm2526/schedule-manager-app/internal/timeline"
)

// EventResponse represents one event in API responses
// swagger:model EventResponse
type EventResponse struct {
	// Event id
	// default: 1
	ID int64 `json:"id"`

	// Event title
	// default: Standup
	Title string `json:"title"`

	// Calendar day
	// default: 2025-03-14
	Date string `json:"date"`

	// Start time, 24-hour clock
	// default: 09:00
	Start string `json:"start"`

	// End time, 24-hour clock
	// default: 09:30
	End string `json:"end"`

	// Display range, 12-hour clock
	// default: 09:00 AM - 09:30 AM
	TimeRange string `json:"time_range"`
}

// EventErrorResponse represents an error response for event operations
// swagger:model EventErrorResponse
type EventErrorResponse struct {
	// Error message
	// default: Event not found
	Error string `json:"error"`
}

// writeEventError maps schedule service errors onto HTTP statuses with a
// user-correctable message where one exists.
func writeEventError(w http.ResponseWriter, err error) {
	var status int
	var msg string

	switch {
	case errors.Is(err, services.ErrEventNotFound):
		status, msg = http.StatusNotFound, "Event not found"
	case errors.Is(err, services.ErrEmptyTitle):
		status, msg = http.StatusBadRequest, "Title is required"
	case errors.Is(err, services.ErrInvalidDate):
		status, msg = http.StatusBadRequest, "Date must be YYYY-MM-DD"
	case errors.Is(err, services.ErrInvalidTime):
		status, msg = http.StatusBadRequest, "Times must be HH:MM"
	case errors.Is(err, services.ErrInvalidTimeRange):
		status, msg = http.StatusBadRequest, "End must be after start"
	default:
		logger.Log.Errorw("internal server error", "err", err)
		status, msg = http.StatusInternalServerError, "Internal server error"
	}

	w.WriteHeader(status)
	json.NewEncoder(w).Encode(EventErrorResponse{Error: msg})
}

func newEventResponse(ev models.EventDB) EventResponse {
	return EventResponse{
		ID:        ev.ID,
		Title:     ev.Title,
		Date:      ev.Date,
		Start:     timeline.FormatClock24(ev.StartMin),
		End:       timeline.FormatClock24(ev.EndMin),
		TimeRange: timeline.FormatClock12(ev.StartMin) + " - " + timeline.FormatClock12(ev.EndMin),
	}
}
