package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asm2526/schedule-manager-app/internal/middlewares"
	"github.com/asm2526/schedule-manager-app/internal/services"
)

// EventDeleter defines the interface that the service must implement.
type EventDeleter interface {
	DeleteEvent(ctx context.Context, username string, id int64) error
}

// DeleteEventResponse represents a successful delete response
// swagger:model DeleteEventResponse
type DeleteEventResponse struct {
	// Success message
	// default: Event deleted
	Message string `json:"message"`
}

// NewDeleteEventHandler returns an HTTP handler for deleting an event.
// @Summary Delete an event
// @Description Removes an event owned by the authenticated user. A missing id is an error, not a no-op.
// @Tags events
// @Produce json
// @Param id path int true "Event id"
// @Success 200 {object} handlers.DeleteEventResponse "Event deleted"
// @Failure 401 {object} handlers.EventErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.EventErrorResponse "Event not found"
// @Router /events/{id} [delete]
// @Security BearerAuth
func NewDeleteEventHandler(svc EventDeleter) http.HandlerFunc {
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

		if err := svc.DeleteEvent(r.Context(), username, id); err != nil {
			writeEventError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteEventResponse{Message: "Event deleted"})
	}
}
