package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asm2526/schedule-manager-app/internal/middlewares"
	"github.com/asm2526/schedule-manager-app/internal/models"
	"github.com/asm2526/schedule-manager-app/internal/services"
)

// EventGetter defines the interface that the service must implement.
type EventGetter interface {
	GetEvent(ctx context.Context, username string, id int64) (*models.EventDB, error)
}

// NewGetEventHandler returns an HTTP handler for fetching one event.
// @Summary Get an event
// @Description Returns one event owned by the authenticated user
// @Tags events
// @Produce json
// @Param id path int true "Event id"
// @Success 200 {object} handlers.EventResponse "Event"
// @Failure 401 {object} handlers.EventErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.EventErrorResponse "Event not found"
// @Router /events/{id} [get]
// @Security BearerAuth
func NewGetEventHandler(svc EventGetter) http.HandlerFunc {
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

		ev, err := svc.GetEvent(r.Context(), username, id)
		if err != nil {
			writeEventError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newEventResponse(*ev))
	}
}
