package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/asm2526/schedule-manager-app/internal/middlewares"
	"github.com/asm2526/schedule-manager-app/internal/timeline"
)

// HitResponse represents a resolved click on the day timeline
// swagger:model HitResponse
type HitResponse struct {
	// Event id under the point
	// default: 1
	EventID int64 `json:"event_id"`
}

// NewTimelineHitHandler returns an HTTP handler that resolves a pixel
// position on the day timeline to the event rendered there, for routing
// a click to the edit/delete flow.
// @Summary Resolve a timeline click
// @Description Returns the id of the topmost event block containing the point, or 404 when the point hits empty track
// @Tags timeline
// @Produce json
// @Param date query string false "Calendar day, YYYY-MM-DD"
// @Param x query number true "Pixel x"
// @Param y query number true "Pixel y"
// @Success 200 {object} handlers.HitResponse "Event under the point"
// @Failure 400 {object} handlers.EventErrorResponse "Invalid coordinates or date"
// @Failure 401 {object} handlers.EventErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.EventErrorResponse "No event at the point"
// @Router /timeline/hit [get]
// @Security BearerAuth
func NewTimelineHitHandler(svc DayLister, cfg timeline.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := middlewares.GetUsernameFromContext(r.Context())
		if username == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(EventErrorResponse{Error: "Unauthorized"})
			return
		}

		x, errX := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
		y, errY := strconv.ParseFloat(r.URL.Query().Get("y"), 64)
		if errX != nil || errY != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(EventErrorResponse{Error: "x and y must be numbers"})
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

		blocks := timeline.Layout(toTimelineEvents(events), cfg)
		id, ok := timeline.HitTest(blocks, x, y)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(EventErrorResponse{Error: "No event at the point"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HitResponse{EventID: id})
	}
}
