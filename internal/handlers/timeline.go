package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/asm2526/schedule-manager-app/internal/middlewares"
	"github.com/asm2526/schedule-manager-app/internal/models"
	"github.com/asm2526/schedule-manager-app/internal/timeline"
)

// NowProvider reports the current now-indicator position.
type NowProvider interface {
	Y() float64
}

// TimelineResponse represents the rendered geometry of one day
// swagger:model TimelineResponse
type TimelineResponse struct {
	// Calendar day
	// default: 2025-03-14
	Date string `json:"date"`

	// Vertical scale in pixels per hour
	// default: 60
	PixelsPerHour float64 `json:"pixels_per_hour"`

	// Hour gridline labels, 12-hour clock
	HourLabels []string `json:"hour_labels"`

	// Render rectangles, one per event
	Blocks []timeline.Block `json:"blocks"`

	// Now-indicator vertical position
	// default: 570.5
	NowY float64 `json:"now_y"`
}

// NewTimelineHandler returns an HTTP handler that lays out one day.
// @Summary Day timeline geometry
// @Description Computes render rectangles for the authenticated user's events on the given date (today when omitted), with overlapping events split into equal side-by-side columns
// @Tags timeline
// @Produce json
// @Param date query string false "Calendar day, YYYY-MM-DD"
// @Success 200 {object} handlers.TimelineResponse "Day geometry"
// @Failure 400 {object} handlers.EventErrorResponse "Invalid date"
// @Failure 401 {object} handlers.EventErrorResponse "Unauthorized"
// @Router /timeline [get]
// @Security BearerAuth
func NewTimelineHandler(svc DayLister, cfg timeline.Config, now NowProvider) http.HandlerFunc {
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

		resp := TimelineResponse{
			Date:          date,
			PixelsPerHour: cfg.PixelsPerHour,
			HourLabels:    timeline.HourLabels(),
			Blocks:        timeline.Layout(toTimelineEvents(events), cfg),
			NowY:          now.Y(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

func toTimelineEvents(events []models.EventDB) []timeline.Event {
	out := make([]timeline.Event, 0, len(events))
	for _, ev := range events {
		out = append(out, timeline.Event{
			ID:       ev.ID,
			Title:    ev.Title,
			StartMin: ev.StartMin,
			EndMin:   ev.EndMin,
		})
	}
	return out
}
