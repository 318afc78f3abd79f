package handlers

import (
	"encoding/json"
	"net/http"
)

// NowResponse represents the current now-indicator position
// swagger:model NowResponse
type NowResponse struct {
	// Vertical position in pixels
	// default: 570.5
	Y float64 `json:"y"`
}

// NewTimelineNowHandler returns an HTTP handler reporting the
// now-indicator position maintained by the periodic refresher, so
// clients can redraw the line without re-requesting the day layout.
// @Summary Now-indicator position
// @Description Returns the vertical pixel position of the current wall-clock time
// @Tags timeline
// @Produce json
// @Success 200 {object} handlers.NowResponse "Now-indicator position"
// @Router /timeline/now [get]
// @Security BearerAuth
func NewTimelineNowHandler(now NowProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(NowResponse{Y: now.Y()})
	}
}
