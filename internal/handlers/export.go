package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/asm2526/schedule-manager-app/internal/middlewares"
)

// NewExportHandler returns an HTTP handler that exports a day's events as
// an iCalendar file. Events are naive local times, so VEVENTs are emitted
// in the server's local zone with no recurrence rules.
// @Summary Export a day as iCalendar
// @Description Returns the authenticated user's events for the given date (today when omitted) as a text/calendar document
// @Tags events
// @Produce plain
// @Param date query string false "Calendar day, YYYY-MM-DD"
// @Success 200 {string} string "iCalendar document"
// @Failure 400 {object} handlers.EventErrorResponse "Invalid date"
// @Failure 401 {object} handlers.EventErrorResponse "Unauthorized"
// @Router /calendar.ics [get]
// @Security BearerAuth
func NewExportHandler(svc DayLister) http.HandlerFunc {
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

		day, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			writeEventError(w, err)
			return
		}

		cal := ics.NewCalendar()
		cal.SetMethod(ics.MethodPublish)
		for _, ev := range events {
			vevent := cal.AddEvent(fmt.Sprintf("%d@schedule-manager-app", ev.ID))
			vevent.SetSummary(ev.Title)
			vevent.SetStartAt(day.Add(time.Duration(ev.StartMin) * time.Minute))
			vevent.SetEndAt(day.Add(time.Duration(ev.EndMin) * time.Minute))
			vevent.SetDtStampTime(time.Now())
		}

		w.Header().Set("Content-Type", "text/calendar")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.ics", date))
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, cal.Serialize())
	}
}
