package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/asm2526/schedule-manager-app/internal/models"
	"github.com/asm2526/schedule-manager-app/internal/services"
	"github.com/asm2526/schedule-manager-app/internal/timeline"
)

func TestTimelineHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := timeline.DefaultConfig()

	t.Run("lays out the day", func(t *testing.T) {
		svc := NewMockDayLister(ctrl)
		now := NewMockNowProvider(ctrl)
		svc.EXPECT().EventsForDay(gomock.Any(), "alice", "2025-06-01").Return([]models.EventDB{
			{ID: 1, Title: "Standup", Date: "2025-06-01", StartMin: 540, EndMin: 570},
			{ID: 2, Title: "Planning", Date: "2025-06-01", StartMin: 555, EndMin: 600},
		}, nil)
		now.EXPECT().Y().Return(570.5)

		req := authedRequest(t, http.MethodGet, "/timeline?date=2025-06-01", "alice", nil)
		rec := httptest.NewRecorder()
		NewTimelineHandler(svc, cfg, now)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp TimelineResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "2025-06-01", resp.Date)
		assert.Equal(t, cfg.PixelsPerHour, resp.PixelsPerHour)
		assert.Len(t, resp.HourLabels, 24)
		assert.Equal(t, 570.5, resp.NowY)

		// The two events overlap, so each gets half the track.
		assert.Len(t, resp.Blocks, 2)
		half := (cfg.TrackRight - cfg.TrackLeft) / 2
		assert.Equal(t, cfg.TrackLeft+half, resp.Blocks[0].X2)
		assert.Equal(t, cfg.TrackRight, resp.Blocks[1].X2)
	})

	t.Run("empty day", func(t *testing.T) {
		svc := NewMockDayLister(ctrl)
		now := NewMockNowProvider(ctrl)
		svc.EXPECT().EventsForDay(gomock.Any(), "alice", "2025-06-01").Return(nil, nil)
		now.EXPECT().Y().Return(0.0)

		req := authedRequest(t, http.MethodGet, "/timeline?date=2025-06-01", "alice", nil)
		rec := httptest.NewRecorder()
		NewTimelineHandler(svc, cfg, now)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp TimelineResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Empty(t, resp.Blocks)
		assert.Len(t, resp.HourLabels, 24)
	})

	t.Run("invalid date", func(t *testing.T) {
		svc := NewMockDayLister(ctrl)
		svc.EXPECT().EventsForDay(gomock.Any(), "alice", "bogus").Return(nil, services.ErrInvalidDate)

		req := authedRequest(t, http.MethodGet, "/timeline?date=bogus", "alice", nil)
		rec := httptest.NewRecorder()
		NewTimelineHandler(svc, cfg, NewMockNowProvider(ctrl))(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		req := authedRequest(t, http.MethodGet, "/timeline", "", nil)
		rec := httptest.NewRecorder()
		NewTimelineHandler(NewMockDayLister(ctrl), cfg, NewMockNowProvider(ctrl))(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestTimelineHitHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := timeline.DefaultConfig()
	day := []models.EventDB{
		{ID: 1, Title: "Standup", Date: "2025-06-01", StartMin: 540, EndMin: 570},
	}

	t.Run("hit", func(t *testing.T) {
		svc := NewMockDayLister(ctrl)
		svc.EXPECT().EventsForDay(gomock.Any(), "alice", "2025-06-01").Return(day, nil)

		req := authedRequest(t, http.MethodGet, "/timeline/hit?date=2025-06-01&x=100&y=550", "alice", nil)
		rec := httptest.NewRecorder()
		NewTimelineHitHandler(svc, cfg)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp HitResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(1), resp.EventID)
	})

	t.Run("miss", func(t *testing.T) {
		svc := NewMockDayLister(ctrl)
		svc.EXPECT().EventsForDay(gomock.Any(), "alice", "2025-06-01").Return(day, nil)

		req := authedRequest(t, http.MethodGet, "/timeline/hit?date=2025-06-01&x=100&y=100", "alice", nil)
		rec := httptest.NewRecorder()
		NewTimelineHitHandler(svc, cfg)(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric coordinates", func(t *testing.T) {
		req := authedRequest(t, http.MethodGet, "/timeline/hit?x=abc&y=100", "alice", nil)
		rec := httptest.NewRecorder()
		NewTimelineHitHandler(NewMockDayLister(ctrl), cfg)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		req := authedRequest(t, http.MethodGet, "/timeline/hit", "alice", nil)
		rec := httptest.NewRecorder()
		NewTimelineHitHandler(NewMockDayLister(ctrl), cfg)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		req := authedRequest(t, http.MethodGet, "/timeline/hit?x=100&y=550", "", nil)
		rec := httptest.NewRecorder()
		NewTimelineHitHandler(NewMockDayLister(ctrl), cfg)(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestTimelineNowHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := NewMockNowProvider(ctrl)
	now.EXPECT().Y().Return(570.5)

	req := httptest.NewRequest(http.MethodGet, "/timeline/now", nil)
	rec := httptest.NewRecorder()
	NewTimelineNowHandler(now)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp NowResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 570.5, resp.Y)
}

func TestExportHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("serializes events", func(t *testing.T) {
		svc := NewMockDayLister(ctrl)
		svc.EXPECT().EventsForDay(gomock.Any(), "alice", "2025-06-01").Return([]models.EventDB{
			{ID: 1, Title: "Standup", Date: "2025-06-01", StartMin: 540, EndMin: 570},
			{ID: 2, Title: "Lunch", Date: "2025-06-01", StartMin: 720, EndMin: 780},
		}, nil)

		req := authedRequest(t, http.MethodGet, "/calendar.ics?date=2025-06-01", "alice", nil)
		rec := httptest.NewRecorder()
		NewExportHandler(svc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/calendar", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "2025-06-01.ics")

		body := rec.Body.String()
		assert.True(t, strings.HasPrefix(body, "BEGIN:VCALENDAR"))
		assert.Contains(t, body, "SUMMARY:Standup")
		assert.Contains(t, body, "SUMMARY:Lunch")
		assert.Equal(t, 2, strings.Count(body, "BEGIN:VEVENT"))
	})

	t.Run("invalid date", func(t *testing.T) {
		svc := NewMockDayLister(ctrl)
		svc.EXPECT().EventsForDay(gomock.Any(), "alice", "bogus").Return(nil, services.ErrInvalidDate)

		req := authedRequest(t, http.MethodGet, "/calendar.ics?date=bogus", "alice", nil)
		rec := httptest.NewRecorder()
		NewExportHandler(svc)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		req := authedRequest(t, http.MethodGet, "/calendar.ics", "", nil)
		rec := httptest.NewRecorder()
		NewExportHandler(NewMockDayLister(ctrl))(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
