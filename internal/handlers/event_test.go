package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/asm2526/schedule-manager-app/internal/middlewares"
	"github.com/asm2526/schedule-manager-app/internal/models"
	"github.com/asm2526/schedule-manager-app/internal/services"
)

// authedRequest builds a request carrying an authenticated username, the
// way the auth middleware would after validating a token.
func authedRequest(t *testing.T, method, target, username string, body io.Reader) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if username != "" {
		req = req.WithContext(middlewares.SetUsernameToContext(req.Context(), username))
	}
	return req
}

// serveWithID routes the request through chi so {id} resolves.
func serveWithID(method, pattern string, handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, handler)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateEventHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		svc := NewMockEventAdder(ctrl)
		svc.EXPECT().
			AddEvent(gomock.Any(), "alice", "Standup", "2025-06-01", "09:00", "09:30", 0).
			Return(int64(42), nil)

		body := bytes.NewBufferString(`{"title":"Standup","date":"2025-06-01","start":"09:00","end":"09:30"}`)
		req := authedRequest(t, http.MethodPost, "/events", "alice", body)
		rec := httptest.NewRecorder()
		NewCreateEventHandler(svc)(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp CreateEventResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(42), resp.ID)
	})

	t.Run("duration instead of end", func(t *testing.T) {
		svc := NewMockEventAdder(ctrl)
		svc.EXPECT().
			AddEvent(gomock.Any(), "alice", "Lunch", "2025-06-01", "12:00", "", 45).
			Return(int64(7), nil)

		body := bytes.NewBufferString(`{"title":"Lunch","date":"2025-06-01","start":"12:00","duration_minutes":45}`)
		req := authedRequest(t, http.MethodPost, "/events", "alice", body)
		rec := httptest.NewRecorder()
		NewCreateEventHandler(svc)(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		req := authedRequest(t, http.MethodPost, "/events", "", bytes.NewBufferString(`{}`))
		rec := httptest.NewRecorder()
		NewCreateEventHandler(NewMockEventAdder(ctrl))(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := authedRequest(t, http.MethodPost, "/events", "alice", bytes.NewBufferString(`{`))
		rec := httptest.NewRecorder()
		NewCreateEventHandler(NewMockEventAdder(ctrl))(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		svc := NewMockEventAdder(ctrl)
		svc.EXPECT().
			AddEvent(gomock.Any(), "alice", "", "2025-06-01", "09:00", "09:30", 0).
			Return(int64(0), services.ErrEmptyTitle)

		body := bytes.NewBufferString(`{"title":"","date":"2025-06-01","start":"09:00","end":"09:30"}`)
		req := authedRequest(t, http.MethodPost, "/events", "alice", body)
		rec := httptest.NewRecorder()
		NewCreateEventHandler(svc)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp EventErrorResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Title is required", resp.Error)
	})
}

func TestGetEventHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		svc := NewMockEventGetter(ctrl)
		svc.EXPECT().GetEvent(gomock.Any(), "alice", int64(42)).Return(&models.EventDB{
			ID: 42, Username: "alice", Title: "Standup",
			Date: "2025-06-01", StartMin: 540, EndMin: 570,
		}, nil)

		req := authedRequest(t, http.MethodGet, "/events/42", "alice", nil)
		rec := serveWithID(http.MethodGet, "/events/{id}", NewGetEventHandler(svc), req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp EventResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, "09:00", resp.Start)
		assert.Equal(t, "09:30", resp.End)
		assert.Equal(t, "09:00 AM - 09:30 AM", resp.TimeRange)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewMockEventGetter(ctrl)
		svc.EXPECT().GetEvent(gomock.Any(), "alice", int64(404)).Return(nil, services.ErrEventNotFound)

		req := authedRequest(t, http.MethodGet, "/events/404", "alice", nil)
		rec := serveWithID(http.MethodGet, "/events/{id}", NewGetEventHandler(svc), req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		req := authedRequest(t, http.MethodGet, "/events/abc", "alice", nil)
		rec := serveWithID(http.MethodGet, "/events/{id}", NewGetEventHandler(NewMockEventGetter(ctrl)), req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		req := authedRequest(t, http.MethodGet, "/events/42", "", nil)
		rec := serveWithID(http.MethodGet, "/events/{id}", NewGetEventHandler(NewMockEventGetter(ctrl)), req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestListEventsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("explicit date", func(t *testing.T) {
		svc := NewMockDayLister(ctrl)
		svc.EXPECT().EventsForDay(gomock.Any(), "alice", "2025-06-01").Return([]models.EventDB{
			{ID: 1, Title: "Standup", Date: "2025-06-01", StartMin: 540, EndMin: 570},
			{ID: 2, Title: "Lunch", Date: "2025-06-01", StartMin: 720, EndMin: 780},
		}, nil)

		req := authedRequest(t, http.MethodGet, "/events?date=2025-06-01", "alice", nil)
		rec := httptest.NewRecorder()
		NewListEventsHandler(svc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp ListEventsResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "2025-06-01", resp.Date)
		assert.Len(t, resp.Events, 2)
		assert.Equal(t, "Standup", resp.Events[0].Title)
	})

	t.Run("date defaults to today", func(t *testing.T) {
		today := time.Now().Format("2006-01-02")
		svc := NewMockDayLister(ctrl)
		svc.EXPECT().EventsForDay(gomock.Any(), "alice", today).Return(nil, nil)

		req := authedRequest(t, http.MethodGet, "/events", "alice", nil)
		rec := httptest.NewRecorder()
		NewListEventsHandler(svc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp ListEventsResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, today, resp.Date)
		assert.Empty(t, resp.Events)
	})

	t.Run("invalid date", func(t *testing.T) {
		svc := NewMockDayLister(ctrl)
		svc.EXPECT().EventsForDay(gomock.Any(), "alice", "bogus").Return(nil, services.ErrInvalidDate)

		req := authedRequest(t, http.MethodGet, "/events?date=bogus", "alice", nil)
		rec := httptest.NewRecorder()
		NewListEventsHandler(svc)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		req := authedRequest(t, http.MethodGet, "/events", "", nil)
		rec := httptest.NewRecorder()
		NewListEventsHandler(NewMockDayLister(ctrl))(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUpdateEventHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		svc := NewMockEventUpdater(ctrl)
		svc.EXPECT().
			UpdateEvent(gomock.Any(), "alice", int64(42), "Standup", "2025-06-01", "09:00", "10:00", 0).
			Return(nil)

		body := bytes.NewBufferString(`{"title":"Standup","date":"2025-06-01","start":"09:00","end":"10:00"}`)
		req := authedRequest(t, http.MethodPut, "/events/42", "alice", body)
		rec := serveWithID(http.MethodPut, "/events/{id}", NewUpdateEventHandler(svc), req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing id is an error", func(t *testing.T) {
		svc := NewMockEventUpdater(ctrl)
		svc.EXPECT().
			UpdateEvent(gomock.Any(), "alice", int64(404), "Standup", "2025-06-01", "09:00", "10:00", 0).
			Return(services.ErrEventNotFound)

		body := bytes.NewBufferString(`{"title":"Standup","date":"2025-06-01","start":"09:00","end":"10:00"}`)
		req := authedRequest(t, http.MethodPut, "/events/404", "alice", body)
		rec := serveWithID(http.MethodPut, "/events/{id}", NewUpdateEventHandler(svc), req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid time range", func(t *testing.T) {
		svc := NewMockEventUpdater(ctrl)
		svc.EXPECT().
			UpdateEvent(gomock.Any(), "alice", int64(42), "Standup", "2025-06-01", "10:00", "09:00", 0).
			Return(services.ErrInvalidTimeRange)

		body := bytes.NewBufferString(`{"title":"Standup","date":"2025-06-01","start":"10:00","end":"09:00"}`)
		req := authedRequest(t, http.MethodPut, "/events/42", "alice", body)
		rec := serveWithID(http.MethodPut, "/events/{id}", NewUpdateEventHandler(svc), req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp EventErrorResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "End must be after start", resp.Error)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := authedRequest(t, http.MethodPut, "/events/42", "alice", bytes.NewBufferString(`{`))
		rec := serveWithID(http.MethodPut, "/events/{id}", NewUpdateEventHandler(NewMockEventUpdater(ctrl)), req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		req := authedRequest(t, http.MethodPut, "/events/42", "", bytes.NewBufferString(`{}`))
		rec := serveWithID(http.MethodPut, "/events/{id}", NewUpdateEventHandler(NewMockEventUpdater(ctrl)), req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestDeleteEventHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		svc := NewMockEventDeleter(ctrl)
		svc.EXPECT().DeleteEvent(gomock.Any(), "alice", int64(42)).Return(nil)

		req := authedRequest(t, http.MethodDelete, "/events/42", "alice", nil)
		rec := serveWithID(http.MethodDelete, "/events/{id}", NewDeleteEventHandler(svc), req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp DeleteEventResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Event deleted", resp.Message)
	})

	t.Run("missing id is an error", func(t *testing.T) {
		svc := NewMockEventDeleter(ctrl)
		svc.EXPECT().DeleteEvent(gomock.Any(), "alice", int64(404)).Return(services.ErrEventNotFound)

		req := authedRequest(t, http.MethodDelete, "/events/404", "alice", nil)
		rec := serveWithID(http.MethodDelete, "/events/{id}", NewDeleteEventHandler(svc), req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		svc := NewMockEventDeleter(ctrl)
		svc.EXPECT().DeleteEvent(gomock.Any(), "alice", int64(42)).Return(errors.New("db down"))

		req := authedRequest(t, http.MethodDelete, "/events/42", "alice", nil)
		rec := serveWithID(http.MethodDelete, "/events/{id}", NewDeleteEventHandler(svc), req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		req := authedRequest(t, http.MethodDelete, "/events/42", "", nil)
		rec := serveWithID(http.MethodDelete, "/events/{id}", NewDeleteEventHandler(NewMockEventDeleter(ctrl)), req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
