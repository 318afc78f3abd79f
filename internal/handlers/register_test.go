package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/asm2526/schedule-manager-app/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		body       string
		setup      func(svc *MockRegisterer)
		wantStatus int
		wantError  string
	}{
		{
			name: "success",
			body: `{"username":"alice","password":"secret"}`,
			setup: func(svc *MockRegisterer) {
				svc.EXPECT().Register(gomock.Any(), "alice", "secret").Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed body",
			body:       `{"username":`,
			setup:      func(svc *MockRegisterer) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request body",
		},
		{
			name: "username taken",
			body: `{"username":"alice","password":"secret"}`,
			setup: func(svc *MockRegisterer) {
				svc.EXPECT().Register(gomock.Any(), "alice", "secret").Return(services.ErrUserAlreadyExists)
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "Username already exists",
		},
		{
			name: "empty credentials",
			body: `{"username":"","password":""}`,
			setup: func(svc *MockRegisterer) {
				svc.EXPECT().Register(gomock.Any(), "", "").Return(services.ErrEmptyCredentials)
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "Username and password are required",
		},
		{
			name: "internal error",
			body: `{"username":"alice","password":"secret"}`,
			setup: func(svc *MockRegisterer) {
				svc.EXPECT().Register(gomock.Any(), "alice", "secret").Return(errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockRegisterer(ctrl)
			tt.setup(svc)
			handler := NewRegisterHandler(svc)

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			handler(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				var resp RegisterErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.wantError, resp.Error)
			}
		})
	}
}
