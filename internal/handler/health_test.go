package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

func TestHandleHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	HandleHealthz().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		noPool     bool
		storage    string
		wantStatus int
		want       HealthResponse
	}{
		{
			name:       "in-memory storage needs no ping",
			noPool:     true,
			storage:    "memory",
			wantStatus: http.StatusOK,
			want:       HealthResponse{Status: HealthStatusOK, Storage: "memory"},
		},
		{
			name:       "database reachable",
			storage:    "postgres",
			wantStatus: http.StatusOK,
			want:       HealthResponse{Status: HealthStatusOK, Storage: "postgres"},
		},
		{
			name:       "database unreachable",
			pingErr:    context.DeadlineExceeded,
			storage:    "postgres",
			wantStatus: http.StatusServiceUnavailable,
			want:       HealthResponse{Status: HealthStatusUnavailable, Storage: "postgres", Message: "database connection failed"},
		},
		{
			name:       "ping error details stay in the logs",
			pingErr:    errors.New("password authentication failed for user loot"),
			storage:    "postgres",
			wantStatus: http.StatusServiceUnavailable,
			want:       HealthResponse{Status: HealthStatusUnavailable, Storage: "postgres", Message: "database connection failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h http.HandlerFunc
			var db *MockDBPool
			if tt.noPool {
				h = HandleReadyz(nil, tt.storage)
			} else {
				db = &MockDBPool{}
				db.On("Ping", mock.Anything).Return(tt.pingErr)
				h = HandleReadyz(db, tt.storage)
			}

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			var got HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
			if db != nil {
				db.AssertExpectations(t)
			}
		})
	}
}

func TestHandleReadyz_PingHasDeadline(t *testing.T) {
	db := &MockDBPool{}
	db.On("Ping", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})).Return(nil)

	w := httptest.NewRecorder()
	HandleReadyz(db, "postgres").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	db.AssertExpectations(t)
}
