package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/LootDrop_Go/internal/domain"
	"github.com/osse101/LootDrop_Go/internal/repository"
	"github.com/osse101/LootDrop_Go/internal/simulator"
	"github.com/osse101/LootDrop_Go/internal/stats"
)

func newSessionRouter(svc simulator.Service) http.Handler {
	h := NewSessionHandler(svc)
	r := chi.NewRouter()
	r.Post("/sessions", h.HandleCreateSession)
	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Delete("/", h.HandleEndSession)
		r.Post("/open", h.HandleOpenChest)
		r.Post("/roll", h.HandleRoll)
		r.Get("/stats", h.HandleGetStats)
		r.Post("/reset", h.HandleResetSession)
		r.Get("/history", h.HandleGetHistory)
	})
	return r
}

func TestHandleCreateSession(t *testing.T) {
	id := uuid.New()
	mockSvc := &MockSimulatorService{}
	mockSvc.On("CreateSession", mock.Anything).Return(&simulator.SessionInfo{ID: id}, nil)

	w := httptest.NewRecorder()
	newSessionRouter(mockSvc).ServeHTTP(w, httptest.NewRequest("POST", "/sessions", nil))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), id.String())
	mockSvc.AssertExpectations(t)
}

func TestHandleOpenChest(t *testing.T) {
	InitValidator()
	id := uuid.New()
	five := 5

	tests := []struct {
		name           string
		path           string
		body           string
		setupMock      func(*MockSimulatorService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			path: fmt.Sprintf("/sessions/%s/open", id),
			body: `{"chest_type":"epic","max":5,"multiplier":2,"rarity_boost":1.5}`,
			setupMock: func(m *MockSimulatorService) {
				m.On("OpenChest", mock.Anything, id, simulator.OpenRequest{
					ChestType: "epic", Max: &five, Multiplier: 2, RarityBoost: 1.5,
				}).Return(&domain.ChestOpening{SessionID: id, ChestType: "epic", Items: []string{"legendary"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"items":["legendary"]`,
		},
		{
			name:           "Invalid Session ID",
			path:           "/sessions/not-a-uuid/open",
			body:           `{}`,
			setupMock:      func(m *MockSimulatorService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidSessionID,
		},
		{
			name:           "Malformed Body",
			path:           fmt.Sprintf("/sessions/%s/open", id),
			body:           `{"chest_type":`,
			setupMock:      func(m *MockSimulatorService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Unknown Field",
			path:           fmt.Sprintf("/sessions/%s/open", id),
			body:           `{"luck":7}`,
			setupMock:      func(m *MockSimulatorService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Validation Failure",
			path:           fmt.Sprintf("/sessions/%s/open", id),
			body:           `{"rarity_boost":0.5}`,
			setupMock:      func(m *MockSimulatorService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"rarityboost"`,
		},
		{
			name: "Session Not Found",
			path: fmt.Sprintf("/sessions/%s/open", id),
			body: `{}`,
			setupMock: func(m *MockSimulatorService) {
				m.On("OpenChest", mock.Anything, id, simulator.OpenRequest{}).
					Return(nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgSessionNotFoundErr,
		},
		{
			name: "Service Error Is Not Leaked",
			path: fmt.Sprintf("/sessions/%s/open", id),
			body: `{}`,
			setupMock: func(m *MockSimulatorService) {
				m.On("OpenChest", mock.Anything, id, simulator.OpenRequest{}).
					Return(nil, errors.New("pq: connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockSimulatorService{}
			tt.setupMock(mockSvc)

			req := httptest.NewRequest("POST", tt.path, bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			newSessionRouter(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.NotContains(t, w.Body.String(), "pq:")
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleRoll(t *testing.T) {
	InitValidator()
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockSimulatorService{}
		mockSvc.On("Roll", mock.Anything, id, "mythic", 2.0).
			Return(&simulator.RollResult{SessionID: id, ChestType: "mythic", Item: "legendary", Found: true, RollCount: 1}, nil)

		req := httptest.NewRequest("POST", fmt.Sprintf("/sessions/%s/roll", id), bytes.NewBufferString(`{"chest_type":"mythic","rarity_boost":2}`))
		w := httptest.NewRecorder()
		newSessionRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"found":true`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Empty Result Is Not An Error", func(t *testing.T) {
		mockSvc := &MockSimulatorService{}
		mockSvc.On("Roll", mock.Anything, id, "", 0.0).
			Return(&simulator.RollResult{SessionID: id, ChestType: "normal"}, nil)

		req := httptest.NewRequest("POST", fmt.Sprintf("/sessions/%s/roll", id), bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		newSessionRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"found":false`)
		assert.NotContains(t, w.Body.String(), `"item"`)
	})

	t.Run("Invalid Chest Name", func(t *testing.T) {
		mockSvc := &MockSimulatorService{}

		req := httptest.NewRequest("POST", fmt.Sprintf("/sessions/%s/roll", id), bytes.NewBufferString(`{"chest_type":"DROP TABLE"}`))
		w := httptest.NewRecorder()
		newSessionRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"chest_type":"Must be a lowercase chest identifier"`)
	})
}

func TestHandleGetStats(t *testing.T) {
	id := uuid.New()
	mockSvc := &MockSimulatorService{}
	mockSvc.On("GetStats", mock.Anything, id).Return(&stats.Snapshot{Opens: 3, RollCount: 9, BestDrop: "epic"}, nil)

	w := httptest.NewRecorder()
	newSessionRouter(mockSvc).ServeHTTP(w, httptest.NewRequest("GET", fmt.Sprintf("/sessions/%s/stats", id), nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"roll_count":9`)
	assert.Contains(t, w.Body.String(), `"best_drop":"epic"`)
	mockSvc.AssertExpectations(t)
}

func TestHandleResetSession(t *testing.T) {
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockSimulatorService{}
		mockSvc.On("ResetSession", mock.Anything, id).Return(nil)

		w := httptest.NewRecorder()
		newSessionRouter(mockSvc).ServeHTTP(w, httptest.NewRequest("POST", fmt.Sprintf("/sessions/%s/reset", id), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgSessionResetSuccess)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Unknown Session", func(t *testing.T) {
		mockSvc := &MockSimulatorService{}
		mockSvc.On("ResetSession", mock.Anything, id).Return(domain.ErrSessionNotFound)

		w := httptest.NewRecorder()
		newSessionRouter(mockSvc).ServeHTTP(w, httptest.NewRequest("POST", fmt.Sprintf("/sessions/%s/reset", id), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleEndSession(t *testing.T) {
	id := uuid.New()
	mockSvc := &MockSimulatorService{}
	mockSvc.On("EndSession", mock.Anything, id).Return(nil)

	w := httptest.NewRecorder()
	newSessionRouter(mockSvc).ServeHTTP(w, httptest.NewRequest("DELETE", fmt.Sprintf("/sessions/%s/", id), nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgSessionEndedSuccess)
	mockSvc.AssertExpectations(t)
}

func TestHandleGetHistory(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name           string
		query          string
		setupMock      func(*MockSimulatorService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "Default Limit",
			query: "",
			setupMock: func(m *MockSimulatorService) {
				m.On("History", mock.Anything, id, repository.DefaultHistoryLimit).Return(&simulator.History{
					Openings: []domain.ChestOpening{{SessionID: id, Items: []string{"rare"}}},
					Counts:   []domain.RarityCount{{Rarity: "rare", Count: 1}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"counts":[{"rarity":"rare","count":1}]`,
		},
		{
			name:  "Explicit Limit",
			query: "?limit=3",
			setupMock: func(m *MockSimulatorService) {
				m.On("History", mock.Anything, id, 3).Return(&simulator.History{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid Limit",
			query:          "?limit=lots",
			setupMock:      func(m *MockSimulatorService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockSimulatorService{}
			tt.setupMock(mockSvc)

			w := httptest.NewRecorder()
			newSessionRouter(mockSvc).ServeHTTP(w, httptest.NewRequest("GET", fmt.Sprintf("/sessions/%s/history%s", id, tt.query), nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}
