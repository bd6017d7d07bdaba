package handler

import (
	"net/http"

	"github.com/osse101/LootDrop_Go/internal/logger"
	"github.com/osse101/LootDrop_Go/internal/repository"
	"github.com/osse101/LootDrop_Go/internal/simulator"
)

// OpenChestRequest is the body of a chest opening
type OpenChestRequest struct {
	ChestType   string  `json:"chest_type" validate:"chest"`
	Max         *int    `json:"max,omitempty" validate:"omitnil,gte=0,lte=100"`
	Multiplier  float64 `json:"multiplier" validate:"gte=0,lte=100"`
	RarityBoost float64 `json:"rarity_boost" validate:"omitempty,gte=1,lte=100"`
}

// RollRequest is the body of a single draw
type RollRequest struct {
	ChestType   string  `json:"chest_type" validate:"chest"`
	RarityBoost float64 `json:"rarity_boost" validate:"omitempty,gte=1,lte=100"`
}

// SessionHandler serves the per-session simulator endpoints
type SessionHandler struct {
	svc simulator.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(svc simulator.Service) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// HandleCreateSession starts a simulator session
// @Summary Create session
// @Description Starts a session with its own roll counter and statistics
// @Tags sessions
// @Produce json
// @Success 201 {object} simulator.SessionInfo
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/sessions [post]
func (h *SessionHandler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.CreateSession(r.Context())
	if err != nil {
		respondServiceError(w, r, OpCreateSession, err)
		return
	}
	respondJSON(w, http.StatusCreated, info)
}

// HandleEndSession discards a session
// @Summary End session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id} [delete]
func (h *SessionHandler) HandleEndSession(w http.ResponseWriter, r *http.Request) {
	id, ok := GetSessionID(r, w)
	if !ok {
		return
	}
	if err := h.svc.EndSession(r.Context(), id); err != nil {
		respondServiceError(w, r, OpEndSession, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSessionEndedSuccess})
}

// HandleOpenChest performs a batch draw
// @Summary Open chest
// @Description Draws between 1 and the chest's max rolls items, scaled by the multiplier
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body OpenChestRequest true "Opening parameters"
// @Success 200 {object} domain.ChestOpening
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/open [post]
func (h *SessionHandler) HandleOpenChest(w http.ResponseWriter, r *http.Request) {
	id, ok := GetSessionID(r, w)
	if !ok {
		return
	}

	var req OpenChestRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpOpenChest); err != nil {
		return
	}

	opening, err := h.svc.OpenChest(r.Context(), id, simulator.OpenRequest{
		ChestType:   req.ChestType,
		Max:         req.Max,
		Multiplier:  req.Multiplier,
		RarityBoost: req.RarityBoost,
	})
	if err != nil {
		respondServiceError(w, r, OpOpenChest, err)
		return
	}
	respondJSON(w, http.StatusOK, opening)
}

// HandleRoll performs a single draw
// @Summary Roll once
// @Description One weighted draw; found is false when the chest leaves nothing to draw
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body RollRequest true "Roll parameters"
// @Success 200 {object} simulator.RollResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/roll [post]
func (h *SessionHandler) HandleRoll(w http.ResponseWriter, r *http.Request) {
	id, ok := GetSessionID(r, w)
	if !ok {
		return
	}

	var req RollRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpRoll); err != nil {
		return
	}

	result, err := h.svc.Roll(r.Context(), id, req.ChestType, req.RarityBoost)
	if err != nil {
		respondServiceError(w, r, OpRoll, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleGetStats returns the session's running statistics
// @Summary Session stats
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} stats.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/stats [get]
func (h *SessionHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	id, ok := GetSessionID(r, w)
	if !ok {
		return
	}

	snap, err := h.svc.GetStats(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpGetStats, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// HandleResetSession clears the session's roll counter, statistics and history
// @Summary Reset session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/reset [post]
func (h *SessionHandler) HandleResetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := GetSessionID(r, w)
	if !ok {
		return
	}

	if err := h.svc.ResetSession(r.Context(), id); err != nil {
		respondServiceError(w, r, OpResetSession, err)
		return
	}

	logger.FromContext(r.Context()).Info(MsgSessionResetSuccess, "session_id", id)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSessionResetSuccess})
}

// HandleGetHistory returns recent openings and per-rarity totals
// @Summary Session history
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param limit query int false "Maximum openings to return (default 50, max 500)"
// @Success 200 {object} simulator.History
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/history [get]
func (h *SessionHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := GetSessionID(r, w)
	if !ok {
		return
	}

	limit, ok := GetOptionalIntQueryParam(r, w, QueryParamLimit, repository.DefaultHistoryLimit, ErrMsgInvalidLimit)
	if !ok {
		return
	}

	history, err := h.svc.History(r.Context(), id, limit)
	if err != nil {
		respondServiceError(w, r, OpGetHistory, err)
		return
	}
	respondJSON(w, http.StatusOK, history)
}
