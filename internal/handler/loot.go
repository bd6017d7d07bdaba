package handler

import (
	"net/http"

	"github.com/osse101/LootDrop_Go/internal/simulator"
)

// ChancesResponse lists every entry's drop chance in percent
type ChancesResponse struct {
	Chances map[string]float64 `json:"chances"`
}

// ChestsResponse lists the configured chest types
type ChestsResponse struct {
	Chests []simulator.ChestInfo `json:"chests"`
}

// LootHandler serves read-only loot table endpoints
type LootHandler struct {
	svc simulator.Service
}

// NewLootHandler creates a new loot handler
func NewLootHandler(svc simulator.Service) *LootHandler {
	return &LootHandler{svc: svc}
}

// HandleGetChances returns the configured drop chances
// @Summary Drop chances
// @Description Percentage chance of every entry in the active pool, before chest filtering
// @Tags loot
// @Produce json
// @Success 200 {object} ChancesResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/loot/chances [get]
func (h *LootHandler) HandleGetChances(w http.ResponseWriter, r *http.Request) {
	chances, err := h.svc.Chances(r.Context())
	if err != nil {
		respondServiceError(w, r, OpGetChances, err)
		return
	}
	respondJSON(w, http.StatusOK, ChancesResponse{Chances: chances})
}

// HandleGetChests returns the configured chest types
// @Summary Chest types
// @Description Every chest type with its roll ceiling, exclusions and weight overrides
// @Tags loot
// @Produce json
// @Success 200 {object} ChestsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/loot/chests [get]
func (h *LootHandler) HandleGetChests(w http.ResponseWriter, r *http.Request) {
	chests, err := h.svc.ChestTypes(r.Context())
	if err != nil {
		respondServiceError(w, r, OpGetChests, err)
		return
	}
	respondJSON(w, http.StatusOK, ChestsResponse{Chests: chests})
}
