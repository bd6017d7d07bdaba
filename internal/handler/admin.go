package handler

import (
	"net/http"

	"github.com/osse101/LootDrop_Go/internal/simulator"
)

// ReloadCatalogRequest optionally names the catalog file to load.
// An empty path reloads the configured LOOT_TABLES_PATH.
type ReloadCatalogRequest struct {
	Path string `json:"path" validate:"max=4096,catalogpath"`
}

// ReloadCatalogResponse reports the pools now active
type ReloadCatalogResponse struct {
	Message string   `json:"message"`
	Pools   []string `json:"pools"`
}

// AdminHandler serves operator endpoints
type AdminHandler struct {
	svc simulator.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(svc simulator.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// HandleReloadCatalog reloads the loot tables without a restart
// @Summary Reload loot tables
// @Description Validates a catalog file and swaps it into every live session (admin only)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body ReloadCatalogRequest false "Catalog path"
// @Success 200 {object} ReloadCatalogResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/admin/reload-catalog [post]
func (h *AdminHandler) HandleReloadCatalog(w http.ResponseWriter, r *http.Request) {
	var req ReloadCatalogRequest
	if r.ContentLength != 0 {
		if err := DecodeAndValidateRequest(r, w, &req, OpReloadCatalog); err != nil {
			return
		}
	}

	pools, err := h.svc.ReloadCatalog(r.Context(), req.Path)
	if err != nil {
		respondServiceError(w, r, OpReloadCatalog, err)
		return
	}

	respondJSON(w, http.StatusOK, ReloadCatalogResponse{
		Message: MsgCatalogReloadedSuccess,
		Pools:   pools,
	})
}
