package handlers

import (
	"net/http"

	"github.com/wonny/edgefinder/internal/macro"
	"github.com/wonny/edgefinder/pkg/logger"
)

// MacroHandler handles macro snapshot API endpoints
type MacroHandler struct {
	service *macro.Service
	logger  *logger.Logger
}

// NewMacroHandler creates a new macro handler
func NewMacroHandler(service *macro.Service, log *logger.Logger) *MacroHandler {
	return &MacroHandler{
		service: service,
		logger:  log,
	}
}

// GetSnapshot returns the cached multi-region macro snapshot
// GET /api/macro
func (h *MacroHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot := h.service.Get(r.Context())
	respondJSON(w, http.StatusOK, snapshot)
}

// Refresh rebuilds the snapshot immediately, bypassing the TTL
// POST /api/macro/refresh
func (h *MacroHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("Manual macro snapshot refresh requested")

	snapshot := h.service.Refresh(r.Context())
	respondJSON(w, http.StatusOK, snapshot)
}
