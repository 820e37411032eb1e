package handlers

import (
	"net/http"

	"github.com/wonny/edgefinder/internal/signals"
	"github.com/wonny/edgefinder/pkg/logger"
)

// SignalsHandler handles combined signal table endpoints
type SignalsHandler struct {
	builder *signals.Builder
	logger  *logger.Logger
}

// NewSignalsHandler creates a new signals handler
func NewSignalsHandler(builder *signals.Builder, log *logger.Logger) *SignalsHandler {
	return &SignalsHandler{
		builder: builder,
		logger:  log,
	}
}

// GetSignals returns the scored instrument table, best first
// GET /api/signals
func (h *SignalsHandler) GetSignals(w http.ResponseWriter, r *http.Request) {
	rows := h.builder.Build(r.Context(), signals.DefaultInstruments())
	respondJSON(w, http.StatusOK, rows)
}
