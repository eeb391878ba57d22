package handler

import (
	"net/http"

	"hamshark/internal/service"

	"github.com/rs/zerolog"
)

// LoyaltyHandler handles loyalty reward HTTP requests.
type LoyaltyHandler struct {
	service service.LoyaltyService
	logger  zerolog.Logger
}

// NewLoyaltyHandler creates a new loyalty handler.
func NewLoyaltyHandler(service service.LoyaltyService, logger zerolog.Logger) *LoyaltyHandler {
	return &LoyaltyHandler{
		service: service,
		logger:  logger.With().Str("handler", "loyalty").Logger(),
	}
}

// GetAll handles GET /api/loyalty-rewards requests.
func (h *LoyaltyHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.service.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, rewards)
}

// GetByTier handles GET /api/loyalty-rewards/tier/{tier} requests.
func (h *LoyaltyHandler) GetByTier(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.service.GetByTier(r.Context(), r.PathValue("tier"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, rewards)
}
