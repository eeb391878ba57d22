package handler

import (
	"net/http"

	"hamshark/internal/service"

	"github.com/rs/zerolog"
)

// MembershipHandler handles membership plan HTTP requests.
type MembershipHandler struct {
	service service.MembershipService
	logger  zerolog.Logger
}

// NewMembershipHandler creates a new membership handler.
func NewMembershipHandler(service service.MembershipService, logger zerolog.Logger) *MembershipHandler {
	return &MembershipHandler{
		service: service,
		logger:  logger.With().Str("handler", "membership").Logger(),
	}
}

// GetAll handles GET /api/membership-plans requests.
func (h *MembershipHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	plans, err := h.service.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, plans)
}

// GetByID handles GET /api/membership-plans/{id} requests.
func (h *MembershipHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	plan, err := h.service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, plan)
}
