package handler

import (
	"encoding/json"
	"net/http"

	"hamshark/internal/model"
	"hamshark/internal/service"

	"github.com/rs/zerolog"
)

// TruckHandler handles truck location HTTP requests.
type TruckHandler struct {
	service service.TruckService
	logger  zerolog.Logger
}

// NewTruckHandler creates a new truck handler.
func NewTruckHandler(service service.TruckService, logger zerolog.Logger) *TruckHandler {
	return &TruckHandler{
		service: service,
		logger:  logger.With().Str("handler", "truck").Logger(),
	}
}

// GetAll handles GET /api/trucks requests.
func (h *TruckHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	trucks, err := h.service.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, trucks)
}

// GetByID handles GET /api/trucks/{id} requests.
func (h *TruckHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	truck, err := h.service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, truck)
}

// UpdateStatus handles PATCH /api/trucks/{id}/status requests.
func (h *TruckHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	truck, err := h.service.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, truck)
}
