package handler

import (
	"net/http"

	"hamshark/internal/service"

	"github.com/rs/zerolog"
)

// MenuHandler handles menu browsing HTTP requests.
type MenuHandler struct {
	service service.MenuService
	logger  zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(service service.MenuService, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger.With().Str("handler", "menu").Logger(),
	}
}

// GetAll handles GET /api/menu requests.
func (h *MenuHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// GetByCategory handles GET /api/menu/category/{category} requests.
func (h *MenuHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")

	items, err := h.service.GetByCategory(r.Context(), category)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// GetByCuisine handles GET /api/menu/cuisine/{cuisine} requests.
func (h *MenuHandler) GetByCuisine(w http.ResponseWriter, r *http.Request) {
	cuisine := r.PathValue("cuisine")

	items, err := h.service.GetByCuisine(r.Context(), cuisine)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// GetByID handles GET /api/menu/{id} requests.
func (h *MenuHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	item, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}
