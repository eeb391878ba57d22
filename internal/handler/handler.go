package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hamshark/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// domainStatus maps a domain error code to its HTTP status.
func domainStatus(code string) int {
	switch code {
	case model.ErrCodeMenuItemNotFound,
		model.ErrCodeOrderNotFound,
		model.ErrCodeTruckNotFound,
		model.ErrCodePlanNotFound:
		return http.StatusNotFound
	case model.ErrCodeCheckoutBusy:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// writeServiceError translates service errors: domain errors become 4xx
// responses with their code, everything else is an opaque 500.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, domainStatus(domainErr.Code), domainErr.Code, domainErr.Message, logger)
		return
	}
	writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
}
