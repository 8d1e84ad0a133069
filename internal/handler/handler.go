package handler

import (
	"encoding/json"
	"net/http"

	"menu-cms/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing useful left to do.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeDomainError maps a service error onto the HTTP taxonomy: validation
// errors are 400, missing assets 404, bad credentials 401, everything else
// (storage, provider) 500.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch err {
	case model.ErrInvalidMenuType, model.ErrNotPdf, model.ErrFileTooLarge:
		status = http.StatusBadRequest
		message = err.Error()
	case model.ErrMenuNotAvailable, model.ErrPdfNotFound:
		status = http.StatusNotFound
		message = err.Error()
	case model.ErrInvalidCredentials:
		status = http.StatusUnauthorized
		message = err.Error()
	case model.ErrUploadFailed:
		status = http.StatusInternalServerError
		message = err.Error()
	}

	writeError(w, status, message, logger)
}
