package handler

import (
	"encoding/json"
	"net/http"

	"menu-cms/internal/model"
	"menu-cms/internal/service"

	"github.com/rs/zerolog"
)

// SettingsHandler handles site settings HTTP requests.
type SettingsHandler struct {
	service service.SettingsService
	logger  zerolog.Logger
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(service service.SettingsService, logger zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		logger:  logger.With().Str("handler", "settings").Logger(),
	}
}

// Get handles GET /settings requests.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load settings", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// Update handles POST /settings requests.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if req.RestaurantName == "" {
		writeError(w, http.StatusBadRequest, "restaurant name required", h.logger)
		return
	}

	settings, err := h.service.Update(r.Context(), req.RestaurantName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update settings", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"settings": settings,
	})
}
