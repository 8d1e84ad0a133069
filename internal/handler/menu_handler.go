package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"menu-cms/internal/model"
	"menu-cms/internal/service"

	"github.com/rs/zerolog"
)

// multipartSlack is extra request-size headroom for multipart framing and the
// text fields; the service still enforces the exact 10 MiB content limit.
const multipartSlack = 1 << 20

// MenuHandler handles menu catalog HTTP requests.
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

// GetAll handles GET /menus requests.
func (h *MenuHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	catalog, err := h.service.Catalog(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load menus", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, catalog)
}

// GetOne handles GET /menus/{type}/{lang} requests.
func (h *MenuHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	// Expecting path: /menus/{type}/{lang}
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 3 {
		writeError(w, http.StatusBadRequest, "invalid menu type or language", h.logger)
		return
	}

	asset, err := h.service.Get(r.Context(), model.MenuType(parts[1]), model.Language(parts[2]))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, asset)
}

// Upload handles POST /menus/upload requests. The request is multipart form
// data: a file field named "pdf" plus the "category" and "language" fields.
func (h *MenuHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, service.MaxUploadBytes+multipartSlack)

	if err := r.ParseMultipartForm(service.MaxUploadBytes + multipartSlack); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrFileTooLarge.Error(), h.logger)
		return
	}

	category := r.FormValue("category")
	language := r.FormValue("language")
	if category == "" || language == "" {
		writeError(w, http.StatusBadRequest, "menu type and language required", h.logger)
		return
	}

	file, header, err := r.FormFile("pdf")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded", h.logger)
		return
	}
	defer file.Close()

	asset, err := h.service.Upload(r.Context(), &service.UploadInput{
		MenuType: model.MenuType(category),
		Language: model.Language(language),
		FileName: header.Filename,
		Content:  file,
	})
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "PDF uploaded successfully",
		"url":     asset.URL,
	})
}

// Toggle handles POST /menus/{type}/toggle requests.
func (h *MenuHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	// Expecting path: /menus/{type}/toggle
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 3 || parts[2] != "toggle" {
		writeError(w, http.StatusBadRequest, "invalid menu type", h.logger)
		return
	}

	var req model.ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Enabled == nil {
		writeError(w, http.StatusBadRequest, "enabled must be boolean", h.logger)
		return
	}

	if err := h.service.Toggle(r.Context(), model.MenuType(parts[1]), *req.Enabled); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"enabled": *req.Enabled,
	})
}

// ResetAll handles POST /menus/reset-all requests.
func (h *MenuHandler) ResetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	if err := h.service.ResetAll(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to reset data", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "All menu data reset",
	})
}
