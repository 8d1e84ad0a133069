package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"menu-cms/internal/model"
	"menu-cms/internal/storage"
	"menu-cms/internal/store"

	"github.com/rs/zerolog"
)

// pdfMagic is the byte prefix every PDF file starts with.
var pdfMagic = []byte("%PDF-")

// menuService implements MenuService.
type menuService struct {
	store      *store.Store
	objects    storage.ObjectStorage
	uploadsDir string
	logger     zerolog.Logger
}

// NewMenuService creates a new menu service. Staging directories for each
// menu type are created under uploadsDir.
func NewMenuService(st *store.Store, objects storage.ObjectStorage, uploadsDir string, logger zerolog.Logger) (MenuService, error) {
	for _, t := range model.MenuTypes {
		if err := os.MkdirAll(filepath.Join(uploadsDir, string(t)), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create staging directory for %s: %w", t, err)
		}
	}
	return &menuService{
		store:      st,
		objects:    objects,
		uploadsDir: uploadsDir,
		logger:     logger.With().Str("service", "menu").Logger(),
	}, nil
}

// Catalog returns the full menu catalog.
func (s *menuService) Catalog(ctx context.Context) (model.MenuCatalog, error) {
	catalog, err := s.store.Catalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load menus: %w", err)
	}
	return catalog, nil
}

// Get returns the stored PDF asset for one menu type and language. A disabled
// menu type hides its assets entirely.
func (s *menuService) Get(ctx context.Context, menuType model.MenuType, lang model.Language) (*model.PdfAsset, error) {
	if !model.ValidMenuType(menuType) || !model.ValidLanguage(lang) {
		return nil, model.ErrInvalidMenuType
	}

	catalog, err := s.store.Catalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load menus: %w", err)
	}

	entry, ok := catalog[menuType]
	if !ok || !entry.Enabled {
		return nil, model.ErrMenuNotAvailable
	}

	asset, ok := entry.PDFs[lang]
	if !ok {
		return nil, model.ErrPdfNotFound
	}

	return &asset, nil
}

// Upload runs the upload pipeline for one PDF.
func (s *menuService) Upload(ctx context.Context, input *UploadInput) (*model.PdfAsset, error) {
	if !model.ValidMenuType(input.MenuType) || !model.ValidLanguage(input.Language) {
		return nil, model.ErrInvalidMenuType
	}

	now := time.Now()
	millis := now.UnixMilli()

	stagedPath, err := s.stage(input, millis)
	if err != nil {
		return nil, err
	}
	// The staging file is removed on every exit path, success or failure.
	defer func() {
		if err := os.Remove(stagedPath); err != nil && !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("file", stagedPath).Msg("failed to remove staging file")
		}
	}()

	catalog, err := s.store.Catalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load menus: %w", err)
	}

	// Best-effort cleanup of the previous upload for this slot. Detached from
	// the request: failure is logged, never surfaced, and the response does
	// not wait for it. A failed delete leaks the remote object.
	if old, ok := catalog[input.MenuType].PDFs[input.Language]; ok && old.PublicID != "" {
		s.deleteOldAsset(old.PublicID)
	}

	objectID := fmt.Sprintf("%s-%s-%d", input.MenuType, input.Language, millis)
	result, err := s.objects.Upload(ctx, stagedPath, objectID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("menu_type", string(input.MenuType)).
			Str("language", string(input.Language)).
			Msg("provider upload failed")
		return nil, model.ErrUploadFailed
	}

	asset := model.PdfAsset{
		URL:        result.PublicURL,
		FileName:   input.FileName,
		PublicID:   result.ObjectID,
		UploadedAt: now.UTC(),
	}

	_, err = s.store.UpdateCatalog(func(catalog model.MenuCatalog) error {
		entry := catalog[input.MenuType]
		if entry.PDFs == nil {
			entry.PDFs = make(map[model.Language]model.PdfAsset)
		}
		entry.PDFs[input.Language] = asset
		catalog[input.MenuType] = entry
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record upload: %w", err)
	}

	s.logger.Info().
		Str("menu_type", string(input.MenuType)).
		Str("language", string(input.Language)).
		Str("public_id", asset.PublicID).
		Str("url", asset.URL).
		Msg("menu PDF uploaded")

	return &asset, nil
}

// stage validates the content and writes it to the per-type staging
// directory as <language>-<epoch-millis>.pdf.
func (s *menuService) stage(input *UploadInput, millis int64) (string, error) {
	// Sniff the prefix before anything touches disk.
	head := make([]byte, len(pdfMagic))
	n, err := io.ReadFull(input.Content, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if !bytes.HasPrefix(head[:n], pdfMagic) {
		return "", model.ErrNotPdf
	}

	dir := filepath.Join(s.uploadsDir, string(input.MenuType))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%d.pdf", input.Language, millis))

	file, err := os.Create(path)
	if err != nil {
		s.logger.Error().Err(err).Str("file", path).Msg("failed to create staging file")
		return "", fmt.Errorf("failed to create staging file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(head[:n]); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write staging file: %w", err)
	}

	// Copy at most one byte over the limit so oversize is detectable.
	written, err := io.Copy(file, io.LimitReader(input.Content, MaxUploadBytes+1))
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write staging file: %w", err)
	}
	if written+int64(n) > MaxUploadBytes {
		os.Remove(path)
		return "", model.ErrFileTooLarge
	}

	return path, nil
}

// deleteOldAsset fires a detached goroutine deleting the prior remote object.
func (s *menuService) deleteOldAsset(publicID string) {
	logger := s.logger.With().Str("public_id", publicID).Logger()
	go func() {
		if err := s.objects.Delete(context.Background(), publicID); err != nil {
			logger.Warn().Err(err).Msg("failed to delete old PDF from storage")
			return
		}
		logger.Info().Msg("deleted old PDF from storage")
	}()
}

// Toggle sets whether a menu type is visible to guests.
func (s *menuService) Toggle(ctx context.Context, menuType model.MenuType, enabled bool) error {
	if !model.ValidMenuType(menuType) {
		return model.ErrInvalidMenuType
	}

	_, err := s.store.UpdateCatalog(func(catalog model.MenuCatalog) error {
		entry := catalog[menuType]
		entry.Enabled = enabled
		catalog[menuType] = entry
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update menu status: %w", err)
	}

	s.logger.Info().
		Str("menu_type", string(menuType)).
		Bool("enabled", enabled).
		Msg("menu visibility toggled")

	return nil
}

// ResetAll reseeds the catalog to its initial state.
func (s *menuService) ResetAll(ctx context.Context) error {
	if _, err := s.store.ResetCatalog(); err != nil {
		return fmt.Errorf("failed to reset menus: %w", err)
	}

	s.logger.Info().Msg("menu catalog reset")
	return nil
}
