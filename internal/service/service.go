package service

import (
	"context"
	"io"

	"menu-cms/internal/model"
)

// MaxUploadBytes is the upload size limit for a single PDF.
const MaxUploadBytes = 10 << 20 // 10 MiB

// UploadInput carries one uploaded PDF through the pipeline.
type UploadInput struct {
	MenuType model.MenuType
	Language model.Language
	FileName string
	Content  io.Reader
}

// AuthService validates credentials and issues session tokens.
type AuthService interface {
	// Login scans the user store for a matching email and verifies the
	// password, returning a signed session token.
	Login(ctx context.Context, email, password string) (*model.LoginResponse, error)
}

// MenuService defines operations on the menu catalog.
type MenuService interface {
	// Catalog returns the full menu catalog.
	Catalog(ctx context.Context) (model.MenuCatalog, error)

	// Get returns the stored PDF asset for one menu type and language.
	Get(ctx context.Context, menuType model.MenuType, lang model.Language) (*model.PdfAsset, error)

	// Upload runs the upload pipeline: validate, stage locally, push to the
	// remote provider, record the returned asset in the catalog.
	Upload(ctx context.Context, input *UploadInput) (*model.PdfAsset, error)

	// Toggle sets whether a menu type is visible to guests.
	Toggle(ctx context.Context, menuType model.MenuType, enabled bool) error

	// ResetAll reseeds the catalog: every menu type disabled, no PDFs.
	ResetAll(ctx context.Context) error
}

// SettingsService defines operations on the site settings.
type SettingsService interface {
	// Get returns the current settings.
	Get(ctx context.Context) (model.Settings, error)

	// Update replaces the restaurant name.
	Update(ctx context.Context, restaurantName string) (model.Settings, error)
}
