package service

import (
	"context"
	"fmt"

	"menu-cms/internal/model"
	"menu-cms/internal/store"

	"github.com/rs/zerolog"
)

// settingsService implements SettingsService.
type settingsService struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewSettingsService creates a new settings service.
func NewSettingsService(st *store.Store, logger zerolog.Logger) SettingsService {
	return &settingsService{
		store:  st,
		logger: logger.With().Str("service", "settings").Logger(),
	}
}

// Get returns the current settings.
func (s *settingsService) Get(ctx context.Context) (model.Settings, error) {
	settings, err := s.store.Settings()
	if err != nil {
		return model.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// Update replaces the restaurant name.
func (s *settingsService) Update(ctx context.Context, restaurantName string) (model.Settings, error) {
	settings, err := s.store.UpdateSettings(func(settings *model.Settings) error {
		settings.RestaurantName = restaurantName
		return nil
	})
	if err != nil {
		return model.Settings{}, fmt.Errorf("failed to update settings: %w", err)
	}

	s.logger.Info().Str("restaurant", restaurantName).Msg("settings updated")
	return settings, nil
}
