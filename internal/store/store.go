// Package store persists the three JSON documents that make up the entire
// application state: the menu catalog, the user credentials and the site
// settings. Each document is read and rewritten wholesale; a per-document
// mutex serialises read-modify-write sequences so concurrent handlers cannot
// lose each other's updates.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"menu-cms/internal/model"

	"github.com/rs/zerolog"
)

const (
	menusFile    = "menus.json"
	usersFile    = "users.json"
	settingsFile = "settings.json"
)

// Seed values written at first boot.
const (
	DefaultAdminUsername  = "admin"
	DefaultAdminEmail     = "admin@bellevue.com"
	DefaultRestaurantName = "Hotel Bellevue"
)

// Store owns the on-disk JSON documents under a single data directory.
type Store struct {
	dir    string
	logger zerolog.Logger

	menusMu    sync.Mutex
	usersMu    sync.Mutex
	settingsMu sync.Mutex
}

// New creates a store rooted at dir. The directory is created if absent.
func New(dir string, logger zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &Store{
		dir:    dir,
		logger: logger.With().Str("component", "store").Logger(),
	}, nil
}

// EnsureDefaults creates any missing document with its seed content: all menu
// types disabled with empty pdf maps, one admin credential using the supplied
// bcrypt hash, and the default restaurant name. Existing documents are left
// untouched.
func (s *Store) EnsureDefaults(adminPasswordHash string) error {
	seeded, err := s.seedIfMissing(menusFile, model.NewMenuCatalog())
	if err != nil {
		return err
	}
	if seeded {
		s.logger.Info().Msg("created initial menu catalog")
	}

	seeded, err = s.seedIfMissing(usersFile, model.UserStore{
		DefaultAdminUsername: {
			Email:        DefaultAdminEmail,
			PasswordHash: adminPasswordHash,
		},
	})
	if err != nil {
		return err
	}
	if seeded {
		s.logger.Warn().
			Str("email", DefaultAdminEmail).
			Msg("created default admin user, change this password immediately")
	}

	seeded, err = s.seedIfMissing(settingsFile, model.Settings{RestaurantName: DefaultRestaurantName})
	if err != nil {
		return err
	}
	if seeded {
		s.logger.Info().Str("restaurant", DefaultRestaurantName).Msg("created initial settings")
	}

	return nil
}

// Catalog returns the full menu catalog document.
func (s *Store) Catalog() (model.MenuCatalog, error) {
	s.menusMu.Lock()
	defer s.menusMu.Unlock()

	var catalog model.MenuCatalog
	if err := s.readJSON(menusFile, &catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// UpdateCatalog runs mutate on the current catalog and persists the result.
// The whole read-modify-write sequence holds the catalog mutex, so concurrent
// updates are applied one after another rather than overwriting each other.
func (s *Store) UpdateCatalog(mutate func(model.MenuCatalog) error) (model.MenuCatalog, error) {
	s.menusMu.Lock()
	defer s.menusMu.Unlock()

	var catalog model.MenuCatalog
	if err := s.readJSON(menusFile, &catalog); err != nil {
		return nil, err
	}
	if err := mutate(catalog); err != nil {
		return nil, err
	}
	if err := s.writeJSON(menusFile, catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// ResetCatalog replaces the catalog with the seed state regardless of its
// current content.
func (s *Store) ResetCatalog() (model.MenuCatalog, error) {
	s.menusMu.Lock()
	defer s.menusMu.Unlock()

	catalog := model.NewMenuCatalog()
	if err := s.writeJSON(menusFile, catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Users returns the full credential document.
func (s *Store) Users() (model.UserStore, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	var users model.UserStore
	if err := s.readJSON(usersFile, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Settings returns the settings document.
func (s *Store) Settings() (model.Settings, error) {
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()

	var settings model.Settings
	if err := s.readJSON(settingsFile, &settings); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}

// UpdateSettings runs mutate on the current settings and persists the result.
func (s *Store) UpdateSettings(mutate func(*model.Settings) error) (model.Settings, error) {
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()

	var settings model.Settings
	if err := s.readJSON(settingsFile, &settings); err != nil {
		return model.Settings{}, err
	}
	if err := mutate(&settings); err != nil {
		return model.Settings{}, err
	}
	if err := s.writeJSON(settingsFile, settings); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}

func (s *Store) seedIfMissing(name string, value interface{}) (bool, error) {
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := s.writeJSON(name, value); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) readJSON(name string, v interface{}) error {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error().Err(err).Str("file", path).Msg("failed to read document")
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Error().Err(err).Str("file", path).Msg("failed to decode document")
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

func (s *Store) writeJSON(name string, v interface{}) error {
	path := filepath.Join(s.dir, name)
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.logger.Error().Err(err).Str("file", path).Msg("failed to write document")
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
