package service

import (
	"context"
	"fmt"

	"menu-cms/internal/auth"
	"menu-cms/internal/model"
	"menu-cms/internal/store"

	"github.com/rs/zerolog"
)

// authService implements AuthService.
type authService struct {
	store  *store.Store
	tokens *auth.TokenManager
	logger zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(st *store.Store, tokens *auth.TokenManager, logger zerolog.Logger) AuthService {
	return &authService{
		store:  st,
		tokens: tokens,
		logger: logger.With().Str("service", "auth").Logger(),
	}
}

// Login scans the user store for a matching email and verifies the password.
// The scan takes the first match found during iteration; email uniqueness is
// not enforced anywhere, so the winner is unspecified if two entries share an
// email.
func (s *authService) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	users, err := s.store.Users()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read user store")
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	var user *model.User
	for _, u := range users {
		if u.Email == email {
			u := u
			user = &u
			break
		}
	}

	if user == nil || !auth.CheckPassword(user.PasswordHash, password) {
		s.logger.Warn().Str("email", email).Msg("failed login attempt")
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to issue token")
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Str("email", email).Msg("login successful")

	return &model.LoginResponse{Token: token, Email: email}, nil
}
