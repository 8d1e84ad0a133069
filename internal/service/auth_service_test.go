package service

import (
	"context"
	"testing"
	"time"

	"menu-cms/internal/auth"
	"menu-cms/internal/model"
	"menu-cms/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) (AuthService, *auth.TokenManager) {
	t.Helper()

	st, err := store.New(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)
	require.NoError(t, st.EnsureDefaults(hash))

	tokens := auth.NewTokenManager("test-secret", 24*time.Hour)
	return NewAuthService(st, tokens, zerolog.Nop()), tokens
}

func TestLogin_Success(t *testing.T) {
	svc, tokens := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), store.DefaultAdminEmail, "admin123")
	require.NoError(t, err)
	assert.Equal(t, store.DefaultAdminEmail, resp.Email)

	// The returned token must verify and carry the email.
	email, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, store.DefaultAdminEmail, email)
}

func TestLogin_Failures(t *testing.T) {
	svc, _ := newTestAuthService(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "unknown email", email: "nobody@bellevue.com", password: "admin123"},
		{name: "wrong password", email: store.DefaultAdminEmail, password: "wrong"},
		{name: "case-sensitive email", email: "ADMIN@BELLEVUE.COM", password: "admin123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		})
	}
}
