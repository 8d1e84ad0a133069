package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"menu-cms/internal/auth"
	"menu-cms/internal/config"
	"menu-cms/internal/handler"
	"menu-cms/internal/router"
	"menu-cms/internal/service"
	"menu-cms/internal/storage"
	"menu-cms/internal/store"
)

// defaultAdminPassword seeds the first-boot admin credential. It is hashed
// before it ever reaches disk and the operator is told to change it.
const defaultAdminPassword = "admin123"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting menu-cms API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the document store and seed missing documents
	st, err := store.New(cfg.Paths.DataDir, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}

	adminHash, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}
	if err := st.EnsureDefaults(adminHash); err != nil {
		return fmt.Errorf("failed to seed data files: %w", err)
	}

	// Initialize remote object storage
	objects, err := storage.NewS3Storage(ctx, cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize object storage: %w", err)
	}

	// Initialize services
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTL)*time.Hour)
	authService := service.NewAuthService(st, tokens, logger)
	menuService, err := service.NewMenuService(st, objects, cfg.Paths.UploadsDir, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize menu service: %w", err)
	}
	settingsService := service.NewSettingsService(st, logger)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	menuHandler := handler.NewMenuHandler(menuService, logger)
	settingsHandler := handler.NewSettingsHandler(settingsService, logger)

	// Initialize router
	mux := router.New(authHandler, menuHandler, settingsHandler, tokens, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
