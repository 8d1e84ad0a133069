package integration

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"menu-cms/internal/auth"
	"menu-cms/internal/handler"
	"menu-cms/internal/router"
	"menu-cms/internal/service"
	"menu-cms/internal/storage"
	"menu-cms/internal/store"

	"github.com/rs/zerolog"
)

const (
	testSecret    = "integration-test-secret"
	adminPassword = "admin123"
)

// FakeObjectStorage is an in-memory ObjectStorage for full-stack tests.
type FakeObjectStorage struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Deletes []string
	Deleted chan string
}

func NewFakeObjectStorage() *FakeObjectStorage {
	return &FakeObjectStorage{
		Objects: make(map[string][]byte),
		Deleted: make(chan string, 8),
	}
}

func (f *FakeObjectStorage) Upload(ctx context.Context, localPath, objectID string) (storage.UploadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Objects[objectID] = []byte(localPath)
	return storage.UploadResult{
		PublicURL: "https://cdn.example.com/" + objectID,
		ObjectID:  objectID,
	}, nil
}

func (f *FakeObjectStorage) Delete(ctx context.Context, objectID string) error {
	f.mu.Lock()
	delete(f.Objects, objectID)
	f.Deletes = append(f.Deletes, objectID)
	f.mu.Unlock()
	f.Deleted <- objectID
	return nil
}

func (f *FakeObjectStorage) DeleteCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Deletes)
}

// TestServer bundles the assembled application for integration tests.
type TestServer struct {
	Handler http.Handler
	Store   *store.Store
	Objects *FakeObjectStorage
	Tokens  *auth.TokenManager
}

// SetupTestServer assembles the full application over temp directories and an
// in-memory object storage.
func SetupTestServer(t *testing.T) *TestServer {
	t.Helper()

	logger := zerolog.Nop()

	st, err := store.New(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		t.Fatalf("failed to hash admin password: %v", err)
	}
	if err := st.EnsureDefaults(hash); err != nil {
		t.Fatalf("failed to seed documents: %v", err)
	}

	objects := NewFakeObjectStorage()
	tokens := auth.NewTokenManager(testSecret, 24*time.Hour)

	menuService, err := service.NewMenuService(st, objects, t.TempDir(), logger)
	if err != nil {
		t.Fatalf("failed to create menu service: %v", err)
	}

	authHandler := handler.NewAuthHandler(service.NewAuthService(st, tokens, logger), logger)
	menuHandler := handler.NewMenuHandler(menuService, logger)
	settingsHandler := handler.NewSettingsHandler(service.NewSettingsService(st, logger), logger)

	return &TestServer{
		Handler: router.New(authHandler, menuHandler, settingsHandler, tokens, logger),
		Store:   st,
		Objects: objects,
		Tokens:  tokens,
	}
}
