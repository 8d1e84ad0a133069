package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"menu-cms/internal/model"
	"menu-cms/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMenuService is a mock implementation of MenuService.
type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) Catalog(ctx context.Context) (model.MenuCatalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.MenuCatalog), args.Error(1)
}

func (m *MockMenuService) Get(ctx context.Context, menuType model.MenuType, lang model.Language) (*model.PdfAsset, error) {
	args := m.Called(ctx, menuType, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PdfAsset), args.Error(1)
}

func (m *MockMenuService) Upload(ctx context.Context, input *service.UploadInput) (*model.PdfAsset, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PdfAsset), args.Error(1)
}

func (m *MockMenuService) Toggle(ctx context.Context, menuType model.MenuType, enabled bool) error {
	args := m.Called(ctx, menuType, enabled)
	return args.Error(0)
}

func (m *MockMenuService) ResetAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestMenuHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockMenuService)
		mockService.On("Catalog", mock.Anything).Return(model.NewMenuCatalog(), nil)
		h := NewMenuHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/menus", nil)
		rec := httptest.NewRecorder()
		h.GetAll(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var catalog model.MenuCatalog
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&catalog))
		assert.Len(t, catalog, len(model.MenuTypes))
		mockService.AssertExpectations(t)
	})

	t.Run("Service error", func(t *testing.T) {
		mockService := new(MockMenuService)
		mockService.On("Catalog", mock.Anything).Return(nil, assert.AnError)
		h := NewMenuHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/menus", nil)
		rec := httptest.NewRecorder()
		h.GetAll(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("Method not allowed", func(t *testing.T) {
		h := NewMenuHandler(new(MockMenuService), logger)

		req := httptest.NewRequest(http.MethodDelete, "/menus", nil)
		rec := httptest.NewRecorder()
		h.GetAll(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestMenuHandler_GetOne(t *testing.T) {
	logger := zerolog.Nop()
	asset := &model.PdfAsset{
		URL:        "https://cdn.example.com/daily-de-1",
		FileName:   "karte.pdf",
		PublicID:   "daily-de-1",
		UploadedAt: time.Now().UTC(),
	}

	tests := []struct {
		name           string
		path           string
		mockReturn     *model.PdfAsset
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			path:           "/menus/daily/de",
			mockReturn:     asset,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Invalid menu type",
			path:           "/menus/breakfast/de",
			mockError:      model.ErrInvalidMenuType,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Menu disabled",
			path:           "/menus/daily/de",
			mockError:      model.ErrMenuNotAvailable,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "PDF not uploaded",
			path:           "/menus/daily/fr",
			mockError:      model.ErrPdfNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Malformed path",
			path:           "/menus/daily/de/extra",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockMenuService)
			if tt.expectService {
				if tt.mockReturn != nil {
					mockService.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(tt.mockReturn, nil)
				} else {
					mockService.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.mockError)
				}
			}
			h := NewMenuHandler(mockService, logger)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			h.GetOne(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

// buildUpload builds a multipart body with the given fields and optional file.
func buildUpload(t *testing.T, fields map[string]string, fileField string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, "menu.pdf")
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestMenuHandler_Upload(t *testing.T) {
	logger := zerolog.Nop()
	asset := &model.PdfAsset{
		URL:      "https://cdn.example.com/daily-de-1",
		PublicID: "daily-de-1",
		FileName: "menu.pdf",
	}

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockMenuService)
		mockService.On("Upload", mock.Anything, mock.MatchedBy(func(input *service.UploadInput) bool {
			return input.MenuType == model.MenuDaily &&
				input.Language == model.LangGerman &&
				input.FileName == "menu.pdf"
		})).Return(asset, nil)
		h := NewMenuHandler(mockService, logger)

		body, contentType := buildUpload(t, map[string]string{
			"category": "daily",
			"language": "de",
		}, "pdf", []byte("%PDF-1.4 content"))

		req := httptest.NewRequest(http.MethodPost, "/menus/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		h.Upload(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, asset.URL, resp["url"])
		mockService.AssertExpectations(t)
	})

	t.Run("Missing fields", func(t *testing.T) {
		h := NewMenuHandler(new(MockMenuService), logger)

		body, contentType := buildUpload(t, map[string]string{"category": "daily"}, "pdf", []byte("%PDF-1.4"))
		req := httptest.NewRequest(http.MethodPost, "/menus/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		h.Upload(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("No file", func(t *testing.T) {
		h := NewMenuHandler(new(MockMenuService), logger)

		body, contentType := buildUpload(t, map[string]string{
			"category": "daily",
			"language": "de",
		}, "", nil)
		req := httptest.NewRequest(http.MethodPost, "/menus/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		h.Upload(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Not a PDF", func(t *testing.T) {
		mockService := new(MockMenuService)
		mockService.On("Upload", mock.Anything, mock.Anything).Return(nil, model.ErrNotPdf)
		h := NewMenuHandler(mockService, logger)

		body, contentType := buildUpload(t, map[string]string{
			"category": "daily",
			"language": "de",
		}, "pdf", []byte("plain text"))
		req := httptest.NewRequest(http.MethodPost, "/menus/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		h.Upload(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Provider failure", func(t *testing.T) {
		mockService := new(MockMenuService)
		mockService.On("Upload", mock.Anything, mock.Anything).Return(nil, model.ErrUploadFailed)
		h := NewMenuHandler(mockService, logger)

		body, contentType := buildUpload(t, map[string]string{
			"category": "daily",
			"language": "de",
		}, "pdf", []byte("%PDF-1.4"))
		req := httptest.NewRequest(http.MethodPost, "/menus/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		h.Upload(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("Method not allowed", func(t *testing.T) {
		h := NewMenuHandler(new(MockMenuService), logger)

		req := httptest.NewRequest(http.MethodGet, "/menus/upload", nil)
		rec := httptest.NewRecorder()
		h.Upload(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestMenuHandler_Toggle(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		path           string
		body           string
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Enable",
			path:           "/menus/daily/toggle",
			body:           `{"enabled": true}`,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Disable",
			path:           "/menus/wine/toggle",
			body:           `{"enabled": false}`,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Missing enabled",
			path:           "/menus/daily/toggle",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Non-boolean enabled",
			path:           "/menus/daily/toggle",
			body:           `{"enabled": "yes"}`,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Invalid menu type",
			path:           "/menus/breakfast/toggle",
			body:           `{"enabled": true}`,
			mockError:      model.ErrInvalidMenuType,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockMenuService)
			if tt.expectService {
				mockService.On("Toggle", mock.Anything, mock.Anything, mock.Anything).Return(tt.mockError)
			}
			h := NewMenuHandler(mockService, logger)

			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewReader([]byte(tt.body)))
			rec := httptest.NewRecorder()
			h.Toggle(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestMenuHandler_ResetAll(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockMenuService)
		mockService.On("ResetAll", mock.Anything).Return(nil)
		h := NewMenuHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPost, "/menus/reset-all", nil)
		rec := httptest.NewRecorder()
		h.ResetAll(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, true, resp["success"])
		mockService.AssertExpectations(t)
	})

	t.Run("Service error", func(t *testing.T) {
		mockService := new(MockMenuService)
		mockService.On("ResetAll", mock.Anything).Return(assert.AnError)
		h := NewMenuHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPost, "/menus/reset-all", nil)
		rec := httptest.NewRecorder()
		h.ResetAll(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
