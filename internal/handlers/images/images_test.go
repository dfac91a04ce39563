package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/plateshot/plateshot/internal/domain"
	"github.com/plateshot/plateshot/internal/dto"
	imageservice "github.com/plateshot/plateshot/internal/service/imageservice"
	"github.com/plateshot/plateshot/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ImagesHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestSaveImageHandler(t *testing.T) {
	handler, service := NewMock(t)
	encoded := base64.StdEncoding.EncodeToString([]byte("edited image bytes"))

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.SaveImageResponseDTO
	}{
		{
			name: "Successful save",
			body: `{"editedBase64": "` + encoded + `", "format": "instagram"}`,
			prepareMock: func() {
				service.EXPECT().
					SaveImage(gomock.Any(), 1, encoded, "instagram").
					Return(&domain.Image{
						ID:        1,
						EditedURL: "https://cdn.example.com/edited/1.png",
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.SaveImageResponseDTO{
				Success:  true,
				ImageURL: "https://cdn.example.com/edited/1.png",
				ImageID:  1,
			},
		},
		{
			name:         "Malformed body",
			body:         `{"editedBase64": `,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "No image data",
			body: `{"editedBase64": "", "format": "website"}`,
			prepareMock: func() {
				service.EXPECT().
					SaveImage(gomock.Any(), 1, "", "website").
					Return(nil, imageservice.ErrNoImageData)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Restaurant not found",
			body: `{"editedBase64": "` + encoded + `", "format": "website"}`,
			prepareMock: func() {
				service.EXPECT().
					SaveImage(gomock.Any(), 1, encoded, "website").
					Return(nil, domain.ErrRestaurantNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			body: `{"editedBase64": "` + encoded + `", "format": "website"}`,
			prepareMock: func() {
				service.EXPECT().
					SaveImage(gomock.Any(), 1, encoded, "website").
					Return(nil, errors.New("s3 unavailable"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/images/save", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()
			handler.SaveImage(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var resp dto.SaveImageResponseDTO
				err := json.NewDecoder(w.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, *tt.expectedBody, resp)
			}
		})
	}
}

func TestGetImagesHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					GetImages(gomock.Any(), 1).
					Return([]domain.Image{
						{ID: 2, EditedURL: "https://cdn.example.com/edited/2.png", Format: "wolt", Status: domain.ImageStatusCompleted, CreditsUsed: 5, CreatedAt: now},
						{ID: 1, EditedURL: "https://cdn.example.com/edited/1.png", Format: "website", Status: domain.ImageStatusCompleted, CreditsUsed: 5, CreatedAt: now.Add(-time.Hour)},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "No images",
			prepareMock: func() {
				service.EXPECT().
					GetImages(gomock.Any(), 1).
					Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Restaurant not found",
			prepareMock: func() {
				service.EXPECT().
					GetImages(gomock.Any(), 1).
					Return(nil, domain.ErrRestaurantNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetImages(gomock.Any(), 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/images", nil)
			r = r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()
			handler.GetImages(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp []dto.ImageResponseDTO
				err := json.NewDecoder(w.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}
