package auth

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/plateshot/plateshot/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedToken string
	}{
		{
			name: "Successful registration",
			body: `{"login": "chef", "password": "password123", "restaurant_name": "Chez Chef"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "chef", "password123", "Chez Chef").
					Return(&domain.User{ID: 1, Login: "chef"}, nil)
				service.EXPECT().
					GenerateToken(1).
					Return("token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer token",
		},
		{
			name:         "Malformed body",
			body:         `{"login": `,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Login already taken",
			body: `{"login": "chef", "password": "password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "chef", "password123", "").
					Return(nil, errors.New("username already taken"))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Token generation fails",
			body: `{"login": "chef", "password": "password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "chef", "password123", "").
					Return(&domain.User{ID: 1, Login: "chef"}, nil)
				service.EXPECT().
					GenerateToken(1).
					Return("", errors.New("sign error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.Background())
			w := httptest.NewRecorder()
			handler.Register(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedToken != "" {
				assert.Equal(t, tt.expectedToken, w.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedToken string
	}{
		{
			name: "Successful login",
			body: `{"login": "chef", "password": "password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "chef", "password123").
					Return(&domain.User{ID: 1, Login: "chef"}, nil)
				service.EXPECT().
					GenerateToken(1).
					Return("token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer token",
		},
		{
			name:         "Malformed body",
			body:         `{"login": `,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid credentials",
			body: `{"login": "chef", "password": "wrong"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "chef", "wrong").
					Return(nil, errors.New("invalid credentials"))
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedToken != "" {
				assert.Equal(t, tt.expectedToken, w.Header().Get("Authorization"))
			}
		})
	}
}
