package credits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/plateshot/plateshot/internal/domain"
	"github.com/plateshot/plateshot/internal/dto"
	"github.com/plateshot/plateshot/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*CreditsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					GetBalance(gomock.Any(), 1).
					Return(&domain.Restaurant{
						ID:      10,
						OwnerID: 1,
						Credits: 45,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{
				Credits: 45,
			},
		},
		{
			name: "Restaurant not found",
			prepareMock: func() {
				service.EXPECT().
					GetBalance(gomock.Any(), 1).
					Return(nil, domain.ErrRestaurantNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetBalance(gomock.Any(), 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/credits", nil)
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()
			handler.GetBalance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetHistoryHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.TransactionResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					GetHistory(gomock.Any(), 1).
					Return([]domain.CreditTransaction{
						{ID: 2, RestaurantID: 10, Amount: -5, Type: domain.TransactionImageEdit, Description: "Image edit - website, background: dark-wood", BalanceAfter: 45, CreatedAt: now},
						{ID: 1, RestaurantID: 10, Amount: 50, Type: domain.TransactionInitial, Description: "starting credit grant", BalanceAfter: 50, CreatedAt: now.Add(-time.Hour)},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.TransactionResponseDTO{
				{Amount: -5, Type: domain.TransactionImageEdit, Description: "Image edit - website, background: dark-wood", BalanceAfter: 45, CreatedAt: now},
				{Amount: 50, Type: domain.TransactionInitial, Description: "starting credit grant", BalanceAfter: 50, CreatedAt: now.Add(-time.Hour)},
			},
		},
		{
			name: "No transactions",
			prepareMock: func() {
				service.EXPECT().
					GetHistory(gomock.Any(), 1).
					Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Restaurant not found",
			prepareMock: func() {
				service.EXPECT().
					GetHistory(gomock.Any(), 1).
					Return(nil, domain.ErrRestaurantNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetHistory(gomock.Any(), 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/credits/history", nil)
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()
			handler.GetHistory(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.TransactionResponseDTO
				err := json.NewDecoder(w.Body).Decode(&body)
				assert.NoError(t, err)
				assert.Len(t, body, len(tt.expectedBody))
				for i := range body {
					assert.Equal(t, tt.expectedBody[i].Amount, body[i].Amount)
					assert.Equal(t, tt.expectedBody[i].Type, body[i].Type)
					assert.Equal(t, tt.expectedBody[i].Description, body[i].Description)
					assert.Equal(t, tt.expectedBody[i].BalanceAfter, body[i].BalanceAfter)
				}
			}
		})
	}
}
