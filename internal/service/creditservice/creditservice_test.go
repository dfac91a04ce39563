package creditservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/plateshot/plateshot/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRestaurantRepo, *MockCreditRepo) {
	ctrl := gomock.NewController(t)
	restaurantRepo := NewMockRestaurantRepo(ctrl)
	creditRepo := NewMockCreditRepo(ctrl)
	service := New(restaurantRepo, creditRepo)
	defer ctrl.Finish()
	return service, restaurantRepo, creditRepo
}

func TestCreateAccount(t *testing.T) {
	service, restaurantRepo, creditRepo := NewMock(t)

	tests := []struct {
		name           string
		ownerID        int
		restaurantName string
		prepareMock    func()
		expectedResult *domain.Restaurant
		expectedError  error
	}{
		{
			name:           "Successful account creation with starting grant",
			ownerID:        1,
			restaurantName: "Trattoria Roma",
			prepareMock: func() {
				restaurantRepo.EXPECT().CreateRestaurant(gomock.Any(), &domain.Restaurant{
					OwnerID: 1,
					Name:    "Trattoria Roma",
					Credits: StartingCredits,
				}).Return(&domain.Restaurant{
					ID:      10,
					OwnerID: 1,
					Name:    "Trattoria Roma",
					Credits: StartingCredits,
				}, nil)
				creditRepo.EXPECT().CreateTransaction(gomock.Any(), &domain.CreditTransaction{
					RestaurantID: 10,
					Amount:       StartingCredits,
					Type:         domain.TransactionInitial,
					Description:  "starting credit grant",
					BalanceAfter: StartingCredits,
				}).Return(&domain.CreditTransaction{ID: 1}, nil)
			},
			expectedResult: &domain.Restaurant{
				ID:      10,
				OwnerID: 1,
				Name:    "Trattoria Roma",
				Credits: StartingCredits,
			},
			expectedError: nil,
		},
		{
			name:           "Restaurant creation fails",
			ownerID:        1,
			restaurantName: "Trattoria Roma",
			prepareMock: func() {
				restaurantRepo.EXPECT().CreateRestaurant(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedResult: nil,
			expectedError:  errors.New("db error"),
		},
		{
			name:           "Initial grant record fails",
			ownerID:        1,
			restaurantName: "Trattoria Roma",
			prepareMock: func() {
				restaurantRepo.EXPECT().CreateRestaurant(gomock.Any(), gomock.Any()).Return(&domain.Restaurant{
					ID:      10,
					OwnerID: 1,
					Credits: StartingCredits,
				}, nil)
				creditRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil, errors.New("insert failed"))
			},
			expectedResult: nil,
			expectedError:  errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			restaurant, err := service.CreateAccount(context.Background(), tt.ownerID, tt.restaurantName)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, restaurant)
			}
		})
	}
}

func TestGetBalance(t *testing.T) {
	service, restaurantRepo, _ := NewMock(t)

	tests := []struct {
		name           string
		ownerID        int
		prepareMock    func()
		expectedResult *domain.Restaurant
		expectedError  error
	}{
		{
			name:    "Retrieve balance successfully",
			ownerID: 1,
			prepareMock: func() {
				restaurantRepo.EXPECT().GetByOwnerID(gomock.Any(), 1).Return(&domain.Restaurant{
					ID:      10,
					OwnerID: 1,
					Credits: 45,
				}, nil)
			},
			expectedResult: &domain.Restaurant{
				ID:      10,
				OwnerID: 1,
				Credits: 45,
			},
			expectedError: nil,
		},
		{
			name:    "Restaurant not found",
			ownerID: 2,
			prepareMock: func() {
				restaurantRepo.EXPECT().GetByOwnerID(gomock.Any(), 2).Return(nil, nil)
			},
			expectedResult: nil,
			expectedError:  domain.ErrRestaurantNotFound,
		},
		{
			name:    "Error retrieving balance",
			ownerID: 1,
			prepareMock: func() {
				restaurantRepo.EXPECT().GetByOwnerID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedResult: nil,
			expectedError:  errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			restaurant, err := service.GetBalance(context.Background(), tt.ownerID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, restaurant)
			}
		})
	}
}

func TestGetHistory(t *testing.T) {
	service, restaurantRepo, creditRepo := NewMock(t)
	now := time.Now()

	tests := []struct {
		name           string
		ownerID        int
		prepareMock    func()
		expectedResult []domain.CreditTransaction
		expectedError  error
	}{
		{
			name:    "Retrieve history successfully",
			ownerID: 1,
			prepareMock: func() {
				restaurantRepo.EXPECT().GetByOwnerID(gomock.Any(), 1).Return(&domain.Restaurant{
					ID:      10,
					OwnerID: 1,
					Credits: 45,
				}, nil)
				creditRepo.EXPECT().GetHistoryByRestaurantID(gomock.Any(), 10).Return([]domain.CreditTransaction{
					{ID: 2, RestaurantID: 10, Amount: -5, Type: domain.TransactionImageEdit, BalanceAfter: 45, CreatedAt: now},
					{ID: 1, RestaurantID: 10, Amount: 50, Type: domain.TransactionInitial, BalanceAfter: 50, CreatedAt: now.Add(-time.Hour)},
				}, nil)
			},
			expectedResult: []domain.CreditTransaction{
				{ID: 2, RestaurantID: 10, Amount: -5, Type: domain.TransactionImageEdit, BalanceAfter: 45, CreatedAt: now},
				{ID: 1, RestaurantID: 10, Amount: 50, Type: domain.TransactionInitial, BalanceAfter: 50, CreatedAt: now.Add(-time.Hour)},
			},
			expectedError: nil,
		},
		{
			name:    "Restaurant not found",
			ownerID: 2,
			prepareMock: func() {
				restaurantRepo.EXPECT().GetByOwnerID(gomock.Any(), 2).Return(nil, nil)
			},
			expectedResult: nil,
			expectedError:  domain.ErrRestaurantNotFound,
		},
		{
			name:    "History query fails",
			ownerID: 1,
			prepareMock: func() {
				restaurantRepo.EXPECT().GetByOwnerID(gomock.Any(), 1).Return(&domain.Restaurant{
					ID:      10,
					OwnerID: 1,
				}, nil)
				creditRepo.EXPECT().GetHistoryByRestaurantID(gomock.Any(), 10).Return(nil, errors.New("db error"))
			},
			expectedResult: nil,
			expectedError:  errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			transactions, err := service.GetHistory(context.Background(), tt.ownerID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, transactions)
			}
		})
	}
}
