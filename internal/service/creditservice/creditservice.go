package creditservice

import (
	"context"

	"github.com/plateshot/plateshot/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=creditservice.go -destination=creditservice_mock.go -package=creditservice

// StartingCredits is the grant every restaurant receives at signup.
const StartingCredits = 50

type RestaurantRepo interface {
	GetByOwnerID(ctx context.Context, ownerID int) (*domain.Restaurant, error)
	CreateRestaurant(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error)
}

type CreditRepo interface {
	DebitIfSufficient(ctx context.Context, restaurantID, amount int, kind, description string) (int, error)
	CreateTransaction(ctx context.Context, transaction *domain.CreditTransaction) (*domain.CreditTransaction, error)
	GetHistoryByRestaurantID(ctx context.Context, restaurantID int) ([]domain.CreditTransaction, error)
}

type Service struct {
	restaurantRepo RestaurantRepo
	creditRepo     CreditRepo
}

func New(restaurantRepo RestaurantRepo, creditRepo CreditRepo) *Service {
	return &Service{
		restaurantRepo: restaurantRepo,
		creditRepo:     creditRepo,
	}
}

// CreateAccount creates the restaurant row for a new owner with the starting
// grant and records the grant as the first ledger transaction.
func (s *Service) CreateAccount(ctx context.Context, ownerID int, name string) (*domain.Restaurant, error) {
	restaurant, err := s.restaurantRepo.CreateRestaurant(ctx, &domain.Restaurant{
		OwnerID: ownerID,
		Name:    name,
		Credits: StartingCredits,
	})
	if err != nil {
		zap.L().Error("failed to create restaurant", zap.Error(err))
		return nil, err
	}

	_, err = s.creditRepo.CreateTransaction(ctx, &domain.CreditTransaction{
		RestaurantID: restaurant.ID,
		Amount:       StartingCredits,
		Type:         domain.TransactionInitial,
		Description:  "starting credit grant",
		BalanceAfter: restaurant.Credits,
	})
	if err != nil {
		zap.L().Error("failed to record initial grant", zap.Error(err))
		return nil, err
	}

	return restaurant, nil
}

func (s *Service) GetBalance(ctx context.Context, ownerID int) (*domain.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		zap.L().Error("failed to get restaurant", zap.Error(err))
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.ErrRestaurantNotFound
	}
	return restaurant, nil
}

func (s *Service) GetHistory(ctx context.Context, ownerID int) ([]domain.CreditTransaction, error) {
	restaurant, err := s.GetBalance(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.creditRepo.GetHistoryByRestaurantID(ctx, restaurant.ID)
	if err != nil {
		zap.L().Error("failed to fetch credit history", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
