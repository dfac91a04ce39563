package restaurantrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/plateshot/plateshot/internal/domain"
	"github.com/plateshot/plateshot/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByOwnerID(ctx context.Context, ownerID int) (*domain.Restaurant, error) {
	query := `
        SELECT id, owner_id, name, credits
        FROM restaurants
        WHERE owner_id = $1
    `
	row := r.db.QueryRow(ctx, query, ownerID)
	var restaurant domain.Restaurant
	err := row.Scan(&restaurant.ID, &restaurant.OwnerID, &restaurant.Name, &restaurant.Credits)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get restaurant", zap.Error(err))
		return nil, err
	}
	return &restaurant, nil
}

func (r *Repository) CreateRestaurant(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	query := `
        INSERT INTO restaurants (owner_id, name, credits)
        VALUES ($1, $2, $3)
        RETURNING id, owner_id, name, credits
    `
	row := r.db.QueryRow(ctx, query, restaurant.OwnerID, restaurant.Name, restaurant.Credits)
	var created domain.Restaurant
	err := row.Scan(&created.ID, &created.OwnerID, &created.Name, &created.Credits)
	if err != nil {
		zap.L().Error("failed to create restaurant", zap.Error(err))
		return nil, err
	}
	return &created, nil
}
