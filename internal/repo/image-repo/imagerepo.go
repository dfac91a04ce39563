package imagerepo

import (
	"context"

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

func (r *Repository) CreateImage(ctx context.Context, image *domain.Image) (*domain.Image, error) {
	query := `
        INSERT INTO images (restaurant_id, edited_url, format, status, credits_used)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		image.RestaurantID,
		image.EditedURL,
		image.Format,
		image.Status,
		image.CreditsUsed,
	).Scan(&image.ID)
	if err != nil {
		zap.L().Error("failed to save image record", zap.Error(err))
		return nil, err
	}
	return image, nil
}

func (r *Repository) GetImagesByRestaurantID(ctx context.Context, restaurantID int) ([]domain.Image, error) {
	query := `
        SELECT id, restaurant_id, edited_url, format, status, credits_used, created_at
        FROM images
        WHERE restaurant_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		zap.L().Error("failed to fetch images", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var images []domain.Image
	for rows.Next() {
		var img domain.Image
		err := rows.Scan(&img.ID, &img.RestaurantID, &img.EditedURL, &img.Format, &img.Status, &img.CreditsUsed, &img.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan image row", zap.Error(err))
			return nil, err
		}
		images = append(images, img)
	}

	return images, nil
}
