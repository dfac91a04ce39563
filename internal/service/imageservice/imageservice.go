package imageservice

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/plateshot/plateshot/internal/domain"
	"github.com/plateshot/plateshot/internal/service/creditservice"
	"github.com/plateshot/plateshot/internal/service/editservice"
	"go.uber.org/zap"
)

//go:generate mockgen -source=imageservice.go -destination=imageservice_mock.go -package=imageservice

var ErrNoImageData = errors.New("no image data provided")

type Repo interface {
	CreateImage(ctx context.Context, image *domain.Image) (*domain.Image, error)
	GetImagesByRestaurantID(ctx context.Context, restaurantID int) ([]domain.Image, error)
}

type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}

type Service struct {
	imageRepo      Repo
	restaurantRepo creditservice.RestaurantRepo
	uploader       Uploader
}

func New(imageRepo Repo, restaurantRepo creditservice.RestaurantRepo, uploader Uploader) *Service {
	return &Service{
		imageRepo:      imageRepo,
		restaurantRepo: restaurantRepo,
		uploader:       uploader,
	}
}

// SaveImage persists an accepted edit result: the decoded image goes to
// object storage and an image record is appended to the gallery.
func (s *Service) SaveImage(ctx context.Context, ownerID int, editedBase64, format string) (*domain.Image, error) {
	restaurant, err := s.restaurantRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		zap.L().Error("failed to get restaurant", zap.Error(err))
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.ErrRestaurantNotFound
	}

	if editedBase64 == "" {
		return nil, ErrNoImageData
	}
	data, err := base64.StdEncoding.DecodeString(editedBase64)
	if err != nil {
		zap.L().Error("failed to decode image data", zap.Error(err))
		return nil, ErrNoImageData
	}

	url, err := s.uploader.Upload(ctx, data, "image/png")
	if err != nil {
		zap.L().Error("failed to upload image", zap.Error(err))
		return nil, err
	}

	image, err := s.imageRepo.CreateImage(ctx, &domain.Image{
		RestaurantID: restaurant.ID,
		EditedURL:    url,
		Format:       format,
		Status:       domain.ImageStatusCompleted,
		CreditsUsed:  editservice.CreditCost,
	})
	if err != nil {
		zap.L().Error("failed to save image record", zap.Error(err))
		return nil, err
	}
	return image, nil
}

func (s *Service) GetImages(ctx context.Context, ownerID int) ([]domain.Image, error) {
	restaurant, err := s.restaurantRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		zap.L().Error("failed to get restaurant", zap.Error(err))
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.ErrRestaurantNotFound
	}

	images, err := s.imageRepo.GetImagesByRestaurantID(ctx, restaurant.ID)
	if err != nil {
		zap.L().Error("failed to fetch images", zap.Error(err))
		return nil, err
	}
	return images, nil
}
