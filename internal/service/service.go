package service

import (
	"github.com/plateshot/plateshot/internal/gemini"
	"github.com/plateshot/plateshot/internal/handlers/auth"
	"github.com/plateshot/plateshot/internal/handlers/credits"
	"github.com/plateshot/plateshot/internal/handlers/edit"
	"github.com/plateshot/plateshot/internal/handlers/images"

	pkgauth "github.com/plateshot/plateshot/pkg/auth"

	"github.com/plateshot/plateshot/internal/repo"
	authservice "github.com/plateshot/plateshot/internal/service/authservice"
	creditservice "github.com/plateshot/plateshot/internal/service/creditservice"
	editservice "github.com/plateshot/plateshot/internal/service/editservice"
	imageservice "github.com/plateshot/plateshot/internal/service/imageservice"
)

type Services struct {
	AuthService   auth.Service
	EditService   edit.Service
	ImageService  images.Service
	CreditService credits.Service
}

func New(repo *repo.Repositories, editor gemini.EditorI, uploader imageservice.Uploader) *Services {
	creditService := creditservice.New(repo.RestaurantRepo, repo.CreditRepo)
	editService := editservice.New(repo.RestaurantRepo, repo.CreditRepo, editor)
	imageService := imageservice.New(repo.ImageRepo, repo.RestaurantRepo, uploader)
	authService := authservice.New(repo.UserRepo, creditService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:   authService,
		EditService:   editService,
		ImageService:  imageService,
		CreditService: creditService,
	}
}
