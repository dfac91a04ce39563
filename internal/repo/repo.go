package repo

import (
	"github.com/plateshot/plateshot/internal/pg"
	creditrepo "github.com/plateshot/plateshot/internal/repo/credit-repo"
	imagerepo "github.com/plateshot/plateshot/internal/repo/image-repo"
	restaurantrepo "github.com/plateshot/plateshot/internal/repo/restaurant-repo"
	userrepo "github.com/plateshot/plateshot/internal/repo/user-repo"
	"github.com/plateshot/plateshot/internal/service/authservice"
	"github.com/plateshot/plateshot/internal/service/creditservice"
	"github.com/plateshot/plateshot/internal/service/imageservice"
)

type Repositories struct {
	UserRepo       authservice.Repo
	RestaurantRepo creditservice.RestaurantRepo
	CreditRepo     creditservice.CreditRepo
	ImageRepo      imageservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	restaurantRepo := restaurantrepo.New(conn)
	creditRepo := creditrepo.New(conn, txManager)
	imageRepo := imagerepo.New(conn)

	return &Repositories{
		UserRepo:       userRepo,
		RestaurantRepo: restaurantRepo,
		CreditRepo:     creditRepo,
		ImageRepo:      imageRepo,
	}
}
