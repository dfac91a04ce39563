package handlers

import (
	"net/http"

	_ "github.com/plateshot/plateshot/docs"
	authhandlers "github.com/plateshot/plateshot/internal/handlers/auth"
	creditshandlers "github.com/plateshot/plateshot/internal/handlers/credits"
	edithandlers "github.com/plateshot/plateshot/internal/handlers/edit"
	imageshandlers "github.com/plateshot/plateshot/internal/handlers/images"
	"github.com/plateshot/plateshot/internal/service"
	"github.com/plateshot/plateshot/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type EditHandler interface {
	ProcessImage(w http.ResponseWriter, r *http.Request)
}

type ImagesHandler interface {
	SaveImage(w http.ResponseWriter, r *http.Request)
	GetImages(w http.ResponseWriter, r *http.Request)
}

type CreditsHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	EditHandler    EditHandler
	ImagesHandler  ImagesHandler
	CreditsHandler CreditsHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		EditHandler:    edithandlers.New(s.EditService),
		ImagesHandler:  imageshandlers.New(s.ImageService),
		CreditsHandler: creditshandlers.New(s.CreditService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/images", func(r chi.Router) {
				r.Post("/process", h.EditHandler.ProcessImage)
				r.Post("/save", h.ImagesHandler.SaveImage)
				r.Get("/", h.ImagesHandler.GetImages)
			})
			r.Route("/credits", func(r chi.Router) {
				r.Get("/", h.CreditsHandler.GetBalance)
				r.Get("/history", h.CreditsHandler.GetHistory)
			})
		})
	})

	return r
}
