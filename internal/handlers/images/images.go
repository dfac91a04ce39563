package images

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/plateshot/plateshot/internal/domain"
	"github.com/plateshot/plateshot/internal/dto"
	imageservice "github.com/plateshot/plateshot/internal/service/imageservice"
	"github.com/plateshot/plateshot/pkg/auth"
	"github.com/plateshot/plateshot/pkg/utils"
)

//go:generate mockgen -source=images.go -destination=images_mock.go -package=images

type Service interface {
	SaveImage(ctx context.Context, ownerID int, editedBase64, format string) (*domain.Image, error)
	GetImages(ctx context.Context, ownerID int) ([]domain.Image, error)
}

type ImagesHandler struct {
	imageService Service
}

func New(imageService Service) *ImagesHandler {
	return &ImagesHandler{
		imageService: imageService,
	}
}

// SaveImage godoc
//
//	@Summary		Save an accepted edit result
//	@Description	Persist an accepted edited image to the gallery: the image goes to object storage and a gallery record is created.
//	@Tags			Images
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SaveImageRequestDTO	true	"Image data and format"
//	@Success		200		{object}	dto.SaveImageResponseDTO
//	@Failure		400		{object}	utils.Response	"No image data provided"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Restaurant not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/images/save [post]
func (h *ImagesHandler) SaveImage(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.SaveImageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	image, err := h.imageService.SaveImage(r.Context(), userID, req.EditedBase64, req.Format)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRestaurantNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, imageservice.ErrNoImageData):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SaveImageResponseDTO{
		Success:  true,
		ImageURL: image.EditedURL,
		ImageID:  image.ID,
	})
}

// GetImages godoc
//
//	@Summary		Get the image gallery
//	@Description	List saved edited images for the authenticated owner's restaurant, newest first.
//	@Tags			Images
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ImageResponseDTO	"Saved images"
//	@Success		204	{object}	utils.Response			"No images found"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Restaurant not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/images [get]
func (h *ImagesHandler) GetImages(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	images, err := h.imageService.GetImages(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRestaurantNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch images")
		}
		return
	}

	if len(images) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Images not found")
		return
	}

	response := make([]dto.ImageResponseDTO, len(images))
	for i, img := range images {
		response[i] = dto.ImageResponseDTO{
			ID:          img.ID,
			EditedURL:   img.EditedURL,
			Format:      img.Format,
			Status:      img.Status,
			CreditsUsed: img.CreditsUsed,
			CreatedAt:   img.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
