package edit

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"

	"github.com/plateshot/plateshot/internal/domain"
	"github.com/plateshot/plateshot/internal/dto"
	"github.com/plateshot/plateshot/internal/gemini"
	"github.com/plateshot/plateshot/internal/prompt"
	editservice "github.com/plateshot/plateshot/internal/service/editservice"
	"github.com/plateshot/plateshot/pkg/auth"
	"github.com/plateshot/plateshot/pkg/utils"
	"github.com/plateshot/plateshot/pkg/validate"
)

//go:generate mockgen -source=edit.go -destination=edit_mock.go -package=edit

type Service interface {
	ProcessEdit(ctx context.Context, ownerID int, upload editservice.Upload, selection prompt.Selection) (*editservice.EditResult, error)
}

type EditHandler struct {
	editService Service
}

func New(editService Service) *EditHandler {
	return &EditHandler{
		editService: editService,
	}
}

// multipart form memory ceiling; the image itself is capped separately.
const maxFormMemory = validate.MaxImageSize + 1<<20

// ProcessImage godoc
//
//	@Summary		Process a dish photo
//	@Description	Run one AI edit attempt on the uploaded dish photo with the selected style options. Charges the fixed credit cost on success. Resubmitting the same photo with feedback runs a new full-price attempt.
//	@Tags			Images
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image		formData	file	true	"Dish photo (image, max 10 MB)"
//	@Param			format		formData	string	false	"Target format: website, wolt or instagram"
//	@Param			background	formData	string	false	"Background style"
//	@Param			angle		formData	string	false	"Camera angle"
//	@Param			lighting	formData	string	false	"Lighting style"
//	@Param			feedback	formData	string	false	"Free-text feedback for a retry attempt"
//	@Success		200	{object}	dto.ProcessImageResponseDTO	"Edited image and updated balance"
//	@Failure		400	{object}	utils.Response				"Missing or invalid image"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		402	{object}	utils.Response				"Insufficient credits"
//	@Failure		404	{object}	utils.Response				"Restaurant not found"
//	@Failure		500	{object}	utils.Response				"Generation or internal failure"
//	@Router			/api/images/process [post]
func (h *EditHandler) ProcessImage(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	upload, err := readImage(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "No image provided")
		return
	}

	selection := prompt.Selection{
		Background: formValueOrDefault(r, "background", prompt.DefaultBackground),
		Angle:      formValueOrDefault(r, "angle", prompt.DefaultAngle),
		Lighting:   formValueOrDefault(r, "lighting", prompt.DefaultLighting),
		Format:     formValueOrDefault(r, "format", prompt.DefaultFormat),
		Feedback:   r.FormValue("feedback"),
	}

	result, err := h.editService.ProcessEdit(r.Context(), userID, upload, selection)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRestaurantNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrInsufficientCredits):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, editservice.ErrNoImage),
			errors.Is(err, editservice.ErrImageTooLarge),
			errors.Is(err, editservice.ErrNotAnImage):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, gemini.ErrTimeout),
			errors.Is(err, gemini.ErrNoImage),
			errors.Is(err, gemini.ErrUpstream):
			utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ProcessImageResponseDTO{
		Success:           true,
		EditedImageBase64: base64.StdEncoding.EncodeToString(result.Image),
		CreditsUsed:       result.CreditsUsed,
		CreditsRemaining:  result.CreditsRemaining,
	})
}

func readImage(r *http.Request) (editservice.Upload, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return editservice.Upload{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, validate.MaxImageSize+1))
	if err != nil {
		return editservice.Upload{}, err
	}

	return editservice.Upload{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}

func formValueOrDefault(r *http.Request, key, fallback string) string {
	if v := r.FormValue(key); v != "" {
		return v
	}
	return fallback
}
