// Package editservice drives one image edit attempt end to end: credit
// admission, upload validation, prompt composition, the external generation
// call, and the ledger debit that settles the attempt.
package editservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/plateshot/plateshot/internal/domain"
	"github.com/plateshot/plateshot/internal/gemini"
	"github.com/plateshot/plateshot/internal/prompt"
	"github.com/plateshot/plateshot/internal/service/creditservice"
	"github.com/plateshot/plateshot/pkg/validate"
	"go.uber.org/zap"
)

// CreditCost is the fixed price of one edit attempt. A feedback-driven retry
// is a new attempt and is charged the full cost again.
const CreditCost = 5

var (
	ErrNoImage       = errors.New("no image provided")
	ErrImageTooLarge = errors.New("image exceeds the size limit")
	ErrNotAnImage    = errors.New("uploaded file is not an image")
)

type Upload struct {
	Data        []byte
	ContentType string
}

type EditResult struct {
	Image            []byte
	MimeType         string
	CreditsUsed      int
	CreditsRemaining int
}

type Service struct {
	restaurantRepo creditservice.RestaurantRepo
	creditRepo     creditservice.CreditRepo
	editor         gemini.EditorI
}

func New(restaurantRepo creditservice.RestaurantRepo, creditRepo creditservice.CreditRepo, editor gemini.EditorI) *Service {
	return &Service{
		restaurantRepo: restaurantRepo,
		creditRepo:     creditRepo,
		editor:         editor,
	}
}

// ProcessEdit runs one edit attempt for the restaurant owned by ownerID.
// The balance read before the external call is advisory; the conditional
// debit after a usable image is produced is the authoritative gate. No
// failure before that debit touches the ledger.
func (s *Service) ProcessEdit(ctx context.Context, ownerID int, upload Upload, selection prompt.Selection) (*EditResult, error) {
	restaurant, err := s.restaurantRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		zap.L().Error("failed to get restaurant", zap.Error(err))
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.ErrRestaurantNotFound
	}

	if restaurant.Credits < CreditCost {
		return nil, domain.ErrInsufficientCredits
	}

	if err := validateUpload(upload); err != nil {
		return nil, err
	}

	composed := prompt.Compose(selection)

	edited, err := s.editor.EditImage(ctx, composed, upload.ContentType, upload.Data)
	if err != nil {
		zap.L().Error("image generation failed",
			zap.Int("restaurantID", restaurant.ID),
			zap.Error(err),
		)
		return nil, err
	}

	description := fmt.Sprintf("Image edit - %s, background: %s",
		selection.Format, selection.Background)

	newBalance, err := s.creditRepo.DebitIfSufficient(ctx, restaurant.ID, CreditCost, domain.TransactionImageEdit, description)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientCredits) {
			// A concurrent attempt drained the balance after the advisory
			// check. The produced image is discarded unbilled.
			return nil, domain.ErrInsufficientCredits
		}
		// The image was already produced; favor delivering it over strict
		// accounting and surface the inconsistency in the log.
		zap.L().Error("ledger debit failed after successful generation",
			zap.Int("restaurantID", restaurant.ID),
			zap.Int("cost", CreditCost),
			zap.Error(err),
		)
		newBalance = restaurant.Credits - CreditCost
	}

	return &EditResult{
		Image:            edited.Image,
		MimeType:         edited.MimeType,
		CreditsUsed:      CreditCost,
		CreditsRemaining: newBalance,
	}, nil
}

func validateUpload(upload Upload) error {
	if len(upload.Data) == 0 {
		return ErrNoImage
	}
	if int64(len(upload.Data)) > validate.MaxImageSize {
		return ErrImageTooLarge
	}
	if !validate.IsImage(upload.ContentType) {
		return ErrNotAnImage
	}
	return nil
}
