package credits

import (
	"context"
	"errors"
	"net/http"

	"github.com/plateshot/plateshot/internal/domain"
	"github.com/plateshot/plateshot/internal/dto"
	"github.com/plateshot/plateshot/pkg/auth"
	"github.com/plateshot/plateshot/pkg/utils"
)

//go:generate mockgen -source=credits.go -destination=credits_mock.go -package=credits

type Service interface {
	CreateAccount(ctx context.Context, ownerID int, name string) (*domain.Restaurant, error)
	GetBalance(ctx context.Context, ownerID int) (*domain.Restaurant, error)
	GetHistory(ctx context.Context, ownerID int) ([]domain.CreditTransaction, error)
}

type CreditsHandler struct {
	creditService Service
}

func New(creditService Service) *CreditsHandler {
	return &CreditsHandler{
		creditService: creditService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current credit balance
//	@Description	Retrieve the current credit balance of the authenticated owner's restaurant.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current credit balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Restaurant not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/credits [get]
func (h *CreditsHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	restaurant, err := h.creditService.GetBalance(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRestaurantNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Credits: restaurant.Credits,
	})
}

// GetHistory godoc
//
//	@Summary		Get credit transaction history
//	@Description	Get the ledger transaction history for the authenticated owner's restaurant, newest first.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Transaction history"
//	@Success		204	{object}	utils.Response				"No transactions found"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		404	{object}	utils.Response				"Restaurant not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/credits/history [get]
func (h *CreditsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.creditService.GetHistory(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRestaurantNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch credit history")
		}
		return
	}

	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, t := range transactions {
		response[i] = dto.TransactionResponseDTO{
			Amount:       t.Amount,
			Type:         t.Type,
			Description:  t.Description,
			BalanceAfter: t.BalanceAfter,
			CreatedAt:    t.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
