package creditrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/plateshot/plateshot/internal/domain"
	"github.com/plateshot/plateshot/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// DebitIfSufficient deducts amount from the restaurant balance and appends
// one ledger transaction, both inside a single database transaction. The
// conditional UPDATE is the authoritative gate: when the balance is below
// amount no row matches, nothing is mutated, and
// domain.ErrInsufficientCredits is returned.
func (r *Repository) DebitIfSufficient(ctx context.Context, restaurantID, amount int, kind, description string) (int, error) {
	var newBalance int

	updateQuery := `
        UPDATE restaurants
        SET credits = credits - $2
        WHERE id = $1 AND credits >= $2
        RETURNING credits
    `
	insertQuery := `
        INSERT INTO credit_transactions (restaurant_id, amount, transaction_type, description, balance_after)
        VALUES ($1, $2, $3, $4, $5)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, updateQuery, restaurantID, amount)
		if err := row.Scan(&newBalance); err != nil {
			if err == pgx.ErrNoRows {
				return domain.ErrInsufficientCredits
			}
			zap.L().Error("failed to debit restaurant balance", zap.Error(err))
			return err
		}

		if _, err := r.db.Exec(ctx, insertQuery, restaurantID, -amount, kind, description, newBalance); err != nil {
			zap.L().Error("failed to append credit transaction", zap.Error(err))
			return err
		}
		return nil
	})

	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

func (r *Repository) CreateTransaction(ctx context.Context, transaction *domain.CreditTransaction) (*domain.CreditTransaction, error) {
	query := `
        INSERT INTO credit_transactions (restaurant_id, amount, transaction_type, description, balance_after)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		transaction.RestaurantID,
		transaction.Amount,
		transaction.Type,
		transaction.Description,
		transaction.BalanceAfter,
	).Scan(&transaction.ID)
	if err != nil {
		zap.L().Error("failed to save credit transaction", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

func (r *Repository) GetHistoryByRestaurantID(ctx context.Context, restaurantID int) ([]domain.CreditTransaction, error) {
	query := `
        SELECT id, restaurant_id, amount, transaction_type, description, balance_after, created_at
        FROM credit_transactions
        WHERE restaurant_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		zap.L().Error("failed to fetch credit transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.CreditTransaction
	for rows.Next() {
		var t domain.CreditTransaction
		err := rows.Scan(&t.ID, &t.RestaurantID, &t.Amount, &t.Type, &t.Description, &t.BalanceAfter, &t.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan credit transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, t)
	}

	return transactions, nil
}
