package creditrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/plateshot/plateshot/internal/domain"
	"github.com/plateshot/plateshot/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_DebitIfSufficient(t *testing.T) {
	repo, mock, tx := NewMock(t)

	updateQuery := regexp.QuoteMeta(`
        UPDATE restaurants
        SET credits = credits - $2
        WHERE id = $1 AND credits >= $2
        RETURNING credits
    `)
	insertQuery := regexp.QuoteMeta(`
        INSERT INTO credit_transactions (restaurant_id, amount, transaction_type, description, balance_after)
        VALUES ($1, $2, $3, $4, $5)
    `)

	tests := []struct {
		name       string
		mockSetup  func()
		newBalance int
		expectErr  error
	}{
		{
			name: "Sufficient balance debits and records one transaction",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				mock.ExpectQuery(updateQuery).
					WithArgs(10, 5).
					WillReturnRows(pgxmock.NewRows([]string{"credits"}).AddRow(45))
				mock.ExpectExec(insertQuery).
					WithArgs(10, -5, domain.TransactionImageEdit, "Image edit - website, background: white-marble", 45).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			newBalance: 45,
			expectErr:  nil,
		},
		{
			name: "Insufficient balance matches no row and mutates nothing",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				mock.ExpectQuery(updateQuery).
					WithArgs(10, 5).
					WillReturnError(pgx.ErrNoRows)
			},
			newBalance: 0,
			expectErr:  domain.ErrInsufficientCredits,
		},
		{
			name: "Update error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				mock.ExpectQuery(updateQuery).
					WithArgs(10, 5).
					WillReturnError(errors.New("database error"))
			},
			newBalance: 0,
			expectErr:  errors.New("database error"),
		},
		{
			name: "Ledger insert error rolls the debit back",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				mock.ExpectQuery(updateQuery).
					WithArgs(10, 5).
					WillReturnRows(pgxmock.NewRows([]string{"credits"}).AddRow(45))
				mock.ExpectExec(insertQuery).
					WithArgs(10, -5, domain.TransactionImageEdit, "Image edit - website, background: white-marble", 45).
					WillReturnError(errors.New("insert failed"))
			},
			newBalance: 0,
			expectErr:  errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			newBalance, err := repo.DebitIfSufficient(context.Background(), 10, 5, domain.TransactionImageEdit, "Image edit - website, background: white-marble")

			if tt.expectErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.newBalance, newBalance)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreateTransaction(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := regexp.QuoteMeta(`
        INSERT INTO credit_transactions (restaurant_id, amount, transaction_type, description, balance_after)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `)

	tests := []struct {
		name        string
		transaction *domain.CreditTransaction
		mockSetup   func()
		expectErr   bool
	}{
		{
			name: "Successful insert",
			transaction: &domain.CreditTransaction{
				RestaurantID: 10,
				Amount:       50,
				Type:         domain.TransactionInitial,
				Description:  "starting credit grant",
				BalanceAfter: 50,
			},
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(10, 50, domain.TransactionInitial, "starting credit grant", 50).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			transaction: &domain.CreditTransaction{
				RestaurantID: 10,
				Amount:       50,
				Type:         domain.TransactionInitial,
				Description:  "starting credit grant",
				BalanceAfter: 50,
			},
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(10, 50, domain.TransactionInitial, "starting credit grant", 50).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreateTransaction(context.Background(), tt.transaction)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetHistoryByRestaurantID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        SELECT id, restaurant_id, amount, transaction_type, description, balance_after, created_at
        FROM credit_transactions
        WHERE restaurant_id = $1
        ORDER BY created_at DESC
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.CreditTransaction
	}{
		{
			name: "Returns transactions newest first",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "restaurant_id", "amount", "transaction_type", "description", "balance_after", "created_at"}).
					AddRow(2, 10, -5, domain.TransactionImageEdit, "Image edit - website, background: dark-wood", 45, now).
					AddRow(1, 10, 50, domain.TransactionInitial, "starting credit grant", 50, now.Add(-time.Hour))
				mock.ExpectQuery(query).WithArgs(10).WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.CreditTransaction{
				{ID: 2, RestaurantID: 10, Amount: -5, Type: domain.TransactionImageEdit, Description: "Image edit - website, background: dark-wood", BalanceAfter: 45, CreatedAt: now},
				{ID: 1, RestaurantID: 10, Amount: 50, Type: domain.TransactionInitial, Description: "starting credit grant", BalanceAfter: 50, CreatedAt: now.Add(-time.Hour)},
			},
		},
		{
			name: "No transactions returns empty",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "restaurant_id", "amount", "transaction_type", "description", "balance_after", "created_at"})
				mock.ExpectQuery(query).WithArgs(10).WillReturnRows(rows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(10).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetHistoryByRestaurantID(context.Background(), 10)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
