package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Restaurant struct {
	ID        int       `db:"id"`
	OwnerID   int       `db:"owner_id"`
	Name      string    `db:"name"`
	Credits   int       `db:"credits"`
	CreatedAt time.Time `db:"created_at"`
}

type CreditTransaction struct {
	ID           int       `db:"id"`
	RestaurantID int       `db:"restaurant_id"`
	Amount       int       `db:"amount"`
	Type         string    `db:"transaction_type"`
	Description  string    `db:"description"`
	BalanceAfter int       `db:"balance_after"`
	CreatedAt    time.Time `db:"created_at"`
}

type Image struct {
	ID           int       `db:"id"`
	RestaurantID int       `db:"restaurant_id"`
	EditedURL    string    `db:"edited_url"`
	Format       string    `db:"format"`
	Status       string    `db:"status"`
	CreditsUsed  int       `db:"credits_used"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	TransactionInitial   = "initial"
	TransactionImageEdit = "image_edit"
)

const (
	ImageStatusPending    = "pending"
	ImageStatusProcessing = "processing"
	ImageStatusCompleted  = "completed"
	ImageStatusFailed     = "failed"
)
