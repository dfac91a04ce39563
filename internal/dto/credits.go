package dto

import "time"

type BalanceResponseDTO struct {
	Credits int `json:"credits" example:"45"`
}

type TransactionResponseDTO struct {
	Amount       int       `json:"amount" example:"-5"`
	Type         string    `json:"type" example:"image_edit"`
	Description  string    `json:"description" example:"Image edit - website, background: white-marble"`
	BalanceAfter int       `json:"balanceAfter" example:"45"`
	CreatedAt    time.Time `json:"createdAt" example:"2024-11-02T16:09:57+03:00"`
}
