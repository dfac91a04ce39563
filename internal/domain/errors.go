package domain

import "errors"

var (
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrInsufficientCredits = errors.New("insufficient credits")
)
