package dto

type ProcessImageResponseDTO struct {
	Success           bool   `json:"success" example:"true"`
	EditedImageBase64 string `json:"editedImageBase64"`
	CreditsUsed       int    `json:"creditsUsed" example:"5"`
	CreditsRemaining  int    `json:"creditsRemaining" example:"45"`
}
