package dto

import "time"

type SaveImageRequestDTO struct {
	EditedBase64 string `json:"editedBase64"`
	Format       string `json:"format" example:"website"`
}

type SaveImageResponseDTO struct {
	Success  bool   `json:"success" example:"true"`
	ImageURL string `json:"imageUrl"`
	ImageID  int    `json:"imageId" example:"1"`
}

type ImageResponseDTO struct {
	ID          int       `json:"id" example:"1"`
	EditedURL   string    `json:"editedUrl"`
	Format      string    `json:"format" example:"website"`
	Status      string    `json:"status" example:"completed"`
	CreditsUsed int       `json:"creditsUsed" example:"5"`
	CreatedAt   time.Time `json:"createdAt" example:"2024-11-02T16:09:57+03:00"`
}
