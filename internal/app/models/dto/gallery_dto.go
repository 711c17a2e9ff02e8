package dto

import "github.com/devkip/clubhub/internal/app/models"

// AddPhotoRequest adds a photo to the gallery
type AddPhotoRequest struct {
	URL      string `json:"url" binding:"required"`
	Caption  string `json:"caption"`
	Category string `json:"category"` // defaults to "general"
}

// GalleryResponse is the public gallery listing
type GalleryResponse struct {
	Photos []models.Photo `json:"photos"`
	Count  int            `json:"count"`
}
