package models

import "time"

// Photo is a gallery entry stored in the record store
type Photo struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}
