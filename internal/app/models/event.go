package models

import "time"

// Event is a club event stored in the record store. Whether an event is
// past is always computed from date+time at query time, never stored.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"` // 2006-01-02
	Time        string    `json:"time"` // 15:04
	Location    string    `json:"location"`
	Image       string    `json:"image"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
