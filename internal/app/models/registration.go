package models

import "time"

// Registration records one member's attendance claim on one event.
// The record key is the (event, user) composite, so key existence is the
// uniqueness constraint. Event title and member name are snapshots taken
// at registration time, not live joins.
type Registration struct {
	ID           string    `json:"id"`
	EventID      string    `json:"eventId"`
	EventTitle   string    `json:"eventTitle"`
	UserID       int64     `json:"userId"`
	UserName     string    `json:"userName"`
	UserEmail    string    `json:"userEmail"`
	StudentID    string    `json:"studentId"`
	RegisteredAt time.Time `json:"registeredAt"`
}
