package models

import "time"

// Profile is the member-editable profile stored in the record store,
// one per user. Email and student id are write-once: update requests may
// carry them but the stored values always win.
type Profile struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	StudentID string    `json:"studentId"`
	Bio       string    `json:"bio"`
	Major     string    `json:"major"`
	Year      string    `json:"year"`
	Interests []string  `json:"interests"`
	GitHub    string    `json:"github"`
	LinkedIn  string    `json:"linkedin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
