package models

import (
	"time"
)

// User defines the account model based on the 'users' table. Identity is
// relational; member-facing profile data lives in the record store.
type User struct {
	ID              int64      `json:"id" db:"id" example:"1"`
	Email           string     `json:"email" db:"email" example:"member@club.org"`
	Password        string     `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Name            string     `json:"name" db:"name" example:"Jane Doe"`
	StudentID       string     `json:"studentId" db:"student_id" example:"BSC/1234/21"`
	GoogleID        *string    `json:"-" db:"google_id"` // set for Google sign-in accounts
	IsEmailVerified bool       `json:"isEmailVerified" db:"is_email_verified" example:"true"`
	IsActive        bool       `json:"isActive" db:"is_active" example:"true"`
	LastLoginAt     *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}
