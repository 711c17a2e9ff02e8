package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository               *UserRepository
	TokenRepository              *TokenRepository
	VerificationTokenRepository  *VerificationTokenRepository
	PasswordResetTokenRepository *PasswordResetTokenRepository
	RecordRepository             *RecordRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:               NewUserRepository(db),
		TokenRepository:              NewTokenRepository(db),
		VerificationTokenRepository:  NewVerificationTokenRepository(db),
		PasswordResetTokenRepository: NewPasswordResetTokenRepository(db),
		RecordRepository:             NewRecordRepository(db),
	}
}
