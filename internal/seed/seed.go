// Package seed creates the accounts the application needs on first start
package seed

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/devkip/clubhub/internal/app/models"
	appRepos "github.com/devkip/clubhub/internal/app/repositories"
	"github.com/devkip/clubhub/internal/config"
	"github.com/devkip/clubhub/internal/pkg/apperrors"
	"github.com/devkip/clubhub/internal/pkg/auth"
)

// devAdminPassword is only ever used outside production mode
const devAdminPassword = "changeme123"

// CreateDefaultData creates verified accounts for the configured admin
// emails so a fresh development install has someone who can sign in to the
// dashboard. Production installs are expected to register admins normally;
// the allow-list grants privilege either way.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		return nil
	}

	userRepo := appRepos.NewUserRepository(dbPool)
	recordRepo := appRepos.NewRecordRepository(dbPool)

	var finalErr error
	for _, adminEmail := range cfg.Admin.Emails {
		adminEmail = strings.ToLower(strings.TrimSpace(adminEmail))
		if adminEmail == "" {
			continue
		}

		exists, err := userRepo.EmailExists(ctx, adminEmail)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}

		hashed, err := auth.HashPassword(devAdminPassword)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}

		name := adminEmail
		if at := strings.Index(adminEmail, "@"); at > 0 {
			name = adminEmail[:at]
		}

		user := &appModels.User{
			Email:           adminEmail,
			Password:        hashed,
			Name:            name,
			IsEmailVerified: true,
			IsActive:        true,
		}

		userID, err := userRepo.Create(ctx, user)
		if err != nil {
			if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				finalErr = errors.Join(finalErr, err)
			}
			continue
		}

		if err := userRepo.MarkEmailVerified(ctx, userID); err != nil {
			finalErr = errors.Join(finalErr, err)
		}

		if _, err := recordRepo.SetIfAbsent(ctx, appModels.ProfileKey(userID), &appModels.Profile{
			Name:      name,
			Email:     adminEmail,
			Interests: []string{},
		}); err != nil {
			finalErr = errors.Join(finalErr, err)
		}

		lgr.Info().Str("email", adminEmail).Msg("Seeded development admin account")
	}

	return finalErr
}
