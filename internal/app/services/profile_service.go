package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/devkip/clubhub/internal/app/models"
	"github.com/devkip/clubhub/internal/app/models/dto"
	"github.com/devkip/clubhub/internal/app/repositories"
	"github.com/devkip/clubhub/internal/pkg/apperrors"
)

// ProfileService manages member profiles. Each user owns exactly one
// profile record; email and student id are fixed at creation.
type ProfileService interface {
	Get(ctx context.Context, userID int64) (*models.Profile, error)
	Update(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.Profile, error)
	CreateInitial(ctx context.Context, userID int64, name, email, studentID string) error
}

// profileServiceImpl implements ProfileService
type profileServiceImpl struct {
	records repositories.RecordStore
	logger  zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(records repositories.RecordStore, logger zerolog.Logger) ProfileService {
	return &profileServiceImpl{
		records: records,
		logger:  logger,
	}
}

// Get returns the user's profile
func (s *profileServiceImpl) Get(ctx context.Context, userID int64) (*models.Profile, error) {
	raw, err := s.records.Get(ctx, models.ProfileKey(userID))
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}

	var profile models.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update applies profile edits. Email and student id in the request are
// ignored; the stored values always survive.
func (s *profileServiceImpl) Update(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Major != nil {
		profile.Major = *req.Major
	}
	if req.Year != nil {
		profile.Year = *req.Year
	}
	if req.Interests != nil {
		profile.Interests = *req.Interests
	}
	if req.GitHub != nil {
		profile.GitHub = *req.GitHub
	}
	if req.LinkedIn != nil {
		profile.LinkedIn = *req.LinkedIn
	}
	profile.UpdatedAt = time.Now()

	if err := s.records.Set(ctx, models.ProfileKey(userID), profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// CreateInitial writes the profile record for a freshly registered user.
// An existing profile is left untouched, which makes repeated sign-ins
// through an identity provider safe.
func (s *profileServiceImpl) CreateInitial(ctx context.Context, userID int64, name, email, studentID string) error {
	now := time.Now()
	profile := &models.Profile{
		Name:      name,
		Email:     email,
		StudentID: studentID,
		Interests: []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.records.SetIfAbsent(ctx, models.ProfileKey(userID), profile)
	if err != nil {
		return err
	}
	if created {
		s.logger.Info().Int64("userId", userID).Msg("Profile created")
	}
	return nil
}
