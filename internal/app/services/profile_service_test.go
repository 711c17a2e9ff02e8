package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devkip/clubhub/internal/app/models/dto"
	"github.com/devkip/clubhub/internal/pkg/apperrors"
)

func TestProfileLifecycle(t *testing.T) {
	ctx := context.Background()
	service := NewProfileService(newFakeRecordStore(), zerolog.Nop())

	_, err := service.Get(ctx, 5)
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)

	require.NoError(t, service.CreateInitial(ctx, 5, "Ada", "ada@club.test", "CS/2024/042"))

	profile, err := service.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.Name)
	assert.Equal(t, "ada@club.test", profile.Email)
	assert.Equal(t, []string{}, profile.Interests)
}

func TestProfileUpdateIgnoresWriteOnceFields(t *testing.T) {
	ctx := context.Background()
	service := NewProfileService(newFakeRecordStore(), zerolog.Nop())
	require.NoError(t, service.CreateInitial(ctx, 5, "Ada", "ada@club.test", "CS/2024/042"))

	name := "Ada L."
	bio := "Compilers and coffee"
	email := "evil@other.test"
	studentID := "HAX/0000/666"
	interests := []string{"go", "distributed systems"}

	updated, err := service.Update(ctx, 5, &dto.UpdateProfileRequest{
		Name:      &name,
		Bio:       &bio,
		Email:     &email,
		StudentID: &studentID,
		Interests: &interests,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada L.", updated.Name)
	assert.Equal(t, "Compilers and coffee", updated.Bio)
	assert.Equal(t, interests, updated.Interests)
	// write-once fields keep their stored values
	assert.Equal(t, "ada@club.test", updated.Email)
	assert.Equal(t, "CS/2024/042", updated.StudentID)
}

func TestCreateInitialIsIdempotent(t *testing.T) {
	ctx := context.Background()
	service := NewProfileService(newFakeRecordStore(), zerolog.Nop())

	require.NoError(t, service.CreateInitial(ctx, 5, "Ada", "ada@club.test", "CS/2024/042"))

	name := "Changed"
	_, err := service.Update(ctx, 5, &dto.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)

	// a second sign-in must not reset the profile
	require.NoError(t, service.CreateInitial(ctx, 5, "Ada", "ada@club.test", "CS/2024/042"))

	profile, err := service.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Changed", profile.Name)
}
