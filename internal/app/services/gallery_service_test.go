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

func TestGalleryAddDefaultsCategory(t *testing.T) {
	ctx := context.Background()
	service := NewGalleryService(newFakeRecordStore(), zerolog.Nop())

	photo, err := service.Add(ctx, &dto.AddPhotoRequest{URL: "https://cdn.club.test/p1.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "general", photo.Category)

	tagged, err := service.Add(ctx, &dto.AddPhotoRequest{URL: "https://cdn.club.test/p2.jpg", Category: "hackathon"})
	require.NoError(t, err)
	assert.Equal(t, "hackathon", tagged.Category)
}

func TestGalleryListAndDelete(t *testing.T) {
	ctx := context.Background()
	service := NewGalleryService(newFakeRecordStore(), zerolog.Nop())

	photo, err := service.Add(ctx, &dto.AddPhotoRequest{URL: "https://cdn.club.test/p1.jpg", Caption: "demo day"})
	require.NoError(t, err)

	photos, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, "demo day", photos[0].Caption)

	require.NoError(t, service.Delete(ctx, photo.ID))

	photos, err = service.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, photos)

	err = service.Delete(ctx, photo.ID)
	assert.ErrorIs(t, err, apperrors.ErrPhotoNotFound)
}
