package services

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devkip/clubhub/internal/app/models"
	"github.com/devkip/clubhub/internal/app/models/dto"
	"github.com/devkip/clubhub/internal/app/repositories"
	"github.com/devkip/clubhub/internal/pkg/apperrors"
)

const defaultPhotoCategory = "general"

// GalleryService manages the public photo gallery
type GalleryService interface {
	List(ctx context.Context) ([]models.Photo, error)
	Add(ctx context.Context, req *dto.AddPhotoRequest) (*models.Photo, error)
	Delete(ctx context.Context, id string) error
}

// galleryServiceImpl implements GalleryService
type galleryServiceImpl struct {
	records repositories.RecordStore
	logger  zerolog.Logger
}

// NewGalleryService creates a new GalleryService
func NewGalleryService(records repositories.RecordStore, logger zerolog.Logger) GalleryService {
	return &galleryServiceImpl{
		records: records,
		logger:  logger,
	}
}

// List returns every gallery photo, newest first
func (s *galleryServiceImpl) List(ctx context.Context) ([]models.Photo, error) {
	raws, err := s.records.GetByPrefix(ctx, models.PhotoKeyPrefix)
	if err != nil {
		return nil, err
	}

	photos := make([]models.Photo, 0, len(raws))
	for _, raw := range raws {
		var photo models.Photo
		if err := json.Unmarshal(raw, &photo); err != nil {
			s.logger.Warn().Err(err).Msg("Skipping malformed photo record")
			continue
		}
		photos = append(photos, photo)
	}

	sort.Slice(photos, func(i, j int) bool {
		return photos[i].CreatedAt.After(photos[j].CreatedAt)
	})

	return photos, nil
}

// Add stores a new gallery photo, defaulting its category
func (s *galleryServiceImpl) Add(ctx context.Context, req *dto.AddPhotoRequest) (*models.Photo, error) {
	category := req.Category
	if category == "" {
		category = defaultPhotoCategory
	}

	photo := &models.Photo{
		ID:        uuid.New().String(),
		URL:       req.URL,
		Caption:   req.Caption,
		Category:  category,
		CreatedAt: time.Now(),
	}

	if err := s.records.Set(ctx, models.PhotoKey(photo.ID), photo); err != nil {
		return nil, err
	}

	s.logger.Info().Str("photoId", photo.ID).Str("category", category).Msg("Gallery photo added")
	return photo, nil
}

// Delete removes a gallery photo
func (s *galleryServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.records.Get(ctx, models.PhotoKey(id)); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.ErrPhotoNotFound
		}
		return err
	}
	if err := s.records.Delete(ctx, models.PhotoKey(id)); err != nil {
		return err
	}
	s.logger.Info().Str("photoId", id).Msg("Gallery photo deleted")
	return nil
}
