package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devkip/clubhub/internal/app/models"
	"github.com/devkip/clubhub/internal/app/models/dto"
	"github.com/devkip/clubhub/internal/app/repositories"
	"github.com/devkip/clubhub/internal/cache"
	"github.com/devkip/clubhub/internal/pkg/apperrors"
)

const (
	wordsPerMinute      = 200
	publicBlogsCacheKey = "cache:blogs:public"
	blogsCacheTTL       = 2 * time.Minute
)

// BlogService governs the article lifecycle: member submissions enter a
// moderation queue, admin-authored posts publish immediately, and only
// approved posts are publicly visible.
type BlogService interface {
	Submit(ctx context.Context, userID int64, userEmail string, req *dto.SubmitArticleRequest) (*models.BlogPost, error)
	CreateApproved(ctx context.Context, req *dto.CreateBlogRequest) (*models.BlogPost, error)
	ListPublic(ctx context.Context) ([]models.BlogPost, error)
	ListAll(ctx context.Context) ([]models.BlogPost, error)
	Approve(ctx context.Context, id string) (*models.BlogPost, error)
	Reject(ctx context.Context, id string) (*models.BlogPost, error)
	Update(ctx context.Context, id string, req *dto.UpdateBlogRequest) (*models.BlogPost, error)
	Delete(ctx context.Context, id string) error
}

// blogServiceImpl implements BlogService
type blogServiceImpl struct {
	records repositories.RecordStore
	cache   *cache.Client
	logger  zerolog.Logger
}

// NewBlogService creates a new BlogService
func NewBlogService(records repositories.RecordStore, cacheClient *cache.Client, logger zerolog.Logger) BlogService {
	return &blogServiceImpl{
		records: records,
		cache:   cacheClient,
		logger:  logger,
	}
}

// CalculateReadTime estimates reading time from word count at 200 words per
// minute, rounded up, never below one minute.
func CalculateReadTime(content string) string {
	wordCount := len(strings.Fields(content))
	minutes := (wordCount + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// Submit creates a member-submitted article in the moderation queue
func (s *blogServiceImpl) Submit(ctx context.Context, userID int64, userEmail string, req *dto.SubmitArticleRequest) (*models.BlogPost, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.ErrValidationFailed
	}

	author := s.resolveAuthorName(ctx, userID, userEmail)

	readTime := req.ReadTime
	if readTime == "" {
		readTime = CalculateReadTime(req.Content)
	}

	now := time.Now()
	post := &models.BlogPost{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Author:      author,
		AuthorID:    userID,
		AuthorEmail: userEmail,
		Tags:        orEmpty(req.Tags),
		Image:       req.Image,
		ReadTime:    readTime,
		Status:      models.BlogStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.records.Set(ctx, models.BlogKey(post.ID), post); err != nil {
		return nil, err
	}

	s.logger.Info().Str("blogId", post.ID).Str("author", author).Msg("Article submitted for review")
	s.invalidate(ctx)
	return post, nil
}

// CreateApproved creates an admin-authored post, published immediately
func (s *blogServiceImpl) CreateApproved(ctx context.Context, req *dto.CreateBlogRequest) (*models.BlogPost, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" || strings.TrimSpace(req.Author) == "" {
		return nil, apperrors.ErrValidationFailed
	}

	now := time.Now()
	post := &models.BlogPost{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Author:    req.Author,
		Tags:      orEmpty(req.Tags),
		Image:     req.Image,
		ReadTime:  CalculateReadTime(req.Content),
		Status:    models.BlogStatusApproved,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.records.Set(ctx, models.BlogKey(post.ID), post); err != nil {
		return nil, err
	}

	s.logger.Info().Str("blogId", post.ID).Msg("Blog post created")
	s.invalidate(ctx)
	return post, nil
}

// ListPublic returns approved posts, newest first
func (s *blogServiceImpl) ListPublic(ctx context.Context) ([]models.BlogPost, error) {
	if cached, _ := s.cache.Get(ctx, publicBlogsCacheKey); cached != nil {
		var posts []models.BlogPost
		if err := json.Unmarshal(cached, &posts); err == nil {
			return posts, nil
		}
	}

	all, err := s.listSorted(ctx)
	if err != nil {
		return nil, err
	}

	approved := make([]models.BlogPost, 0, len(all))
	for _, post := range all {
		if post.EffectiveStatus() == models.BlogStatusApproved {
			approved = append(approved, post)
		}
	}

	if data, err := json.Marshal(approved); err == nil {
		s.cache.Set(ctx, publicBlogsCacheKey, data, blogsCacheTTL)
	}

	return approved, nil
}

// ListAll returns every post regardless of status, newest first
func (s *blogServiceImpl) ListAll(ctx context.Context) ([]models.BlogPost, error) {
	return s.listSorted(ctx)
}

// Approve publishes a pending article. Re-approving an already approved
// post just re-stamps it; there is no transition guard.
func (s *blogServiceImpl) Approve(ctx context.Context, id string) (*models.BlogPost, error) {
	return s.setStatus(ctx, id, models.BlogStatusApproved)
}

// Reject takes an article out of the publication queue
func (s *blogServiceImpl) Reject(ctx context.Context, id string) (*models.BlogPost, error) {
	return s.setStatus(ctx, id, models.BlogStatusRejected)
}

// Update edits a post's content fields. A payload without status keeps the
// stored status; legacy records without one read as approved.
func (s *blogServiceImpl) Update(ctx context.Context, id string, req *dto.UpdateBlogRequest) (*models.BlogPost, error) {
	post, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
		post.ReadTime = CalculateReadTime(post.Content)
	}
	if req.Author != nil {
		post.Author = *req.Author
	}
	if req.Tags != nil {
		post.Tags = orEmpty(*req.Tags)
	}
	if req.Image != nil {
		post.Image = *req.Image
	}
	if req.Status != nil {
		post.Status = models.BlogStatus(*req.Status)
	} else {
		post.Status = post.EffectiveStatus()
	}
	post.UpdatedAt = time.Now()

	if err := s.records.Set(ctx, models.BlogKey(id), post); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return post, nil
}

// Delete removes a post
func (s *blogServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.records.Delete(ctx, models.BlogKey(id)); err != nil {
		return err
	}
	s.logger.Info().Str("blogId", id).Msg("Blog post deleted")
	s.invalidate(ctx)
	return nil
}

func (s *blogServiceImpl) get(ctx context.Context, id string) (*models.BlogPost, error) {
	raw, err := s.records.Get(ctx, models.BlogKey(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrBlogNotFound
		}
		return nil, err
	}

	var post models.BlogPost
	if err := json.Unmarshal(raw, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *blogServiceImpl) setStatus(ctx context.Context, id string, status models.BlogStatus) (*models.BlogPost, error) {
	post, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	post.Status = status
	post.UpdatedAt = now
	switch status {
	case models.BlogStatusApproved:
		post.ApprovedAt = &now
	case models.BlogStatusRejected:
		post.RejectedAt = &now
	}

	if err := s.records.Set(ctx, models.BlogKey(id), post); err != nil {
		return nil, err
	}

	s.logger.Info().Str("blogId", id).Str("status", string(status)).Msg("Blog post status changed")
	s.invalidate(ctx)
	return post, nil
}

func (s *blogServiceImpl) listSorted(ctx context.Context) ([]models.BlogPost, error) {
	raws, err := s.records.GetByPrefix(ctx, models.BlogKeyPrefix)
	if err != nil {
		return nil, err
	}

	posts := make([]models.BlogPost, 0, len(raws))
	for _, raw := range raws {
		var post models.BlogPost
		if err := json.Unmarshal(raw, &post); err != nil {
			s.logger.Warn().Err(err).Msg("Skipping malformed blog record")
			continue
		}
		posts = append(posts, post)
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	return posts, nil
}

// resolveAuthorName resolves the display name for a submission: profile
// name, then the local part of the email, then "Anonymous"
func (s *blogServiceImpl) resolveAuthorName(ctx context.Context, userID int64, email string) string {
	if raw, err := s.records.Get(ctx, models.ProfileKey(userID)); err == nil {
		var profile models.Profile
		if err := json.Unmarshal(raw, &profile); err == nil && strings.TrimSpace(profile.Name) != "" {
			return profile.Name
		}
	}

	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}

	return "Anonymous"
}

func (s *blogServiceImpl) invalidate(ctx context.Context) {
	s.cache.Delete(ctx, publicBlogsCacheKey)
}

func orEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
