package services

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devkip/clubhub/internal/app/models"
	"github.com/devkip/clubhub/internal/app/models/dto"
	"github.com/devkip/clubhub/internal/pkg/apperrors"
)

func newBlogService(store *fakeRecordStore) BlogService {
	return NewBlogService(store, nil, zerolog.Nop())
}

func TestCalculateReadTime(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{name: "empty content", content: "", expected: "1 min read"},
		{name: "short article", content: "a few words only", expected: "1 min read"},
		{name: "exactly 200 words", content: strings.Repeat("word ", 200), expected: "1 min read"},
		{name: "201 words rounds up", content: strings.Repeat("word ", 201), expected: "2 min read"},
		{name: "250 words", content: strings.Repeat("word ", 250), expected: "2 min read"},
		{name: "1000 words", content: strings.Repeat("word ", 1000), expected: "5 min read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateReadTime(tt.content))
		})
	}
}

func TestSubmitStartsPending(t *testing.T) {
	store := newFakeRecordStore()
	service := newBlogService(store)

	post, err := service.Submit(context.Background(), 42, "ada@club.test", &dto.SubmitArticleRequest{
		Title:   "Intro to Goroutines",
		Content: strings.Repeat("word ", 250),
	})
	require.NoError(t, err)

	assert.Equal(t, models.BlogStatusPending, post.Status)
	assert.Equal(t, "2 min read", post.ReadTime)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, int64(42), post.AuthorID)
}

func TestSubmitAuthorFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("profile name wins", func(t *testing.T) {
		store := newFakeRecordStore()
		require.NoError(t, store.Set(ctx, models.ProfileKey(7), &models.Profile{Name: "Ada Lovelace"}))
		service := newBlogService(store)

		post, err := service.Submit(ctx, 7, "ada@club.test", &dto.SubmitArticleRequest{Title: "t", Content: "c"})
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", post.Author)
	})

	t.Run("email local part without profile", func(t *testing.T) {
		service := newBlogService(newFakeRecordStore())

		post, err := service.Submit(ctx, 7, "ada@club.test", &dto.SubmitArticleRequest{Title: "t", Content: "c"})
		require.NoError(t, err)
		assert.Equal(t, "ada", post.Author)
	})

	t.Run("anonymous when nothing usable", func(t *testing.T) {
		service := newBlogService(newFakeRecordStore())

		post, err := service.Submit(ctx, 7, "", &dto.SubmitArticleRequest{Title: "t", Content: "c"})
		require.NoError(t, err)
		assert.Equal(t, "Anonymous", post.Author)
	})
}

func TestCreateApprovedPublishesImmediately(t *testing.T) {
	service := newBlogService(newFakeRecordStore())

	post, err := service.CreateApproved(context.Background(), &dto.CreateBlogRequest{
		Title:   "Club News",
		Content: "Announcements for the semester.",
		Author:  "The Board",
	})
	require.NoError(t, err)
	assert.Equal(t, models.BlogStatusApproved, post.Status)
}

func TestListPublicFiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	store := newFakeRecordStore()
	service := newBlogService(store)

	pending, err := service.Submit(ctx, 1, "a@b.c", &dto.SubmitArticleRequest{Title: "pending", Content: "x"})
	require.NoError(t, err)

	first, err := service.CreateApproved(ctx, &dto.CreateBlogRequest{Title: "first", Content: "x", Author: "a"})
	require.NoError(t, err)
	second, err := service.CreateApproved(ctx, &dto.CreateBlogRequest{Title: "second", Content: "x", Author: "a"})
	require.NoError(t, err)

	// legacy record written before moderation existed: no status field
	require.NoError(t, store.Set(ctx, models.BlogKey("legacy"), map[string]interface{}{
		"id": "legacy", "title": "old post", "createdAt": "2020-01-01T00:00:00Z",
	}))

	public, err := service.ListPublic(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(public))
	for _, post := range public {
		ids = append(ids, post.ID)
	}
	assert.NotContains(t, ids, pending.ID)
	assert.Contains(t, ids, "legacy")
	require.Len(t, public, 3)
	// newest first; the legacy record's 2020 timestamp puts it last
	assert.Equal(t, []string{second.ID, first.ID, "legacy"}, ids[:3])

	all, err := service.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestApproveAndRejectRestamp(t *testing.T) {
	ctx := context.Background()
	service := newBlogService(newFakeRecordStore())

	post, err := service.Submit(ctx, 1, "a@b.c", &dto.SubmitArticleRequest{Title: "t", Content: "c"})
	require.NoError(t, err)

	approved, err := service.Approve(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BlogStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedAt)

	// approving again is allowed and just re-stamps
	again, err := service.Approve(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BlogStatusApproved, again.Status)

	rejected, err := service.Reject(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BlogStatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectedAt)

	public, err := service.ListPublic(ctx)
	require.NoError(t, err)
	assert.Empty(t, public)
}

func TestUpdatePreservesStatus(t *testing.T) {
	ctx := context.Background()
	service := newBlogService(newFakeRecordStore())

	post, err := service.Submit(ctx, 1, "a@b.c", &dto.SubmitArticleRequest{Title: "t", Content: "c"})
	require.NoError(t, err)

	title := "new title"
	updated, err := service.Update(ctx, post.ID, &dto.UpdateBlogRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, models.BlogStatusPending, updated.Status)
}

func TestBlogNotFound(t *testing.T) {
	ctx := context.Background()
	service := newBlogService(newFakeRecordStore())

	_, err := service.Approve(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrBlogNotFound)

	err = service.Delete(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrBlogNotFound)
}

func TestDeleteBlog(t *testing.T) {
	ctx := context.Background()
	service := newBlogService(newFakeRecordStore())

	post, err := service.CreateApproved(ctx, &dto.CreateBlogRequest{Title: "t", Content: "c", Author: "a"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, post.ID))

	all, err := service.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
