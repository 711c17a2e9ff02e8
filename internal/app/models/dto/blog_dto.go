package dto

import "github.com/devkip/clubhub/internal/app/models"

// SubmitArticleRequest is a member's article submission. The article enters
// the moderation queue as pending.
type SubmitArticleRequest struct {
	Title    string   `json:"title" binding:"required"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content" binding:"required"`
	Tags     []string `json:"tags"`
	Image    string   `json:"image"`
	ReadTime string   `json:"readTime"` // computed from content when omitted
}

// CreateBlogRequest is an admin-authored post, approved on creation
type CreateBlogRequest struct {
	Title   string   `json:"title" binding:"required"`
	Excerpt string   `json:"excerpt"`
	Content string   `json:"content" binding:"required"`
	Author  string   `json:"author" binding:"required"`
	Tags    []string `json:"tags"`
	Image   string   `json:"image"`
}

// UpdateBlogRequest carries partial edits; omitted fields keep stored values
type UpdateBlogRequest struct {
	Title   *string   `json:"title"`
	Excerpt *string   `json:"excerpt"`
	Content *string   `json:"content"`
	Author  *string   `json:"author"`
	Tags    *[]string `json:"tags"`
	Image   *string   `json:"image"`
	Status  *string   `json:"status"` // absent payload status preserves the stored one
}

// BlogListResponse is a list of posts plus its length
type BlogListResponse struct {
	Blogs []models.BlogPost `json:"blogs"`
	Count int               `json:"count"`
}
