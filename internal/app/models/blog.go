package models

import "time"

// BlogStatus is the moderation state of a blog post
type BlogStatus string

const (
	BlogStatusPending  BlogStatus = "pending"
	BlogStatusApproved BlogStatus = "approved"
	BlogStatusRejected BlogStatus = "rejected"
)

// BlogPost is a blog article stored in the record store.
// Member submissions start pending; admin-authored posts are approved on
// creation. Older records written before moderation existed carry no
// status and read as approved.
type BlogPost struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	Author      string     `json:"author"`
	AuthorID    int64      `json:"authorId,omitempty"`
	AuthorEmail string     `json:"authorEmail,omitempty"`
	Tags        []string   `json:"tags"`
	Image       string     `json:"image"`
	ReadTime    string     `json:"readTime"`
	Status      BlogStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`
	RejectedAt  *time.Time `json:"rejectedAt,omitempty"`
}

// EffectiveStatus resolves the stored status, defaulting legacy records to approved
func (b *BlogPost) EffectiveStatus() BlogStatus {
	if b.Status == "" {
		return BlogStatusApproved
	}
	return b.Status
}
