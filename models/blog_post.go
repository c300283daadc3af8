package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost represents a blog entry. Content is stored as HTML produced by
// the editor; the slug is derived from the title when none is supplied.
type BlogPost struct {
	ID         uuid.UUID `json:"_id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title      string    `json:"title" db:"title" gorm:"type:text;not null"`
	Slug       string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Content    string    `json:"content" db:"content" gorm:"type:text;not null"`
	Excerpt    string    `json:"excerpt" db:"excerpt" gorm:"type:text"`
	Author     string    `json:"author" db:"author" gorm:"type:text"`
	CoverImage *string   `json:"coverImage,omitempty" db:"cover_image" gorm:"type:text"`
	Tags       []string  `json:"tags,omitempty" db:"tags" gorm:"type:jsonb;serializer:json"`
	Published  bool      `json:"published" db:"published" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null"`
}

// BlogPostPatch is the whitelisted partial-update payload for a blog post.
type BlogPostPatch struct {
	Title      *string   `json:"title"`
	Slug       *string   `json:"slug"`
	Content    *string   `json:"content"`
	Excerpt    *string   `json:"excerpt"`
	Author     *string   `json:"author"`
	CoverImage *string   `json:"coverImage"`
	Tags       *[]string `json:"tags"`
	Published  *bool     `json:"published"`
}

// Apply overwrites the supplied fields on post. A new title without an
// explicit slug regenerates the slug from the title.
func (p BlogPostPatch) Apply(post *BlogPost) {
	if p.Title != nil {
		post.Title = *p.Title
		if p.Slug == nil {
			post.Slug = Slugify(*p.Title)
		}
	}
	if p.Slug != nil {
		post.Slug = *p.Slug
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.Excerpt != nil {
		post.Excerpt = *p.Excerpt
	}
	if p.Author != nil {
		post.Author = *p.Author
	}
	if p.CoverImage != nil {
		post.CoverImage = p.CoverImage
	}
	if p.Tags != nil {
		post.Tags = *p.Tags
	}
	if p.Published != nil {
		post.Published = *p.Published
	}
}
