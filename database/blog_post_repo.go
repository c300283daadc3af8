package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-site-backend/models"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// FindAll returns blog posts ordered by creation time, newest first.
// When publishedOnly is set, drafts are excluded.
func (r *BlogPostRepo) FindAll(ctx context.Context, publishedOnly bool) ([]*models.BlogPost, error) {
	q := r.db.WithContext(ctx)
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	var posts []*models.BlogPost
	err := q.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// FindByKey returns the blog post with the given database key, or nil.
func (r *BlogPostRepo) FindByKey(ctx context.Context, key uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.WithContext(ctx).Where("id = ?", key).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindBySlug returns the blog post with the given slug, or nil.
func (r *BlogPostRepo) FindBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new blog post into the database
func (r *BlogPostRepo) Add(ctx context.Context, post *models.BlogPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// Update persists the full document, overwriting every column.
func (r *BlogPostRepo) Update(ctx context.Context, post *models.BlogPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// Delete removes a blog post by its database key and reports how many rows went away.
func (r *BlogPostRepo) Delete(ctx context.Context, key uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.BlogPost{}, "id = ?", key)
	return result.RowsAffected, result.Error
}
