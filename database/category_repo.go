package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// FindAll returns all categories ordered by name.
func (r *CategoryRepo) FindAll(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

// FindByKey returns the category with the given database key, or nil.
func (r *CategoryRepo) FindByKey(ctx context.Context, key uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("id = ?", key).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// FindBySlug returns the category with the given slug, or nil.
func (r *CategoryRepo) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Add inserts the category unless one with the same slug or name already
// exists. The existence check and the insert run in one transaction so two
// concurrent creates cannot both pass the check. Returns errs.ErrAlreadyExists
// on a duplicate.
func (r *CategoryRepo) Add(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).
			Where("slug = ? OR name = ?", category.Slug, category.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errs.ErrAlreadyExists
		}
		return tx.Create(category).Error
	})
}

// Delete removes a category by its database key and reports how many rows went away.
func (r *CategoryRepo) Delete(ctx context.Context, key uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", key)
	return result.RowsAffected, result.Error
}
