package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-site-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns projects ordered by creation time, newest first.
// When featuredOnly is set, only featured projects are returned.
func (r *ProjectRepo) FindAll(ctx context.Context, featuredOnly bool) ([]*models.Project, error) {
	q := r.db.WithContext(ctx)
	if featuredOnly {
		q = q.Where("featured = ?", true)
	}
	var projects []*models.Project
	err := q.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// FindByKey returns the project with the given database key, or nil when no
// such project exists.
func (r *ProjectRepo) FindByKey(ctx context.Context, key uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Where("id = ?", key).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindBySlug returns the project with the given human-readable slug, or nil.
func (r *ProjectRepo) FindBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Update persists the full document, overwriting every column.
func (r *ProjectRepo) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete removes a project by its database key and reports how many rows went away.
func (r *ProjectRepo) Delete(ctx context.Context, key uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", key)
	return result.RowsAffected, result.Error
}

// CountByCategory counts projects whose category field references the given
// category slug. Used to block deleting a category that is still in use.
func (r *ProjectRepo) CountByCategory(ctx context.Context, category string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).
		Where("category = ?", category).
		Count(&count).Error
	return count, err
}
