package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-site-backend/models"
)

type ResumeRepo struct {
	db *gorm.DB
}

func NewResumeRepo(db *gorm.DB) *ResumeRepo {
	return &ResumeRepo{db}
}

// Latest returns the most recently uploaded resume, or nil when none exists.
func (r *ResumeRepo) Latest(ctx context.Context) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.WithContext(ctx).Order("uploaded_at DESC").First(&resume).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// Replace enforces the singleton: every prior record is deleted and the new
// one inserted inside a single transaction, so no reader ever observes zero
// or two resumes.
func (r *ResumeRepo) Replace(ctx context.Context, resume *models.Resume) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Resume{}).Error; err != nil {
			return err
		}
		return tx.Create(resume).Error
	})
}

// DeleteAll removes every resume record and reports how many existed.
func (r *ResumeRepo) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Resume{})
	return result.RowsAffected, result.Error
}
