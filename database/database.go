package database

import (
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-site-backend/models"
)

type Database struct {
	projectRepo  *ProjectRepo
	blogPostRepo *BlogPostRepo
	categoryRepo *CategoryRepo
	resumeRepo   *ResumeRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:  NewProjectRepo(db),
		blogPostRepo: NewBlogPostRepo(db),
		categoryRepo: NewCategoryRepo(db),
		resumeRepo:   NewResumeRepo(db),
	}
}

// Migrate creates or updates the schema for every stored entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.BlogPost{},
		&models.Category{},
		&models.Resume{},
	)
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) ResumeRepo() *ResumeRepo {
	return d.resumeRepo
}
