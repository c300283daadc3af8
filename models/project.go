package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a portfolio project. The database key serializes as
// `_id` and the human-readable slug as `id`, matching the public wire format.
type Project struct {
	ID              uuid.UUID `json:"_id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Slug            string    `json:"id" db:"slug" gorm:"column:slug;type:text;not null;uniqueIndex"`
	Title           string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description     string    `json:"description" db:"description" gorm:"type:text;not null"`
	LongDescription *string   `json:"longDescription,omitempty" db:"long_description" gorm:"type:text"`
	Image           string    `json:"image" db:"image" gorm:"type:text"`
	Technologies    []string  `json:"technologies" db:"technologies" gorm:"type:jsonb;serializer:json"`
	Category        string    `json:"category" db:"category" gorm:"type:text;index"`
	Featured        bool      `json:"featured" db:"featured" gorm:"not null;default:false"`
	Github          *string   `json:"github,omitempty" db:"github" gorm:"type:text"`
	Demo            *string   `json:"demo,omitempty" db:"demo" gorm:"type:text"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null"`
}

// ProjectPatch is the whitelisted partial-update payload for a project.
// Only fields present in the request body are applied; anything else in the
// payload never reaches the stored document.
type ProjectPatch struct {
	Slug            *string   `json:"id"`
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	LongDescription *string   `json:"longDescription"`
	Image           *string   `json:"image"`
	Technologies    *[]string `json:"technologies"`
	Category        *string   `json:"category"`
	Featured        *bool     `json:"featured"`
	Github          *string   `json:"github"`
	Demo            *string   `json:"demo"`
}

// Apply overwrites the supplied fields on project. A new title without an
// explicit slug regenerates the slug from the title.
func (p ProjectPatch) Apply(project *Project) {
	if p.Title != nil {
		project.Title = *p.Title
		if p.Slug == nil {
			project.Slug = Slugify(*p.Title)
		}
	}
	if p.Slug != nil {
		project.Slug = *p.Slug
	}
	if p.Description != nil {
		project.Description = *p.Description
	}
	if p.LongDescription != nil {
		project.LongDescription = p.LongDescription
	}
	if p.Image != nil {
		project.Image = *p.Image
	}
	if p.Technologies != nil {
		project.Technologies = *p.Technologies
	}
	if p.Category != nil {
		project.Category = *p.Category
	}
	if p.Featured != nil {
		project.Featured = *p.Featured
	}
	if p.Github != nil {
		project.Github = p.Github
	}
	if p.Demo != nil {
		project.Demo = p.Demo
	}
}
