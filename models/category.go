package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups projects. The slug (`id` on the wire) doubles as the value
// projects store in their category field; there is no foreign key constraint,
// the delete path checks for referencing projects instead.
type Category struct {
	ID        uuid.UUID `json:"_id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Slug      string    `json:"id" db:"slug" gorm:"column:slug;type:text;not null;uniqueIndex"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null"`
}
