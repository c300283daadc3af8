package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxResumeSize is the upload limit for resume files.
const MaxResumeSize = 5 * 1024 * 1024

// ResumeContentType is the only media type accepted for resume uploads.
const ResumeContentType = "application/pdf"

// Resume is the stored resume file. At most one record is live at a time:
// an upload deletes every prior record before inserting the new one.
type Resume struct {
	ID          uuid.UUID `json:"_id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Filename    string    `json:"filename" db:"filename" gorm:"type:text;not null"`
	ContentType string    `json:"contentType" db:"content_type" gorm:"type:text;not null"`
	Data        []byte    `json:"-" db:"data" gorm:"type:bytea;not null"`
	UploadedAt  time.Time `json:"uploadedAt" db:"uploaded_at" gorm:"type:timestamp;not null"`
}
