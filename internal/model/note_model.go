package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Note struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	CourseId   uuid.UUID      `gorm:"type:uuid;index"`
	Title      string         `gorm:"type:varchar(255);not null"`
	PdfUrl     string         `gorm:"type:text;not null"`
	SourceKind string         `gorm:"type:varchar(10);not null;default:'pdf'"`
	Summary    *string        `gorm:"type:text"`
	QuizRefs   datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	UploadedAt time.Time      `gorm:"not null"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
}

func (Note) TableName() string {
	return "notes"
}
