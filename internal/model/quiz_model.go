package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Quiz struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	NoteId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Question     string         `gorm:"type:text;not null"`
	Options      datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	Answer       string         `gorm:"type:text;not null"`
	Type         string         `gorm:"type:varchar(10);not null;default:'mcq'"`
	CorrectCount int            `gorm:"not null;default:0"`
	WrongCount   int            `gorm:"not null;default:0"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
