package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Test struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title          string         `gorm:"type:varchar(255);not null"`
	Description    string         `gorm:"type:text"`
	QuizRefs       datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	TotalQuestions int            `gorm:"not null;default:0"`
	CorrectAnswers int            `gorm:"not null;default:0"`
	StartedAt      *time.Time
	CompletedAt    *time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Test) TableName() string {
	return "tests"
}
