package model

import (
	"time"

	"github.com/google/uuid"
)

type Flashcard struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	NoteId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Term         string    `gorm:"type:text;not null"`
	Definition   string    `gorm:"type:text;not null"`
	CorrectCount int       `gorm:"not null;default:0"`
	WrongCount   int       `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}
