package entity

import (
	"time"

	"github.com/google/uuid"
)

type Flashcard struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	NoteId       uuid.UUID
	Term         string
	Definition   string
	CorrectCount int
	WrongCount   int
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
