package dto

import (
	"time"

	"github.com/google/uuid"
)

type ShowFlashcardResponse struct {
	Id           uuid.UUID `json:"id"`
	NoteId       uuid.UUID `json:"note_id"`
	Term         string    `json:"term"`
	Definition   string    `json:"definition"`
	CorrectCount int       `json:"correct_count"`
	WrongCount   int       `json:"wrong_count"`
	CreatedAt    time.Time `json:"created_at"`
}
