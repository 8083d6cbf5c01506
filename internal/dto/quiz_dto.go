package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateQuizRequest struct {
	NoteId   uuid.UUID `json:"note_id" validate:"required"`
	Question string    `json:"question" validate:"required"`
	Options  []string  `json:"options"`
	Answer   string    `json:"answer" validate:"required"`
	Type     string    `json:"type" validate:"omitempty,oneof=mcq short code"`
}

type CreateQuizResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowQuizResponse struct {
	Id           uuid.UUID `json:"id"`
	NoteId       uuid.UUID `json:"note_id"`
	Question     string    `json:"question"`
	Options      []string  `json:"options"`
	Answer       string    `json:"answer"`
	Type         string    `json:"type"`
	CorrectCount int       `json:"correct_count"`
	WrongCount   int       `json:"wrong_count"`
	CreatedAt    time.Time `json:"created_at"`
}
