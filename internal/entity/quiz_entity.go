package entity

import (
	"time"

	"github.com/google/uuid"
)

type QuestionType string

const (
	QuestionTypeMcq   QuestionType = "mcq"
	QuestionTypeShort QuestionType = "short"
	QuestionTypeCode  QuestionType = "code"
)

// Quiz is a single generated (or manually authored) quiz question.
// Immutable except for the answer-tracking counters.
type Quiz struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	NoteId       uuid.UUID
	Question     string
	Options      []string
	Answer       string
	Type         QuestionType
	CorrectCount int
	WrongCount   int
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
