package entity

import (
	"time"

	"github.com/google/uuid"
)

// Test aggregates a completed set of generated quizzes into one gradeable
// record. TotalQuestions equals len(QuizRefs) at creation time and is never
// updated afterwards.
type Test struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Title          string
	Description    string
	QuizRefs       []uuid.UUID
	TotalQuestions int
	CorrectAnswers int
	StartedAt      *time.Time
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
