package entity

import (
	"time"

	"github.com/google/uuid"
)

type SourceKind string

const (
	SourceKindPdf   SourceKind = "pdf"
	SourceKindImage SourceKind = "image"
)

// Note is a stored lecture document plus its derived metadata.
// QuizRefs holds every quiz ever generated from (or manually added to) this
// note that has not been explicitly deleted. It is only ever mutated through
// NoteRepository.AppendQuizRefs / RemoveQuizRef.
type Note struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	CourseId   uuid.UUID
	Title      string
	PdfUrl     string
	SourceKind SourceKind
	Summary    *string
	QuizRefs   []uuid.UUID
	UploadedAt time.Time
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
