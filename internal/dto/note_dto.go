package dto

import (
	"time"

	"github.com/google/uuid"
)

// UploadNoteRequest carries the multipart form fields; the file itself is
// read from the request by the controller.
type UploadNoteRequest struct {
	Title    string     `json:"title" validate:"required"`
	CourseId *uuid.UUID `json:"course_id"`
}

type UploadNoteResponse struct {
	Id     uuid.UUID `json:"id"`
	PdfUrl string    `json:"pdf_url"`
}

type ShowNoteResponse struct {
	Id         uuid.UUID   `json:"id"`
	Title      string      `json:"title"`
	CourseId   uuid.UUID   `json:"course_id"`
	PdfUrl     string      `json:"pdf_url"`
	SourceKind string      `json:"source_kind"`
	Summary    *string     `json:"summary"`
	QuizRefs   []uuid.UUID `json:"quiz_refs"`
	UploadedAt time.Time   `json:"uploaded_at"`
	CreatedAt  time.Time   `json:"created_at"`
}

type ListNoteResponse struct {
	Id         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	CourseId   uuid.UUID `json:"course_id"`
	SourceKind string    `json:"source_kind"`
	QuizCount  int       `json:"quiz_count"`
	UploadedAt time.Time `json:"uploaded_at"`
}
