package dto

import "github.com/google/uuid"

// Generation endpoints keep the camelCase wire shapes the web client was
// built against, so these DTOs deliberately diverge from the snake_case
// convention used elsewhere.

// PdfUrl / ImageUrl tell the model which document to read: a hosted PDF by
// URL, or an image as base64 data. Exactly one must be set.
type GenerateSummaryRequest struct {
	NoteId   uuid.UUID `json:"noteId" validate:"required"`
	PdfUrl   string    `json:"pdfUrl"`
	ImageUrl string    `json:"imageUrl"`
}

type GenerateSummaryResponse struct {
	Message string `json:"message"`
	Summary string `json:"summary"`
}

type GenerateFlashcardsRequest struct {
	NoteId   uuid.UUID `json:"noteId" validate:"required"`
	PdfUrl   string    `json:"pdfUrl"`
	ImageUrl string    `json:"imageUrl"`
}

type GeneratedFlashcard struct {
	Id         uuid.UUID `json:"id"`
	Term       string    `json:"term"`
	Definition string    `json:"definition"`
	NoteId     uuid.UUID `json:"noteId"`
	OwnerId    uuid.UUID `json:"ownerId"`
}

type GenerateFlashcardsResponse struct {
	Message    string               `json:"message"`
	Count      int                  `json:"count"`
	Flashcards []GeneratedFlashcard `json:"flashcards"`
}

type GenerateQuizzesRequest struct {
	NoteId   uuid.UUID `json:"noteId" validate:"required"`
	PdfUrl   string    `json:"pdfUrl"`
	ImageUrl string    `json:"imageUrl"`
}

type GeneratedQuiz struct {
	Id       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Options  []string  `json:"options"`
	Answer   string    `json:"answer"`
	Type     string    `json:"type"`
	NoteId   uuid.UUID `json:"noteId"`
	OwnerId  uuid.UUID `json:"ownerId"`
}

type GenerateQuizzesResponse struct {
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Quizzes []GeneratedQuiz `json:"quizzes"`
}

// GenerateTestRequest question counts are pointers so the handler can tell
// "absent" (apply default) apart from an explicit zero. Tests read PDFs
// only, so there is no imageUrl field here.
type GenerateTestRequest struct {
	NoteId   uuid.UUID `json:"noteId" validate:"required"`
	PdfUrl   string    `json:"pdfUrl"`
	NumMcq   *int      `json:"numMcq" validate:"omitempty,min=0"`
	NumShort *int      `json:"numShort" validate:"omitempty,min=0"`
	NumCode  *int      `json:"numCode" validate:"omitempty,min=0"`
}

type GenerateTestResponse struct {
	Message        string    `json:"message"`
	TestId         uuid.UUID `json:"testId"`
	TotalQuestions int       `json:"totalQuestions"`
}
