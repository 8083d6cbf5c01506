// Package access enforces per-user ownership of study resources.
package access

import (
	"context"

	"lecture-notes-be/internal/entity"
	"lecture-notes-be/internal/pkg/serverutils"
	"lecture-notes-be/internal/repository/specification"
	"lecture-notes-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Guard resolves resources and checks that the requesting user owns them.
// A resource that does not exist and a resource owned by someone else are
// reported through the same error path so callers cannot probe for
// existence.
type Guard struct{}

func NewGuard() *Guard {
	return &Guard{}
}

// VerifyNote loads the note and confirms ownership.
func (g *Guard) VerifyNote(ctx context.Context, uow unitofwork.UnitOfWork, noteId, userId uuid.UUID) (*entity.Note, error) {
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.NewNotFoundError("note")
	}
	if note.UserId != userId {
		return nil, serverutils.NewForbiddenError("note")
	}
	return note, nil
}

// VerifyQuiz loads the quiz and confirms ownership.
func (g *Guard) VerifyQuiz(ctx context.Context, uow unitofwork.UnitOfWork, quizId, userId uuid.UUID) (*entity.Quiz, error) {
	quiz, err := uow.QuizRepository().FindOne(ctx, specification.ByID{ID: quizId})
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, serverutils.NewNotFoundError("quiz")
	}
	if quiz.UserId != userId {
		return nil, serverutils.NewForbiddenError("quiz")
	}
	return quiz, nil
}

// VerifyTest loads the test and confirms ownership.
func (g *Guard) VerifyTest(ctx context.Context, uow unitofwork.UnitOfWork, testId, userId uuid.UUID) (*entity.Test, error) {
	test, err := uow.TestRepository().FindOne(ctx, specification.ByID{ID: testId})
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, serverutils.NewNotFoundError("test")
	}
	if test.UserId != userId {
		return nil, serverutils.NewForbiddenError("test")
	}
	return test, nil
}
