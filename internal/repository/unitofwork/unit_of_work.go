package unitofwork

import (
	"context"

	"lecture-notes-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CourseRepository() contract.CourseRepository
	NoteRepository() contract.NoteRepository
	QuizRepository() contract.QuizRepository
	FlashcardRepository() contract.FlashcardRepository
	TestRepository() contract.TestRepository
	ActivityLogRepository() contract.ActivityLogRepository
}
