package service

import (
	"context"

	"lecture-notes-be/internal/dto"
	"lecture-notes-be/internal/pkg/serverutils"
	"lecture-notes-be/internal/repository/specification"
	"lecture-notes-be/internal/repository/unitofwork"
	"lecture-notes-be/pkg/studygen/access"

	"github.com/google/uuid"
)

type IFlashcardService interface {
	ListByNote(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) ([]*dto.ShowFlashcardResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type flashcardService struct {
	uowFactory unitofwork.RepositoryFactory
	guard      *access.Guard
}

func NewFlashcardService(uowFactory unitofwork.RepositoryFactory) IFlashcardService {
	return &flashcardService{
		uowFactory: uowFactory,
		guard:      access.NewGuard(),
	}
}

func (s *flashcardService) ListByNote(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) ([]*dto.ShowFlashcardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.guard.VerifyNote(ctx, uow, noteId, userId); err != nil {
		return nil, err
	}

	flashcards, err := uow.FlashcardRepository().FindAll(ctx,
		specification.ByNoteID{NoteID: noteId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ShowFlashcardResponse, 0, len(flashcards))
	for _, f := range flashcards {
		responses = append(responses, &dto.ShowFlashcardResponse{
			Id:           f.Id,
			NoteId:       f.NoteId,
			Term:         f.Term,
			Definition:   f.Definition,
			CorrectCount: f.CorrectCount,
			WrongCount:   f.WrongCount,
			CreatedAt:    f.CreatedAt,
		})
	}
	return responses, nil
}

func (s *flashcardService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	flashcard, err := uow.FlashcardRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if flashcard == nil {
		return serverutils.NewNotFoundError("flashcard")
	}
	if flashcard.UserId != userId {
		return serverutils.NewForbiddenError("flashcard")
	}

	return uow.FlashcardRepository().Delete(ctx, id)
}
