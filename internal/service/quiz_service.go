package service

import (
	"context"
	"time"

	"lecture-notes-be/internal/dto"
	"lecture-notes-be/internal/entity"
	"lecture-notes-be/internal/pkg/serverutils"
	"lecture-notes-be/internal/repository/specification"
	"lecture-notes-be/internal/repository/unitofwork"
	"lecture-notes-be/pkg/studygen/access"

	"github.com/google/uuid"
)

type IQuizService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateQuizRequest) (*dto.CreateQuizResponse, error)
	ListByNote(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) ([]*dto.ShowQuizResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type quizService struct {
	uowFactory unitofwork.RepositoryFactory
	guard      *access.Guard
}

func NewQuizService(uowFactory unitofwork.RepositoryFactory) IQuizService {
	return &quizService{
		uowFactory: uowFactory,
		guard:      access.NewGuard(),
	}
}

// Create stores a manually authored question and links it into the note's
// quiz_refs set in the same transaction.
func (s *quizService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateQuizRequest) (*dto.CreateQuizResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.guard.VerifyNote(ctx, uow, req.NoteId, userId)
	if err != nil {
		return nil, err
	}

	qType := entity.QuestionType(req.Type)
	if qType == "" {
		qType = entity.QuestionTypeMcq
	}
	if qType == entity.QuestionTypeMcq && len(req.Options) == 0 {
		return nil, serverutils.NewValidationError("mcq questions require options")
	}

	quiz := &entity.Quiz{
		Id:        uuid.New(),
		UserId:    userId,
		NoteId:    note.Id,
		Question:  req.Question,
		Options:   req.Options,
		Answer:    req.Answer,
		Type:      qType,
		CreatedAt: time.Now(),
	}
	if qType != entity.QuestionTypeMcq {
		quiz.Options = nil
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	if err := uow.QuizRepository().Create(ctx, quiz); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.NoteRepository().AppendQuizRefs(ctx, note.Id, []uuid.UUID{quiz.Id}); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CreateQuizResponse{Id: quiz.Id}, nil
}

func (s *quizService) ListByNote(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) ([]*dto.ShowQuizResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.guard.VerifyNote(ctx, uow, noteId, userId); err != nil {
		return nil, err
	}

	quizzes, err := uow.QuizRepository().FindAll(ctx,
		specification.ByNoteID{NoteID: noteId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ShowQuizResponse, 0, len(quizzes))
	for _, q := range quizzes {
		responses = append(responses, &dto.ShowQuizResponse{
			Id:           q.Id,
			NoteId:       q.NoteId,
			Question:     q.Question,
			Options:      q.Options,
			Answer:       q.Answer,
			Type:         string(q.Type),
			CorrectCount: q.CorrectCount,
			WrongCount:   q.WrongCount,
			CreatedAt:    q.CreatedAt,
		})
	}
	return responses, nil
}

// Delete removes the question and unlinks it from its note's quiz_refs set.
func (s *quizService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	quiz, err := s.guard.VerifyQuiz(ctx, uow, id, userId)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := uow.QuizRepository().Delete(ctx, quiz.Id); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.NoteRepository().RemoveQuizRef(ctx, quiz.NoteId, quiz.Id); err != nil {
		uow.Rollback()
		return err
	}
	return uow.Commit()
}
