package service

import (
	"context"

	"lecture-notes-be/internal/dto"
	"lecture-notes-be/internal/repository/specification"
	"lecture-notes-be/internal/repository/unitofwork"
	"lecture-notes-be/pkg/studygen/access"

	"github.com/google/uuid"
)

type ITestService interface {
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowTestResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ShowTestResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type testService struct {
	uowFactory unitofwork.RepositoryFactory
	guard      *access.Guard
}

func NewTestService(uowFactory unitofwork.RepositoryFactory) ITestService {
	return &testService{
		uowFactory: uowFactory,
		guard:      access.NewGuard(),
	}
}

func (s *testService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowTestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	test, err := s.guard.VerifyTest(ctx, uow, id, userId)
	if err != nil {
		return nil, err
	}

	return &dto.ShowTestResponse{
		Id:             test.Id,
		Title:          test.Title,
		Description:    test.Description,
		QuizRefs:       test.QuizRefs,
		TotalQuestions: test.TotalQuestions,
		CorrectAnswers: test.CorrectAnswers,
		StartedAt:      test.StartedAt,
		CompletedAt:    test.CompletedAt,
		CreatedAt:      test.CreatedAt,
	}, nil
}

func (s *testService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ShowTestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tests, err := uow.TestRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ShowTestResponse, 0, len(tests))
	for _, t := range tests {
		responses = append(responses, &dto.ShowTestResponse{
			Id:             t.Id,
			Title:          t.Title,
			Description:    t.Description,
			QuizRefs:       t.QuizRefs,
			TotalQuestions: t.TotalQuestions,
			CorrectAnswers: t.CorrectAnswers,
			StartedAt:      t.StartedAt,
			CompletedAt:    t.CompletedAt,
			CreatedAt:      t.CreatedAt,
		})
	}
	return responses, nil
}

func (s *testService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	test, err := s.guard.VerifyTest(ctx, uow, id, userId)
	if err != nil {
		return err
	}

	return uow.TestRepository().Delete(ctx, test.Id)
}
