package service

import (
	"context"

	"lecture-notes-be/internal/dto"
	"lecture-notes-be/internal/pkg/serverutils"
	"lecture-notes-be/internal/repository/specification"
	"lecture-notes-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	Show(ctx context.Context, userId uuid.UUID) (*dto.ShowUserResponse, error)
	ListActivity(ctx context.Context, userId uuid.UUID) ([]*dto.ShowActivityLogResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{uowFactory: uowFactory}
}

func (s *userService) Show(ctx context.Context, userId uuid.UUID) (*dto.ShowUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewNotFoundError("user")
	}

	return &dto.ShowUserResponse{
		Id:        user.Id,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *userService) ListActivity(ctx context.Context, userId uuid.UUID) ([]*dto.ShowActivityLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	logs, err := uow.ActivityLogRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ShowActivityLogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, &dto.ShowActivityLogResponse{
			Id:        l.Id,
			EventType: l.EventType,
			Detail:    l.Detail,
			CreatedAt: l.CreatedAt,
		})
	}
	return responses, nil
}
