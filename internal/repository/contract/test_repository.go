package contract

import (
	"context"

	"lecture-notes-be/internal/entity"
	"lecture-notes-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TestRepository interface {
	Create(ctx context.Context, test *entity.Test) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Test, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Test, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
