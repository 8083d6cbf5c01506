package implementation

import (
	"context"
	"errors"

	"lecture-notes-be/internal/entity"
	"lecture-notes-be/internal/mapper"
	"lecture-notes-be/internal/model"
	"lecture-notes-be/internal/repository/contract"
	"lecture-notes-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TestMapper
}

func NewTestRepository(db *gorm.DB) contract.TestRepository {
	return &TestRepositoryImpl{
		db:     db,
		mapper: mapper.NewTestMapper(),
	}
}

func (r *TestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TestRepositoryImpl) Create(ctx context.Context, test *entity.Test) error {
	m := r.mapper.ToModel(test)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*test = *r.mapper.ToEntity(m)
	return nil
}

func (r *TestRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Test{}, id).Error
}

func (r *TestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Test, error) {
	var m model.Test
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Test, error) {
	var models []*model.Test
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TestRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Test{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
