package mapper

import (
	"time"

	"lecture-notes-be/internal/entity"
	"lecture-notes-be/internal/model"
)

type TestMapper struct{}

func NewTestMapper() *TestMapper {
	return &TestMapper{}
}

func (m *TestMapper) ToEntity(t *model.Test) *entity.Test {
	if t == nil {
		return nil
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		u := t.UpdatedAt
		updatedAt = &u
	}

	return &entity.Test{
		Id:             t.Id,
		UserId:         t.UserId,
		Title:          t.Title,
		Description:    t.Description,
		QuizRefs:       uuidsFromJSON(t.QuizRefs),
		TotalQuestions: t.TotalQuestions,
		CorrectAnswers: t.CorrectAnswers,
		StartedAt:      t.StartedAt,
		CompletedAt:    t.CompletedAt,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *TestMapper) ToModel(t *entity.Test) *model.Test {
	if t == nil {
		return nil
	}

	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}

	return &model.Test{
		Id:             t.Id,
		UserId:         t.UserId,
		Title:          t.Title,
		Description:    t.Description,
		QuizRefs:       uuidsToJSON(t.QuizRefs),
		TotalQuestions: t.TotalQuestions,
		CorrectAnswers: t.CorrectAnswers,
		StartedAt:      t.StartedAt,
		CompletedAt:    t.CompletedAt,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *TestMapper) ToEntities(tests []*model.Test) []*entity.Test {
	entities := make([]*entity.Test, len(tests))
	for i, t := range tests {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
