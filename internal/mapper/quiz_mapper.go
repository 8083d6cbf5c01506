package mapper

import (
	"encoding/json"
	"time"

	"lecture-notes-be/internal/entity"
	"lecture-notes-be/internal/model"

	"gorm.io/datatypes"
)

type QuizMapper struct{}

func NewQuizMapper() *QuizMapper {
	return &QuizMapper{}
}

func (m *QuizMapper) ToEntity(q *model.Quiz) *entity.Quiz {
	if q == nil {
		return nil
	}

	var updatedAt *time.Time
	if !q.UpdatedAt.IsZero() {
		t := q.UpdatedAt
		updatedAt = &t
	}

	return &entity.Quiz{
		Id:           q.Id,
		UserId:       q.UserId,
		NoteId:       q.NoteId,
		Question:     q.Question,
		Options:      stringsFromJSON(q.Options),
		Answer:       q.Answer,
		Type:         entity.QuestionType(q.Type),
		CorrectCount: q.CorrectCount,
		WrongCount:   q.WrongCount,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *QuizMapper) ToModel(q *entity.Quiz) *model.Quiz {
	if q == nil {
		return nil
	}

	var updatedAt time.Time
	if q.UpdatedAt != nil {
		updatedAt = *q.UpdatedAt
	}

	return &model.Quiz{
		Id:           q.Id,
		UserId:       q.UserId,
		NoteId:       q.NoteId,
		Question:     q.Question,
		Options:      stringsToJSON(q.Options),
		Answer:       q.Answer,
		Type:         string(q.Type),
		CorrectCount: q.CorrectCount,
		WrongCount:   q.WrongCount,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *QuizMapper) ToEntities(quizzes []*model.Quiz) []*entity.Quiz {
	entities := make([]*entity.Quiz, len(quizzes))
	for i, q := range quizzes {
		entities[i] = m.ToEntity(q)
	}
	return entities
}

func stringsFromJSON(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return []string{}
	}
	return values
}

func stringsToJSON(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}
