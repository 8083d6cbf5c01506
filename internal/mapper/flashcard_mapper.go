package mapper

import (
	"time"

	"lecture-notes-be/internal/entity"
	"lecture-notes-be/internal/model"
)

type FlashcardMapper struct{}

func NewFlashcardMapper() *FlashcardMapper {
	return &FlashcardMapper{}
}

func (m *FlashcardMapper) ToEntity(f *model.Flashcard) *entity.Flashcard {
	if f == nil {
		return nil
	}

	var updatedAt *time.Time
	if !f.UpdatedAt.IsZero() {
		t := f.UpdatedAt
		updatedAt = &t
	}

	return &entity.Flashcard{
		Id:           f.Id,
		UserId:       f.UserId,
		NoteId:       f.NoteId,
		Term:         f.Term,
		Definition:   f.Definition,
		CorrectCount: f.CorrectCount,
		WrongCount:   f.WrongCount,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *FlashcardMapper) ToModel(f *entity.Flashcard) *model.Flashcard {
	if f == nil {
		return nil
	}

	var updatedAt time.Time
	if f.UpdatedAt != nil {
		updatedAt = *f.UpdatedAt
	}

	return &model.Flashcard{
		Id:           f.Id,
		UserId:       f.UserId,
		NoteId:       f.NoteId,
		Term:         f.Term,
		Definition:   f.Definition,
		CorrectCount: f.CorrectCount,
		WrongCount:   f.WrongCount,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *FlashcardMapper) ToEntities(cards []*model.Flashcard) []*entity.Flashcard {
	entities := make([]*entity.Flashcard, len(cards))
	for i, f := range cards {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
