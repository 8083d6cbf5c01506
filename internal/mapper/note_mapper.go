package mapper

import (
	"encoding/json"
	"time"

	"lecture-notes-be/internal/entity"
	"lecture-notes-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	var updatedAt *time.Time
	if !n.UpdatedAt.IsZero() {
		t := n.UpdatedAt
		updatedAt = &t
	}

	return &entity.Note{
		Id:         n.Id,
		UserId:     n.UserId,
		CourseId:   n.CourseId,
		Title:      n.Title,
		PdfUrl:     n.PdfUrl,
		SourceKind: entity.SourceKind(n.SourceKind),
		Summary:    n.Summary,
		QuizRefs:   uuidsFromJSON(n.QuizRefs),
		UploadedAt: n.UploadedAt,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	var updatedAt time.Time
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}

	return &model.Note{
		Id:         n.Id,
		UserId:     n.UserId,
		CourseId:   n.CourseId,
		Title:      n.Title,
		PdfUrl:     n.PdfUrl,
		SourceKind: string(n.SourceKind),
		Summary:    n.Summary,
		QuizRefs:   uuidsToJSON(n.QuizRefs),
		UploadedAt: n.UploadedAt,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

// uuidsFromJSON decodes a jsonb uuid array column. Malformed rows decode to an
// empty set rather than failing the read.
func uuidsFromJSON(raw datatypes.JSON) []uuid.UUID {
	if len(raw) == 0 {
		return []uuid.UUID{}
	}
	var ids []uuid.UUID
	if err := json.Unmarshal(raw, &ids); err != nil {
		return []uuid.UUID{}
	}
	return ids
}

func uuidsToJSON(ids []uuid.UUID) datatypes.JSON {
	if ids == nil {
		ids = []uuid.UUID{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}
