package implementation

import (
	"context"
	"encoding/json"
	"errors"

	"lecture-notes-be/internal/entity"
	"lecture-notes-be/internal/mapper"
	"lecture-notes-be/internal/model"
	"lecture-notes-be/internal/repository/contract"
	"lecture-notes-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Note{}, id).Error
}

func (r *NoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	var m model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var models []*model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Note{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// AppendQuizRefs performs the quiz_refs union in one UPDATE statement.
// A read-append-write cycle here would lose ids when two generation batches
// target the same note concurrently, so the union happens inside Postgres:
// existing refs and the new batch are concatenated, deduplicated and written
// back atomically.
func (r *NoteRepositoryImpl) AppendQuizRefs(ctx context.Context, noteId uuid.UUID, quizIds []uuid.UUID) error {
	if len(quizIds) == 0 {
		return nil
	}

	payload, err := json.Marshal(quizIds)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Exec(`
		UPDATE notes
		SET quiz_refs = (
			SELECT COALESCE(jsonb_agg(DISTINCT ref), '[]'::jsonb)
			FROM jsonb_array_elements(COALESCE(quiz_refs, '[]'::jsonb) || ?::jsonb) AS t(ref)
		),
		updated_at = NOW()
		WHERE id = ?`,
		string(payload), noteId,
	).Error
}

func (r *NoteRepositoryImpl) RemoveQuizRef(ctx context.Context, noteId uuid.UUID, quizId uuid.UUID) error {
	// jsonb "-" removes the matching string element
	return r.db.WithContext(ctx).Exec(`
		UPDATE notes
		SET quiz_refs = COALESCE(quiz_refs, '[]'::jsonb) - ?,
		updated_at = NOW()
		WHERE id = ?`,
		quizId.String(), noteId,
	).Error
}

func (r *NoteRepositoryImpl) SetSummary(ctx context.Context, noteId uuid.UUID, summary string) error {
	return r.db.WithContext(ctx).
		Model(&model.Note{}).
		Where("id = ?", noteId).
		Update("summary", summary).Error
}
