package contract

import (
	"context"

	"lecture-notes-be/internal/entity"
	"lecture-notes-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// AppendQuizRefs adds the given quiz ids to the note's quiz_refs set as a
	// single additive jsonb union statement. It never overwrites the set, so
	// concurrent batches against the same note commit the union of both.
	AppendQuizRefs(ctx context.Context, noteId uuid.UUID, quizIds []uuid.UUID) error

	// RemoveQuizRef removes one quiz id from the note's quiz_refs set.
	RemoveQuizRef(ctx context.Context, noteId uuid.UUID, quizId uuid.UUID) error

	// SetSummary overwrites the note's summary text.
	SetSummary(ctx context.Context, noteId uuid.UUID, summary string) error
}
