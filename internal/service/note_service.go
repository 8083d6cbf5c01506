package service

import (
	"context"
	"fmt"
	"time"

	"lecture-notes-be/internal/dto"
	"lecture-notes-be/internal/entity"
	"lecture-notes-be/internal/pkg/serverutils"
	"lecture-notes-be/internal/repository/specification"
	"lecture-notes-be/internal/repository/unitofwork"
	"lecture-notes-be/pkg/events"
	pktNats "lecture-notes-be/pkg/nats"
	"lecture-notes-be/pkg/studygen/access"

	"github.com/google/uuid"
)

type INoteService interface {
	Upload(ctx context.Context, userId uuid.UUID, req *dto.UploadNoteRequest, fileURL string, kind entity.SourceKind) (*dto.UploadNoteResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowNoteResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ListNoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type noteService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	guard          *access.Guard
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) INoteService {
	return &noteService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		guard:          access.NewGuard(),
	}
}

func (s *noteService) Upload(ctx context.Context, userId uuid.UUID, req *dto.UploadNoteRequest, fileURL string, kind entity.SourceKind) (*dto.UploadNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	courseId := uuid.Nil
	if req.CourseId != nil {
		course, err := uow.CourseRepository().FindOne(ctx,
			specification.ByID{ID: *req.CourseId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if course == nil {
			return nil, serverutils.NewValidationError("course %s not found", *req.CourseId)
		}
		courseId = course.Id
	}

	now := time.Now()
	note := &entity.Note{
		Id:         uuid.New(),
		UserId:     userId,
		CourseId:   courseId,
		Title:      req.Title,
		PdfUrl:     fileURL,
		SourceKind: kind,
		QuizRefs:   []uuid.UUID{},
		UploadedAt: now,
		CreatedAt:  now,
	}

	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "NOTE_UPLOADED",
			Data: map[string]interface{}{
				"note_id": note.Id,
				"user_id": userId,
				"title":   note.Title,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish NOTE_UPLOADED event: %v\n", err)
		}
	}

	return &dto.UploadNoteResponse{Id: note.Id, PdfUrl: note.PdfUrl}, nil
}

func (s *noteService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.guard.VerifyNote(ctx, uow, id, userId)
	if err != nil {
		return nil, err
	}

	return &dto.ShowNoteResponse{
		Id:         note.Id,
		Title:      note.Title,
		CourseId:   note.CourseId,
		PdfUrl:     note.PdfUrl,
		SourceKind: string(note.SourceKind),
		Summary:    note.Summary,
		QuizRefs:   note.QuizRefs,
		UploadedAt: note.UploadedAt,
		CreatedAt:  note.CreatedAt,
	}, nil
}

func (s *noteService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ListNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "uploaded_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ListNoteResponse, 0, len(notes))
	for _, n := range notes {
		responses = append(responses, &dto.ListNoteResponse{
			Id:         n.Id,
			Title:      n.Title,
			CourseId:   n.CourseId,
			SourceKind: string(n.SourceKind),
			QuizCount:  len(n.QuizRefs),
			UploadedAt: n.UploadedAt,
		})
	}
	return responses, nil
}

// Delete removes the note together with every quiz and flashcard derived
// from it, in one transaction.
func (s *noteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.guard.VerifyNote(ctx, uow, id, userId)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	quizzes, err := uow.QuizRepository().FindAll(ctx, specification.ByNoteID{NoteID: note.Id})
	if err != nil {
		uow.Rollback()
		return err
	}
	for _, q := range quizzes {
		if err := uow.QuizRepository().Delete(ctx, q.Id); err != nil {
			uow.Rollback()
			return err
		}
	}

	flashcards, err := uow.FlashcardRepository().FindAll(ctx, specification.ByNoteID{NoteID: note.Id})
	if err != nil {
		uow.Rollback()
		return err
	}
	for _, f := range flashcards {
		if err := uow.FlashcardRepository().Delete(ctx, f.Id); err != nil {
			uow.Rollback()
			return err
		}
	}

	if err := uow.NoteRepository().Delete(ctx, note.Id); err != nil {
		uow.Rollback()
		return err
	}

	return uow.Commit()
}
