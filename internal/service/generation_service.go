package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"lecture-notes-be/internal/dto"
	"lecture-notes-be/internal/entity"
	"lecture-notes-be/internal/pkg/logger"
	"lecture-notes-be/internal/pkg/serverutils"
	"lecture-notes-be/internal/repository/unitofwork"
	"lecture-notes-be/pkg/events"
	"lecture-notes-be/pkg/llm"
	pktNats "lecture-notes-be/pkg/nats"
	"lecture-notes-be/pkg/studygen/access"
	"lecture-notes-be/pkg/studygen/extract"
	"lecture-notes-be/pkg/studygen/prompt"

	"github.com/google/uuid"
)

const (
	defaultNumMcq   = 5
	defaultNumShort = 2
	defaultNumCode  = 1
)

// IGenerationService runs the study-artifact pipeline: verify note
// ownership, call the model over the lecture document, validate the output
// and persist the batch atomically.
type IGenerationService interface {
	GenerateSummary(ctx context.Context, userId uuid.UUID, req *dto.GenerateSummaryRequest) (*dto.GenerateSummaryResponse, error)
	GenerateFlashcards(ctx context.Context, userId uuid.UUID, req *dto.GenerateFlashcardsRequest) (*dto.GenerateFlashcardsResponse, error)
	GenerateQuizzes(ctx context.Context, userId uuid.UUID, req *dto.GenerateQuizzesRequest) (*dto.GenerateQuizzesResponse, error)
	GenerateTest(ctx context.Context, userId uuid.UUID, req *dto.GenerateTestRequest) (*dto.GenerateTestResponse, error)
}

type generationService struct {
	uowFactory       unitofwork.RepositoryFactory
	provider         llm.Provider
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	log              logger.ILogger
	guard            *access.Guard
	modelTimeout     time.Duration
	extractOpts      extract.Options
}

func NewGenerationService(
	uowFactory unitofwork.RepositoryFactory,
	provider llm.Provider,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
	modelTimeout time.Duration,
	extractOpts extract.Options,
) IGenerationService {
	return &generationService{
		uowFactory:       uowFactory,
		provider:         provider,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		log:              log,
		guard:            access.NewGuard(),
		modelTimeout:     modelTimeout,
		extractOpts:      extractOpts,
	}
}

// documentFor resolves the document the model should read. Exactly one of
// the two source fields must be set: a PDF travels as a hosted file
// reference, an image travels as inline base64 data.
func documentFor(pdfUrl, imageUrl string) (llm.Document, error) {
	if pdfUrl != "" && imageUrl != "" {
		return llm.Document{}, serverutils.NewValidationError("provide either pdfUrl or imageUrl, not both")
	}
	if pdfUrl == "" && imageUrl == "" {
		return llm.Document{}, serverutils.NewValidationError("either pdfUrl or imageUrl is required")
	}
	if pdfUrl != "" {
		return llm.Document{FileURI: pdfUrl, MimeType: "application/pdf"}, nil
	}
	return llm.Document{InlineData: imageUrl, MimeType: "image/png"}, nil
}

// generate runs a single model call with the configured timeout. There is no
// retry: a second model call costs real money and the client can resubmit.
func (s *generationService) generate(ctx context.Context, payload prompt.Payload) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.modelTimeout)
	defer cancel()

	return s.provider.GenerateWithDocument(ctx, payload.Instructions, llm.Document{
		FileURI:    payload.Source.URI,
		InlineData: payload.Source.InlineData,
		MimeType:   payload.Source.MimeType,
	})
}

func (s *generationService) logDropped(kind string, noteId uuid.UUID, dropped []extract.Dropped) {
	for _, d := range dropped {
		s.log.Warn("GenerationService", "dropped invalid model output element", map[string]interface{}{
			"kind":    kind,
			"note_id": noteId.String(),
			"index":   d.Index,
			"reason":  d.Reason,
		})
	}
}

func (s *generationService) publishGenerated(ctx context.Context, userId, noteId uuid.UUID, kind string, count int) {
	payload, err := json.Marshal(dto.ArtifactsGeneratedEvent{
		UserId:       userId,
		NoteId:       noteId,
		ArtifactKind: kind,
		Count:        count,
	})
	if err == nil {
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			s.log.Warn("GenerationService", "failed to publish internal event", map[string]interface{}{
				"kind": kind, "error": err.Error(),
			})
		}
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "STUDY_ARTIFACTS_GENERATED",
			Data: map[string]interface{}{
				"user_id": userId,
				"note_id": noteId,
				"kind":    kind,
				"count":   count,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("GenerationService", "failed to publish NATS event", map[string]interface{}{
				"kind": kind, "error": err.Error(),
			})
		}
	}
}

func (s *generationService) GenerateSummary(ctx context.Context, userId uuid.UUID, req *dto.GenerateSummaryRequest) (*dto.GenerateSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.guard.VerifyNote(ctx, uow, req.NoteId, userId)
	if err != nil {
		return nil, err
	}

	doc, err := documentFor(req.PdfUrl, req.ImageUrl)
	if err != nil {
		return nil, err
	}
	payload := prompt.Build(prompt.KindSummary, prompt.SourceRef{URI: doc.FileURI, InlineData: doc.InlineData, MimeType: doc.MimeType}, prompt.Params{})

	summary, err := s.generate(ctx, payload)
	if err != nil {
		return nil, err
	}
	summary = strings.TrimSpace(summary)

	if err := uow.NoteRepository().SetSummary(ctx, note.Id, summary); err != nil {
		return nil, &serverutils.PersistenceError{Committed: 0, Err: err}
	}

	s.publishGenerated(ctx, userId, note.Id, "summary", 1)

	return &dto.GenerateSummaryResponse{
		Message: "Summary generated successfully",
		Summary: summary,
	}, nil
}

func (s *generationService) GenerateFlashcards(ctx context.Context, userId uuid.UUID, req *dto.GenerateFlashcardsRequest) (*dto.GenerateFlashcardsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.guard.VerifyNote(ctx, uow, req.NoteId, userId)
	if err != nil {
		return nil, err
	}

	doc, err := documentFor(req.PdfUrl, req.ImageUrl)
	if err != nil {
		return nil, err
	}
	payload := prompt.Build(prompt.KindFlashcards, prompt.SourceRef{URI: doc.FileURI, InlineData: doc.InlineData, MimeType: doc.MimeType}, prompt.Params{})

	raw, err := s.generate(ctx, payload)
	if err != nil {
		return nil, err
	}

	cards, dropped, err := extract.Flashcards(raw, s.extractOpts)
	if err != nil {
		return nil, err
	}
	s.logDropped("flashcards", note.Id, dropped)

	saved := make([]dto.GeneratedFlashcard, 0, len(cards))
	if len(cards) > 0 {
		if err := uow.Begin(ctx); err != nil {
			return nil, err
		}
		now := time.Now()
		for _, card := range cards {
			flashcard := &entity.Flashcard{
				Id:         uuid.New(),
				UserId:     userId,
				NoteId:     note.Id,
				Term:       card.Term,
				Definition: card.Definition,
				CreatedAt:  now,
			}
			if err := uow.FlashcardRepository().Create(ctx, flashcard); err != nil {
				uow.Rollback()
				return nil, &serverutils.PersistenceError{Committed: 0, Err: err}
			}
			saved = append(saved, dto.GeneratedFlashcard{
				Id:         flashcard.Id,
				Term:       flashcard.Term,
				Definition: flashcard.Definition,
				NoteId:     note.Id,
				OwnerId:    userId,
			})
		}
		if err := uow.Commit(); err != nil {
			return nil, &serverutils.PersistenceError{Committed: 0, Err: err}
		}

		s.publishGenerated(ctx, userId, note.Id, "flashcards", len(saved))
	}

	return &dto.GenerateFlashcardsResponse{
		Message:    "Flashcards generated successfully",
		Count:      len(saved),
		Flashcards: saved,
	}, nil
}

func (s *generationService) GenerateQuizzes(ctx context.Context, userId uuid.UUID, req *dto.GenerateQuizzesRequest) (*dto.GenerateQuizzesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.guard.VerifyNote(ctx, uow, req.NoteId, userId)
	if err != nil {
		return nil, err
	}

	doc, err := documentFor(req.PdfUrl, req.ImageUrl)
	if err != nil {
		return nil, err
	}
	payload := prompt.Build(prompt.KindQuiz, prompt.SourceRef{URI: doc.FileURI, InlineData: doc.InlineData, MimeType: doc.MimeType}, prompt.Params{})

	raw, err := s.generate(ctx, payload)
	if err != nil {
		return nil, err
	}

	questions, dropped, err := extract.Questions(raw, s.extractOpts)
	if err != nil {
		return nil, err
	}
	s.logDropped("quizzes", note.Id, dropped)

	saved, err := s.persistQuestions(ctx, uow, userId, note, questions)
	if err != nil {
		return nil, err
	}

	if len(saved) > 0 {
		s.publishGenerated(ctx, userId, note.Id, "quizzes", len(saved))
	}

	return &dto.GenerateQuizzesResponse{
		Message: "Quizzes generated successfully",
		Count:   len(saved),
		Quizzes: saved,
	}, nil
}

// persistQuestions creates the quiz rows and links them into the note's
// quiz_refs set within one transaction. The link is an additive set union,
// so concurrent batches against the same note both survive.
func (s *generationService) persistQuestions(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, note *entity.Note, questions []extract.Question) ([]dto.GeneratedQuiz, error) {
	if len(questions) == 0 {
		return nil, nil
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	now := time.Now()
	saved := make([]dto.GeneratedQuiz, 0, len(questions))
	quizIds := make([]uuid.UUID, 0, len(questions))
	for _, q := range questions {
		quiz := &entity.Quiz{
			Id:        uuid.New(),
			UserId:    userId,
			NoteId:    note.Id,
			Question:  q.Question,
			Options:   q.Options,
			Answer:    q.Answer,
			Type:      entity.QuestionType(q.Type),
			CreatedAt: now,
		}
		if err := uow.QuizRepository().Create(ctx, quiz); err != nil {
			uow.Rollback()
			return nil, &serverutils.PersistenceError{Committed: 0, Err: err}
		}
		quizIds = append(quizIds, quiz.Id)
		saved = append(saved, dto.GeneratedQuiz{
			Id:       quiz.Id,
			Question: quiz.Question,
			Options:  quiz.Options,
			Answer:   quiz.Answer,
			Type:     string(quiz.Type),
			NoteId:   note.Id,
			OwnerId:  userId,
		})
	}

	if err := uow.NoteRepository().AppendQuizRefs(ctx, note.Id, quizIds); err != nil {
		uow.Rollback()
		return nil, &serverutils.PersistenceError{Committed: 0, Err: err}
	}

	if err := uow.Commit(); err != nil {
		return nil, &serverutils.PersistenceError{Committed: 0, Err: err}
	}
	return saved, nil
}

func (s *generationService) GenerateTest(ctx context.Context, userId uuid.UUID, req *dto.GenerateTestRequest) (*dto.GenerateTestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.guard.VerifyNote(ctx, uow, req.NoteId, userId)
	if err != nil {
		return nil, err
	}

	numMcq := defaultNumMcq
	if req.NumMcq != nil {
		numMcq = *req.NumMcq
	}
	numShort := defaultNumShort
	if req.NumShort != nil {
		numShort = *req.NumShort
	}
	numCode := defaultNumCode
	if req.NumCode != nil {
		numCode = *req.NumCode
	}
	if numMcq+numShort+numCode == 0 {
		return nil, serverutils.NewValidationError("at least one question must be requested")
	}

	// Tests are generated from PDFs only; there is no image variant.
	if req.PdfUrl == "" {
		return nil, serverutils.NewValidationError("pdfUrl is required")
	}
	doc := llm.Document{FileURI: req.PdfUrl, MimeType: "application/pdf"}
	payload := prompt.Build(prompt.KindTest, prompt.SourceRef{URI: doc.FileURI, MimeType: doc.MimeType}, prompt.Params{
		NumMcq:   numMcq,
		NumShort: numShort,
		NumCode:  numCode,
	})

	raw, err := s.generate(ctx, payload)
	if err != nil {
		return nil, err
	}

	questions, dropped, err := extract.Questions(raw, s.extractOpts)
	if err != nil {
		return nil, err
	}
	s.logDropped("test", note.Id, dropped)

	saved, err := s.persistQuestions(ctx, uow, userId, note, questions)
	if err != nil {
		return nil, err
	}

	quizIds := make([]uuid.UUID, 0, len(saved))
	for _, q := range saved {
		quizIds = append(quizIds, q.Id)
	}

	test := &entity.Test{
		Id:             uuid.New(),
		UserId:         userId,
		Title:          fmt.Sprintf("%s - Auto Test", note.Title),
		Description:    fmt.Sprintf("Auto-generated test from note: %s", note.Title),
		QuizRefs:       quizIds,
		TotalQuestions: len(quizIds),
		CorrectAnswers: 0,
		CreatedAt:      time.Now(),
	}
	if err := uow.TestRepository().Create(ctx, test); err != nil {
		// The quiz batch is already committed at this point.
		return nil, &serverutils.PersistenceError{Committed: len(quizIds), Err: err}
	}

	s.publishGenerated(ctx, userId, note.Id, "test", len(quizIds))

	return &dto.GenerateTestResponse{
		Message:        "Test generated successfully",
		TestId:         test.Id,
		TotalQuestions: test.TotalQuestions,
	}, nil
}
