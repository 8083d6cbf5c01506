package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"lecture-notes-be/internal/dto"
	"lecture-notes-be/internal/entity"
	"lecture-notes-be/internal/pkg/serverutils"
	"lecture-notes-be/pkg/llm"
	"lecture-notes-be/pkg/studygen/extract"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNote(store *fakeStore, userId uuid.UUID) *entity.Note {
	note := &entity.Note{
		Id:         uuid.New(),
		UserId:     userId,
		Title:      "Operating Systems Week 3",
		PdfUrl:     "http://localhost:3001/uploads/os-week3.pdf",
		SourceKind: entity.SourceKindPdf,
		QuizRefs:   []uuid.UUID{},
		UploadedAt: time.Now(),
		CreatedAt:  time.Now(),
	}
	store.notes[note.Id] = note
	return note
}

func newGenerationService(store *fakeStore, provider llm.Provider, opts extract.Options) IGenerationService {
	return NewGenerationService(
		&fakeFactory{store: store},
		provider,
		nopPublisher{},
		nil,
		nopLogger{},
		30*time.Second,
		opts,
	)
}

func TestGenerateFlashcards(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	note := seedNote(store, userId)

	provider := &fakeProvider{responses: []string{
		`Sure! [{"term":"Thread","definition":"A lightweight process."},{"term":"Mutex","definition":"A lock."}]`,
	}}
	svc := newGenerationService(store, provider, extract.Options{})

	res, err := svc.GenerateFlashcards(context.Background(), userId, &dto.GenerateFlashcardsRequest{NoteId: note.Id, PdfUrl: note.PdfUrl})
	require.NoError(t, err)

	assert.Equal(t, "Flashcards generated successfully", res.Message)
	assert.Equal(t, 2, res.Count)
	require.Len(t, res.Flashcards, 2)
	for _, card := range res.Flashcards {
		assert.Equal(t, note.Id, card.NoteId)
		assert.Equal(t, userId, card.OwnerId)
		assert.NotEqual(t, uuid.Nil, card.Id)
	}
	assert.Len(t, store.flashcards, 2)
}

func TestGenerateFlashcardsAllInvalidIsEmptySuccess(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	note := seedNote(store, userId)

	provider := &fakeProvider{responses: []string{`[{"term":""},{"definition":"orphan"}]`}}
	svc := newGenerationService(store, provider, extract.Options{})

	res, err := svc.GenerateFlashcards(context.Background(), userId, &dto.GenerateFlashcardsRequest{NoteId: note.Id, PdfUrl: note.PdfUrl})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)
	assert.Empty(t, res.Flashcards)
	assert.Empty(t, store.flashcards)
}

func TestGenerateFlashcardsMalformedResponse(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	note := seedNote(store, userId)

	provider := &fakeProvider{responses: []string{"I cannot read this document."}}
	svc := newGenerationService(store, provider, extract.Options{})

	_, err := svc.GenerateFlashcards(context.Background(), userId, &dto.GenerateFlashcardsRequest{NoteId: note.Id, PdfUrl: note.PdfUrl})
	var malformed *extract.MalformedResponseError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "I cannot read this document.", malformed.Raw)
	assert.Empty(t, store.flashcards)
}

func TestGenerateFlashcardsUpstreamFailure(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	note := seedNote(store, userId)

	provider := &fakeProvider{err: &llm.UpstreamError{Err: errors.New("503 from model")}}
	svc := newGenerationService(store, provider, extract.Options{})

	_, err := svc.GenerateFlashcards(context.Background(), userId, &dto.GenerateFlashcardsRequest{NoteId: note.Id, PdfUrl: note.PdfUrl})
	var upstream *llm.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Empty(t, store.flashcards)
}

func TestGenerateOwnership(t *testing.T) {
	store := newFakeStore()
	owner := uuid.New()
	stranger := uuid.New()
	note := seedNote(store, owner)

	provider := &fakeProvider{responses: []string{`[]`}}
	svc := newGenerationService(store, provider, extract.Options{})

	t.Run("foreign note is forbidden", func(t *testing.T) {
		_, err := svc.GenerateFlashcards(context.Background(), stranger, &dto.GenerateFlashcardsRequest{NoteId: note.Id})
		var forbidden *serverutils.ForbiddenError
		require.True(t, errors.As(err, &forbidden))
	})

	t.Run("missing note is not found", func(t *testing.T) {
		_, err := svc.GenerateQuizzes(context.Background(), owner, &dto.GenerateQuizzesRequest{NoteId: uuid.New()})
		var notFound *serverutils.NotFoundError
		require.True(t, errors.As(err, &notFound))
	})
}

func TestGenerateQuizzesLinksNote(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	note := seedNote(store, userId)

	provider := &fakeProvider{responses: []string{
		`[{"question":"What is a thread?","options":["A","B","C","D"],"answer":"A","type":"mcq"},{"question":"Define mutex.","answer":"a lock","type":"short"}]`,
	}}
	svc := newGenerationService(store, provider, extract.Options{})

	res, err := svc.GenerateQuizzes(context.Background(), userId, &dto.GenerateQuizzesRequest{NoteId: note.Id, PdfUrl: note.PdfUrl})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Count)
	require.Len(t, res.Quizzes, 2)
	assert.Len(t, note.QuizRefs, 2)
	for _, q := range res.Quizzes {
		assert.Contains(t, note.QuizRefs, q.Id)
	}
}

func TestGenerateQuizzesPersistenceFailure(t *testing.T) {
	store := newFakeStore()
	store.failQuizCreate = true
	userId := uuid.New()
	note := seedNote(store, userId)

	provider := &fakeProvider{responses: []string{
		`[{"question":"Q","answer":"A","type":"short"}]`,
	}}
	svc := newGenerationService(store, provider, extract.Options{})

	_, err := svc.GenerateQuizzes(context.Background(), userId, &dto.GenerateQuizzesRequest{NoteId: note.Id, PdfUrl: note.PdfUrl})
	var persist *serverutils.PersistenceError
	require.True(t, errors.As(err, &persist))
	assert.Equal(t, 0, persist.Committed)
	assert.Empty(t, note.QuizRefs)
}

func TestGenerateQuizzesConcurrentBatchesUnion(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	note := seedNote(store, userId)

	responses := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		responses = append(responses, fmt.Sprintf(
			`[{"question":"Q%d-a","answer":"A","type":"short"},{"question":"Q%d-b","answer":"B","type":"short"}]`, i, i))
	}
	provider := &fakeProvider{responses: responses}
	svc := newGenerationService(store, provider, extract.Options{})

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.GenerateQuizzes(context.Background(), userId, &dto.GenerateQuizzesRequest{NoteId: note.Id, PdfUrl: note.PdfUrl})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Both batches survive: refs are the union, never a lost update.
	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Len(t, note.QuizRefs, 4)
	assert.Len(t, store.quizzes, 4)
}

func TestGenerateTest(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	note := seedNote(store, userId)

	provider := &fakeProvider{responses: []string{
		`[{"question":"Q1","options":["A","B"],"answer":"A","type":"mcq"},{"question":"Q2","answer":"x","type":"short"},{"question":"Q3","answer":"y","type":"code"}]`,
	}}
	svc := newGenerationService(store, provider, extract.Options{})

	res, err := svc.GenerateTest(context.Background(), userId, &dto.GenerateTestRequest{NoteId: note.Id, PdfUrl: note.PdfUrl})
	require.NoError(t, err)

	assert.Equal(t, "Test generated successfully", res.Message)
	assert.Equal(t, 3, res.TotalQuestions)

	test := store.tests[res.TestId]
	require.NotNil(t, test)
	assert.Equal(t, "Operating Systems Week 3 - Auto Test", test.Title)
	assert.Equal(t, len(test.QuizRefs), test.TotalQuestions)
	assert.Equal(t, 0, test.CorrectAnswers)
	assert.Nil(t, test.StartedAt)
	assert.Nil(t, test.CompletedAt)
	assert.Len(t, note.QuizRefs, 3)
}

func TestGenerateTestZeroQuestionsRejected(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	note := seedNote(store, userId)

	zero := 0
	provider := &fakeProvider{responses: []string{`[]`}}
	svc := newGenerationService(store, provider, extract.Options{})

	_, err := svc.GenerateTest(context.Background(), userId, &dto.GenerateTestRequest{
		NoteId:   note.Id,
		NumMcq:   &zero,
		NumShort: &zero,
		NumCode:  &zero,
	})
	var validation *serverutils.ValidationError
	require.True(t, errors.As(err, &validation))
}

func TestGenerateTestRecordFailureReportsCommitted(t *testing.T) {
	store := newFakeStore()
	store.failTestCreate = true
	userId := uuid.New()
	note := seedNote(store, userId)

	provider := &fakeProvider{responses: []string{
		`[{"question":"Q1","answer":"A","type":"short"},{"question":"Q2","answer":"B","type":"short"}]`,
	}}
	svc := newGenerationService(store, provider, extract.Options{})

	_, err := svc.GenerateTest(context.Background(), userId, &dto.GenerateTestRequest{NoteId: note.Id, PdfUrl: note.PdfUrl})
	var persist *serverutils.PersistenceError
	require.True(t, errors.As(err, &persist))
	// Quiz rows were already committed before the test record failed.
	assert.Equal(t, 2, persist.Committed)
	assert.Len(t, store.quizzes, 2)
}

func TestGenerateSummary(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	note := seedNote(store, userId)

	provider := &fakeProvider{responses: []string{"  Key takeaways:\n- Threads share memory.\n"}}
	svc := newGenerationService(store, provider, extract.Options{})

	res, err := svc.GenerateSummary(context.Background(), userId, &dto.GenerateSummaryRequest{NoteId: note.Id, PdfUrl: note.PdfUrl})
	require.NoError(t, err)

	assert.Equal(t, "Summary generated successfully", res.Message)
	assert.Equal(t, "Key takeaways:\n- Threads share memory.", res.Summary)
	require.NotNil(t, note.Summary)
	assert.Equal(t, res.Summary, *note.Summary)
}

func TestGenerateSourceFieldRequired(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	note := seedNote(store, userId)

	provider := &fakeProvider{responses: []string{`[{"term":"T","definition":"D"}]`}}
	svc := newGenerationService(store, provider, extract.Options{})

	_, err := svc.GenerateFlashcards(context.Background(), userId, &dto.GenerateFlashcardsRequest{NoteId: note.Id})
	var validation *serverutils.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Empty(t, store.flashcards)
	assert.Equal(t, 0, provider.calls)
}

func TestGenerateTestRequiresPdfUrl(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	note := seedNote(store, userId)

	provider := &fakeProvider{responses: []string{`[]`}}
	svc := newGenerationService(store, provider, extract.Options{})

	_, err := svc.GenerateTest(context.Background(), userId, &dto.GenerateTestRequest{NoteId: note.Id})
	var validation *serverutils.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Empty(t, store.tests)
}

func TestGenerateImageSourceTravelsInline(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	note := seedNote(store, userId)

	provider := &fakeProvider{responses: []string{`[{"term":"T","definition":"D"}]`}}
	svc := newGenerationService(store, provider, extract.Options{})

	imageData := "iVBORw0KGgoAAAANSUhEUg=="
	_, err := svc.GenerateFlashcards(context.Background(), userId, &dto.GenerateFlashcardsRequest{
		NoteId:   note.Id,
		ImageUrl: imageData,
	})
	require.NoError(t, err)

	require.Len(t, provider.docs, 1)
	assert.Equal(t, imageData, provider.docs[0].InlineData)
	assert.Equal(t, "image/png", provider.docs[0].MimeType)
	assert.Empty(t, provider.docs[0].FileURI)
}

func TestGenerateSourceOverrideConflict(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	note := seedNote(store, userId)

	provider := &fakeProvider{responses: []string{`[]`}}
	svc := newGenerationService(store, provider, extract.Options{})

	_, err := svc.GenerateFlashcards(context.Background(), userId, &dto.GenerateFlashcardsRequest{
		NoteId:   note.Id,
		PdfUrl:   "http://example.com/a.pdf",
		ImageUrl: "http://example.com/a.png",
	})
	var validation *serverutils.ValidationError
	require.True(t, errors.As(err, &validation))
}
