package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"lecture-notes-be/internal/dto"
	"lecture-notes-be/internal/entity"
	"lecture-notes-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizCreateLinksNote(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	note := seedNote(store, userId)
	svc := NewQuizService(&fakeFactory{store: store})

	res, err := svc.Create(context.Background(), userId, &dto.CreateQuizRequest{
		NoteId:   note.Id,
		Question: "What is a semaphore?",
		Options:  []string{"A", "B", "C"},
		Answer:   "A",
		Type:     "mcq",
	})
	require.NoError(t, err)

	assert.Contains(t, note.QuizRefs, res.Id)
	require.NotNil(t, store.quizzes[res.Id])
	assert.Equal(t, entity.QuestionTypeMcq, store.quizzes[res.Id].Type)
}

func TestQuizCreateMcqRequiresOptions(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	note := seedNote(store, userId)
	svc := NewQuizService(&fakeFactory{store: store})

	_, err := svc.Create(context.Background(), userId, &dto.CreateQuizRequest{
		NoteId:   note.Id,
		Question: "Q",
		Answer:   "A",
	})
	var validation *serverutils.ValidationError
	require.True(t, errors.As(err, &validation))
}

func TestQuizDeleteRemovesRef(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	note := seedNote(store, userId)
	svc := NewQuizService(&fakeFactory{store: store})

	quiz := &entity.Quiz{
		Id:        uuid.New(),
		UserId:    userId,
		NoteId:    note.Id,
		Question:  "Q",
		Answer:    "A",
		Type:      entity.QuestionTypeShort,
		CreatedAt: time.Now(),
	}
	store.quizzes[quiz.Id] = quiz
	note.QuizRefs = append(note.QuizRefs, quiz.Id)

	require.NoError(t, svc.Delete(context.Background(), userId, quiz.Id))
	assert.NotContains(t, note.QuizRefs, quiz.Id)
	assert.Nil(t, store.quizzes[quiz.Id])
}

func TestQuizDeleteForeignQuizForbidden(t *testing.T) {
	store := newFakeStore()
	owner := uuid.New()
	note := seedNote(store, owner)
	svc := NewQuizService(&fakeFactory{store: store})

	quiz := &entity.Quiz{
		Id:     uuid.New(),
		UserId: owner,
		NoteId: note.Id,
		Type:   entity.QuestionTypeShort,
	}
	store.quizzes[quiz.Id] = quiz

	err := svc.Delete(context.Background(), uuid.New(), quiz.Id)
	var forbidden *serverutils.ForbiddenError
	require.True(t, errors.As(err, &forbidden))
	require.NotNil(t, store.quizzes[quiz.Id])
}

func TestQuizListRequiresNoteOwnership(t *testing.T) {
	store := newFakeStore()
	owner := uuid.New()
	note := seedNote(store, owner)
	svc := NewQuizService(&fakeFactory{store: store})

	_, err := svc.ListByNote(context.Background(), uuid.New(), note.Id)
	var forbidden *serverutils.ForbiddenError
	require.True(t, errors.As(err, &forbidden))
}
