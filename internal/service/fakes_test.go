package service

import (
	"context"
	"errors"
	"sync"

	"lecture-notes-be/internal/entity"
	"lecture-notes-be/internal/repository/contract"
	"lecture-notes-be/internal/repository/specification"
	"lecture-notes-be/internal/repository/unitofwork"
	"lecture-notes-be/pkg/llm"

	"github.com/google/uuid"
)

// fakeStore is shared in-memory state behind the fake repositories. It mimics
// the additive quiz_refs union the real Postgres statement performs.
type fakeStore struct {
	mu         sync.Mutex
	users      map[uuid.UUID]*entity.User
	notes      map[uuid.UUID]*entity.Note
	quizzes    map[uuid.UUID]*entity.Quiz
	flashcards map[uuid.UUID]*entity.Flashcard
	tests      map[uuid.UUID]*entity.Test
	courses    map[uuid.UUID]*entity.Course
	activity   []*entity.ActivityLog

	failQuizCreate      bool
	failFlashcardCreate bool
	failTestCreate      bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:      make(map[uuid.UUID]*entity.User),
		notes:      make(map[uuid.UUID]*entity.Note),
		quizzes:    make(map[uuid.UUID]*entity.Quiz),
		flashcards: make(map[uuid.UUID]*entity.Flashcard),
		tests:      make(map[uuid.UUID]*entity.Test),
		courses:    make(map[uuid.UUID]*entity.Course),
	}
}

func idFromSpecs(specs []specification.Specification) (uuid.UUID, bool) {
	for _, s := range specs {
		if byID, ok := s.(specification.ByID); ok {
			return byID.ID, true
		}
	}
	return uuid.Nil, false
}

func noteIDFromSpecs(specs []specification.Specification) (uuid.UUID, bool) {
	for _, s := range specs {
		if byNote, ok := s.(specification.ByNoteID); ok {
			return byNote.NoteID, true
		}
	}
	return uuid.Nil, false
}

type fakeNoteRepo struct{ store *fakeStore }

func (r *fakeNoteRepo) Create(ctx context.Context, note *entity.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.notes[note.Id] = note
	return nil
}

func (r *fakeNoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.notes, id)
	return nil
}

func (r *fakeNoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if id, ok := idFromSpecs(specs); ok {
		return r.store.notes[id], nil
	}
	return nil, nil
}

func (r *fakeNoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	notes := make([]*entity.Note, 0, len(r.store.notes))
	for _, n := range r.store.notes {
		notes = append(notes, n)
	}
	return notes, nil
}

func (r *fakeNoteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.notes)), nil
}

func (r *fakeNoteRepo) AppendQuizRefs(ctx context.Context, noteId uuid.UUID, quizIds []uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	note, ok := r.store.notes[noteId]
	if !ok {
		return errors.New("note not found")
	}
	existing := make(map[uuid.UUID]bool, len(note.QuizRefs))
	for _, id := range note.QuizRefs {
		existing[id] = true
	}
	for _, id := range quizIds {
		if !existing[id] {
			note.QuizRefs = append(note.QuizRefs, id)
			existing[id] = true
		}
	}
	return nil
}

func (r *fakeNoteRepo) RemoveQuizRef(ctx context.Context, noteId uuid.UUID, quizId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	note, ok := r.store.notes[noteId]
	if !ok {
		return errors.New("note not found")
	}
	refs := note.QuizRefs[:0]
	for _, id := range note.QuizRefs {
		if id != quizId {
			refs = append(refs, id)
		}
	}
	note.QuizRefs = refs
	return nil
}

func (r *fakeNoteRepo) SetSummary(ctx context.Context, noteId uuid.UUID, summary string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	note, ok := r.store.notes[noteId]
	if !ok {
		return errors.New("note not found")
	}
	note.Summary = &summary
	return nil
}

type fakeQuizRepo struct{ store *fakeStore }

func (r *fakeQuizRepo) Create(ctx context.Context, quiz *entity.Quiz) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.failQuizCreate {
		return errors.New("quiz insert failed")
	}
	r.store.quizzes[quiz.Id] = quiz
	return nil
}

func (r *fakeQuizRepo) Update(ctx context.Context, quiz *entity.Quiz) error {
	return r.Create(ctx, quiz)
}

func (r *fakeQuizRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.quizzes, id)
	return nil
}

func (r *fakeQuizRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Quiz, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if id, ok := idFromSpecs(specs); ok {
		return r.store.quizzes[id], nil
	}
	return nil, nil
}

func (r *fakeQuizRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Quiz, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	noteId, filtered := noteIDFromSpecs(specs)
	quizzes := make([]*entity.Quiz, 0, len(r.store.quizzes))
	for _, q := range r.store.quizzes {
		if filtered && q.NoteId != noteId {
			continue
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, nil
}

func (r *fakeQuizRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.quizzes)), nil
}

type fakeFlashcardRepo struct{ store *fakeStore }

func (r *fakeFlashcardRepo) Create(ctx context.Context, card *entity.Flashcard) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.failFlashcardCreate {
		return errors.New("flashcard insert failed")
	}
	r.store.flashcards[card.Id] = card
	return nil
}

func (r *fakeFlashcardRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.flashcards, id)
	return nil
}

func (r *fakeFlashcardRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Flashcard, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if id, ok := idFromSpecs(specs); ok {
		return r.store.flashcards[id], nil
	}
	return nil, nil
}

func (r *fakeFlashcardRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Flashcard, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	noteId, filtered := noteIDFromSpecs(specs)
	cards := make([]*entity.Flashcard, 0, len(r.store.flashcards))
	for _, f := range r.store.flashcards {
		if filtered && f.NoteId != noteId {
			continue
		}
		cards = append(cards, f)
	}
	return cards, nil
}

func (r *fakeFlashcardRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.flashcards)), nil
}

type fakeTestRepo struct{ store *fakeStore }

func (r *fakeTestRepo) Create(ctx context.Context, test *entity.Test) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.failTestCreate {
		return errors.New("test insert failed")
	}
	r.store.tests[test.Id] = test
	return nil
}

func (r *fakeTestRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.tests, id)
	return nil
}

func (r *fakeTestRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Test, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if id, ok := idFromSpecs(specs); ok {
		return r.store.tests[id], nil
	}
	return nil, nil
}

func (r *fakeTestRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Test, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	tests := make([]*entity.Test, 0, len(r.store.tests))
	for _, t := range r.store.tests {
		tests = append(tests, t)
	}
	return tests, nil
}

func (r *fakeTestRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.tests)), nil
}

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users[user.Id] = user
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	return r.Create(ctx, user)
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if id, ok := idFromSpecs(specs); ok {
		return r.store.users[id], nil
	}
	for _, s := range specs {
		if byEmail, ok := s.(specification.ByEmail); ok {
			for _, u := range r.store.users {
				if u.Email == byEmail.Email {
					return u, nil
				}
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.users)), nil
}

type fakeCourseRepo struct{ store *fakeStore }

func (r *fakeCourseRepo) Create(ctx context.Context, course *entity.Course) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.courses[course.Id] = course
	return nil
}

func (r *fakeCourseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.courses, id)
	return nil
}

func (r *fakeCourseRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Course, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if id, ok := idFromSpecs(specs); ok {
		return r.store.courses[id], nil
	}
	return nil, nil
}

func (r *fakeCourseRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Course, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	courses := make([]*entity.Course, 0, len(r.store.courses))
	for _, c := range r.store.courses {
		courses = append(courses, c)
	}
	return courses, nil
}

func (r *fakeCourseRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.courses)), nil
}

type fakeActivityLogRepo struct{ store *fakeStore }

func (r *fakeActivityLogRepo) Create(ctx context.Context, log *entity.ActivityLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.activity = append(r.store.activity, log)
	return nil
}

func (r *fakeActivityLogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityLog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return append([]*entity.ActivityLog(nil), r.store.activity...), nil
}

func (r *fakeActivityLogRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.activity)), nil
}

type fakeUnitOfWork struct{ store *fakeStore }

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}
func (u *fakeUnitOfWork) CourseRepository() contract.CourseRepository {
	return &fakeCourseRepo{store: u.store}
}
func (u *fakeUnitOfWork) NoteRepository() contract.NoteRepository {
	return &fakeNoteRepo{store: u.store}
}
func (u *fakeUnitOfWork) QuizRepository() contract.QuizRepository {
	return &fakeQuizRepo{store: u.store}
}
func (u *fakeUnitOfWork) FlashcardRepository() contract.FlashcardRepository {
	return &fakeFlashcardRepo{store: u.store}
}
func (u *fakeUnitOfWork) TestRepository() contract.TestRepository {
	return &fakeTestRepo{store: u.store}
}
func (u *fakeUnitOfWork) ActivityLogRepository() contract.ActivityLogRepository {
	return &fakeActivityLogRepo{store: u.store}
}

type fakeFactory struct{ store *fakeStore }

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

var _ unitofwork.RepositoryFactory = &fakeFactory{}

// fakeProvider returns canned model output, or cycles through responses when
// more than one is configured.
type fakeProvider struct {
	mu        sync.Mutex
	responses []string
	err       error
	calls     int
	docs      []llm.Document
}

func (p *fakeProvider) Generate(ctx context.Context, promptText string, opts ...llm.Option) (string, error) {
	return p.GenerateWithDocument(ctx, promptText, llm.Document{}, opts...)
}

func (p *fakeProvider) GenerateWithDocument(ctx context.Context, promptText string, doc llm.Document, opts ...llm.Option) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.docs = append(p.docs, doc)
	if p.err != nil {
		return "", p.err
	}
	response := p.responses[p.calls%len(p.responses)]
	p.calls++
	return response, nil
}

var _ llm.Provider = &fakeProvider{}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type nopPublisher struct{}

func (nopPublisher) Publish(ctx context.Context, payload []byte) error { return nil }
