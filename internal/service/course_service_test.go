package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"lecture-notes-be/internal/dto"
	"lecture-notes-be/internal/pkg/serverutils"
	"lecture-notes-be/pkg/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogServer(t *testing.T, hits *int32, entries []map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		json.NewEncoder(w).Encode(entries)
	}))
}

func TestCreateCourseResolvesTitleFromCatalog(t *testing.T) {
	var hits int32
	srv := newCatalogServer(t, &hits, []map[string]string{
		{"value": "310", "title": "Artificial Intelligence Survey"},
		{"value": "225", "title": "Data Structures and Programming"},
	})
	defer srv.Close()

	store := newFakeStore()
	svc := NewCourseService(&fakeFactory{store: store}, catalog.NewClient(srv.URL, time.Minute))
	userId := uuid.New()

	res, err := svc.Create(context.Background(), userId, &dto.CreateCourseRequest{Code: "cmpt 310"})
	require.NoError(t, err)

	created := store.courses[res.Id]
	require.NotNil(t, created)
	assert.Equal(t, "cmpt 310", created.Code)
	assert.Equal(t, "Artificial Intelligence Survey", created.Title)

	term, year := currentTermYear(time.Now())
	assert.Equal(t, term+" "+year, created.Term)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestCreateCourseUnknownCodeRejected(t *testing.T) {
	var hits int32
	srv := newCatalogServer(t, &hits, []map[string]string{
		{"value": "120", "title": "Introduction to Computing Science"},
	})
	defer srv.Close()

	store := newFakeStore()
	svc := NewCourseService(&fakeFactory{store: store}, catalog.NewClient(srv.URL, time.Minute))

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateCourseRequest{Code: "CMPT 999"})
	var validation *serverutils.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Empty(t, store.courses)
}

func TestCreateCourseMalformedCodeRejected(t *testing.T) {
	var hits int32
	srv := newCatalogServer(t, &hits, nil)
	defer srv.Close()

	store := newFakeStore()
	svc := NewCourseService(&fakeFactory{store: store}, catalog.NewClient(srv.URL, time.Minute))

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateCourseRequest{Code: "CMPT"})
	var validation *serverutils.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestCreateCourseExplicitTitleSkipsCatalog(t *testing.T) {
	var hits int32
	srv := newCatalogServer(t, &hits, nil)
	defer srv.Close()

	store := newFakeStore()
	svc := NewCourseService(&fakeFactory{store: store}, catalog.NewClient(srv.URL, time.Minute))

	res, err := svc.Create(context.Background(), uuid.New(), &dto.CreateCourseRequest{
		Code:  "CMPT 310",
		Title: "Artificial Intelligence Survey",
		Term:  "fall 2026",
	})
	require.NoError(t, err)

	created := store.courses[res.Id]
	require.NotNil(t, created)
	assert.Equal(t, "fall 2026", created.Term)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}
