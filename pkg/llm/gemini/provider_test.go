package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lecture-notes-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *GeminiProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p := NewGeminiProvider("test-key", "gemini-1.5-pro", 5*time.Second)
	p.BaseURL = srv.URL
	return p
}

func TestGenerateWithDocument(t *testing.T) {
	var captured geminiRequest
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "/models/gemini-1.5-pro:generateContent", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []*geminiCandidate{
				{Content: &geminiContent{Parts: []geminiPart{{Text: `[{"term":"T","definition":"D"}]`}}}},
			},
		})
	})

	out, err := p.GenerateWithDocument(context.Background(), "extract flashcards", llm.Document{
		FileURI:  "http://localhost:3001/uploads/a.pdf",
		MimeType: "application/pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, `[{"term":"T","definition":"D"}]`, out)

	require.Len(t, captured.Contents, 1)
	require.Len(t, captured.Contents[0].Parts, 2)
	assert.Equal(t, "extract flashcards", captured.Contents[0].Parts[0].Text)
	require.NotNil(t, captured.Contents[0].Parts[1].FileData)
	assert.Equal(t, "application/pdf", captured.Contents[0].Parts[1].FileData.MimeType)
}

func TestGenerateUpstreamFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "quota exceeded", http.StatusTooManyRequests)
			},
		},
		{
			name: "empty candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(geminiResponse{})
			},
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(t, tt.handler)
			_, err := p.Generate(context.Background(), "hello")
			var upstream *llm.UpstreamError
			require.True(t, errors.As(err, &upstream))
		})
	}
}

func TestGenerateHonorsContext(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Generate(ctx, "hello")
	var upstream *llm.UpstreamError
	require.True(t, errors.As(err, &upstream))
}
