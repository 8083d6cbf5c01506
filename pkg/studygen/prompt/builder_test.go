package prompt

import (
	"strings"
	"testing"
)

func TestBuildIsDeterministic(t *testing.T) {
	source := SourceRef{URI: "http://localhost:3001/uploads/lecture.pdf", MimeType: "application/pdf"}
	params := Params{NumMcq: 5, NumShort: 2, NumCode: 1}

	for _, kind := range []Kind{KindSummary, KindFlashcards, KindQuiz, KindTest} {
		first := Build(kind, source, params)
		second := Build(kind, source, params)
		if first != second {
			t.Errorf("Build(%s) is not deterministic", kind)
		}
	}
}

func TestBuildTestCounts(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   []string
	}{
		{
			name:   "default breakdown",
			params: Params{NumMcq: 5, NumShort: 2, NumCode: 1},
			want: []string{
				"a total of 8 questions",
				"5 multiple-choice questions",
				"2 short-answer questions",
				"1 coding or logic questions",
			},
		},
		{
			name:   "mcq only",
			params: Params{NumMcq: 10},
			want: []string{
				"a total of 10 questions",
				"10 multiple-choice questions",
				"0 short-answer questions",
				"0 coding or logic questions",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := Build(KindTest, SourceRef{URI: "x.pdf", MimeType: "application/pdf"}, tt.params)
			for _, want := range tt.want {
				if !strings.Contains(payload.Instructions, want) {
					t.Errorf("instructions missing %q", want)
				}
			}
		})
	}
}

func TestBuildCarriesSource(t *testing.T) {
	source := SourceRef{URI: "http://localhost:3001/uploads/a.png", MimeType: "image/png"}
	payload := Build(KindFlashcards, source, Params{})
	if payload.Source != source {
		t.Errorf("Source = %+v, want %+v", payload.Source, source)
	}
	if !strings.Contains(payload.Instructions, "JSON array") {
		t.Error("flashcard instructions should demand a JSON array")
	}
}

func TestBuildIgnoresParamsForNonTestKinds(t *testing.T) {
	source := SourceRef{URI: "x.pdf", MimeType: "application/pdf"}
	withParams := Build(KindQuiz, source, Params{NumMcq: 99})
	withoutParams := Build(KindQuiz, source, Params{})
	if withParams != withoutParams {
		t.Error("quiz prompt should not depend on question counts")
	}
}
