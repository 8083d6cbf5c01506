// Package extract turns raw model output into validated study items.
// Models routinely wrap JSON in prose or code fences, so extraction
// slices from the first '[' to the last ']' before decoding.
package extract

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MalformedResponseError reports model output that could not be decoded
// into the expected JSON array. Raw carries the untouched model text so
// callers can log it for diagnosis.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// Flashcard is a validated term/definition pair.
type Flashcard struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Question is a validated quiz question. Options is non-empty only when
// Type is "mcq".
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
	Type     string   `json:"type"`
}

// Dropped records one array element rejected during validation.
type Dropped struct {
	Index  int
	Reason string
}

// Options tunes validation behavior. The zero value drops invalid
// elements and keeps the rest.
type Options struct {
	// FailOnInvalid turns any dropped element into a
	// MalformedResponseError instead of a partial result.
	FailOnInvalid bool
}

func sliceArray(raw string) (string, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON array found in response")
	}
	return raw[start : end+1], nil
}

// Flashcards extracts and validates flashcard items from raw model output.
// Invalid elements are dropped and reported; a response with zero valid
// elements is not an error.
func Flashcards(raw string, opts Options) ([]Flashcard, []Dropped, error) {
	body, err := sliceArray(raw)
	if err != nil {
		return nil, nil, &MalformedResponseError{Raw: raw, Err: err}
	}

	var decoded []struct {
		Term       string `json:"term"`
		Definition string `json:"definition"`
	}
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		return nil, nil, &MalformedResponseError{Raw: raw, Err: err}
	}

	var (
		valid   []Flashcard
		dropped []Dropped
	)
	for i, item := range decoded {
		switch {
		case strings.TrimSpace(item.Term) == "":
			dropped = append(dropped, Dropped{Index: i, Reason: "empty term"})
		case strings.TrimSpace(item.Definition) == "":
			dropped = append(dropped, Dropped{Index: i, Reason: "empty definition"})
		default:
			valid = append(valid, Flashcard{Term: item.Term, Definition: item.Definition})
		}
	}

	if opts.FailOnInvalid && len(dropped) > 0 {
		return nil, dropped, &MalformedResponseError{
			Raw: raw,
			Err: fmt.Errorf("%d of %d elements failed validation", len(dropped), len(decoded)),
		}
	}
	return valid, dropped, nil
}

// Questions extracts and validates quiz questions from raw model output.
// A missing type defaults to "mcq". MCQ questions require options;
// non-MCQ questions have their options discarded.
func Questions(raw string, opts Options) ([]Question, []Dropped, error) {
	body, err := sliceArray(raw)
	if err != nil {
		return nil, nil, &MalformedResponseError{Raw: raw, Err: err}
	}

	var decoded []struct {
		Question string   `json:"question"`
		Options  []string `json:"options"`
		Answer   string   `json:"answer"`
		Type     string   `json:"type"`
	}
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		return nil, nil, &MalformedResponseError{Raw: raw, Err: err}
	}

	var (
		valid   []Question
		dropped []Dropped
	)
	for i, item := range decoded {
		qType := strings.ToLower(strings.TrimSpace(item.Type))
		if qType == "" {
			qType = "mcq"
		}

		switch {
		case strings.TrimSpace(item.Question) == "":
			dropped = append(dropped, Dropped{Index: i, Reason: "empty question"})
			continue
		case strings.TrimSpace(item.Answer) == "":
			dropped = append(dropped, Dropped{Index: i, Reason: "empty answer"})
			continue
		case qType != "mcq" && qType != "short" && qType != "code":
			dropped = append(dropped, Dropped{Index: i, Reason: fmt.Sprintf("unknown type %q", item.Type)})
			continue
		case qType == "mcq" && len(item.Options) == 0:
			dropped = append(dropped, Dropped{Index: i, Reason: "mcq without options"})
			continue
		}

		q := Question{
			Question: item.Question,
			Answer:   item.Answer,
			Type:     qType,
		}
		if qType == "mcq" {
			q.Options = item.Options
		}
		valid = append(valid, q)
	}

	if opts.FailOnInvalid && len(dropped) > 0 {
		return nil, dropped, &MalformedResponseError{
			Raw: raw,
			Err: fmt.Errorf("%d of %d elements failed validation", len(dropped), len(decoded)),
		}
	}
	return valid, dropped, nil
}
