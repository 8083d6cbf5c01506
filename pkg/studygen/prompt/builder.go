// Package prompt renders the instruction payloads sent to the generative
// model. Build is pure: no clocks, no randomness, no I/O, so identical
// inputs always yield byte-identical payloads.
package prompt

import "fmt"

type Kind string

const (
	KindSummary    Kind = "summary"
	KindFlashcards Kind = "flashcards"
	KindQuiz       Kind = "quiz"
	KindTest       Kind = "test"
)

// SourceRef points at the lecture document the model should read: either a
// hosted file by URI or an inline base64 payload.
type SourceRef struct {
	URI        string
	InlineData string
	MimeType   string
}

// Params carries kind-specific quantities. Only KindTest reads them.
type Params struct {
	NumMcq   int
	NumShort int
	NumCode  int
}

// Payload is the assembled instruction set for a single model call.
type Payload struct {
	Instructions string
	Source       SourceRef
}

const summaryTemplate = `Summarize the key concepts, definitions, and important takeaways from this lecture note.
Use clear paragraphs and bullet points. Output in plain text, no markdown.`

const flashcardsTemplate = `You are a study assistant that extracts key terms and definitions for flashcards.

From the provided lecture note, identify important concepts, technical terms,
and their concise definitions.

Return only a valid JSON array in this format:
[
  {"term": "Thread", "definition": "A lightweight process that shares memory with others."},
  {"term": "Context Switch", "definition": "The act of saving and loading CPU states when switching between threads."}
]`

const quizTemplate = `You are an intelligent quiz generator.
Based on the provided lecture note, generate quiz questions.
Output as a valid JSON array with this structure:
[
  {"question": "...", "options": ["A","B","C","D"], "answer": "A", "type": "mcq"},
  {"question": "...", "answer": "...", "type": "short"}
]
The "type" field must be one of "mcq", "short" or "code".
Do NOT include explanations or commentary outside the JSON.`

const testTemplate = `You are an intelligent quiz/test generator.

Read the provided lecture note.
Generate a total of %d questions with this breakdown:
- %d multiple-choice questions (MCQ)
- %d short-answer questions
- %d coding or logic questions

Format the output as a valid JSON array, for example:
[
  {"question": "...", "options": ["A","B","C","D"], "answer": "B", "type": "mcq"},
  {"question": "...", "answer": "...", "type": "short"},
  {"question": "...", "answer": "...", "type": "code"}
]
Do NOT include explanations or commentary outside the JSON.`

// Build renders the instruction template for the requested artifact kind.
func Build(kind Kind, source SourceRef, params Params) Payload {
	var instructions string

	switch kind {
	case KindSummary:
		instructions = summaryTemplate
	case KindFlashcards:
		instructions = flashcardsTemplate
	case KindQuiz:
		instructions = quizTemplate
	case KindTest:
		total := params.NumMcq + params.NumShort + params.NumCode
		instructions = fmt.Sprintf(testTemplate, total, params.NumMcq, params.NumShort, params.NumCode)
	}

	return Payload{
		Instructions: instructions,
		Source:       source,
	}
}
