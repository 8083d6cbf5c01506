package llm

import (
	"context"
	"fmt"
)

// Document is the source material attached to a generation request.
// Exactly one of FileURI (a remotely hosted file, e.g. an uploaded PDF) or
// InlineData (base64 payload, e.g. a note photographed as an image) is set.
type Document struct {
	FileURI    string
	InlineData string
	MimeType   string
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// Provider defines the contract for any generative model backend.
// One attempt per call: timeouts, rate limits and transport failures come
// back as *UpstreamError and retrying is the caller's decision.
type Provider interface {
	// Generate sends a text prompt to the model and returns the raw reply.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)

	// GenerateWithDocument sends a prompt plus an attached source document.
	GenerateWithDocument(ctx context.Context, prompt string, doc Document, options ...Option) (string, error)
}

// UpstreamError reports a failed model call (timeout, rate limit, transport,
// non-200 status). It is retryable from the caller's perspective.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("generative model call failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
