package serverutils

import "fmt"

// ValidationError reports missing or malformed request fields (HTTP 400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ForbiddenError reports an ownership mismatch between the requesting
// principal and the resource (HTTP 403).
type ForbiddenError struct {
	Resource string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("unauthorized %s access", e.Resource)
}

func NewForbiddenError(resource string) *ForbiddenError {
	return &ForbiddenError{Resource: resource}
}

// NotFoundError reports an absent resource. Ownership-guarded lookups map it
// to 403 so callers cannot probe for other users' resources.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// PersistenceError reports a storage write failure mid-batch (HTTP 500).
// Committed tells the caller how many artifacts made it in before the abort;
// with transactional batches this is zero.
type PersistenceError struct {
	Committed int
	Err       error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure after %d committed artifacts: %v", e.Committed, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
