package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrEmptyPipeline is returned when a pipeline is run with no steps
	ErrEmptyPipeline = errors.New("pipeline has no steps")

	// ErrInvalidPipeline is returned when a step list violates the pipeline contract
	ErrInvalidPipeline = errors.New("invalid pipeline configuration")

	// ErrSnapshotMissing is returned when a snapshot label was never recorded
	ErrSnapshotMissing = errors.New("snapshot not found")

	// ErrBookNotFound is returned when a Gutenberg book ID does not resolve
	ErrBookNotFound = errors.New("book not found")

	// ErrArticleNotFound is returned when a Wikipedia title does not resolve
	ErrArticleNotFound = errors.New("article not found")

	// ErrCorpusNotFound is returned when a named example corpus does not exist
	ErrCorpusNotFound = errors.New("corpus not found")

	// ErrNoCorpora is returned when the example corpora directory is missing
	ErrNoCorpora = errors.New("no example corpora available")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// PipelineConfigError represents an invalid step list with context
type PipelineConfigError struct {
	Reason string
}

func (e *PipelineConfigError) Error() string {
	return fmt.Sprintf("invalid pipeline configuration: %s", e.Reason)
}

func (e *PipelineConfigError) Is(target error) bool {
	return target == ErrInvalidPipeline
}

// NewPipelineConfigError creates a new PipelineConfigError
func NewPipelineConfigError(reason string) *PipelineConfigError {
	return &PipelineConfigError{Reason: reason}
}

// SnapshotMissingError represents a lookup of a snapshot label that was never recorded
type SnapshotMissingError struct {
	Label string
}

func (e *SnapshotMissingError) Error() string {
	return fmt.Sprintf("no snapshot recorded under label '%s'", e.Label)
}

func (e *SnapshotMissingError) Is(target error) bool {
	return target == ErrSnapshotMissing
}

// NewSnapshotMissingError creates a new SnapshotMissingError
func NewSnapshotMissingError(label string) *SnapshotMissingError {
	return &SnapshotMissingError{Label: label}
}

// BookNotFoundError represents a failed Gutenberg lookup with context
type BookNotFoundError struct {
	BookID int
}

func (e *BookNotFoundError) Error() string {
	return fmt.Sprintf("gutenberg book %d not found", e.BookID)
}

func (e *BookNotFoundError) Is(target error) bool {
	return target == ErrBookNotFound
}

// NewBookNotFoundError creates a new BookNotFoundError
func NewBookNotFoundError(bookID int) *BookNotFoundError {
	return &BookNotFoundError{BookID: bookID}
}

// ArticleNotFoundError represents a failed Wikipedia lookup with context
type ArticleNotFoundError struct {
	Title string
}

func (e *ArticleNotFoundError) Error() string {
	return fmt.Sprintf("wikipedia article '%s' not found", e.Title)
}

func (e *ArticleNotFoundError) Is(target error) bool {
	return target == ErrArticleNotFound
}

// NewArticleNotFoundError creates a new ArticleNotFoundError
func NewArticleNotFoundError(title string) *ArticleNotFoundError {
	return &ArticleNotFoundError{Title: title}
}

// CorpusNotFoundError represents a missing example corpus file with context
type CorpusNotFoundError struct {
	Name string
}

func (e *CorpusNotFoundError) Error() string {
	return fmt.Sprintf("example corpus '%s' not found", e.Name)
}

func (e *CorpusNotFoundError) Is(target error) bool {
	return target == ErrCorpusNotFound
}

// NewCorpusNotFoundError creates a new CorpusNotFoundError
func NewCorpusNotFoundError(name string) *CorpusNotFoundError {
	return &CorpusNotFoundError{Name: name}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
