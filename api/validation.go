// Package api provides the HTTP layer: routes, handlers, middleware, and
// request validation for the text analyzer service.
package api

import (
	"strconv"
	"strings"
)

// Text sources accepted by the analyze endpoint.
const (
	SourcePaste     = "paste"
	SourceGutenberg = "gutenberg"
	SourceWikipedia = "wikipedia"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateAnalyzeRequest validates an analyze request. An empty source means
// pasted text, matching the submission form's default.
func ValidateAnalyzeRequest(req *AnalyzeRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	switch req.Source {
	case "", SourcePaste:
		// Pasted content may legitimately be empty; an empty analysis is
		// well-defined.
	case SourceGutenberg:
		id := strings.TrimSpace(req.GutenbergID)
		if id == "" {
			result.AddError("gutenberg_id", "Gutenberg book ID is required")
			break
		}
		if n, err := strconv.Atoi(id); err != nil || n <= 0 {
			result.AddError("gutenberg_id", "Gutenberg book ID must be a positive integer")
		}
	case SourceWikipedia:
		if strings.TrimSpace(req.WikiTitle) == "" {
			result.AddError("wiki_title", "Wikipedia article title is required")
		}
	default:
		result.AddError("source", "Source must be one of: paste, gutenberg, wikipedia")
	}

	return result
}

// ValidateCorpusName validates the corpus name path parameter.
func ValidateCorpusName(name string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if name == "" {
		result.AddError("name", "Corpus name is required")
		return result
	}
	if strings.ContainsAny(name, "/\\") || strings.HasPrefix(name, ".") {
		result.AddError("name", "Corpus name cannot be a path")
	}

	return result
}
