package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrorCodeInvalidJSON      ErrorCode = "INVALID_JSON"
	ErrorCodeBookNotFound     ErrorCode = "BOOK_NOT_FOUND"
	ErrorCodeArticleNotFound  ErrorCode = "ARTICLE_NOT_FOUND"
	ErrorCodeCorpusNotFound   ErrorCode = "CORPUS_NOT_FOUND"
	ErrorCodeNoCorpora        ErrorCode = "NO_CORPORA"

	// Server Error Codes (5xx)
	ErrorCodeFetchFailed    ErrorCode = "FETCH_FAILED"
	ErrorCodeAnalysisFailed ErrorCode = "ANALYSIS_FAILED"
	ErrorCodeInternalError  ErrorCode = "INTERNAL_ERROR"
)

// ErrorDetail provides additional context for an error
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// APIError represents a standardized API error response
type APIError struct {
	Error     string        `json:"error"`
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	RequestID string        `json:"request_id,omitempty"`
}

// APIErrorResponse creates a standardized error response
func APIErrorResponse(code ErrorCode, message string, details ...ErrorDetail) *APIError {
	return &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...ErrorDetail) {
	errorResponse := APIErrorResponse(code, message, details...)

	// Add request ID if available
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			errorResponse.RequestID = id
		}
	}

	c.JSON(statusCode, errorResponse)
}

// SendStructuredValidationError sends a validation error with structured details
func SendStructuredValidationError(c *gin.Context, result *ValidationResult) {
	details := make([]ErrorDetail, len(result.Errors))
	for i, err := range result.Errors {
		details[i] = ErrorDetail{
			Field:   err.Field,
			Message: err.Message,
			Code:    "VALIDATION_ERROR",
		}
	}

	SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Request validation failed", details...)
}

// SendInvalidJSONError sends a standardized invalid JSON error
func SendInvalidJSONError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
		"Invalid JSON in request body: "+err.Error())
}

// SendBookNotFoundError sends a standardized Gutenberg book not found error
func SendBookNotFoundError(c *gin.Context, bookID int) {
	SendError(c, http.StatusNotFound, ErrorCodeBookNotFound,
		"Gutenberg book "+strconv.Itoa(bookID)+" not found")
}

// SendArticleNotFoundError sends a standardized Wikipedia article not found error
func SendArticleNotFoundError(c *gin.Context, title string) {
	SendError(c, http.StatusNotFound, ErrorCodeArticleNotFound,
		"Wikipedia article '"+title+"' not found")
}

// SendCorpusNotFoundError sends a standardized example corpus not found error
func SendCorpusNotFoundError(c *gin.Context, name string) {
	SendError(c, http.StatusNotFound, ErrorCodeCorpusNotFound,
		"Example corpus '"+name+"' not found")
}

// SendNoCorporaError sends a standardized missing corpora directory error
func SendNoCorporaError(c *gin.Context) {
	SendError(c, http.StatusNotFound, ErrorCodeNoCorpora,
		"No example corpora are available")
}

// SendFetchError sends a standardized remote fetch error
func SendFetchError(c *gin.Context, source string, err error) {
	SendError(c, http.StatusBadGateway, ErrorCodeFetchFailed,
		"Failed to fetch text from "+source+": "+err.Error())
}

// SendAnalysisError sends a standardized analysis error
func SendAnalysisError(c *gin.Context, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeAnalysisFailed,
		"Analysis failed: "+err.Error())
}

// SendInternalError sends a standardized internal server error
func SendInternalError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError,
		"Internal error during "+operation+": "+err.Error())
}
