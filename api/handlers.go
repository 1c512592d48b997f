package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zipfview/go-text-analyzer/internal/analyzer"
	"github.com/zipfview/go-text-analyzer/internal/corpora"
	internalErrors "github.com/zipfview/go-text-analyzer/internal/errors"
	"github.com/zipfview/go-text-analyzer/internal/fetch"
	"github.com/zipfview/go-text-analyzer/model"
)

// AnalyzeRequest is the body of POST /api/analyze. Exactly one source is
// consulted: pasted content, a Gutenberg book ID, or a Wikipedia title.
type AnalyzeRequest struct {
	Source      string                `json:"source"`
	Content     string                `json:"content"`
	GutenbergID string                `json:"gutenberg_id"`
	WikiTitle   string                `json:"wiki_title"`
	Options     model.AnalysisOptions `json:"options"`
}

// AnalyzeResponse wraps an analysis result with its provenance.
type AnalyzeResponse struct {
	Source  string               `json:"source"`
	Results model.AnalysisResult `json:"results"`
}

// ExampleListResponse is the body of GET /api/examples.
type ExampleListResponse struct {
	Files []string `json:"files"`
}

// ExampleAnalysisResponse is the body of GET /api/examples/:name.
type ExampleAnalysisResponse struct {
	File    string                `json:"file"`
	Options model.AnalysisOptions `json:"options"`
	Results model.AnalysisResult  `json:"results"`
}

// API holds dependencies for API handlers.
type API struct {
	analyzer  *analyzer.Service
	gutenberg *fetch.GutenbergClient
	wikipedia *fetch.WikipediaClient
	corpora   *corpora.Loader
}

// NewAPI creates a new API handler structure.
func NewAPI(analysisService *analyzer.Service, gutenberg *fetch.GutenbergClient, wikipedia *fetch.WikipediaClient, corporaLoader *corpora.Loader) *API {
	return &API{
		analyzer:  analysisService,
		gutenberg: gutenberg,
		wikipedia: wikipedia,
		corpora:   corporaLoader,
	}
}

// SetupRoutes defines all the API routes for the text analyzer.
func SetupRoutes(router *gin.Engine, apiHandler *API) {
	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	apiRoutes := router.Group("/api")
	{
		apiRoutes.POST("/analyze", apiHandler.AnalyzeHandler)

		exampleRoutes := apiRoutes.Group("/examples")
		{
			exampleRoutes.GET("", apiHandler.ListExamplesHandler)  // List bundled corpora
			exampleRoutes.GET("/:name", apiHandler.ExampleHandler) // Analyze one corpus
		}
	}
}

// HealthCheckHandler reports service liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// AnalyzeHandler runs a full analysis over text from the requested source.
func (api *API) AnalyzeHandler(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if result := ValidateAnalyzeRequest(&req); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	content, ok := api.fetchContent(c, &req)
	if !ok {
		return
	}

	results, err := api.analyzer.Analyze(content, req.Options)
	if err != nil {
		SendAnalysisError(c, err)
		return
	}

	source := req.Source
	if source == "" {
		source = SourcePaste
	}
	c.JSON(http.StatusOK, AnalyzeResponse{Source: source, Results: results})
}

// fetchContent resolves the request's text source. On failure it writes the
// error response and returns ok=false.
func (api *API) fetchContent(c *gin.Context, req *AnalyzeRequest) (string, bool) {
	switch req.Source {
	case SourceGutenberg:
		bookID, _ := strconv.Atoi(strings.TrimSpace(req.GutenbergID))
		text, err := api.gutenberg.FetchBook(c.Request.Context(), bookID)
		if err != nil {
			if errors.Is(err, internalErrors.ErrBookNotFound) {
				SendBookNotFoundError(c, bookID)
			} else {
				log.Printf("Gutenberg fetch failed for book %d: %v", bookID, err)
				SendFetchError(c, "gutenberg", err)
			}
			return "", false
		}
		return text, true

	case SourceWikipedia:
		title := strings.TrimSpace(req.WikiTitle)
		text, err := api.wikipedia.FetchArticle(c.Request.Context(), title)
		if err != nil {
			if errors.Is(err, internalErrors.ErrArticleNotFound) {
				SendArticleNotFoundError(c, title)
			} else {
				log.Printf("Wikipedia fetch failed for '%s': %v", title, err)
				SendFetchError(c, "wikipedia", err)
			}
			return "", false
		}
		return text, true

	default:
		return req.Content, true
	}
}

// ListExamplesHandler lists the bundled example corpora.
func (api *API) ListExamplesHandler(c *gin.Context) {
	files, err := api.corpora.List()
	if err != nil {
		if errors.Is(err, internalErrors.ErrNoCorpora) {
			SendNoCorporaError(c)
		} else {
			SendInternalError(c, "listing example corpora", err)
		}
		return
	}
	c.JSON(http.StatusOK, ExampleListResponse{Files: files})
}

// ExampleHandler analyzes one bundled corpus. Options come from query
// parameters; absent parameters use the submission form's defaults.
func (api *API) ExampleHandler(c *gin.Context) {
	name := c.Param("name")
	if result := ValidateCorpusName(name); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	content, err := api.corpora.Read(name)
	if err != nil {
		switch {
		case errors.Is(err, internalErrors.ErrCorpusNotFound):
			SendCorpusNotFoundError(c, name)
		case errors.Is(err, internalErrors.ErrInvalidInput):
			result := &ValidationResult{Valid: true}
			result.AddError("name", err.Error())
			SendStructuredValidationError(c, result)
		default:
			SendInternalError(c, "reading example corpus", err)
		}
		return
	}

	opts := parseOptionsQuery(c)
	results, err := api.analyzer.Analyze(content, opts)
	if err != nil {
		SendAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExampleAnalysisResponse{File: name, Options: opts, Results: results})
}

// parseOptionsQuery reads analysis options from query parameters, falling
// back to the defaults for absent ones.
func parseOptionsQuery(c *gin.Context) model.AnalysisOptions {
	opts := model.DefaultAnalysisOptions()

	opts.RemovePunctuation = boolQuery(c, "remove_punctuation", opts.RemovePunctuation)
	opts.FilterAlpha = boolQuery(c, "filter_alpha", opts.FilterAlpha)
	opts.CaseSensitive = boolQuery(c, "case_sensitive", opts.CaseSensitive)
	opts.RemoveStopWords = boolQuery(c, "remove_stop_words", opts.RemoveStopWords)
	if raw, exists := c.GetQuery("words_to_exclude"); exists {
		opts.WordsToExclude = raw
	}

	return opts
}

func boolQuery(c *gin.Context, name string, fallback bool) bool {
	raw, exists := c.GetQuery(name)
	if !exists {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}
