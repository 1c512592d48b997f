package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/zipfview/go-text-analyzer/api"
	"github.com/zipfview/go-text-analyzer/config"
	"github.com/zipfview/go-text-analyzer/internal/analyzer"
	"github.com/zipfview/go-text-analyzer/internal/corpora"
	"github.com/zipfview/go-text-analyzer/internal/fetch"
	"github.com/zipfview/go-text-analyzer/internal/stopwords"
)

func main() {
	// Define command-line flags
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		port       = flag.String("port", "", "Port to run the server on (overrides PORT)")
		corporaDir = flag.String("corpora-dir", "", "Directory with example corpora (overrides CORPORA_DIR)")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Go Text Analyzer - word frequency and Zipf's law analysis over text\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                              # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000                  # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --corpora-dir /srv/corpora   # Use custom example corpora\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Go Text Analyzer v1.0.0\n")
		fmt.Printf("Word counts, frequency charts, and Zipf distributions from pasted text, Gutenberg books, and Wikipedia articles\n")
		return
	}

	// A local .env is optional; the environment alone is fine.
	_ = godotenv.Load()

	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != "" {
		settings.Port = *port
	}
	if *corporaDir != "" {
		settings.CorporaDir = *corporaDir
	}
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		for _, conflict := range conflicts {
			log.Printf("Configuration problem: %s", conflict)
		}
		log.Fatal("Refusing to start with invalid configuration")
	}

	stops := stopwords.Default()
	if settings.StopwordsFile != "" {
		stops, err = stopwords.LoadFile(settings.StopwordsFile)
		if err != nil {
			log.Fatalf("Failed to load stop word list from %s: %v", settings.StopwordsFile, err)
		}
		log.Printf("Using stop word list from %s (%d words)", settings.StopwordsFile, stops.Len())
	}

	analysisService, err := analyzer.NewService(stops, settings.ChartSize)
	if err != nil {
		log.Fatalf("Failed to create analyzer: %v", err)
	}

	log.Printf("Using corpora directory: %s", settings.CorporaDir)
	corporaLoader, err := corpora.NewLoader(settings.CorporaDir)
	if err != nil {
		log.Fatalf("Failed to create corpora loader: %v", err)
	}

	fetchHTTPClient := &http.Client{Timeout: settings.FetchTimeout}
	apiHandler := api.NewAPI(
		analysisService,
		fetch.NewGutenbergClient(settings.GutenbergBaseURL, fetch.WithGutenbergHTTPClient(fetchHTTPClient)),
		fetch.NewWikipediaClient(settings.WikipediaBaseURL, fetch.WithWikipediaHTTPClient(fetchHTTPClient)),
		corporaLoader,
	)

	// Initialize Gin router
	router := gin.Default()
	router.Use(api.RequestIDMiddleware())
	router.Use(api.CORSMiddleware())
	router.Use(api.RequestSizeLimitMiddleware(settings.MaxBodyBytes))

	// Setup API routes
	api.SetupRoutes(router, apiHandler)

	// Start the server
	log.Printf("Starting server on port %s...", settings.Port)
	if err := router.Run(":" + settings.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
