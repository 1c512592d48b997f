// Package config provides the service configuration: listen address, corpora
// location, fetch endpoints, and analysis limits. Values come from the
// environment with sensible defaults.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Settings contains all runtime configuration for the text analyzer service.
type Settings struct {
	Port          string        `env:"PORT" envDefault:"8080"`
	CorporaDir    string        `env:"CORPORA_DIR" envDefault:"./data/corpora"`
	StopwordsFile string        `env:"STOPWORDS_FILE"` // empty selects the embedded list
	FetchTimeout  time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`
	MaxBodyBytes  int64         `env:"MAX_BODY_BYTES" envDefault:"33554432"` // 32 MiB of pasted text
	ChartSize     int           `env:"CHART_SIZE" envDefault:"50"`

	GutenbergBaseURL string `env:"GUTENBERG_BASE_URL"` // empty selects the public archive
	WikipediaBaseURL string `env:"WIKIPEDIA_BASE_URL"` // empty selects en.wikipedia.org
}

// Load parses settings from the environment.
func Load() (*Settings, error) {
	settings := &Settings{}
	if err := env.Parse(settings); err != nil {
		return nil, fmt.Errorf("parsing settings from environment: %w", err)
	}
	settings.ApplyDefaults()
	return settings, nil
}

// ApplyDefaults repairs out-of-range values instead of failing on them.
func (s *Settings) ApplyDefaults() {
	if s.Port == "" {
		s.Port = "8080"
	}
	if s.FetchTimeout <= 0 {
		s.FetchTimeout = 30 * time.Second
	}
	if s.MaxBodyBytes <= 0 {
		s.MaxBodyBytes = 32 << 20
	}
	if s.ChartSize <= 0 {
		s.ChartSize = 50
	}
}

// Validate returns a list of configuration problems, empty when the settings
// are usable.
func (s *Settings) Validate() []string {
	var conflicts []string

	if s.CorporaDir == "" {
		conflicts = append(conflicts, "CORPORA_DIR cannot be empty")
	}
	if s.ChartSize > 1000 {
		conflicts = append(conflicts, fmt.Sprintf("CHART_SIZE %d is unreasonably large (max 1000)", s.ChartSize))
	}
	if s.FetchTimeout > 5*time.Minute {
		conflicts = append(conflicts, fmt.Sprintf("FETCH_TIMEOUT %s is unreasonably long (max 5m)", s.FetchTimeout))
	}

	return conflicts
}
