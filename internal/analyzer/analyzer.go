// Package analyzer composes the pipeline and metrics engines into one
// analysis operation: raw text plus options in, a complete result record out.
package analyzer

import (
	"fmt"

	"github.com/zipfview/go-text-analyzer/internal/metrics"
	"github.com/zipfview/go-text-analyzer/internal/pipeline"
	"github.com/zipfview/go-text-analyzer/internal/stopwords"
	"github.com/zipfview/go-text-analyzer/model"
)

const defaultChartSize = 50

// Service runs analyses. It is stateless between calls; every sequence and
// table is allocated per call, so concurrent requests are safe.
type Service struct {
	runner    *pipeline.Runner
	chartSize int
}

// NewService creates an analysis Service. chartSize caps the frequency chart
// series; values <= 0 fall back to the default of 50.
func NewService(stops *stopwords.Set, chartSize int) (*Service, error) {
	runner, err := pipeline.NewRunner(stops)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline runner: %w", err)
	}
	if chartSize <= 0 {
		chartSize = defaultChartSize
	}
	return &Service{runner: runner, chartSize: chartSize}, nil
}

// Analyze runs the configured pipeline over content and computes all metrics.
// The chart and Zipf series compare the before_stop_words snapshot against
// the final snapshot; word and unique-word counts describe the final
// sequence, character counts the raw text.
func (s *Service) Analyze(content string, opts model.AnalysisOptions) (model.AnalysisResult, error) {
	steps := pipeline.Build(opts)

	final, snapshots, err := s.runner.Run(content, steps)
	if err != nil {
		return model.AnalysisResult{}, fmt.Errorf("running pipeline: %w", err)
	}

	before, err := snapshots.Get(pipeline.LabelBeforeStopWords)
	if err != nil {
		return model.AnalysisResult{}, fmt.Errorf("retrieving comparison snapshot: %w", err)
	}
	after, err := snapshots.Get(pipeline.LabelFinal)
	if err != nil {
		return model.AnalysisResult{}, fmt.Errorf("retrieving final snapshot: %w", err)
	}

	return model.AnalysisResult{
		WordCount:         metrics.WordCount(final),
		UniqueWordCount:   metrics.UniqueWordCount(final),
		CharCount:         metrics.CharacterCount(content),
		CharCountNoSpaces: metrics.CharacterCountNoSpaces(content),
		ChartData: model.ChartData{
			Before: metrics.MostFrequentWords(before, s.chartSize),
			After:  metrics.MostFrequentWords(after, s.chartSize),
		},
		ZipfData: model.ZipfData{
			Before: metrics.ZipfData(before),
			After:  metrics.ZipfData(after),
		},
	}, nil
}
