// Package model defines the request and result types shared between the
// analysis core and the API layer.
package model

import "strings"

// AnalysisOptions controls which transformation steps run during an analysis.
// The zero value disables every optional step; DefaultAnalysisOptions matches
// the options preselected in the submission form.
type AnalysisOptions struct {
	RemovePunctuation bool   `json:"remove_punctuation"`
	FilterAlpha       bool   `json:"filter_alpha"`
	CaseSensitive     bool   `json:"case_sensitive"`
	RemoveStopWords   bool   `json:"remove_stop_words"`
	WordsToExclude    string `json:"words_to_exclude"` // comma-separated, possibly empty
}

// DefaultAnalysisOptions returns the default option set: strip punctuation,
// normalize case, keep everything else.
func DefaultAnalysisOptions() AnalysisOptions {
	return AnalysisOptions{
		RemovePunctuation: true,
	}
}

// ExcludedWords splits WordsToExclude on commas, trims whitespace around each
// entry, and drops blanks. An empty option yields an empty slice.
func (o AnalysisOptions) ExcludedWords() []string {
	if strings.TrimSpace(o.WordsToExclude) == "" {
		return []string{}
	}
	parts := strings.Split(o.WordsToExclude, ",")
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if w := strings.TrimSpace(p); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// WordFrequency is one (word, count) entry of a frequency chart series.
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// ZipfPoint is one (rank, frequency) pair of a Zipf series. Rank is 1-based
// in descending-frequency order; plotting frequency against rank on log-log
// axes shows how closely the text follows Zipf's law.
type ZipfPoint struct {
	Rank      int `json:"rank"`
	Frequency int `json:"frequency"`
}

// ChartData holds the frequency chart series before and after the optional
// stop-word and exclusion steps.
type ChartData struct {
	Before []WordFrequency `json:"before"`
	After  []WordFrequency `json:"after"`
}

// ZipfData holds the rank/frequency series before and after the optional
// stop-word and exclusion steps.
type ZipfData struct {
	Before []ZipfPoint `json:"before"`
	After  []ZipfPoint `json:"after"`
}

// AnalysisResult is the full result record for one analyzed document.
type AnalysisResult struct {
	WordCount         int       `json:"word_count"`
	UniqueWordCount   int       `json:"unique_word_count"`
	CharCount         int       `json:"char_count"`
	CharCountNoSpaces int       `json:"char_count_no_spaces"`
	ChartData         ChartData `json:"chart_data"`
	ZipfData          ZipfData  `json:"zipf_data"`
}
