package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zipfview/go-text-analyzer/internal/stopwords"
	"github.com/zipfview/go-text-analyzer/model"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(stopwords.Default(), 0)
	require.NoError(t, err, "Failed to create analyzer service")
	return svc
}

func TestAnalyzeScenario(t *testing.T) {
	svc := newTestService(t)

	opts := model.AnalysisOptions{RemovePunctuation: true}
	result, err := svc.Analyze("The cat sat. The dog sat!", opts)
	require.NoError(t, err)

	assert.Equal(t, 6, result.WordCount, "Word count should cover the final sequence")
	assert.Equal(t, 4, result.UniqueWordCount)
	assert.Equal(t, 25, result.CharCount, "Character count should cover the raw text")
	assert.Equal(t, 20, result.CharCountNoSpaces)

	require.GreaterOrEqual(t, len(result.ChartData.After), 2)
	assert.Equal(t, model.WordFrequency{Word: "the", Count: 2}, result.ChartData.After[0],
		"Tie should be broken by first occurrence")
	assert.Equal(t, model.WordFrequency{Word: "sat", Count: 2}, result.ChartData.After[1])
}

func TestAnalyzeEmptyText(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Analyze("", model.DefaultAnalysisOptions())
	require.NoError(t, err, "Empty text must not be an error")

	assert.Zero(t, result.WordCount)
	assert.Zero(t, result.UniqueWordCount)
	assert.Zero(t, result.CharCount)
	assert.Zero(t, result.CharCountNoSpaces)
	assert.Empty(t, result.ChartData.Before)
	assert.Empty(t, result.ChartData.After)
	assert.Empty(t, result.ZipfData.Before)
	assert.Empty(t, result.ZipfData.After)
}

func TestAnalyzeStopWordComparison(t *testing.T) {
	svc := newTestService(t)

	opts := model.AnalysisOptions{RemovePunctuation: true, RemoveStopWords: true}
	result, err := svc.Analyze("The cat sat on the mat.", opts)
	require.NoError(t, err)

	// Stop words appear in the before series but not the after series.
	beforeWords := make(map[string]bool)
	for _, wf := range result.ChartData.Before {
		beforeWords[wf.Word] = true
	}
	afterWords := make(map[string]bool)
	for _, wf := range result.ChartData.After {
		afterWords[wf.Word] = true
	}

	assert.True(t, beforeWords["the"], "before series should include stop words")
	assert.False(t, afterWords["the"], "after series should exclude stop words")
	assert.True(t, afterWords["cat"])

	assert.Equal(t, 3, result.WordCount)
	assert.Len(t, result.ZipfData.Before, 5, "one Zipf point per distinct word before removal")
	assert.Len(t, result.ZipfData.After, 3, "one Zipf point per distinct word after removal")
}

func TestAnalyzeExclusion(t *testing.T) {
	svc := newTestService(t)

	opts := model.AnalysisOptions{RemovePunctuation: true, WordsToExclude: "the, sat"}
	result, err := svc.Analyze("The cat sat. The dog sat!", opts)
	require.NoError(t, err)

	assert.Equal(t, 2, result.WordCount)
	assert.Equal(t, 2, result.UniqueWordCount)

	// Exclusion applies after the comparison boundary.
	assert.Len(t, result.ZipfData.Before, 4)
	assert.Len(t, result.ZipfData.After, 2)
}

func TestAnalyzeCaseSensitive(t *testing.T) {
	svc := newTestService(t)

	opts := model.AnalysisOptions{CaseSensitive: true}
	result, err := svc.Analyze("The the THE", opts)
	require.NoError(t, err)

	assert.Equal(t, 3, result.WordCount)
	assert.Equal(t, 3, result.UniqueWordCount, "Distinct casings stay distinct when case sensitive")
}

func TestAnalyzeChartSeriesCapped(t *testing.T) {
	svc, err := NewService(stopwords.Default(), 3)
	require.NoError(t, err)

	result, err := svc.Analyze("a b c d e f g h", model.AnalysisOptions{})
	require.NoError(t, err)

	assert.Len(t, result.ChartData.Before, 3, "chart series should be capped")
	assert.Len(t, result.ChartData.After, 3)
	assert.Len(t, result.ZipfData.After, 8, "Zipf series is never capped")
}

func TestNewServiceNilStops(t *testing.T) {
	_, err := NewService(nil, 50)
	assert.Error(t, err)
}
