// Package metrics computes descriptive statistics over token sequences: word
// and character counts, frequency rankings, and rank/frequency (Zipf) data.
// Every function is pure and total; empty inputs yield empty results.
package metrics

import (
	"sort"
	"unicode"

	"github.com/zipfview/go-text-analyzer/model"
)

// WordCount returns the number of tokens in the sequence.
func WordCount(tokens []string) int {
	return len(tokens)
}

// UniqueWordCount returns the number of distinct tokens. Equality is
// case-sensitive; case normalization happens upstream when requested.
func UniqueWordCount(tokens []string) int {
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		seen[token] = struct{}{}
	}
	return len(seen)
}

// CharacterCount returns the number of characters in text, whitespace
// included. Characters are Unicode code points, not bytes.
func CharacterCount(text string) int {
	count := 0
	for range text {
		count++
	}
	return count
}

// CharacterCountNoSpaces returns the number of non-whitespace characters in
// text.
func CharacterCountNoSpaces(text string) int {
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}

// rankedEntry pairs a word's count with its first occurrence position, the
// tie-break that keeps rankings deterministic.
type rankedEntry struct {
	word      string
	count     int
	firstSeen int
}

// rankByFrequency builds the descending-frequency ordering of distinct
// words. Ties are broken by first occurrence in the sequence.
func rankByFrequency(tokens []string) []rankedEntry {
	counts := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))
	for i, token := range tokens {
		if _, ok := counts[token]; !ok {
			firstSeen[token] = i
		}
		counts[token]++
	}

	entries := make([]rankedEntry, 0, len(counts))
	for word, count := range counts {
		entries = append(entries, rankedEntry{word: word, count: count, firstSeen: firstSeen[word]})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].firstSeen < entries[j].firstSeen
	})
	return entries
}

// MostFrequentWords returns up to n (word, count) pairs in descending count
// order. n <= 0 yields an empty list.
func MostFrequentWords(tokens []string, n int) []model.WordFrequency {
	if n <= 0 {
		return []model.WordFrequency{}
	}

	entries := rankByFrequency(tokens)
	if len(entries) > n {
		entries = entries[:n]
	}

	out := make([]model.WordFrequency, len(entries))
	for i, e := range entries {
		out[i] = model.WordFrequency{Word: e.word, Count: e.count}
	}
	return out
}

// ZipfData returns one (rank, frequency) pair per distinct word, ranked in
// descending frequency with the same tie-break as MostFrequentWords. Ranks
// are 1-based and strictly increasing.
func ZipfData(tokens []string) []model.ZipfPoint {
	entries := rankByFrequency(tokens)

	out := make([]model.ZipfPoint, len(entries))
	for i, e := range entries {
		out[i] = model.ZipfPoint{Rank: i + 1, Frequency: e.count}
	}
	return out
}
