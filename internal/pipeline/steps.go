package pipeline

import (
	"strings"
	"unicode"

	"github.com/zipfview/go-text-analyzer/internal/stopwords"
)

// Tokenization rule: a word is a maximal run of non-whitespace characters.
// This is deliberately simple and fixed; every downstream metric counts the
// words this function produces.
func tokenize(text string) []string {
	return strings.Fields(text)
}

// stripPunctuation removes punctuation and symbol runes from each token.
// Tokens that become empty are dropped, so the sequence can only shrink.
func stripPunctuation(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		stripped := strings.Map(func(r rune) rune {
			if unicode.IsPunct(r) || unicode.IsSymbol(r) {
				return -1
			}
			return r
		}, token)
		if stripped != "" {
			out = append(out, stripped)
		}
	}
	return out
}

// filterAlpha keeps only tokens composed entirely of letters.
func filterAlpha(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if isAlpha(token) {
			out = append(out, token)
		}
	}
	return out
}

func isAlpha(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// lowercaseAll maps every token to lowercase.
func lowercaseAll(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, token := range tokens {
		out[i] = strings.ToLower(token)
	}
	return out
}

// removeStopWords drops tokens present in the stop-word set.
func removeStopWords(tokens []string, stops *stopwords.Set) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !stops.Contains(token) {
			out = append(out, token)
		}
	}
	return out
}

// exclude drops tokens matching any of the given words, case-insensitively.
// Words are trimmed before matching; blank entries are ignored.
func exclude(tokens []string, words []string) []string {
	excluded := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			excluded[w] = struct{}{}
		}
	}

	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, drop := excluded[strings.ToLower(token)]; !drop {
			out = append(out, token)
		}
	}
	return out
}
