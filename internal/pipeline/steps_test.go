package pipeline

import (
	"reflect"
	"testing"

	"github.com/zipfview/go-text-analyzer/internal/stopwords"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", []string{}},
		{"simple words", "hello world", []string{"hello", "world"}},
		{"leading/trailing spaces", "  hello world  ", []string{"hello", "world"}},
		{"multiple spaces between words", "hello   world", []string{"hello", "world"}},
		{"newlines and tabs", "hello\nworld\tagain", []string{"hello", "world", "again"}},
		{"punctuation stays attached", "The cat sat. The dog sat!", []string{"The", "cat", "sat.", "The", "dog", "sat!"}},
		{"only whitespace", " \t\n ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripPunctuation(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"no punctuation", []string{"cat", "dog"}, []string{"cat", "dog"}},
		{"trailing punctuation", []string{"sat.", "sat!"}, []string{"sat", "sat"}},
		{"internal punctuation", []string{"don't", "state-of-the-art"}, []string{"dont", "stateoftheart"}},
		{"symbols", []string{"$100", "a+b"}, []string{"100", "ab"}},
		{"token vanishes", []string{"cat", "!!!", "dog"}, []string{"cat", "dog"}},
		{"empty input", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripPunctuation(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("stripPunctuation(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripPunctuationNeverGrows(t *testing.T) {
	inputs := [][]string{
		{"a.", "b!", "c?"},
		{"...", "---", "word"},
		{},
	}
	for _, input := range inputs {
		got := stripPunctuation(input)
		if len(got) > len(input) {
			t.Errorf("stripPunctuation(%v) grew the sequence: %v", input, got)
		}
	}
}

func TestFilterAlpha(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"all alpha", []string{"cat", "Dog"}, []string{"cat", "Dog"}},
		{"numbers dropped", []string{"cat", "123", "dog"}, []string{"cat", "dog"}},
		{"mixed tokens dropped", []string{"abc123", "v2", "word"}, []string{"word"}},
		{"unicode letters kept", []string{"café", "naïve"}, []string{"café", "naïve"}},
		{"empty input", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterAlpha(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("filterAlpha(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLowercaseAll(t *testing.T) {
	got := lowercaseAll([]string{"The", "CAT", "sat"})
	want := []string{"the", "cat", "sat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lowercaseAll = %v, want %v", got, want)
	}
}

func TestLowercaseAllIdempotent(t *testing.T) {
	input := []string{"The", "Cat", "SAT"}
	once := lowercaseAll(input)
	twice := lowercaseAll(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("lowercaseAll is not idempotent: %v vs %v", once, twice)
	}
}

func TestRemoveStopWords(t *testing.T) {
	stops := stopwords.New([]string{"the", "and"})

	got := removeStopWords([]string{"the", "cat", "and", "dog"}, stops)
	want := []string{"cat", "dog"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("removeStopWords = %v, want %v", got, want)
	}
}

func TestExclude(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		words []string
		want  []string
	}{
		{"basic exclusion", []string{"the", "cat", "sat", "the", "dog", "sat"}, []string{"the", "sat"}, []string{"cat", "dog"}},
		{"case-insensitive match", []string{"The", "cat"}, []string{"the"}, []string{"cat"}},
		{"words trimmed", []string{"the", "cat", "sat"}, []string{" the ", "sat "}, []string{"cat"}},
		{"blank entries ignored", []string{"cat", "dog"}, []string{"", "  "}, []string{"cat", "dog"}},
		{"empty word list", []string{"cat"}, []string{}, []string{"cat"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exclude(tt.input, tt.words)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("exclude(%v, %v) = %v, want %v", tt.input, tt.words, got, tt.want)
			}
		})
	}
}

func TestExcludeIdempotent(t *testing.T) {
	input := []string{"the", "cat", "sat", "the", "dog"}
	words := []string{"the", "sat"}
	once := exclude(input, words)
	twice := exclude(once, words)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("exclude is not idempotent: %v vs %v", once, twice)
	}
}
