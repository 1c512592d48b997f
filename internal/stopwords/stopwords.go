// Package stopwords provides the static stop-word set used by the stop-word
// removal step. The default English list is embedded at build time; an
// alternative list can be loaded from a YAML file with the same format.
package stopwords

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed stopwords.yaml
var embeddedList []byte

// listFile is the on-disk YAML shape of a stop-word list.
type listFile struct {
	Terms []string `yaml:"terms"`
}

// Set is an immutable stop-word membership set.
type Set struct {
	words map[string]struct{}
}

// New creates a Set from the given terms. Terms are stored lowercased;
// membership checks are exact, so case normalization is expected to have
// happened upstream when a case-insensitive analysis is requested.
func New(terms []string) *Set {
	words := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			words[t] = struct{}{}
		}
	}
	return &Set{words: words}
}

var (
	defaultOnce sync.Once
	defaultSet  *Set
)

// Default returns the embedded English stop-word set.
func Default() *Set {
	defaultOnce.Do(func() {
		var err error
		defaultSet, err = parse(embeddedList)
		if err != nil {
			// The embedded list is fixed at build time; failing to parse it
			// is a packaging bug, not a runtime condition.
			panic(fmt.Sprintf("stopwords: embedded list is malformed: %v", err))
		}
	})
	return defaultSet
}

// LoadFile loads a stop-word list from a YAML file.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stop-word list: %w", err)
	}
	set, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing stop-word list %s: %w", path, err)
	}
	return set, nil
}

func parse(data []byte) (*Set, error) {
	var lf listFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, err
	}
	return New(lf.Terms), nil
}

// Contains reports whether word is a stop word. Matching is exact.
func (s *Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of words in the set.
func (s *Set) Len() int {
	return len(s.words)
}
