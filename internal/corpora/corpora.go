// Package corpora loads the bundled example texts from a directory of .txt
// files. A missing directory and a failed read are reported as errors, never
// silently converted into an empty listing or error text fed to the analysis
// pipeline.
package corpora

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	internalErrors "github.com/zipfview/go-text-analyzer/internal/errors"
)

// Loader lists and reads example corpus files from a single directory.
type Loader struct {
	dir string
}

// NewLoader creates a Loader over dir.
func NewLoader(dir string) (*Loader, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("corpora directory cannot be empty")
	}
	return &Loader{dir: dir}, nil
}

// List returns the sorted names of the .txt files in the corpora directory.
// A missing directory is ErrNoCorpora; an empty directory is an empty list.
func (l *Loader) List() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, internalErrors.ErrNoCorpora
		}
		return nil, fmt.Errorf("listing corpora directory %s: %w", l.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Read returns the content of the named corpus file. Names are file names
// only; anything resembling a path is rejected.
func (l *Loader) Read(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", internalErrors.NewValidationError("file", "invalid corpus name")
	}
	if !strings.HasSuffix(name, ".txt") {
		return "", internalErrors.NewValidationError("file", "corpus files must end in .txt")
	}

	data, err := os.ReadFile(filepath.Join(l.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", internalErrors.NewCorpusNotFoundError(name)
		}
		return "", fmt.Errorf("reading corpus %s: %w", name, err)
	}
	return string(data), nil
}
