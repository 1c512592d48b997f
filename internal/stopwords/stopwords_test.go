package stopwords

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultContainsCommonWords(t *testing.T) {
	set := Default()

	for _, w := range []string{"the", "and", "of", "is", "to"} {
		if !set.Contains(w) {
			t.Errorf("Default set should contain %q", w)
		}
	}

	for _, w := range []string{"whale", "zipf", ""} {
		if set.Contains(w) {
			t.Errorf("Default set should not contain %q", w)
		}
	}
}

func TestContainsIsExact(t *testing.T) {
	set := Default()

	// The set stores lowercase terms; uppercase forms survive a
	// case-sensitive analysis and must not match.
	if set.Contains("The") {
		t.Error("Contains should not match 'The' against the lowercase term 'the'")
	}
}

func TestNewNormalizesTerms(t *testing.T) {
	set := New([]string{" The ", "AND", "", "  "})

	if set.Len() != 2 {
		t.Errorf("Expected 2 terms, got %d", set.Len())
	}
	if !set.Contains("the") || !set.Contains("and") {
		t.Error("New should trim and lowercase terms")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stops.yaml")
	content := "terms:\n  - foo\n  - bar\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	set, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if !set.Contains("foo") || !set.Contains("bar") {
		t.Error("Loaded set should contain the listed terms")
	}
	if set.Contains("the") {
		t.Error("Loaded set should not contain terms from the default list")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadFileMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("terms: {not: a list}"), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
