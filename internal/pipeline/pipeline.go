// Package pipeline implements the text-processing pipeline: an ordered list
// of labeled transformation steps executed over a token sequence, recording a
// snapshot of the sequence after every step.
//
// Steps are plain data (a kind plus an optional parameter), not closures, so
// a step list can be built, inspected, and tested in isolation from its
// execution.
package pipeline

import (
	"fmt"

	internalErrors "github.com/zipfview/go-text-analyzer/internal/errors"
	"github.com/zipfview/go-text-analyzer/internal/stopwords"
)

// Label identifies a snapshot recorded during a pipeline run. Labels are a
// fixed enumeration so a misspelled label is a compile error, not a silently
// empty snapshot.
type Label string

const (
	LabelRaw             Label = "raw"
	LabelCleanedPunct    Label = "cleaned_punct"
	LabelCleanedAlpha    Label = "cleaned_alpha"
	LabelNormalized      Label = "normalized"
	LabelBeforeStopWords Label = "before_stop_words"
	LabelAfterStopWords  Label = "after_stop_words"
	LabelFinal           Label = "final"
)

// Kind discriminates the step variants.
type Kind int

const (
	KindTokenize Kind = iota
	KindStripPunctuation
	KindFilterAlpha
	KindLowercase
	KindRemoveStopWords
	KindExclude
	KindIdentity
)

// String returns the step kind name for logs and error messages.
func (k Kind) String() string {
	switch k {
	case KindTokenize:
		return "tokenize"
	case KindStripPunctuation:
		return "strip_punctuation"
	case KindFilterAlpha:
		return "filter_alpha"
	case KindLowercase:
		return "lowercase"
	case KindRemoveStopWords:
		return "remove_stop_words"
	case KindExclude:
		return "exclude"
	case KindIdentity:
		return "identity"
	default:
		return "unknown"
	}
}

// Step is one labeled transformation. Words carries the exclusion list and is
// only meaningful for KindExclude.
type Step struct {
	Label Label
	Kind  Kind
	Words []string
}

// Snapshots holds the token sequence recorded after each step, keyed by the
// step's label and preserving execution order. Every stored sequence is an
// independent copy.
type Snapshots struct {
	order []Label
	seqs  map[Label][]string
}

func newSnapshots(capacity int) *Snapshots {
	return &Snapshots{
		order: make([]Label, 0, capacity),
		seqs:  make(map[Label][]string, capacity),
	}
}

func (s *Snapshots) record(label Label, tokens []string) {
	cp := make([]string, len(tokens))
	copy(cp, tokens)
	s.order = append(s.order, label)
	s.seqs[label] = cp
}

// Get returns the sequence recorded under label. A label that was never
// recorded is an error, never an empty sequence.
func (s *Snapshots) Get(label Label) ([]string, error) {
	seq, ok := s.seqs[label]
	if !ok {
		return nil, internalErrors.NewSnapshotMissingError(string(label))
	}
	return seq, nil
}

// Labels returns the recorded labels in execution order.
func (s *Snapshots) Labels() []Label {
	cp := make([]Label, len(s.order))
	copy(cp, s.order)
	return cp
}

// Len returns the number of recorded snapshots.
func (s *Snapshots) Len() int {
	return len(s.order)
}

// Runner executes step lists. It carries the stop-word set used by the
// stop-word removal step; everything else a step needs travels on the step
// itself.
type Runner struct {
	stops *stopwords.Set
}

// NewRunner creates a Runner using the given stop-word set.
func NewRunner(stops *stopwords.Set) (*Runner, error) {
	if stops == nil {
		return nil, fmt.Errorf("stop-word set cannot be nil")
	}
	return &Runner{stops: stops}, nil
}

// Run executes the steps in order over text, recording a snapshot after each
// step. It returns the final sequence and the complete snapshot set. The
// returned final sequence equals the snapshot under the last step's label.
//
// The step list must be non-empty, must start with the tokenizer, and must
// not repeat labels; violations are configuration errors.
func (r *Runner) Run(text string, steps []Step) ([]string, *Snapshots, error) {
	if err := validate(steps); err != nil {
		return nil, nil, err
	}

	snapshots := newSnapshots(len(steps))
	current := tokenize(text)
	snapshots.record(steps[0].Label, current)

	for _, step := range steps[1:] {
		next, err := r.apply(step, current)
		if err != nil {
			return nil, nil, fmt.Errorf("executing step '%s': %w", step.Label, err)
		}
		current = next
		snapshots.record(step.Label, current)
	}

	final, err := snapshots.Get(steps[len(steps)-1].Label)
	if err != nil {
		return nil, nil, err
	}
	return final, snapshots, nil
}

func validate(steps []Step) error {
	if len(steps) == 0 {
		return internalErrors.ErrEmptyPipeline
	}
	if steps[0].Kind != KindTokenize {
		return internalErrors.NewPipelineConfigError(
			fmt.Sprintf("first step must tokenize, got '%s'", steps[0].Kind))
	}
	seen := make(map[Label]struct{}, len(steps))
	for i, step := range steps {
		if i > 0 && step.Kind == KindTokenize {
			return internalErrors.NewPipelineConfigError(
				"tokenize step is only valid in first position")
		}
		if _, dup := seen[step.Label]; dup {
			return internalErrors.NewPipelineConfigError(
				fmt.Sprintf("duplicate label '%s'", step.Label))
		}
		seen[step.Label] = struct{}{}
	}
	return nil
}

// apply dispatches a single non-tokenizer step. Every step is a pure function
// from token sequence to token sequence.
func (r *Runner) apply(step Step, tokens []string) ([]string, error) {
	switch step.Kind {
	case KindStripPunctuation:
		return stripPunctuation(tokens), nil
	case KindFilterAlpha:
		return filterAlpha(tokens), nil
	case KindLowercase:
		return lowercaseAll(tokens), nil
	case KindRemoveStopWords:
		return removeStopWords(tokens, r.stops), nil
	case KindExclude:
		return exclude(tokens, step.Words), nil
	case KindIdentity:
		return tokens, nil
	default:
		return nil, internalErrors.NewPipelineConfigError(
			fmt.Sprintf("unknown step kind %d", step.Kind))
	}
}
