package pipeline

import "github.com/zipfview/go-text-analyzer/model"

// Build assembles the step list for the given options. The composition order
// is fixed: tokenize, then the optional cleaning steps, then the
// before_stop_words boundary, then the optional stop-word and exclusion
// steps. Cleaning runs before case normalization and stop-word removal so
// those later steps match correctly.
//
// Build always emits the before_stop_words and final labels; when their
// optional steps are disabled they are identity boundaries, so the two
// comparison series exist for every option combination.
func Build(opts model.AnalysisOptions) []Step {
	steps := []Step{{Label: LabelRaw, Kind: KindTokenize}}

	if opts.RemovePunctuation {
		steps = append(steps, Step{Label: LabelCleanedPunct, Kind: KindStripPunctuation})
	}
	if opts.FilterAlpha {
		steps = append(steps, Step{Label: LabelCleanedAlpha, Kind: KindFilterAlpha})
	}
	if !opts.CaseSensitive {
		steps = append(steps, Step{Label: LabelNormalized, Kind: KindLowercase})
	}

	steps = append(steps, Step{Label: LabelBeforeStopWords, Kind: KindIdentity})

	if opts.RemoveStopWords {
		steps = append(steps, Step{Label: LabelAfterStopWords, Kind: KindRemoveStopWords})
	}

	if words := opts.ExcludedWords(); len(words) > 0 {
		steps = append(steps, Step{Label: LabelFinal, Kind: KindExclude, Words: words})
	} else {
		steps = append(steps, Step{Label: LabelFinal, Kind: KindIdentity})
	}

	return steps
}
