package features

import (
	"text2label.com/fex/gazetteer"
	"text2label.com/fex/types"
)

// Left and right disjunctive context windows for the surface form.
const (
	leftWindowBegin  = -4
	leftWindowEnd    = -1
	rightWindowBegin = 1
	rightWindowEnd   = 4
)

// Extractor runs the whole feature pass over one sequence: enrichment,
// template expansion, disjunctive context and boundary markers. It is a pure
// function of the sequence and the immutable gazetteer, so one extractor is
// safe for concurrent use across sequences.
type Extractor struct {
	enricher  *Enricher
	templates *Templates
}

func NewExtractor(gaz *gazetteer.Index) *Extractor {
	flags := gaz.Flags()
	seen := make(map[string]bool, len(flags))
	keys := make([]string, 0, len(flags))
	for _, flag := range flags {
		if seen[flag.Key] {
			continue
		}
		seen[flag.Key] = true
		keys = append(keys, flag.Key)
	}
	return &Extractor{
		enricher:  NewEnricher(gaz),
		templates: NewTemplates(keys),
	}
}

func (ex *Extractor) Extract(seq types.Sequence) {
	ex.enricher.EnrichSequence(seq)
	ex.templates.Apply(seq)
	for t := range seq {
		Disjunctive(seq, t, types.FieldWord, leftWindowBegin, leftWindowEnd)
		Disjunctive(seq, t, types.FieldWord, rightWindowBegin, rightWindowEnd)
	}
	MarkBoundaries(seq)
}
