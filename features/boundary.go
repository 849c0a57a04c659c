package features

import (
	"text2label.com/fex/types"
)

// Sequence boundary markers.
const (
	BOS = "__BOS__"
	EOS = "__EOS__"
)

// MarkBoundaries appends BOS to the first and EOS to the last token. A
// singleton sequence gets both; an empty sequence gets neither.
func MarkBoundaries(seq types.Sequence) {
	if len(seq) == 0 {
		return
	}
	seq[0].AppendFeature(BOS)
	seq[len(seq)-1].AppendFeature(EOS)
}
