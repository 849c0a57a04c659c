package features

import (
	"fmt"

	"text2label.com/fex/types"
)

// Disjunctive emits one feature per in-range offset of an inclusive window,
// all named after the full requested range. Anchored at token t, the window
// [-4,-1] therefore yields up to four independent entries, each carrying one
// preceding token's value.
func Disjunctive(seq types.Sequence, t int, field string, begin, end int) {
	name := fmt.Sprintf("%s[%d..%d]", field, begin, end)
	for offset := begin; offset <= end; offset++ {
		p := t + offset
		if p < 0 || p >= len(seq) {
			continue
		}
		seq[t].AppendFeature(fmt.Sprintf("%s=%s", name, seq[p].Get(field)))
	}
}
