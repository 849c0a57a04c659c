package features

import (
	"fmt"

	"text2label.com/fex/types"
)

// Unigram-eligible fields in emission order. Gazetteer flag keys are
// appended at construction time, since they are configuration.
var unigramFields = []string{
	types.FieldWord, AttrLower, types.FieldPOS, types.FieldChunk, AttrShape, AttrShapeDegen,
	"p1", "p2", "p3", "p4",
	"s1", "s2", "s3", "s4",
	Attr2Digit, Attr4Digit, AttrDigitDash, AttrDigitSlash, AttrDigitComma, AttrDigitDot,
	AttrAllDigit, AttrAllOther,
	AttrHasDigit, AttrHasSymbol,
	AttrPossessive, AttrDollar, AttrRupee, AttrNNP, AttrNNC, AttrQC, AttrNNPC,
	AttrColon, AttrAmpersand, AttrJi, AttrBaje,
}

// Bigram-eligible fields.
var bigramFields = []string{
	types.FieldWord, types.FieldPOS, types.FieldChunk, AttrShapeDegen,
}

type template struct {
	field   string
	offsets [2]int
	bigram  bool
}

// Templates is the fixed expansion catalog: one unigram template per field
// and offset in [-2,2], one bigram template per field and adjacent offset
// pair starting in [-2,1].
type Templates struct {
	templates []template
}

func NewTemplates(gazFlagKeys []string) *Templates {
	fields := make([]string, 0, len(unigramFields)+len(gazFlagKeys))
	fields = append(fields, unigramFields...)
	fields = append(fields, gazFlagKeys...)

	templates := make([]template, 0, 5*len(fields)+4*len(bigramFields))
	for _, field := range fields {
		for offset := -2; offset <= 2; offset++ {
			templates = append(templates, template{field: field, offsets: [2]int{offset, 0}})
		}
	}
	for _, field := range bigramFields {
		for offset := -2; offset <= 1; offset++ {
			templates = append(templates, template{
				field:   field,
				offsets: [2]int{offset, offset + 1},
				bigram:  true,
			})
		}
	}
	return &Templates{templates: templates}
}

// Apply expands the catalog at every anchor position of seq, appending the
// emitted feature strings to the anchor token. An offset outside [0,N) emits
// nothing; a bigram emits only when both positions are in range.
func (ts *Templates) Apply(seq types.Sequence) {
	n := len(seq)
	for t := range seq {
		for _, tpl := range ts.templates {
			p := t + tpl.offsets[0]
			if tpl.bigram {
				if p < 0 || p+1 >= n {
					continue
				}
				seq[t].AppendFeature(fmt.Sprintf("%s[%d/%d]=%s/%s",
					tpl.field, tpl.offsets[0], tpl.offsets[1],
					seq[p].Get(tpl.field), seq[p+1].Get(tpl.field)))
				continue
			}
			if p < 0 || p >= n {
				continue
			}
			seq[t].AppendFeature(fmt.Sprintf("%s[%d]=%s",
				tpl.field, tpl.offsets[0], seq[p].Get(tpl.field)))
		}
	}
}
