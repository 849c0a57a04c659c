package features

import (
	"strings"
	"unicode"

	"text2label.com/fex/gazetteer"
	"text2label.com/fex/types"
)

// Derived attribute keys. These double as the field names the template
// catalog refers to, so a typo here breaks the catalog, not a single token.
const (
	AttrLower      = "wl"
	AttrShape      = "shape"
	AttrShapeDegen = "shaped"

	Attr2Digit     = "2d"
	Attr4Digit     = "4d"
	AttrDigitDash  = "d&-"
	AttrDigitSlash = "d&/"
	AttrDigitComma = "d&,"
	AttrDigitDot   = "d&."

	AttrPossessive = "as"
	AttrAllDigit   = "ad"
	AttrAllOther   = "ao"
	AttrHasDigit   = "cd"
	AttrHasSymbol  = "cs"

	AttrDollar    = "do"
	AttrRupee     = "rs"
	AttrColon     = "col"
	AttrAmpersand = "and"
	AttrJi        = "ji"
	AttrBaje      = "baje"

	AttrNNP  = "nnp"
	AttrNNC  = "nnc"
	AttrNNPC = "nnpc"
	AttrQC   = "qc"
)

const affixLength = 4

var prefixAttrs = [affixLength]string{"p1", "p2", "p3", "p4"}
var suffixAttrs = [affixLength]string{"s1", "s2", "s3", "s4"}

// Devanagari markers: the honorific postposition and the time-of-day word.
const (
	markerJi   = "जी"
	markerBaje = "बजे"
)

const (
	yes = "yes"
	no  = "no"
)

// Enricher computes the per-token derived attributes the template engine
// reads. It holds the immutable gazetteer index and carries no other state,
// so one enricher serves any number of sequences.
type Enricher struct {
	gaz *gazetteer.Index
}

func NewEnricher(gaz *gazetteer.Index) *Enricher {
	return &Enricher{gaz: gaz}
}

func (e *Enricher) EnrichSequence(seq types.Sequence) {
	for _, token := range seq {
		e.Enrich(token)
	}
}

func (e *Enricher) Enrich(token *types.Token) {
	w := token.W

	token.Set(AttrLower, strings.ToLower(w))
	shape := Shape(w)
	token.Set(AttrShape, shape)
	token.Set(AttrShapeDegen, Degenerate(shape))

	runes := []rune(w)
	for n := 1; n <= affixLength; n++ {
		prefix, suffix := "", ""
		if len(runes) >= n {
			prefix = string(runes[:n])
			suffix = string(runes[len(runes)-n:])
		}
		token.Set(prefixAttrs[n-1], prefix)
		token.Set(suffixAttrs[n-1], suffix)
	}

	token.Set(Attr2Digit, yn(len(runes) == 2 && allDigits(w)))
	token.Set(Attr4Digit, yn(len(runes) == 4 && allDigits(w)))

	token.Set(AttrDigitDash, yn(digitsAndSep(w, '-')))
	token.Set(AttrDigitSlash, yn(digitsAndSep(w, '/')))
	token.Set(AttrDigitComma, yn(digitsAndSep(w, ',')))
	token.Set(AttrDigitDot, yn(digitsAndSep(w, '.')))

	token.Set(AttrPossessive, yn(w == "'s"))
	token.Set(AttrAllDigit, yn(allDigits(w)))
	token.Set(AttrAllOther, yn(allOther(w)))
	token.Set(AttrHasDigit, yn(containsDigit(w)))
	token.Set(AttrHasSymbol, yn(containsSymbol(w)))

	token.Set(AttrDollar, yn(strings.Contains(w, "$")))
	token.Set(AttrRupee, yn(strings.Contains(w, "rs")))
	token.Set(AttrColon, yn(strings.Contains(w, ":")))
	token.Set(AttrAmpersand, yn(strings.Contains(w, "&")))
	token.Set(AttrJi, yn(strings.Contains(w, markerJi)))
	token.Set(AttrBaje, yn(strings.Contains(w, markerBaje)))

	pos := token.POS
	token.Set(AttrNNP, yn(strings.Contains(pos, "NNP")))
	token.Set(AttrNNC, yn(strings.Contains(pos, "NNC")))
	// nnpc shares the NNC substring test. Models trained on this feature set
	// depend on that identity; changing it invalidates their weights.
	token.Set(AttrNNPC, yn(strings.Contains(pos, "NNC")))
	token.Set(AttrQC, yn(strings.Contains(pos, "QC")))

	for _, flag := range e.gaz.Flags() {
		value := "0"
		if e.gaz.Contains(flag.Category, w) {
			value = "1"
		}
		token.Set(flag.Key, value)
	}
}

func yn(v bool) string {
	if v {
		return yes
	}
	return no
}

func allDigits(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// digitsAndSep reports whether w is made of digits and the separator only,
// with at least one of each. Digits alone or separators alone do not count.
func digitsAndSep(w string, sep rune) bool {
	hasDigit, hasSep := false, false
	for _, r := range w {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case r == sep:
			hasSep = true
		default:
			return false
		}
	}
	return hasDigit && hasSep
}

// allOther is true when no rune is alphanumeric; the empty token counts.
func allOther(w string) bool {
	for _, r := range w {
		if isAlnum(r) {
			return false
		}
	}
	return true
}

func containsDigit(w string) bool {
	for _, r := range w {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func containsSymbol(w string) bool {
	for _, r := range w {
		if !isAlnum(r) {
			return true
		}
	}
	return false
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
