package types

// Field names fixed by the corpus format header.
const (
	FieldLabel = "y"
	FieldWord  = "w"
	FieldPOS   = "pos"
	FieldChunk = "chk"
)

// Token is one word-level record of a sentence. The fixed fields come from
// the corpus reader; derived attributes are added by the enricher and read
// back by the template engine through Get. F is append-only: every pipeline
// stage only adds feature strings, duplicates included.
type Token struct {
	Label string
	W     string
	POS   string
	Chk   string

	attrs map[string]string
	F     []string
}

func NewToken(label, w, pos, chk string) *Token {
	return &Token{Label: label, W: w, POS: pos, Chk: chk}
}

// Get returns the value of a fixed field or derived attribute. A field that
// was never set reads as the empty string.
func (token *Token) Get(field string) string {
	switch field {
	case FieldLabel:
		return token.Label
	case FieldWord:
		return token.W
	case FieldPOS:
		return token.POS
	case FieldChunk:
		return token.Chk
	}
	return token.attrs[field]
}

func (token *Token) Set(field string, value string) {
	switch field {
	case FieldLabel:
		token.Label = value
	case FieldWord:
		token.W = value
	case FieldPOS:
		token.POS = value
	case FieldChunk:
		token.Chk = value
	default:
		if token.attrs == nil {
			token.attrs = make(map[string]string)
		}
		token.attrs[field] = value
	}
}

func (token *Token) AppendFeature(feature string) {
	token.F = append(token.F, feature)
}

// Sequence is one sentence. Positions are 0-based and define the context
// window for the template engine.
type Sequence []*Token
