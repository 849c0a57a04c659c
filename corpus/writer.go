package corpus

import (
	"bufio"
	"io"
	"strings"

	"text2label.com/fex/types"
)

// RenderSequence appends one sequence in tagging format: one token per line,
// the label first and the emitted features after it, tab-separated; a blank
// line closes the sequence. This is the input contract of the downstream
// sequence-labeling trainer.
func RenderSequence(sb *strings.Builder, seq types.Sequence) {
	for _, token := range seq {
		sb.WriteString(token.Label)
		for _, feature := range token.F {
			sb.WriteByte('\t')
			sb.WriteString(feature)
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
}

func Render(seqs []types.Sequence) string {
	var sb strings.Builder
	for _, seq := range seqs {
		RenderSequence(&sb, seq)
	}
	return sb.String()
}

func Write(w io.Writer, seqs []types.Sequence) error {
	bw := bufio.NewWriter(w)
	for _, seq := range seqs {
		var sb strings.Builder
		RenderSequence(&sb, seq)
		if _, err := bw.WriteString(sb.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
