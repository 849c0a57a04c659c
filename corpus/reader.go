package corpus

import (
	"bufio"
	"io"
	"strings"

	"text2label.com/fex/logger"
	"text2label.com/fex/types"
)

// Reader parses the tokenized corpus format: one token record per line,
// field values joined by a single-character separator in header order, a
// blank line between sentences.
type Reader struct {
	separator string
	fields    []string
}

func NewReader(cfg types.Configuration) Reader {
	return Reader{separator: cfg.Separator, fields: cfg.Fields}
}

// Sequences streams the sentences of rd. The channel closes when the input
// is exhausted; a read error is logged and ends the stream early.
func (r Reader) Sequences(rd io.Reader) <-chan types.Sequence {
	out := make(chan types.Sequence)
	go func() {
		defer close(out)
		fexLogger := logger.NewLogger("Corpus reader")

		var seq types.Sequence
		scanner := bufio.NewScanner(rd)
		for scanner.Scan() {
			line := strings.TrimRight(scanner.Text(), "\r")
			if line == "" {
				if len(seq) > 0 {
					out <- seq
					seq = nil
				}
				continue
			}
			seq = append(seq, r.parseLine(line))
		}
		if err := scanner.Err(); err != nil {
			fexLogger.Error().Err(err).Msg("Failed reading corpus input")
			return
		}
		if len(seq) > 0 {
			out <- seq
		}
	}()
	return out
}

// parseLine maps the separated columns onto the header fields. A record
// shorter than the header leaves the trailing fields empty; extra columns
// are ignored.
func (r Reader) parseLine(line string) *types.Token {
	columns := strings.Split(line, r.separator)
	token := &types.Token{}
	for i, field := range r.fields {
		value := ""
		if i < len(columns) {
			value = columns[i]
		}
		token.Set(field, value)
	}
	return token
}
