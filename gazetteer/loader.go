package gazetteer

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"text2label.com/fex/logger"
	"text2label.com/fex/types"
)

// Load reads every configured word list under dirPath and builds the index.
// A missing or unreadable list is an error; the caller treats that as fatal
// before any sequence is processed.
func Load(dirPath string, categories []types.GazetteerCategory) (*Index, error) {
	fexLogger := logger.NewLogger("Gazetteer loader")

	terms := make(map[string][]string, len(categories))
	for _, category := range categories {
		filePath := filepath.Join(dirPath, category.File)
		loaded, err := loadTerms(filePath)
		if err != nil {
			return nil, fmt.Errorf("gazetteer category %q: %w", category.Name, err)
		}
		terms[category.Name] = loaded
		fexLogger.Info().
			Str("category", category.Name).
			Str("file", filePath).
			Int("terms", len(loaded)).
			Msg("Loaded word list")
	}

	idx := New(categories, terms)
	fexLogger.Info().
		Uint64("fingerprint", idx.Fingerprint()).
		Msg("Gazetteer index ready")
	return idx, nil
}

// loadTerms reads one word list: one entry per line, the first
// whitespace-delimited column is the term, the rest of the line is ignored.
func loadTerms(filePath string) ([]string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var terms []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		columns := strings.Fields(scanner.Text())
		if len(columns) == 0 {
			continue
		}
		terms = append(terms, columns[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return terms, nil
}
