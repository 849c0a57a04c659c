package gazetteer

import (
	"sort"

	"text2label.com/fex/types"
	"text2label.com/fex/utils"
)

// Flag is one category's binding to the token attribute key its membership
// flag is written under.
type Flag struct {
	Category string
	Key      string
}

// Index is the read-only gazetteer: exact-match term sets per category.
// It is built once at startup and never mutated afterwards, so it is safe
// for concurrent readers.
type Index struct {
	terms       map[string]map[string]struct{}
	flags       []Flag
	fingerprint uint64
}

// New builds an index from in-memory term lists, keeping category order.
func New(categories []types.GazetteerCategory, terms map[string][]string) *Index {
	idx := &Index{terms: make(map[string]map[string]struct{}, len(categories))}
	var fingerprintParts []string
	for _, category := range categories {
		set := make(map[string]struct{}, len(terms[category.Name]))
		for _, term := range terms[category.Name] {
			set[term] = struct{}{}
		}
		idx.terms[category.Name] = set
		idx.flags = append(idx.flags, Flag{Category: category.Name, Key: category.Flag})

		sorted := make([]string, 0, len(set))
		for term := range set {
			sorted = append(sorted, term)
		}
		sort.Strings(sorted)
		fingerprintParts = append(fingerprintParts, category.Name)
		fingerprintParts = append(fingerprintParts, sorted...)
	}
	idx.fingerprint = utils.HashStrings(fingerprintParts)
	return idx
}

// Contains reports exact-match membership. No normalization: lookups are
// case-sensitive and whole-string.
func (idx *Index) Contains(category string, token string) bool {
	_, ok := idx.terms[category][token]
	return ok
}

// Flags returns the category-to-attribute bindings in catalog order.
func (idx *Index) Flags() []Flag {
	return idx.flags
}

func (idx *Index) Size(category string) int {
	return len(idx.terms[category])
}

// Fingerprint identifies the loaded word lists; logged at startup so emitted
// feature files can be traced back to a dictionary revision.
func (idx *Index) Fingerprint() uint64 {
	return idx.fingerprint
}
