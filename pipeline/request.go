package pipeline

// Request is one corpus chunk to featurize. Text holds separator-joined
// token records, one per line, blank lines between sentences.
type Request struct {
	Text string `json:"text"`
	Tid  string `json:"tid"`
}
