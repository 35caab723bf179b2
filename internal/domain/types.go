package domain

// SearchResult is a scored document returned by semantic search.
// Index is the document's position in the input slice, so callers can map
// results back to their own metadata.
type SearchResult struct {
	Text  string
	Score float64
	Index int
}

// Info describes the current state of an embedding model.
type Info struct {
	VocabularySize int
	Dimension      int
	Initialized    bool
}

// Encoder converts free text into a fixed-dimension numeric vector.
type Encoder interface {
	Encode(text string) []float64
	Dimension() int
}
