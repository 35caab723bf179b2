package embedding

import (
	"encoding/json"
	"errors"
	"fmt"

	"textvec/internal/vocab"
)

// ErrMalformedModel is returned when an imported blob cannot be parsed or
// fails structural validation.
var ErrMalformedModel = errors.New("malformed model blob")

type modelBlob struct {
	Dimension  int            `json:"dimension"`
	Vocabulary []string       `json:"vocabulary"`
	Embeddings []embeddingRow `json:"embeddings"`
}

type embeddingRow struct {
	ID     int       `json:"id"`
	Vector []float64 `json:"vector"`
}

// Export serializes the model as a self-describing JSON blob holding the
// dimension, the ordered vocabulary and one [id, vector] row per entry.
func Export(m *Model) (string, error) {
	blob := modelBlob{
		Dimension:  m.dim,
		Vocabulary: m.vocab.Words(),
		Embeddings: make([]embeddingRow, len(m.vectors)),
	}
	for id, vec := range m.vectors {
		blob.Embeddings[id] = embeddingRow{ID: id, Vector: vec}
	}
	data, err := json.Marshal(blob)
	if err != nil {
		return "", fmt.Errorf("exporting model: %w", err)
	}
	return string(data), nil
}

// Import parses a blob produced by Export and rebuilds the model,
// including the token lookup derived from vocabulary order. The blob must
// declare a positive dimension, cover every vocabulary id exactly once and
// carry vectors of the declared length; anything else fails with
// ErrMalformedModel.
func Import(blob string) (*Model, error) {
	var parsed modelBlob
	if err := json.Unmarshal([]byte(blob), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedModel, err)
	}
	if parsed.Dimension <= 0 {
		return nil, fmt.Errorf("%w: non-positive dimension %d", ErrMalformedModel, parsed.Dimension)
	}
	n := len(parsed.Vocabulary)
	if len(parsed.Embeddings) != n {
		return nil, fmt.Errorf("%w: %d embeddings for %d vocabulary entries", ErrMalformedModel, len(parsed.Embeddings), n)
	}
	vectors := make([][]float64, n)
	for _, row := range parsed.Embeddings {
		if row.ID < 0 || row.ID >= n {
			return nil, fmt.Errorf("%w: embedding id %d out of range [0, %d)", ErrMalformedModel, row.ID, n)
		}
		if vectors[row.ID] != nil {
			return nil, fmt.Errorf("%w: duplicate embedding id %d", ErrMalformedModel, row.ID)
		}
		if len(row.Vector) != parsed.Dimension {
			return nil, fmt.Errorf("%w: vector for id %d has length %d, want %d", ErrMalformedModel, row.ID, len(row.Vector), parsed.Dimension)
		}
		vectors[row.ID] = row.Vector
	}
	return &Model{
		dim:     parsed.Dimension,
		vocab:   vocab.FromWords(parsed.Vocabulary),
		vectors: vectors,
	}, nil
}
