// Package embedding owns the vocabulary embedding table and the text
// encoder/decoder built on top of it.
package embedding

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/viterin/vek"

	"textvec/internal/tokenizer"
	"textvec/internal/vector"
	"textvec/internal/vocab"
)

// Model holds one fixed-length unit vector per vocabulary id. The dimension
// is set at construction and constant thereafter. Randomness enters only
// through NewModel (fresh initialization) — encoding and decoding are
// deterministic for a fixed table.
type Model struct {
	dim     int
	vocab   *vocab.Vocabulary
	vectors [][]float64
}

// NewModel draws a fresh random unit vector for every vocabulary id.
// Components are sampled uniformly from [-1, 1) and the vector is then
// L2-normalized; a zero-magnitude draw is left as-is. A nil rng falls back
// to a time-seeded source.
func NewModel(v *vocab.Vocabulary, dim int, rng *rand.Rand) *Model {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	vectors := make([][]float64, v.Size())
	for id := range vectors {
		vec := make([]float64, dim)
		for i := range vec {
			vec[i] = rng.Float64()*2 - 1
		}
		vector.Normalize(vec)
		vectors[id] = vec
	}
	return &Model{dim: dim, vocab: v, vectors: vectors}
}

// Dimension returns the vector dimension D.
func (m *Model) Dimension() int { return m.dim }

// VocabSize returns the number of vocabulary entries.
func (m *Model) VocabSize() int { return m.vocab.Size() }

// Vocab returns the model's vocabulary.
func (m *Model) Vocab() *vocab.Vocabulary { return m.vocab }

// Encode maps text to the unit-normalized componentwise mean of its known
// tokens' vectors. Unknown tokens are skipped silently; if nothing
// resolves (empty tokenization or all tokens unknown) the all-zero vector
// of length D is returned.
func (m *Model) Encode(text string) []float64 {
	sum := make([]float64, m.dim)
	count := 0
	for _, tok := range tokenizer.Tokenize(text) {
		id, ok := m.vocab.ID(tok)
		if !ok {
			continue
		}
		vek.Add_Inplace(sum, m.vectors[id])
		count++
	}
	if count == 0 {
		return sum
	}
	vek.MulNumber_Inplace(sum, 1/float64(count))
	vector.Normalize(sum)
	return sum
}

// Decode returns up to topK vocabulary words ranked by descending cosine
// similarity to vec. Ties keep first-seen vocabulary order. A vector of
// the wrong length fails with vector.ErrDimensionMismatch.
func (m *Model) Decode(vec []float64, topK int) ([]string, error) {
	if len(vec) != m.dim {
		return nil, fmt.Errorf("decode: %w: got %d, want %d", vector.ErrDimensionMismatch, len(vec), m.dim)
	}
	n := m.vocab.Size()
	sims := make([]float64, n)
	for id := 0; id < n; id++ {
		sim, err := vector.CosineSimilarity(vec, m.vectors[id])
		if err != nil {
			return nil, err
		}
		sims[id] = sim
	}
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	sort.SliceStable(ids, func(i, j int) bool { return sims[ids[i]] > sims[ids[j]] })
	if topK < 0 {
		topK = 0
	}
	if topK > n {
		topK = n
	}
	words := make([]string, 0, topK)
	for _, id := range ids[:topK] {
		words = append(words, m.vocab.Word(id))
	}
	return words, nil
}
