// Package service exposes the embedding system behind a single context
// object holding the dimension, vocabulary and embedding table.
package service

import (
	"log"
	"math/rand"

	"textvec/internal/cluster"
	"textvec/internal/domain"
	"textvec/internal/embedding"
	"textvec/internal/search"
	"textvec/internal/vector"
	"textvec/internal/vocab"
)

const (
	// DefaultDimension is used when Initialize receives dimension <= 0.
	DefaultDimension = 128

	// DefaultDecodeTopK bounds Decode results when topK <= 0.
	DefaultDecodeTopK = 5
)

// Service is the process state of one embedding system: dimension,
// vocabulary and embedding table, replaced together by Initialize or
// ImportModel. It carries no locking — callers follow the single-writer
// discipline and all reads are synchronous.
type Service struct {
	defaultDim  int
	model       *embedding.Model
	initialized bool
	rng         *rand.Rand
	logger      *log.Logger
}

// New creates an uninitialized service. A defaultDimension <= 0 falls back
// to DefaultDimension; rng may be nil for a time-seeded source and logger
// may be nil for the standard logger.
func New(defaultDimension int, rng *rand.Rand, logger *log.Logger) *Service {
	if defaultDimension <= 0 {
		defaultDimension = DefaultDimension
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		defaultDim: defaultDimension,
		model:      embedding.NewModel(vocab.Build(nil), defaultDimension, rng),
		rng:        rng,
		logger:     logger,
	}
}

// Initialize builds the vocabulary from the corpus in first-seen order,
// draws a fresh random embedding table and swaps both in together with the
// dimension. An empty corpus is valid and yields an empty vocabulary.
func (s *Service) Initialize(corpus []string, dimension int) {
	if dimension <= 0 {
		dimension = s.defaultDim
	}
	s.model = embedding.NewModel(vocab.Build(corpus), dimension, s.rng)
	s.initialized = true
}

// Encode maps text to a D-dimensional vector; see embedding.Model.Encode.
func (s *Service) Encode(text string) []float64 {
	return s.model.Encode(text)
}

// Embed is an alias for Encode. A caller-supplied dimension that differs
// from the configured one is reported as a non-fatal warning and the call
// proceeds with the configured dimension.
func (s *Service) Embed(text string, dimension int) []float64 {
	if dimension > 0 && dimension != s.model.Dimension() {
		s.logger.Printf("embed: requested dimension %d ignored, model uses %d", dimension, s.model.Dimension())
	}
	return s.model.Encode(text)
}

// Decode returns the topK vocabulary words nearest to vec by cosine
// similarity. topK <= 0 uses DefaultDecodeTopK.
func (s *Service) Decode(vec []float64, topK int) ([]string, error) {
	if topK <= 0 {
		topK = DefaultDecodeTopK
	}
	return s.model.Decode(vec, topK)
}

// CosineSimilarity compares two equal-length vectors; see package vector.
func (s *Service) CosineSimilarity(a, b []float64) (float64, error) {
	return vector.CosineSimilarity(a, b)
}

// EuclideanDistance compares two equal-length vectors; see package vector.
func (s *Service) EuclideanDistance(a, b []float64) (float64, error) {
	return vector.EuclideanDistance(a, b)
}

// SemanticSearch ranks documents against the query; see search.Rank.
func (s *Service) SemanticSearch(query string, documents []string, topK int) []domain.SearchResult {
	return search.Rank(s.model, query, documents, topK)
}

// Cluster assigns texts to k clusters in a single pass; see cluster.Assign.
func (s *Service) Cluster(texts []string, k int) map[int][]string {
	return cluster.Assign(s.model, texts, k, s.rng)
}

// ExportModel serializes the current vocabulary and embedding table.
func (s *Service) ExportModel() (string, error) {
	return embedding.Export(s.model)
}

// ImportModel replaces dimension, vocabulary and embedding table from a
// blob produced by ExportModel. The state is only swapped once the blob
// has parsed and validated, so a malformed blob leaves the service as-is.
func (s *Service) ImportModel(blob string) error {
	model, err := embedding.Import(blob)
	if err != nil {
		return err
	}
	s.model = model
	s.initialized = true
	return nil
}

// Info reports vocabulary size, dimension and whether the service has been
// initialized by a corpus build or a model import.
func (s *Service) Info() domain.Info {
	return domain.Info{
		VocabularySize: s.model.VocabSize(),
		Dimension:      s.model.Dimension(),
		Initialized:    s.initialized,
	}
}
