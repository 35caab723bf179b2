// Package search ranks document collections against a query encoding.
package search

import (
	"sort"

	"textvec/internal/domain"
	"textvec/internal/vector"
)

// DefaultTopK bounds the result count when the caller passes topK <= 0.
const DefaultTopK = 5

// Rank encodes the query once, re-encodes every document and scores it by
// cosine similarity against the query vector. Documents are never cached
// between calls. Results are sorted by descending score, ties broken by
// ascending original index, and truncated to topK.
func Rank(enc domain.Encoder, query string, documents []string, topK int) []domain.SearchResult {
	if topK <= 0 {
		topK = DefaultTopK
	}
	queryVec := enc.Encode(query)
	results := make([]domain.SearchResult, len(documents))
	for i, doc := range documents {
		// both vectors come from the same encoder, so lengths agree
		score, _ := vector.CosineSimilarity(queryVec, enc.Encode(doc))
		results[i] = domain.SearchResult{Text: doc, Score: score, Index: i}
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Index < results[j].Index
	})
	if topK > len(results) {
		topK = len(results)
	}
	return results[:topK]
}
