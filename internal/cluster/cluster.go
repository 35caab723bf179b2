// Package cluster groups texts around randomly drawn centroids.
package cluster

import (
	"math/rand"
	"time"

	"textvec/internal/domain"
	"textvec/internal/vector"
)

// DefaultClusters is the cluster count used when the caller passes k <= 0.
const DefaultClusters = 3

// Assign encodes every text, draws up to k distinct texts as initial
// centroids and performs exactly one assignment pass: each text joins the
// centroid at minimum Euclidean distance, ties going to the lowest cluster
// index. Centroids are never recomputed and no convergence loop runs, so
// output quality is bounded by the single random draw.
//
// The returned mapping has every key 0..k-1 even when a cluster is empty.
// If k exceeds the number of texts, only len(texts) centroids exist and the
// remaining clusters stay empty. An empty input yields an empty mapping.
func Assign(enc domain.Encoder, texts []string, k int, rng *rand.Rand) map[int][]string {
	clusters := make(map[int][]string)
	if len(texts) == 0 {
		return clusters
	}
	if k <= 0 {
		k = DefaultClusters
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	encoded := make([][]float64, len(texts))
	for i, text := range texts {
		encoded[i] = enc.Encode(text)
	}

	// Rejection-sample distinct text indices for the initial centroids.
	want := k
	if want > len(texts) {
		want = len(texts)
	}
	taken := make(map[int]bool, want)
	centroids := make([][]float64, 0, want)
	for len(centroids) < want {
		idx := rng.Intn(len(texts))
		if taken[idx] {
			continue
		}
		taken[idx] = true
		centroids = append(centroids, encoded[idx])
	}

	for i := 0; i < k; i++ {
		clusters[i] = []string{}
	}

	// Single assignment pass; strict less-than keeps ties on the lowest index.
	for i, text := range texts {
		best := 0
		bestDist, _ := vector.EuclideanDistance(encoded[i], centroids[0])
		for c := 1; c < len(centroids); c++ {
			dist, _ := vector.EuclideanDistance(encoded[i], centroids[c])
			if dist < bestDist {
				bestDist = dist
				best = c
			}
		}
		clusters[best] = append(clusters[best], text)
	}
	return clusters
}
