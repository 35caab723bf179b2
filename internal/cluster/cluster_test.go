package cluster

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textvec/internal/domain"
)

// stubEncoder places texts at fixed points so assignments are exact.
type stubEncoder struct {
	dim  int
	vecs map[string][]float64
}

func (s *stubEncoder) Encode(text string) []float64 {
	if v, ok := s.vecs[text]; ok {
		return v
	}
	return make([]float64, s.dim)
}

func (s *stubEncoder) Dimension() int { return s.dim }

var _ domain.Encoder = (*stubEncoder)(nil)

func twoGroupEncoder() *stubEncoder {
	return &stubEncoder{
		dim: 2,
		vecs: map[string][]float64{
			"left-1":  {-10, 0},
			"left-2":  {-9, 1},
			"left-3":  {-11, -1},
			"right-1": {10, 0},
			"right-2": {9, 1},
			"right-3": {11, -1},
		},
	}
}

func TestAssign_EmptyInput(t *testing.T) {
	clusters := Assign(twoGroupEncoder(), nil, 3, rand.New(rand.NewSource(1)))
	assert.Empty(t, clusters)
}

func TestAssign_KeyRange(t *testing.T) {
	enc := twoGroupEncoder()
	texts := []string{"left-1", "right-1"}

	clusters := Assign(enc, texts, 4, rand.New(rand.NewSource(1)))
	require.Len(t, clusters, 4)
	for i := 0; i < 4; i++ {
		_, ok := clusters[i]
		assert.True(t, ok, "cluster %d missing", i)
	}
}

func TestAssign_PartitionsInput(t *testing.T) {
	enc := twoGroupEncoder()
	texts := []string{"left-1", "left-2", "left-3", "right-1", "right-2", "right-3"}

	clusters := Assign(enc, texts, 3, rand.New(rand.NewSource(5)))
	require.Len(t, clusters, 3)

	var all []string
	for _, members := range clusters {
		all = append(all, members...)
	}
	sort.Strings(all)
	want := append([]string(nil), texts...)
	sort.Strings(want)
	assert.Equal(t, want, all, "every text appears in exactly one cluster")
}

func TestAssign_EveryTextItsOwnCentroid(t *testing.T) {
	enc := twoGroupEncoder()
	texts := []string{"left-1", "left-2", "left-3", "right-1", "right-2", "right-3"}

	// k equals the text count, so the draw must take every text as a
	// centroid and each text sits at distance zero from its own.
	clusters := Assign(enc, texts, len(texts), rand.New(rand.NewSource(3)))
	require.Len(t, clusters, len(texts))
	for idx, members := range clusters {
		assert.Len(t, members, 1, "cluster %d should hold exactly one text", idx)
	}
}

func TestAssign_TwoTextsTwoClusters(t *testing.T) {
	enc := twoGroupEncoder()

	clusters := Assign(enc, []string{"left-1", "right-1"}, 2, rand.New(rand.NewSource(8)))
	require.Len(t, clusters, 2)

	var all []string
	for _, members := range clusters {
		require.Len(t, members, 1)
		all = append(all, members...)
	}
	sort.Strings(all)
	assert.Equal(t, []string{"left-1", "right-1"}, all)
}

func TestAssign_MoreClustersThanTexts(t *testing.T) {
	enc := twoGroupEncoder()
	texts := []string{"left-1", "right-1"}

	clusters := Assign(enc, texts, 5, rand.New(rand.NewSource(2)))
	require.Len(t, clusters, 5)

	nonEmpty := 0
	total := 0
	for _, members := range clusters {
		total += len(members)
		if len(members) > 0 {
			nonEmpty++
		}
	}
	assert.Equal(t, 2, total)
	assert.LessOrEqual(t, nonEmpty, 2, "at most one centroid per text")
}

func TestAssign_TiesGoToLowestIndex(t *testing.T) {
	// every text encodes to the same point, so all centroid distances tie
	enc := &stubEncoder{dim: 2, vecs: map[string][]float64{
		"a": {1, 1}, "b": {1, 1}, "c": {1, 1},
	}}

	clusters := Assign(enc, []string{"a", "b", "c"}, 2, rand.New(rand.NewSource(9)))
	require.Len(t, clusters, 2)
	assert.Len(t, clusters[0], 3)
	assert.Empty(t, clusters[1])
}

func TestAssign_SingleCluster(t *testing.T) {
	enc := twoGroupEncoder()
	texts := []string{"left-1", "right-1", "right-2"}

	clusters := Assign(enc, texts, 1, rand.New(rand.NewSource(4)))
	require.Len(t, clusters, 1)
	assert.Equal(t, texts, clusters[0], "single cluster keeps input order")
}

func TestAssign_DefaultClusterCount(t *testing.T) {
	enc := twoGroupEncoder()
	texts := []string{"left-1", "left-2", "right-1", "right-2"}

	clusters := Assign(enc, texts, 0, rand.New(rand.NewSource(6)))
	assert.Len(t, clusters, DefaultClusters)
}
