package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 128, cfg.Dimension)
	assert.Equal(t, 5, cfg.Search.TopK)
	assert.Equal(t, 5, cfg.Decode.TopK)
	assert.Equal(t, 3, cfg.Cluster.Count)
	assert.Equal(t, 3, cfg.Corpus.SentencesPerDocument)
}

func TestLoad_ParsesYAMLAndFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dimension: 64\nsearch:\n  top_k: 10\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.Dimension)
	assert.Equal(t, 10, cfg.Search.TopK)
	assert.Equal(t, 5, cfg.Decode.TopK, "unset fields fall back to defaults")
	assert.Equal(t, 3, cfg.Cluster.Count)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dimension: [not an int\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TEXTVEC_DIMENSION", "32")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Dimension)
}

func TestLoad_EnvOverrideIgnoresGarbage(t *testing.T) {
	t.Setenv("TEXTVEC_DIMENSION", "banana")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.Dimension)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	in := &AppConfig{
		Dimension: 16,
		Search:    SearchConfig{TopK: 7},
		Decode:    DecodeConfig{TopK: 2},
		Cluster:   ClusterConfig{Count: 4},
		Corpus:    CorpusConfig{SentencesPerDocument: 1},
	}
	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
