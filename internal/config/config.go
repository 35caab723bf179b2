package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// SearchConfig configures ranked semantic search defaults.
type SearchConfig struct {
	TopK int `yaml:"top_k"`
}

// DecodeConfig configures nearest-word decoding defaults.
type DecodeConfig struct {
	TopK int `yaml:"top_k"`
}

// ClusterConfig configures the single-pass clustering defaults.
type ClusterConfig struct {
	Count int `yaml:"count"`
}

// CorpusConfig configures how input files are split into documents.
type CorpusConfig struct {
	SentencesPerDocument int `yaml:"sentences_per_document"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Dimension int           `yaml:"dimension"`
	Search    SearchConfig  `yaml:"search"`
	Decode    DecodeConfig  `yaml:"decode"`
	Cluster   ClusterConfig `yaml:"cluster"`
	Corpus    CorpusConfig  `yaml:"corpus"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/textvec/config.yaml.
// If neither exists, it writes defaults to ~/.config/textvec/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnvOverrides(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textvec", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Dimension: 128,
		Search:    SearchConfig{TopK: 5},
		Decode:    DecodeConfig{TopK: 5},
		Cluster:   ClusterConfig{Count: 3},
		Corpus:    CorpusConfig{SentencesPerDocument: 3},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Dimension <= 0 {
		cfg.Dimension = 128
	}
	if cfg.Search.TopK <= 0 {
		cfg.Search.TopK = 5
	}
	if cfg.Decode.TopK <= 0 {
		cfg.Decode.TopK = 5
	}
	if cfg.Cluster.Count <= 0 {
		cfg.Cluster.Count = 3
	}
	if cfg.Corpus.SentencesPerDocument <= 0 {
		cfg.Corpus.SentencesPerDocument = 3
	}
}

// applyEnvOverrides lets a .env or the environment override the vector
// dimension without editing the config file.
func applyEnvOverrides(cfg *AppConfig) {
	if raw := os.Getenv("TEXTVEC_DIMENSION"); raw != "" {
		if dim, err := strconv.Atoi(raw); err == nil && dim > 0 {
			cfg.Dimension = dim
		}
	}
}
