// Package config handles loading and managing Resistwatch configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/resistwatch/resistwatch/pkg/scoring"
)

// Config is the top-level configuration for Resistwatch.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Scoring ScoringConfig `yaml:"scoring"`
	Archive ArchiveConfig `yaml:"archive"`
}

// ServerConfig controls the HTTP daemon.
type ServerConfig struct {
	Port        string `yaml:"port"`
	DatabaseURL string `yaml:"database_url"`
	APIKey      string `yaml:"api_key"`
}

// ScoringConfig overrides the engine's category weights and recency bonus.
// Category weights must sum to 1.0.
type ScoringConfig struct {
	Weights           map[string]float64 `yaml:"weights"`
	RecencyBonus      *int               `yaml:"recency_bonus"`
	RecencyWindowDays *int               `yaml:"recency_window_days"`
}

// ArchiveConfig selects the assessment archive backend.
type ArchiveConfig struct {
	Backend   string `yaml:"backend"` // local, s3, gcs
	LocalPath string `yaml:"local_path"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "8080",
			DatabaseURL: "postgres://localhost:5432/resistwatch?sslmode=disable",
		},
		Archive: ArchiveConfig{
			Backend:   "local",
			LocalPath: "/tmp/resistwatch-data",
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// EngineWeights merges the configured scoring overrides onto the engine
// defaults, validating that category weights still sum to 1.0.
func (c *Config) EngineWeights() (scoring.Weights, error) {
	w := scoring.Defaults()

	for name, value := range c.Scoring.Weights {
		cat := scoring.Category(name)
		if !cat.Valid() {
			return w, fmt.Errorf("unknown scoring weight category %q", name)
		}
		switch cat {
		case scoring.CategoryPublicStatements:
			w.PublicStatements = value
		case scoring.CategoryLegislativeAction:
			w.LegislativeAction = value
		case scoring.CategoryPublicEngagement:
			w.PublicEngagement = value
		case scoring.CategorySocialMedia:
			w.SocialMedia = value
		case scoring.CategoryConsistency:
			w.Consistency = value
		}
	}

	sum := w.PublicStatements + w.LegislativeAction + w.PublicEngagement + w.SocialMedia + w.Consistency
	if sum < 0.999 || sum > 1.001 {
		return w, fmt.Errorf("category weights sum to %.3f, want 1.0", sum)
	}

	if c.Scoring.RecencyBonus != nil {
		w.RecencyBonus = *c.Scoring.RecencyBonus
	}
	if c.Scoring.RecencyWindowDays != nil {
		w.RecencyWindowDays = *c.Scoring.RecencyWindowDays
	}

	return w, nil
}

// FromEnv applies environment variable overrides; env wins over file values.
func (c *Config) FromEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Server.DatabaseURL = v
	}
	if v := os.Getenv("API_KEY"); v != "" {
		c.Server.APIKey = v
	}
	if v := os.Getenv("STORAGE_BACKEND"); v != "" {
		c.Archive.Backend = v
	}
	if v := os.Getenv("LOCAL_STORAGE_PATH"); v != "" {
		c.Archive.LocalPath = v
	}
	if v := os.Getenv("ARCHIVE_BUCKET"); v != "" {
		c.Archive.Bucket = v
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		c.Archive.Region = v
	}
	if v := os.Getenv("S3_ENDPOINT"); v != "" {
		c.Archive.Endpoint = v
	}
}
