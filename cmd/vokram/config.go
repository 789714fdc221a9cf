package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/natefinch/atomic"

	"github.com/revmischa/vokram/pkg/vokram"
)

// Config holds the persistent defaults that command-line flags fall back to
// when not set explicitly.
type Config struct {
	NgramSize int    `json:"ngram_size"`
	NumWords  int    `json:"num_words"`
	MinCount  int    `json:"min_count"`
	LogLevel  string `json:"log_level"`
}

// DefaultConfig creates a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		NgramSize: vokram.DefaultOrder,
		NumWords:  vokram.DefaultMaxWords,
		MinCount:  1,
		LogLevel:  "warn",
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		// If the file doesn't exist, create it with the default config.
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// Warn instead of failing, the program can still run with defaults.
				_, _ = fmt.Fprintf(os.Stderr, "warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
