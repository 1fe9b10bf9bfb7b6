package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-postpress/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// defaultConfigFile is looked up in the working directory when --config is
// not given. Its absence is not an error.
const defaultConfigFile = "postpress.yaml"

// Config holds CLI configuration.
type Config struct {
	Content ContentConfig `yaml:"content"`
	Related RelatedConfig `yaml:"related"`
}

// ContentConfig defines the document source.
type ContentConfig struct {
	Dir string `yaml:"dir"`
}

// RelatedConfig defines related-post defaults.
type RelatedConfig struct {
	Limit int `yaml:"limit"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{Dir: "content/posts"},
		Related: RelatedConfig{Limit: 3},
	}
}

// LoadConfig loads configuration from path. An empty path means "use
// ./postpress.yaml if it exists, defaults otherwise"; an explicit path that
// does not exist is an error (no silent fallback).
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator's own flag
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}

// resolveConfig loads the config file and applies flag overrides.
func resolveConfig(flags globalFlags) (*Config, error) {
	cfg, err := LoadConfig(flags.config)
	if err != nil {
		return nil, err
	}
	if flags.content != "" {
		cfg.Content.Dir = flags.content
	}
	if flags.limit > 0 {
		cfg.Related.Limit = flags.limit
	}
	return cfg, nil
}
