package fen

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config is the file/environment form of the parser options.
type Config struct {
	Strict bool `yaml:"strict" envconfig:"STRICT"`
}

// LoadConfig reads a YAML config from path (skipped when path is empty) and then
// applies FEN_* environment overrides on top of it.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read fen config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode fen config %s: %w", path, err)
		}
	}
	if err := envconfig.Process("fen", &cfg); err != nil {
		return Config{}, fmt.Errorf("fen config from env: %w", err)
	}
	return cfg, nil
}

// Options converts the config into parser options.
func (c Config) Options() []Option {
	return []Option{WithStrict(c.Strict)}
}
