// Package config loads application configuration from a YAML file with
// environment-variable overrides. Precedence: flags > STUDYHUB_* env vars >
// config file > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultContentFile is the content document read when nothing else is
// configured, resolved relative to the working directory.
const DefaultContentFile = "learning.json"

// Config holds all application configuration.
type Config struct {
	// ContentPath is the path to the learning content JSON document.
	ContentPath string `yaml:"content_path"`

	// BreakMinutes is the study-break reminder threshold in minutes.
	BreakMinutes int `yaml:"break_minutes"`

	// LLMProvider selects the interview-coach provider; empty means
	// auto-discover from standard API key env vars.
	LLMProvider string `yaml:"llm_provider"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ContentPath:  DefaultContentFile,
		BreakMinutes: 20,
	}
}

// BreakThreshold returns the reminder threshold as a duration.
func (c Config) BreakThreshold() time.Duration {
	return time.Duration(c.BreakMinutes) * time.Minute
}

// Load reads configuration from path, layering env overrides on top of the
// file and defaults. A missing file is not an error; a file that exists
// but cannot be parsed is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults apply.
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(&cfg)

	if cfg.BreakMinutes <= 0 {
		cfg.BreakMinutes = Default().BreakMinutes
	}
	if cfg.ContentPath == "" {
		cfg.ContentPath = DefaultContentFile
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if p := os.Getenv("STUDYHUB_CONTENT"); p != "" {
		cfg.ContentPath = p
	}
	if p := os.Getenv("STUDYHUB_LLM_PROVIDER"); p != "" {
		cfg.LLMProvider = p
	}
	if m := os.Getenv("STUDYHUB_BREAK_MINUTES"); m != "" {
		var v int
		if _, err := fmt.Sscanf(m, "%d", &v); err == nil && v > 0 {
			cfg.BreakMinutes = v
		}
	}
}

// DefaultPath resolves the config file location: $STUDYHUB_CONFIG, then
// $XDG_CONFIG_HOME/studyhub/config.yaml, then ~/.config/studyhub/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv("STUDYHUB_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "studyhub", "config.yaml"), nil
}
