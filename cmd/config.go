package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory. A missing file is
// fine; defaults and environment variables cover everything.
const DefaultConfigFile = "logistics.yaml"

type Config struct {
	InputsDir  string `yaml:"inputs"`
	OutputsDir string `yaml:"outputs"`
	LogLevel   string `yaml:"logLevel"`
}

func DefaultConfig() Config {
	return Config{
		InputsDir:  "inputs",
		OutputsDir: "outputs",
		LogLevel:   "info",
	}
}

// LoadConfig resolves configuration in increasing precedence: defaults, the
// optional yaml file, then LOGISTICS_* environment variables. Command line
// flags override all of it later, at the CLI layer.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// optional file
	case err != nil:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("LOGISTICS_INPUTS"); v != "" {
		config.InputsDir = v
	}
	if v := os.Getenv("LOGISTICS_OUTPUTS"); v != "" {
		config.OutputsDir = v
	}
	if v := os.Getenv("LOGISTICS_LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}

	return config, nil
}

// SlogLevel maps the configured level name onto slog. Unknown names fall
// back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
