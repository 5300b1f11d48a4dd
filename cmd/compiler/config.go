package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls ambient driver concerns only — never core language
// behavior (§6.A): how identifiers are printed, and whether the error
// sink stops at the first diagnostic or collects every one it sees.
type Config struct {
	Output  string `yaml:"output"`   // "text" or "test"
	OnError string `yaml:"on_error"` // "abort" or "collect"
}

func defaultConfig() Config {
	return Config{Output: "text", OnError: "collect"}
}

// loadConfig reads path if it exists, falling back to defaultConfig when
// it doesn't — compiler.yaml is optional, not required.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Output == "" {
		cfg.Output = "text"
	}
	if cfg.OnError == "" {
		cfg.OnError = "collect"
	}
	return cfg, nil
}
