// Package config loads the optional rscc settings file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"rscc/interpreter"
)

const (
	// EnvVar names an explicit settings file.
	EnvVar = "RSCC_CONFIG"
	// DefaultFile is looked up in the working directory when EnvVar is unset.
	DefaultFile = ".rscc.yaml"
)

type Config struct {
	// MaxDepth bounds evaluator recursion. Loops count one level per
	// iteration.
	MaxDepth int `yaml:"max_depth"`
	// Banner prints the start/success banners around a file run.
	Banner bool `yaml:"banner"`
	// Trace logs pipeline phases to stderr.
	Trace bool `yaml:"trace"`

	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
}

func Default() Config {
	return Config{
		MaxDepth:    interpreter.DefaultMaxDepth,
		Banner:      true,
		Prompt:      "rscc> ",
		HistoryFile: "~/.rscc_history",
	}
}

// Decode reads YAML settings over the defaults. Unknown keys are an error.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if cfg.MaxDepth <= 0 || cfg.MaxDepth > interpreter.MaxDepthLimit {
		return Config{}, fmt.Errorf("max_depth must be between 1 and %d, got %d", interpreter.MaxDepthLimit, cfg.MaxDepth)
	}
	return cfg, nil
}

func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Load reads the file named by $RSCC_CONFIG, else ./.rscc.yaml when it
// exists, else returns the defaults.
func Load() (Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return LoadFile(path)
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return LoadFile(DefaultFile)
	}
	return Default(), nil
}

// HistoryPath expands a leading "~/" in HistoryFile. An empty result turns
// history off.
func (c Config) HistoryPath() string {
	p := c.HistoryFile
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, p[2:])
}
