// internal/config/config.go
//
// Runtime configuration for the wordsleuth CLI.
// Precedence, lowest to highest: built-in defaults, environment
// variables (with .env support via godotenv), an optional YAML run
// file, then command-line flags applied by the CLI itself.

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything a run needs besides the word lists themselves.
type Config struct {
	AnswersFile string `yaml:"answersFile"` // answers list path ("" = embedded default)
	CorpusFile  string `yaml:"corpusFile"`  // frequency corpus path ("" = embedded default)
	Opener      string `yaml:"opener"`      // fixed round-one guess
	Strategy    string `yaml:"strategy"`    // "frequency" | "letters"
	MaxRounds   int    `yaml:"maxRounds"`   // guess budget per attempt
	Limit       int    `yaml:"limit"`       // cap on batch attempts, 0 = all
	TrackSolved bool   `yaml:"trackSolved"` // exclude solved answers from later attempts
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Strategy:  "frequency",
		MaxRounds: 6,
	}
}

// FromEnv loads .env (best effort) and overlays environment variables on
// the defaults.
func FromEnv() Config {
	_ = godotenv.Load()
	c := Default()
	c.AnswersFile = getEnv("SOLVER_ANSWERS_FILE", c.AnswersFile)
	c.CorpusFile = getEnv("SOLVER_CORPUS_FILE", c.CorpusFile)
	c.Opener = getEnv("SOLVER_OPENER", c.Opener)
	c.Strategy = getEnv("SOLVER_STRATEGY", c.Strategy)
	if v := os.Getenv("SOLVER_MAX_ROUNDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxRounds = n
		}
	}
	return c
}

// ApplyFile overlays a YAML run file onto c. Zero-valued fields in the
// file leave the current values untouched.
func (c *Config) ApplyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var file Config
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if file.AnswersFile != "" {
		c.AnswersFile = file.AnswersFile
	}
	if file.CorpusFile != "" {
		c.CorpusFile = file.CorpusFile
	}
	if file.Opener != "" {
		c.Opener = file.Opener
	}
	if file.Strategy != "" {
		c.Strategy = file.Strategy
	}
	if file.MaxRounds > 0 {
		c.MaxRounds = file.MaxRounds
	}
	if file.Limit > 0 {
		c.Limit = file.Limit
	}
	if file.TrackSolved {
		c.TrackSolved = true
	}
	return nil
}

// Validate rejects values the solver cannot run with.
func (c Config) Validate() error {
	switch c.Strategy {
	case "frequency", "letters":
	default:
		return fmt.Errorf("unknown strategy %q (want frequency or letters)", c.Strategy)
	}
	if c.MaxRounds <= 0 {
		return fmt.Errorf("maxRounds must be positive, got %d", c.MaxRounds)
	}
	if c.Opener != "" && len(c.Opener) != 5 {
		return fmt.Errorf("opener must be 5 letters, got %q", c.Opener)
	}
	return nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
