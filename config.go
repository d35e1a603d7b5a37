package scheme

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxReadDepth = 1024
	DefaultMaxEvalDepth = 1024
)

// Config bounds the recursion of the reader and the evaluator.
type Config struct {
	// MaxReadDepth caps list and quote nesting in the input.
	MaxReadDepth int `yaml:"max_read_depth"`
	// MaxEvalDepth caps nested call forms during evaluation.
	MaxEvalDepth int `yaml:"max_eval_depth"`
}

func DefaultConfig() Config {
	return Config{
		MaxReadDepth: DefaultMaxReadDepth,
		MaxEvalDepth: DefaultMaxEvalDepth,
	}
}

// Validate rejects negative limits. Zero selects the default.
func (c Config) Validate() error {
	if c.MaxReadDepth < 0 {
		return fmt.Errorf("max_read_depth must not be negative, got %d", c.MaxReadDepth)
	}
	if c.MaxEvalDepth < 0 {
		return fmt.Errorf("max_eval_depth must not be negative, got %d", c.MaxEvalDepth)
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.MaxReadDepth == 0 {
		c.MaxReadDepth = DefaultMaxReadDepth
	}
	if c.MaxEvalDepth == 0 {
		c.MaxEvalDepth = DefaultMaxEvalDepth
	}
	return c
}

// LoadConfig decodes a YAML document. Missing fields keep their defaults.
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c.withDefaults(), nil
}

func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}
