package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"syntaxa/internal/source"
	"syntaxa/internal/translate"
)

// DefaultFile is the configuration file looked up when none is given.
const DefaultFile = "syntaxa.yaml"

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"console", "json"}
)

// Config is the root of a configuration file.
type Config struct {
	// VegetationTypes is the vegetation type export (CSV).
	VegetationTypes string `yaml:"vegetation_types"`
	// Rules are doublestar patterns of rule tables; matches are concatenated.
	Rules []string `yaml:"rules"`
	// Corrections is an optional YAML file with extra correction pairs.
	Corrections string `yaml:"corrections,omitempty"`
	// Encoding of the CSV sources: utf-8 or latin-1.
	Encoding        string           `yaml:"encoding"`
	IncludeMapCodes bool             `yaml:"include_mapcodes"`
	Translate       translate.Config `yaml:"translate"`
	Log             LogConfig        `yaml:"log"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		VegetationTypes: filepath.Join("data", "CMSiVegetationTypes.csv"),
		Rules:           []string{filepath.Join("data", "rules", "*.csv")},
		Encoding:        string(source.EncodingLatin1),
		Translate:       translate.DefaultConfig(),
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadFile loads a configuration file. Keys absent from the file keep
// their default value; relative paths are resolved against the file's
// directory.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg.resolvePaths(filepath.Dir(path))

	return cfg, nil
}

// Parse parses YAML data on top of DefaultConfig.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return cfg, nil
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func (c *Config) resolvePaths(dir string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}

		return filepath.Join(dir, p)
	}

	c.VegetationTypes = resolve(c.VegetationTypes)
	c.Corrections = resolve(c.Corrections)

	for i := range c.Rules {
		c.Rules[i] = resolve(c.Rules[i])
	}
}

// Validate checks the configuration and returns all problems found.
func (c *Config) Validate() error {
	var errs []error

	if c.VegetationTypes == "" {
		errs = append(errs, errors.New("vegetation_types is required"))
	}

	if len(c.Rules) == 0 {
		errs = append(errs, errors.New("at least one rules pattern is required"))
	}

	if _, err := source.ParseEncoding(c.Encoding); err != nil {
		errs = append(errs, err)
	}

	if !slices.Contains(logLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level %q must be one of %v", c.Log.Level, logLevels))
	}

	if !slices.Contains(logFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format %q must be one of %v", c.Log.Format, logFormats))
	}

	return errors.Join(errs...)
}
