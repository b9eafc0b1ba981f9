package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ehorn/torchcross/core/model"
)

// PersonConfig is one crossing participant as declared in the input file.
type PersonConfig struct {
	Name string  `json:"name"`
	Time float64 `json:"time"`
}

// Config is the full program configuration: the population to move plus
// logging and report settings.
type Config struct {
	People  []PersonConfig `json:"people"`
	Logging LoggingConfig  `json:"logging"`
	Report  ReportConfig   `json:"report"`
}

// Load reads a YAML or JSON configuration file. Environment variables
// prefixed with CROSSING_ override file values, "__" separating nested keys.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("CROSSING_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "crossing_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Logging.SetDefaults()
	cfg.Report.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the population and every section.
func (c Config) Validate() error {
	for i, p := range c.People {
		if p.Name == "" {
			return fmt.Errorf("people[%d]: name is required", i)
		}
		if p.Time <= 0 {
			return fmt.Errorf("people[%d] %q: time must be positive, got %v", i, p.Name, p.Time)
		}
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return c.Report.Validate()
}

// Definitions converts the population to ingestion input, preserving file
// order so ID assignment is reproducible.
func (c Config) Definitions() []model.Definition {
	defs := make([]model.Definition, len(c.People))
	for i, p := range c.People {
		defs[i] = model.Definition{Name: p.Name, Speed: p.Time}
	}
	return defs
}
