package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Items   ItemsConfig   `yaml:"items"`
	Dump    DumpConfig    `yaml:"dump"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// ItemsConfig points at a YAML item table. An empty Registry selects the
// built-in table.
type ItemsConfig struct {
	Registry string `yaml:"registry"`
}

type DumpConfig struct {
	Kind   string `yaml:"kind"`
	All    bool   `yaml:"all"`
	Verify bool   `yaml:"verify"`
}

func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Dump:    DumpConfig{Kind: "item"},
	}
}

// Load reads path on top of Default. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "text", "json":
	default:
		return fmt.Errorf("logging.format: unknown format %q", c.Logging.Format)
	}
	if c.Dump.Kind == "" {
		return fmt.Errorf("dump.kind: must not be empty")
	}
	return nil
}
