// Package config loads the file-based application configuration shared by the command line tool and the
// server. Values not set in the file keep their defaults.
package config

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
)

// Config is the application configuration, read from an optional yaml file.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Bitmap BitmapConfig `yaml:"bitmap"`
	Output OutputConfig `yaml:"output"`
}

// ServerConfig holds the http server settings.
type ServerConfig struct {
	Port string `yaml:"port"`
}

// BitmapConfig holds decode settings for bitmap containers. Stride takes the same values as the --stride
// flag: auto, packed or aligned.
type BitmapConfig struct {
	Stride string `yaml:"stride"`
}

// OutputConfig controls how output file names are derived from input file names.
type OutputConfig struct {
	Suffix string `yaml:"suffix"`
}

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		Bitmap: BitmapConfig{Stride: "auto"},
		Output: OutputConfig{Suffix: "mod"},
	}
}

// Load reads the yaml file at path on top of the defaults. An empty path or a missing file yields the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
