// Package config loads the configuration of geomfmt.
//
// Settings come from three layers, each overriding the previous one: the
// defaults, an optional TOML file named by GEOMFMT_CONFIG, and environment
// variables prefixed with GEOMFMT_.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"honnef.co/go/geom/units"
)

// FileEnv names the environment variable holding the path of the TOML file.
const FileEnv = "GEOMFMT_CONFIG"

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

type Config struct {
	LogLevel slog.Level `toml:"log_level" envconfig:"LOG_LEVEL"`

	// Format is the report format, "text" or "yaml".
	Format string `toml:"format" envconfig:"FORMAT"`

	// ChunkSize is the number of bytes read from stdin per parser feed.
	ChunkSize int `toml:"chunk_size" envconfig:"CHUNK_SIZE"`

	FontSize      float64 `toml:"font_size" envconfig:"FONT_SIZE"`
	RootFontSize  float64 `toml:"root_font_size" envconfig:"ROOT_FONT_SIZE"`
	ContainerSize float64 `toml:"container_size" envconfig:"CONTAINER_SIZE"`
}

func Default() Config {
	return Config{
		LogLevel:     slog.LevelWarn,
		Format:       FormatText,
		ChunkSize:    4096,
		FontSize:     16,
		RootFontSize: 16,
	}
}

// Basis returns the reference sizes for resolving relative lengths.
func (c *Config) Basis() *units.Basis {
	return &units.Basis{
		FontSize:      c.FontSize,
		RootFontSize:  c.RootFontSize,
		ContainerSize: c.ContainerSize,
	}
}

func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.ChunkSize)
	}
	if c.FontSize < 0 || c.RootFontSize < 0 || c.ContainerSize < 0 {
		return errors.New("basis sizes must not be negative")
	}
	return nil
}

// Load returns the configuration from the defaults, the file named by
// GEOMFMT_CONFIG and the environment.
func Load() (*Config, error) {
	cfg := Default()
	if path := os.Getenv(FileEnv); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := decodeFile(data, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := envconfig.Process("GEOMFMT", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decodeFile(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("%d:%d: %s", row, col, derr.Error())
		}
		return err
	}
	return nil
}
