// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/wirefmt/lib/codec"
	"github.com/bureau-foundation/wirefmt/lib/logfile"
	"github.com/bureau-foundation/wirefmt/lib/wirelog"
)

// EnvVar names the environment variable Load reads the config path from.
const EnvVar = "WIREFMT_CONFIG"

// ColorMode controls terminal styling of printed records.
type ColorMode string

const (
	// ColorAuto styles output only when stdout is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways styles output unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever disables styling.
	ColorNever ColorMode = "never"
)

// OutputFormat selects how printed records are rendered.
type OutputFormat string

const (
	// FormatText prints one human-readable line per record.
	FormatText OutputFormat = "text"
	// FormatJSON prints one JSON object per record.
	FormatJSON OutputFormat = "json"
)

// Config is the configuration shared by the wirefmt tools.
type Config struct {
	// Table is the path of the pattern table file.
	Table string `yaml:"table" json:"table"`

	// Print configures wirefmt-print.
	Print PrintConfig `yaml:"print" json:"print"`

	// Capture configures how logs are written.
	Capture CaptureConfig `yaml:"capture" json:"capture"`
}

// PrintConfig configures log rendering.
type PrintConfig struct {
	// Color is auto, always, or never.
	// Default: auto
	Color ColorMode `yaml:"color" json:"color"`

	// Level hides records below it.
	// Default: trace
	Level wirelog.Level `yaml:"level" json:"level"`

	// Format is text or json.
	// Default: text
	Format OutputFormat `yaml:"format" json:"format"`

	// RelativeTime prints timestamps as offsets from the first record
	// instead of absolute times.
	RelativeTime bool `yaml:"relative_time" json:"relative_time"`
}

// CaptureConfig configures log files written by the tools.
type CaptureConfig struct {
	// Compression is none, lz4, or zstd.
	// Default: zstd
	Compression string `yaml:"compression" json:"compression"`

	// BlockSize is the uncompressed block size in bytes.
	// Default: logfile.DefaultBlockSize
	BlockSize int `yaml:"block_size" json:"block_size"`

	// MaxFrame bounds the encoded size of one frame.
	// Default: wirelog.DefaultMaxFrame
	MaxFrame int `yaml:"max_frame" json:"max_frame"`
}

// Default returns the configuration used for fields a file omits.
func Default() *Config {
	return &Config{
		Table: "${HOME}/.cache/wirefmt/table.cbor",
		Print: PrintConfig{
			Color:  ColorAuto,
			Level:  wirelog.LevelTrace,
			Format: FormatText,
		},
		Capture: CaptureConfig{
			Compression: codec.CompressionZstd.String(),
			BlockSize:   logfile.DefaultBlockSize,
			MaxFrame:    wirelog.DefaultMaxFrame,
		},
	}
}

// Load loads configuration from the file named by WIREFMT_CONFIG. It
// fails when the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvVar)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your wirefmt.yaml config file, or use --config flag", EnvVar)
	}
	return LoadFile(configPath)
}

// Resolve returns the configuration a tool should run with: the file
// at flagPath when set, otherwise the file named by WIREFMT_CONFIG when
// set, otherwise Default with variables expanded.
func Resolve(flagPath string) (*Config, error) {
	if flagPath != "" {
		return LoadFile(flagPath)
	}
	if os.Getenv(EnvVar) != "" {
		return Load()
	}
	cfg := Default()
	cfg.expandVariables()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads configuration from path, merged over Default, and
// validates it.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a config document. ext selects the syntax: ".json" and
// ".jsonc" mean JSONC, anything else YAML.
func Parse(data []byte, ext string) (*Config, error) {
	cfg := Default()
	switch strings.ToLower(ext) {
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing JSONC config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML config: %w", err)
		}
	}
	cfg.expandVariables()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CompressionTag returns the parsed Capture.Compression.
func (c *Config) CompressionTag() (codec.CompressionTag, error) {
	return codec.ParseCompressionTag(c.Capture.Compression)
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	c.Table = expandVars(c.Table)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		return parts[2]
	})
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Table == "" {
		errs = append(errs, errors.New("table is required"))
	}

	switch c.Print.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("print.color must be one of: auto, always, never (got %q)", c.Print.Color))
	}

	switch c.Print.Format {
	case FormatText, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("print.format must be one of: text, json (got %q)", c.Print.Format))
	}

	if !c.Print.Level.Valid() {
		errs = append(errs, fmt.Errorf("print.level %d is not a valid level", c.Print.Level))
	}

	if _, err := c.CompressionTag(); err != nil {
		errs = append(errs, fmt.Errorf("capture.compression: %w", err))
	}

	if c.Capture.BlockSize <= 0 || c.Capture.BlockSize > logfile.MaxBlockSize {
		errs = append(errs, fmt.Errorf("capture.block_size must be between 1 and %d", logfile.MaxBlockSize))
	}

	if c.Capture.MaxFrame < wirelog.FrameHeaderSize || c.Capture.MaxFrame > logfile.MaxBlockSize {
		errs = append(errs, fmt.Errorf("capture.max_frame must be between %d and %d",
			wirelog.FrameHeaderSize, logfile.MaxBlockSize))
	}

	return errors.Join(errs...)
}
