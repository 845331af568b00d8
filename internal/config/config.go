// Package config loads limbcalc settings from defaults, an optional JSON
// file, and LIMBCALC_* environment variables, in that order.
package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/limbcalc/internal/calc"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://limbcalc-config.json"

// MaxFrameRate bounds the TUI repaint rate.
const MaxFrameRate = 240

// Config holds runtime settings.
type Config struct {
	StepInterval time.Duration `env:"LIMBCALC_STEP_INTERVAL"`
	FrameRate    int           `env:"LIMBCALC_FRAME_RATE"`
	Sound        bool          `env:"LIMBCALC_SOUND"`
	Volume       float64       `env:"LIMBCALC_VOLUME"`
	DBPath       string        `env:"LIMBCALC_DB"`
	LogLevel     string        `env:"LIMBCALC_LOG_LEVEL"`
	LogFile      string        `env:"LIMBCALC_LOG_FILE"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		StepInterval: calc.DefaultStepInterval,
		FrameRate:    30,
		Sound:        true,
		Volume:       0.6,
		LogLevel:     "info",
	}
}

// fileConfig mirrors the JSON file. Pointers distinguish absent keys.
type fileConfig struct {
	StepInterval *string  `json:"step_interval"`
	FrameRate    *int     `json:"frame_rate"`
	Sound        *bool    `json:"sound"`
	Volume       *float64 `json:"volume"`
	DBPath       *string  `json:"db_path"`
	LogLevel     *string  `json:"log_level"`
	LogFile      *string  `json:"log_file"`
}

// DefaultPath returns $XDG_CONFIG_HOME/limbcalc/config.json, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "limbcalc", "config.json"), nil
}

// Load builds a Config. An empty path means DefaultPath, where a missing
// file is not an error; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := applyFile(&cfg, data); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ParseEnv overlays LIMBCALC_* environment variables onto target.
// Unset variables leave fields untouched.
func ParseEnv(target *Config) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports settings the calculator cannot run with.
func (c Config) Validate() error {
	if c.StepInterval <= 0 {
		return fmt.Errorf("step interval must be positive, got %s", c.StepInterval)
	}
	if c.FrameRate < 1 || c.FrameRate > MaxFrameRate {
		return fmt.Errorf("frame rate must be between 1 and %d, got %d", MaxFrameRate, c.FrameRate)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume must be between 0 and 1, got %g", c.Volume)
	}
	return nil
}

// FrameInterval is the delay between TUI frames.
func (c Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.FrameRate)
}

func applyFile(cfg *Config, data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if fc.StepInterval != nil {
		d, err := time.ParseDuration(*fc.StepInterval)
		if err != nil {
			return fmt.Errorf("step_interval: %w", err)
		}
		cfg.StepInterval = d
	}
	if fc.FrameRate != nil {
		cfg.FrameRate = *fc.FrameRate
	}
	if fc.Sound != nil {
		cfg.Sound = *fc.Sound
	}
	if fc.Volume != nil {
		cfg.Volume = *fc.Volume
	}
	if fc.DBPath != nil {
		cfg.DBPath = *fc.DBPath
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	return nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value, not raw bytes.
	var def any
	if err := json.Unmarshal(schemaJSON, &def); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return compiled, nil
}
