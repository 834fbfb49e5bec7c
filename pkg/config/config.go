// Package config loads render settings from defaults, an optional YAML file,
// and the environment, in increasing order of precedence. Command-line flags
// are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/render"
)

// Environment variables read by Load.
const (
	EnvWorkers = "MANDEL_WORKERS"
	EnvLimit   = "MANDEL_LIMIT"
	EnvScale   = "MANDEL_SCALE"
	EnvLogFile = "MANDEL_LOG_FILE"
	EnvDev     = "MANDEL_DEV"
)

// Config holds the settings of a render that are not part of the image itself.
type Config struct {
	// Workers is the number of bands rendered concurrently.
	Workers int `yaml:"workers"`

	// Limit is the escape iteration cap per pixel.
	Limit int `yaml:"limit"`

	// Scale shrinks the written image by this integer factor.
	Scale int `yaml:"scale"`

	// LogFile, if set, receives JSON logs in addition to the console.
	LogFile string `yaml:"log_file"`

	// Dev switches the console to human-readable debug logging.
	Dev bool `yaml:"dev"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Workers: render.DefaultWorkers,
		Limit:   escape.DefaultLimit,
		Scale:   1,
	}
}

// Load returns the defaults overridden by the YAML file at path, if path is not
// empty, and then by the environment. Variables in envFile are added to the
// environment first without replacing ones already set; a missing envFile is
// not an error.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	cfg.applyEnv()

	return cfg, nil
}

// loadFile overrides the fields present in the YAML file at path.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Workers = parseIntEnv(EnvWorkers, c.Workers)
	c.Limit = parseIntEnv(EnvLimit, c.Limit)
	c.Scale = parseIntEnv(EnvScale, c.Scale)
	c.LogFile = getEnvOrDefault(EnvLogFile, c.LogFile)
	c.Dev = parseBoolEnv(EnvDev, c.Dev)
}

// Validate reports the first setting that cannot be used for a render.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return &ArgError{Arg: "workers", Value: fmt.Sprint(c.Workers), Reason: "must be at least 1"}
	}
	if c.Limit < 1 {
		return &ArgError{Arg: "limit", Value: fmt.Sprint(c.Limit), Reason: "must be at least 1"}
	}
	if c.Scale < 1 {
		return &ArgError{Arg: "scale", Value: fmt.Sprint(c.Scale), Reason: "must be at least 1"}
	}
	return nil
}
