package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Journal JournalConfig `yaml:"journal"`
	Log     LogConfig     `yaml:"log"`
}

type StorageConfig struct {
	Dir string `yaml:"dir"`
}

type JournalConfig struct {
	// Timezone decides where the calendar-day boundary falls when grouping
	// sets into workout days: "local", "utc", or an IANA zone name.
	Timezone string `yaml:"timezone"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is present: data under
// ~/.ironlog, day boundaries in local time, info logging.
func Default() *Config {
	dir := ".ironlog"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".ironlog")
	}
	return &Config{
		Storage: StorageConfig{Dir: dir},
		Journal: JournalConfig{Timezone: "local"},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads config from a YAML file, then applies environment variable
// overrides. An empty path means "the default location"; a missing file at
// the default location is not an error, the defaults apply. Env vars use the
// prefix IRONLOG_:
//
//	IRONLOG_STORAGE_DIR, IRONLOG_TIMEZONE,
//	IRONLOG_LOG_FILE, IRONLOG_LOG_LEVEL
func Load(path string) (*Config, error) {
	cfg := Default()

	optional := false
	if path == "" {
		path = filepath.Join(cfg.Storage.Dir, "config.yaml")
		optional = true
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case os.IsNotExist(err) && optional:
		// First run with no config file.
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("IRONLOG_STORAGE_DIR"); v != "" {
		cfg.Storage.Dir = v
	}
	if v := os.Getenv("IRONLOG_TIMEZONE"); v != "" {
		cfg.Journal.Timezone = v
	}
	if v := os.Getenv("IRONLOG_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("IRONLOG_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func (c *Config) validate() error {
	if c.Storage.Dir == "" {
		return fmt.Errorf("storage.dir is required")
	}
	if _, err := c.Journal.Location(); err != nil {
		return fmt.Errorf("journal.timezone: %w", err)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn, or error")
	}
	return nil
}

// Location resolves the configured day-boundary timezone.
func (j JournalConfig) Location() (*time.Location, error) {
	switch j.Timezone {
	case "", "local":
		return time.Local, nil
	case "utc", "UTC":
		return time.UTC, nil
	default:
		loc, err := time.LoadLocation(j.Timezone)
		if err != nil {
			return nil, fmt.Errorf("unknown timezone %q: %w", j.Timezone, err)
		}
		return loc, nil
	}
}

// LogPath returns the log file destination, defaulting to ironlog.log inside
// the data directory. The TUI owns stdout, so logs never go there.
func (c *Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(c.Storage.Dir, "ironlog.log")
}
