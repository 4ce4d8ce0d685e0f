package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alexanderramin/onlyone/internal/schedule"
	"github.com/alexanderramin/onlyone/internal/timetable"
	"gopkg.in/yaml.v3"
)

// Config is the user configuration. It is loaded once at startup and passed
// explicitly to whatever needs it.
type Config struct {
	// DBPath is the SQLite database file, or ":memory:".
	DBPath string `yaml:"db_path"`

	// ShowSaturday adds a Saturday column to the timetable.
	ShowSaturday bool `yaml:"show_saturday"`

	// Periods holds the six timetable period labels.
	Periods []timetable.PeriodLabel `yaml:"periods"`

	// TaskSort is the default task ordering: added, priority or due.
	TaskSort string `yaml:"task_sort"`

	// LogLevel enables use-case logging to stderr: off, debug, info or error.
	LogLevel string `yaml:"log_level"`

	// Timezone is the IANA zone used for calendar arithmetic. Empty means
	// the system local zone.
	Timezone string `yaml:"timezone"`
}

// DefaultDir returns ~/.onlyone.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".onlyone"), nil
}

// DefaultConfig returns an in-memory default configuration rooted at dir.
func DefaultConfig(dir string) *Config {
	return &Config{
		DBPath:       filepath.Join(dir, "onlyone.db"),
		ShowSaturday: false,
		Periods:      timetable.DefaultPeriods(),
		TaskSort:     string(schedule.SortAdded),
		LogLevel:     "off",
	}
}

// Normalize fills in missing values so that partially written or older
// files still behave.
func (c *Config) Normalize(dir string) {
	if c.DBPath == "" {
		c.DBPath = filepath.Join(dir, "onlyone.db")
	}
	if len(c.Periods) != len(timetable.DefaultPeriods()) {
		c.Periods = timetable.DefaultPeriods()
	}
	if _, err := schedule.ParseTaskSortMode(c.TaskSort); err != nil || c.TaskSort == "" {
		c.TaskSort = string(schedule.SortAdded)
	}
	switch c.LogLevel {
	case "off", "debug", "info", "error":
	default:
		c.LogLevel = "off"
	}
}

// Validate reports values Normalize cannot repair.
func (c *Config) Validate() error {
	if err := timetable.ValidatePeriods(c.Periods); err != nil {
		return fmt.Errorf("periods: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// TaskSortMode returns TaskSort as a schedule mode.
func (c *Config) TaskSortMode() schedule.TaskSortMode {
	m, err := schedule.ParseTaskSortMode(c.TaskSort)
	if err != nil {
		return schedule.SortAdded
	}
	return m
}

// ApplyEnv overrides file values from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("ONLYONE_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("ONLYONE_SHOW_SATURDAY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.ShowSaturday = b
		}
	}
	if v := os.Getenv("ONLYONE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("ONLYONE_TASK_SORT"); v != "" {
		if _, err := schedule.ParseTaskSortMode(v); err == nil {
			c.TaskSort = v
		}
	}
	if v := os.Getenv("ONLYONE_TZ"); v != "" {
		c.Timezone = v
	}
}

// Load reads the YAML file at path. On first run the file does not exist: a
// default config is written there and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}
	dir := filepath.Dir(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig(dir)
			if err := Save(path, cfg); err != nil {
				return cfg, fmt.Errorf("writing default config: %w", err)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Normalize(dir)
	return &cfg, nil
}

// Save writes cfg to path atomically (temp file + rename) with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}
	dir := filepath.Dir(path)
	cfg.Normalize(dir)

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".onlyone-config-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp config: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Resolve finds the config path (ONLYONE_CONFIG or ~/.onlyone/config.yaml),
// loads it and applies environment overrides.
func Resolve() (*Config, string, error) {
	path := os.Getenv("ONLYONE_CONFIG")
	if path == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, "", err
		}
		path = filepath.Join(dir, "config.yaml")
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	cfg.ApplyEnv()
	cfg.Normalize(filepath.Dir(path))
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}
