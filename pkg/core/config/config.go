// Package config loads and saves the sciops TOML configuration.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	scierr "github.com/msto63/sciops/foundation/core/error"
)

const (
	// AppDir is the directory name under the user config directory.
	AppDir = "sciops"
	// FileName is the config file name inside AppDir.
	FileName = "config.toml"
	// NotebookFileName is the default notebook file inside AppDir.
	NotebookFileName = "lab_notebook.md"
	// EnvConfig overrides the config file location.
	EnvConfig = "SCIOPS_CONFIG"

	DefaultBody      = "earth"
	DefaultPrecision = 6
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
)

// Config holds the complete application configuration
type Config struct {
	Notebook NotebookConfig `toml:"notebook"`
	Defaults DefaultsConfig `toml:"defaults"`
	Output   OutputConfig   `toml:"output"`
	Logging  LoggingConfig  `toml:"logging"`

	file string
}

// NotebookConfig locates the lab notebook
type NotebookConfig struct {
	Path string `toml:"path"`
}

// DefaultsConfig holds calculator defaults
type DefaultsConfig struct {
	Body string `toml:"body"`
}

// OutputConfig controls rendering. Color is a pointer so an explicit
// "color = false" survives applyDefaults.
type OutputConfig struct {
	Color     *bool `toml:"color"`
	Precision int   `toml:"precision"`
}

// LoggingConfig controls diagnostic logging on stderr
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Dir returns the sciops config directory: $XDG_CONFIG_HOME/sciops, or
// ~/.config/sciops when XDG_CONFIG_HOME is unset.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppDir)
}

// DefaultPath returns the config file used when SCIOPS_CONFIG is unset.
func DefaultPath() string {
	return filepath.Join(Dir(), FileName)
}

// ResolvePath returns SCIOPS_CONFIG if set, else DefaultPath.
func ResolvePath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return os.ExpandEnv(p)
	}
	return DefaultPath()
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file. A missing file yields the
// defaults; a file that does not parse is an error.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg.applyDefaults()
		cfg.file = path
		return &cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, scierr.Wrap(err, "failed to parse config").
			WithCode(scierr.CodeConfigError).
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()
	cfg.file = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by SCIOPS_CONFIG, falling back to the
// XDG location.
func LoadFromEnv() (*Config, error) {
	return Load(ResolvePath())
}

// File returns the path the configuration was loaded from, or "" for a
// configuration built in memory.
func (c *Config) File() string {
	return c.file
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Notebook.Path == "" {
		c.Notebook.Path = filepath.Join(Dir(), NotebookFileName)
	}
	if c.Defaults.Body == "" {
		c.Defaults.Body = DefaultBody
	}
	if c.Output.Color == nil {
		on := true
		c.Output.Color = &on
	}
	if c.Output.Precision == 0 {
		c.Output.Precision = DefaultPrecision
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
}

// expandEnvVars expands environment variables and a leading ~ in paths
func (c *Config) expandEnvVars() {
	c.Notebook.Path = expandPath(c.Notebook.Path)
}

func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Output.Precision < 1 || c.Output.Precision > 17 {
		return scierr.Newf("output.precision must be between 1 and 17, got %d", c.Output.Precision).
			WithCode(scierr.CodeConfigError)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		return scierr.Newf("logging.format must be console or json, got %q", c.Logging.Format).
			WithCode(scierr.CodeConfigError)
	}
	return nil
}

// ColorEnabled reports the effective color setting.
func (c *Config) ColorEnabled() bool {
	return c.Output.Color == nil || *c.Output.Color
}

// Save writes the configuration to path. The file is written to a
// temporary sibling and renamed into place.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return scierr.Wrap(err, "failed to create config directory").
			WithCode(scierr.CodeIOError).
			WithDetail("path", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+FileName+".*")
	if err != nil {
		return scierr.Wrap(err, "failed to create temporary config file").WithCode(scierr.CodeIOError)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(c); err != nil {
		tmp.Close()
		return scierr.Wrap(err, "failed to encode config").WithCode(scierr.CodeConfigError)
	}
	if err := tmp.Close(); err != nil {
		return scierr.Wrap(err, "failed to write config").WithCode(scierr.CodeIOError)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return scierr.Wrap(err, "failed to replace config").
			WithCode(scierr.CodeIOError).
			WithDetail("path", path)
	}
	c.file = path
	return nil
}

// Setting is one user-facing key and its current value.
type Setting struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Keys lists the keys accepted by Set.
var Keys = []string{"notebook_path", "default_body", "color", "precision", "log_level"}

// Settings returns the user-facing keys in display order.
func (c *Config) Settings() []Setting {
	return []Setting{
		{"notebook_path", c.Notebook.Path},
		{"default_body", c.Defaults.Body},
		{"color", strconv.FormatBool(c.ColorEnabled())},
		{"precision", strconv.Itoa(c.Output.Precision)},
		{"log_level", c.Logging.Level},
	}
}

// Set assigns a user-facing key from its string form.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch strings.ToLower(strings.TrimSpace(key)) {
	case "notebook_path":
		if value == "" {
			return scierr.InvalidInput("notebook_path must not be empty")
		}
		c.Notebook.Path = expandPath(value)

	case "default_body":
		if value == "" {
			return scierr.InvalidInput("default_body must not be empty")
		}
		c.Defaults.Body = strings.ToLower(value)

	case "color":
		on, err := ParseBool(value)
		if err != nil {
			return err
		}
		c.Output.Color = &on

	case "precision":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > 17 {
			return scierr.InvalidInput("precision must be an integer between 1 and 17, got %q", value)
		}
		c.Output.Precision = n

	case "log_level":
		switch strings.ToLower(value) {
		case "debug", "info", "warn", "error":
			c.Logging.Level = strings.ToLower(value)
		default:
			return scierr.InvalidInput("log_level must be debug, info, warn or error, got %q", value)
		}

	default:
		return scierr.Newf("unknown config key %q (known: %s)", key, strings.Join(Keys, ", ")).
			WithCode(scierr.CodeNotFound)
	}
	return nil
}

// ParseBool accepts 1/0, true/false, yes/no and on/off in any case.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, scierr.InvalidInput("%q is not a boolean, use true/false, yes/no, on/off or 1/0", s)
}
