// Package config provides configuration management for deckterm using Viper.
package config

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"deckterm/internal/deck"
	"deckterm/internal/theme"
)

// AppName is the application name used for config file naming.
const AppName = "deckterm"

// EnvPrefix prefixes environment overrides, e.g. DECKTERM_THEME.
const EnvPrefix = "DECKTERM"

// Configuration keys.
const (
	KeyTheme     = "theme"
	KeyFooter    = "footer"
	KeyPreamble  = "preamble"
	KeyLogFile   = "log_file"
	KeyLogFormat = "log_format"
)

var (
	// ErrConfigNotFound is returned when an explicit config path does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigParse is returned when a config file cannot be read or decoded.
	ErrConfigParse = errors.New("invalid config file")

	// ErrInvalid is returned by Validate.
	ErrInvalid = errors.New("invalid configuration")
)

// Config is the resolved configuration.
type Config struct {
	Theme     string `mapstructure:"theme" yaml:"theme"`
	Footer    bool   `mapstructure:"footer" yaml:"footer"`
	Preamble  string `mapstructure:"preamble" yaml:"preamble"`
	LogFile   string `mapstructure:"log_file" yaml:"log_file"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Dir returns the user configuration directory for deckterm.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// New returns a Viper instance with defaults, search paths, and environment
// support. Flags may be bound to it before Load is called.
func New() *viper.Viper {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(Dir())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyTheme, theme.Default)
	v.SetDefault(KeyFooter, true)
	v.SetDefault(KeyPreamble, string(deck.PreambleDiscard))
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogFormat, "text")
	return v
}

// Load reads the configuration file into v and decodes the result.
// If path is empty the search paths are used and a missing file is fine;
// an explicit path must exist.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// No config file; defaults, env, and flags apply.
		case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
			return nil, errors.Mark(errors.Wrapf(err, "config file %s", path), ErrConfigNotFound)
		default:
			return nil, errors.Mark(errors.Wrap(err, "reading config file"), ErrConfigParse)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decoding config"), ErrConfigParse)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := theme.ByName(c.Theme); err != nil {
		return errors.Mark(err, ErrInvalid)
	}
	if _, err := deck.ParsePreamble(c.Preamble); err != nil {
		return errors.Mark(err, ErrInvalid)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return errors.Mark(errors.Newf("unknown log format %q (valid: text, json)", c.LogFormat), ErrInvalid)
	}
	return nil
}

// ThemeSpec resolves the configured theme.
func (c *Config) ThemeSpec() (theme.Theme, error) {
	return theme.ByName(c.Theme)
}

// PreamblePolicy resolves the configured preamble policy.
func (c *Config) PreamblePolicy() (deck.Preamble, error) {
	return deck.ParsePreamble(c.Preamble)
}
