// Package config loads settings for the scribe program.
//
// Settings come from an optional TOML file, then from SCRIBE_* environment
// variables, which may themselves be seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const maxTabWidth = 16

// Config controls the scribe program.
type Config struct {
	TabWidth        int    `toml:"tab_width"`
	ShowLineNumbers bool   `toml:"show_line_numbers"`
	ReadOnly        bool   `toml:"read_only"`
	LogFile         string `toml:"log_file"`

	// Text seeds the editor on startup.
	Text string `toml:"text"`
}

func Default() Config {
	return Config{
		TabWidth:        4,
		ShowLineNumbers: true,
		Text:            "Welcome to scribe.\n\nType to edit.\nCtrl+C quits.",
	}
}

// Load reads path over Default. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("config: %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// LoadDotenv exports the variables in path that are not already set.
// A missing file is not an error.
func LoadDotenv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from SCRIBE_* variables found through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := trimmedEnv(lookup, "SCRIBE_TAB_WIDTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid SCRIBE_TAB_WIDTH: %w", err)
		}
		c.TabWidth = n
	}
	if err := boolEnv(lookup, "SCRIBE_LINE_NUMBERS", &c.ShowLineNumbers); err != nil {
		return err
	}
	if err := boolEnv(lookup, "SCRIBE_READ_ONLY", &c.ReadOnly); err != nil {
		return err
	}
	if v, ok := trimmedEnv(lookup, "SCRIBE_LOG_FILE"); ok {
		c.LogFile = v
	}
	return nil
}

func (c Config) Validate() error {
	if c.TabWidth < 1 || c.TabWidth > maxTabWidth {
		return fmt.Errorf("config: tab_width must be between 1 and %d, got %d", maxTabWidth, c.TabWidth)
	}
	return nil
}

func trimmedEnv(lookup func(string) (string, bool), key string) (string, bool) {
	v, ok := lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func boolEnv(lookup func(string) (string, bool), key string, dst *bool) error {
	v, ok := trimmedEnv(lookup, key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("config: invalid %s: %w", key, err)
	}
	*dst = b
	return nil
}
