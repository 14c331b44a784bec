// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
	Sound    SoundConfig    `toml:"sound"`
	Theme    ThemeConfig    `toml:"theme"`
	Log      LogConfig      `toml:"log"`
}

// PracticeConfig maps passage selection settings.
type PracticeConfig struct {
	Source   *string  `toml:"source"`
	Passages *string  `toml:"passages"`
	Lang     *string  `toml:"lang"`
	Wordlist *string  `toml:"wordlist"`
	Words    *int     `toml:"words"`
	CapsPct  *float64 `toml:"caps"`
	PunctPct *float64 `toml:"punct"`
	PunctSet *string  `toml:"punct-set"`
}

// SoundConfig maps keystroke feedback settings.
type SoundConfig struct {
	// Backends is a ranked, comma-separated list such as "bell,off".
	Backends *string `toml:"backends"`
}

// ThemeConfig maps hex colors used by the typing view.
type ThemeConfig struct {
	Correct   *string `toml:"correct"`
	Incorrect *string `toml:"incorrect"`
	Current   *string `toml:"current"`
	Pending   *string `toml:"pending"`
	Stats     *string `toml:"stats"`
	Accent    *string `toml:"accent"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	File  *string `toml:"file"`
	Level *string `toml:"level"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
