// Package config loads and saves user preferences from a TOML file in
// the XDG config directory. Environment variables override the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all hucha configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Dial       DialConfig       `toml:"dial"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir  string `toml:"data_dir,omitempty"`
	Currency string `toml:"currency"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DialConfig tunes the pending-amount control.
type DialConfig struct {
	DragCellsPerStep int `toml:"drag_cells_per_step"`
}

const defaultDragCells = 2

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency: "€",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Dial: DialConfig{
			DragCellsPerStep: defaultDragCells,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hucha")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "hucha")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Dial.DragCellsPerStep < 1 {
		cfg.Dial.DragCellsPerStep = defaultDragCells
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// DataDir returns the resolved data directory, from the HUCHA_DATA_DIR
// env var, the config file, or the XDG data dir, in that order.
func DataDir(cfg Config) string {
	if dir := os.Getenv("HUCHA_DATA_DIR"); dir != "" {
		return dir
	}
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "hucha")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "hucha")
}

// DBPath returns the path of the savings database.
func DBPath(cfg Config) string {
	return filepath.Join(DataDir(cfg), "hucha.db")
}

// LogPath returns the path of the log file.
func LogPath(cfg Config) string {
	return filepath.Join(DataDir(cfg), "hucha.log")
}

// Theme returns the theme name from env var or config, in that order.
func Theme(cfg Config) string {
	if t := os.Getenv("HUCHA_THEME"); t != "" {
		return t
	}
	return cfg.Appearance.Theme
}
