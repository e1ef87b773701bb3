package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if cfg.General.Currency != "€" {
		t.Errorf("currency = %q, want €", cfg.General.Currency)
	}
	if cfg.Dial.DragCellsPerStep != defaultDragCells {
		t.Errorf("drag_cells_per_step = %d, want %d", cfg.Dial.DragCellsPerStep, defaultDragCells)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Appearance.Theme = "flexoki-light"
	cfg.General.Currency = "$"
	cfg.Dial.DragCellsPerStep = 4

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Appearance.Theme != "flexoki-light" {
		t.Errorf("theme = %q, want flexoki-light", loaded.Appearance.Theme)
	}
	if loaded.General.Currency != "$" {
		t.Errorf("currency = %q, want $", loaded.General.Currency)
	}
	if loaded.Dial.DragCellsPerStep != 4 {
		t.Errorf("drag_cells_per_step = %d, want 4", loaded.Dial.DragCellsPerStep)
	}
}

func TestLoadRepairsBadDragCells(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if err := os.MkdirAll(filepath.Join(dir, "hucha"), 0o755); err != nil {
		t.Fatal(err)
	}
	raw := "[dial]\ndrag_cells_per_step = 0\n"
	if err := os.WriteFile(filepath.Join(dir, "hucha", "config.toml"), []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Dial.DragCellsPerStep != defaultDragCells {
		t.Errorf("drag_cells_per_step = %d, want repaired %d", cfg.Dial.DragCellsPerStep, defaultDragCells)
	}
}

func TestDataDirPrecedence(t *testing.T) {
	t.Setenv("HUCHA_DATA_DIR", "/tmp/from-env")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")

	cfg := DefaultConfig()
	cfg.General.DataDir = "/tmp/from-config"

	if got := DataDir(cfg); got != "/tmp/from-env" {
		t.Errorf("DataDir = %q, want env override", got)
	}

	t.Setenv("HUCHA_DATA_DIR", "")
	if got := DataDir(cfg); got != "/tmp/from-config" {
		t.Errorf("DataDir = %q, want config value", got)
	}

	cfg.General.DataDir = ""
	if got := DataDir(cfg); got != filepath.Join("/tmp/xdg", "hucha") {
		t.Errorf("DataDir = %q, want XDG fallback", got)
	}
}

func TestDBPathUnderDataDir(t *testing.T) {
	t.Setenv("HUCHA_DATA_DIR", "/tmp/hucha-data")

	cfg := DefaultConfig()
	if got := DBPath(cfg); got != filepath.Join("/tmp/hucha-data", "hucha.db") {
		t.Errorf("DBPath = %q", got)
	}
	if got := LogPath(cfg); got != filepath.Join("/tmp/hucha-data", "hucha.log") {
		t.Errorf("LogPath = %q", got)
	}
}

func TestThemeEnvOverride(t *testing.T) {
	cfg := DefaultConfig()

	t.Setenv("HUCHA_THEME", "flexoki-light")
	if got := Theme(cfg); got != "flexoki-light" {
		t.Errorf("Theme = %q, want env override", got)
	}

	t.Setenv("HUCHA_THEME", "")
	if got := Theme(cfg); got != "flexoki-dark" {
		t.Errorf("Theme = %q, want config value", got)
	}
}
