package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseBlocks(DefaultYAML())
	if err != nil {
		t.Fatalf("parseBlocks(embedded) failed: %v", err)
	}
	if cfg != DefaultBlocksConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultBlocksConfig())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BlocksConfig)
		wantErr bool
	}{
		{"defaults", func(*BlocksConfig) {}, false},
		{"start level zero", func(c *BlocksConfig) { c.Gameplay.StartLevel = 0 }, true},
		{"negative floor", func(c *BlocksConfig) { c.Timing.MinDropIntervalMs = -1 }, true},
		{"positive floor", func(c *BlocksConfig) { c.Timing.MinDropIntervalMs = 50 }, false},
		{"one-rune block", func(c *BlocksConfig) { c.Render.Block = "#" }, true},
		{"three-rune block", func(c *BlocksConfig) { c.Render.Block = "[#]" }, true},
		{"unicode block", func(c *BlocksConfig) { c.Render.Block = "██" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBlocksConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseBlocksKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := parseBlocks([]byte("gameplay:\n  start_level: 4\n"))
	if err != nil {
		t.Fatalf("parseBlocks() failed: %v", err)
	}
	if cfg.Gameplay.StartLevel != 4 {
		t.Errorf("StartLevel = %d, expected 4", cfg.Gameplay.StartLevel)
	}
	if cfg.Render.Block != "[]" || !cfg.Render.ShowBorder {
		t.Errorf("Render = %+v, expected defaults", cfg.Render)
	}
}

func TestLoadBlocksCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	data := "timing:\n  min_drop_interval_ms: 120\nrender:\n  block: \"██\"\n  show_border: false\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBlocks(path)
	if err != nil {
		t.Fatalf("LoadBlocks() failed: %v", err)
	}
	if cfg.Timing.MinDropIntervalMs != 120 {
		t.Errorf("MinDropIntervalMs = %d, expected 120", cfg.Timing.MinDropIntervalMs)
	}
	if cfg.Render.Block != "██" || cfg.Render.ShowBorder {
		t.Errorf("Render = %+v, expected custom glyph without border", cfg.Render)
	}
}

func TestLoadBlocksCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBlocks(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadBlocks(missing) succeeded, expected error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("gameplay:\n  start_level: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBlocks(bad); err == nil {
		t.Error("LoadBlocks(invalid) succeeded, expected error")
	}

	garbage := filepath.Join(dir, "garbage.yaml")
	if err := os.WriteFile(garbage, []byte("gameplay: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBlocks(garbage); err == nil {
		t.Error("LoadBlocks(garbage) succeeded, expected error")
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name  string
		level int
	}{
		{"easy", 1},
		{"normal", 3},
		{"hard", 6},
	}

	for _, tt := range tests {
		p, err := ParsePreset(tt.name)
		if err != nil {
			t.Fatalf("ParsePreset(%q) failed: %v", tt.name, err)
		}
		cfg := DefaultBlocksConfig()
		ApplyBlocksPreset(&cfg, p)
		if cfg.Gameplay.StartLevel != tt.level {
			t.Errorf("%s: StartLevel = %d, expected %d", tt.name, cfg.Gameplay.StartLevel, tt.level)
		}
	}

	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(insane) succeeded, expected error")
	}

	cfg := DefaultBlocksConfig()
	cfg.Gameplay.StartLevel = 7
	ApplyBlocksPreset(&cfg, "")
	if cfg.Gameplay.StartLevel != 7 {
		t.Errorf("empty preset changed StartLevel to %d", cfg.Gameplay.StartLevel)
	}
}
