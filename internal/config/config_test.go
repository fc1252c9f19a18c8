package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tatianab/trek/internal/models"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"TREK_SAVE_DIR", "TREK_SAVE_NAME", "TREK_SEED", "TREK_RULES_FILE", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE"} {
		t.Setenv(key, "")
	}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Save.Dir != "data" || cfg.Save.Name != "save" {
		t.Errorf("Expected data/save, got %s/%s", cfg.Save.Dir, cfg.Save.Name)
	}
	if cfg.Game.Seed != 0 || cfg.Game.RulesFile != "" {
		t.Errorf("Expected no seed or rules file, got %d %q", cfg.Game.Seed, cfg.Game.RulesFile)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Expected info/text, got %s/%s", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("TREK_SAVE_DIR", "/tmp/trek")
	t.Setenv("TREK_SAVE_NAME", "slot2")
	t.Setenv("TREK_SEED", "42")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_FILE", "trek.log")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Save.Dir != "/tmp/trek" || cfg.Save.Name != "slot2" {
		t.Errorf("Unexpected save config %+v", cfg.Save)
	}
	if cfg.Game.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Game.Seed)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.File != "trek.log" {
		t.Errorf("Unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"bad seed", "TREK_SEED", "soon"},
		{"negative seed", "TREK_SEED", "-1"},
		{"bad format", "LOG_FORMAT", "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadConfig(); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestLoadRulesDefaults(t *testing.T) {
	rules, err := LoadRules("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if rules != models.DefaultRules() {
		t.Errorf("Expected defaults, got %+v", rules)
	}
}

func TestLoadRulesPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	data := "warp_cost: 250\ntorpedo_damage: 150\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if rules.WarpCost != 250 || rules.TorpedoDamage != 150 {
		t.Errorf("Expected overrides applied, got %+v", rules)
	}
	if rules.ImpulseCost != models.DefaultRules().ImpulseCost {
		t.Errorf("Expected impulse cost to keep its default, got %d", rules.ImpulseCost)
	}
}

func TestLoadRulesErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
		return p
	}
	for name, path := range map[string]string{
		"missing":  filepath.Join(dir, "nope.yaml"),
		"syntax":   write("syntax.yaml", "warp_cost: [1,\n"),
		"negative": write("negative.yaml", "siege_damage: -5\n"),
		"harmless": write("harmless.yaml", "torpedo_damage: 0\n"),
	} {
		if _, err := LoadRules(path); err == nil {
			t.Errorf("%s: Expected an error", name)
		}
	}
}
