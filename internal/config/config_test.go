package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedMatchesHardcodedDefaults(t *testing.T) {
	got := embeddedConfig()
	want := DefaultTetrisConfig()

	if !reflect.DeepEqual(got, want) {
		t.Errorf("embedded defaults drifted from DefaultTetrisConfig:\n got %+v\nwant %+v", got, want)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TetrisConfig)
		wantErr string
	}{
		{"zero initial", func(c *TetrisConfig) { c.Speed.InitialIntervalMS = 0 }, "initial_interval_ms"},
		{"floor above initial", func(c *TetrisConfig) { c.Speed.MinIntervalMS = 900 }, "must not exceed"},
		{"factor too big", func(c *TetrisConfig) { c.Speed.Factor = 1.5 }, "speed.factor"},
		{"short points table", func(c *TetrisConfig) { c.Scoring.BasePoints = []int{0, 100} }, "base_points"},
		{"negative points", func(c *TetrisConfig) { c.Scoring.BasePoints[2] = -1 }, "base_points[2]"},
		{"zero lines per level", func(c *TetrisConfig) { c.Scoring.LinesPerLevel = 0 }, "lines_per_level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := "speed:\n  initial_interval_ms: 600\nrandomizer: bag\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Speed.InitialIntervalMS != 600 {
		t.Errorf("initial interval = %d, expected 600", cfg.Speed.InitialIntervalMS)
	}
	if cfg.Randomizer != "bag" {
		t.Errorf("randomizer = %q, expected bag", cfg.Randomizer)
	}
	// Untouched fields keep their defaults
	if cfg.Speed.Factor != 0.8 || cfg.Scoring.LinesPerLevel != 10 {
		t.Errorf("defaults were not preserved: %+v", cfg)
	}
	if len(cfg.Keys.Rotate) == 0 {
		t.Error("key bindings should be inherited from defaults")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("speed: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed YAML should be an error")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("speed:\n  factor: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("out-of-range values should be an error")
	}
}

func TestMarshalRoundTripsThroughLoad(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Sound = true

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("loaded config differs:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestPresets(t *testing.T) {
	for _, p := range Presets() {
		parsed, err := ParsePreset(string(p))
		if err != nil || parsed != p {
			t.Errorf("ParsePreset(%q) = %q, %v", p, parsed, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("unknown preset should be rejected")
	}

	cfg := DefaultTetrisConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Speed.InitialIntervalMS != 500 {
		t.Errorf("hard preset initial interval = %d, expected 500", cfg.Speed.InitialIntervalMS)
	}

	cfg = DefaultTetrisConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Speed.InitialIntervalMS != 1000 {
		t.Errorf("easy preset initial interval = %d, expected 1000", cfg.Speed.InitialIntervalMS)
	}

	cfg = DefaultTetrisConfig()
	cfg.Speed.MinIntervalMS = 700
	ApplyPreset(&cfg, DifficultyHard)
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should keep the config valid: %v", err)
	}

	cfg = DefaultTetrisConfig()
	ApplyPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, DefaultTetrisConfig()) {
		t.Error("empty preset should not change the config")
	}
}
