package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseClimb(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseClimb(embedded) failed: %v", err)
	}
	if cfg != DefaultClimbConfig() {
		t.Errorf("embedded YAML and DefaultClimbConfig() differ:\n%+v\n%+v", cfg, DefaultClimbConfig())
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := DefaultClimbConfig()

	if cfg.HalfWidth() != 400 {
		t.Errorf("HalfWidth() = %v, expected 400", cfg.HalfWidth())
	}
	if cfg.Cooldown() != time.Second {
		t.Errorf("Cooldown() = %v, expected 1s", cfg.Cooldown())
	}
	if cfg.Freeze() != 0 {
		t.Errorf("Freeze() = %v, expected 0", cfg.Freeze())
	}
	if cfg.MaxElapsed() != 100*time.Millisecond {
		t.Errorf("MaxElapsed() = %v, expected 100ms", cfg.MaxElapsed())
	}
}

func TestParseClimbPartialOverride(t *testing.T) {
	cfg, err := ParseClimb([]byte("physics:\n  gravity: 1.5\ncombat:\n  freeze_ms: 300\n"))
	if err != nil {
		t.Fatalf("ParseClimb() failed: %v", err)
	}
	if cfg.Physics.Gravity != 1.5 {
		t.Errorf("gravity = %v, expected 1.5", cfg.Physics.Gravity)
	}
	if cfg.Combat.FreezeMS != 300 {
		t.Errorf("freeze_ms = %d, expected 300", cfg.Combat.FreezeMS)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.JumpAcceleration != -12 {
		t.Errorf("jump_acceleration = %v, expected default -12", cfg.Physics.JumpAcceleration)
	}
	if cfg.Platforms.InitialCount != 20 {
		t.Errorf("initial_count = %d, expected default 20", cfg.Platforms.InitialCount)
	}
}

func TestParseClimbRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero spacing", "platforms:\n  spacing: 0\n"},
		{"negative player width", "player:\n  width: -1\n"},
		{"goal below floor", "world:\n  goal_height: 5000\n"},
		{"narrow canvas", "viewport:\n  canvas_width: 40\n"},
		{"zero max elapsed", "timing:\n  max_elapsed_ms: 0\n"},
		{"malformed", "physics: [1, 2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseClimb([]byte(tc.yaml)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadClimbCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "climb.yaml")
	if err := os.WriteFile(path, []byte("world:\n  goal_height: -500\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadClimb(path)
	if err != nil {
		t.Fatalf("LoadClimb() failed: %v", err)
	}
	if cfg.World.GoalHeight != -500 {
		t.Errorf("goal_height = %v, expected -500", cfg.World.GoalHeight)
	}
	if ResolvePath(path) != path {
		t.Errorf("ResolvePath() = %q", ResolvePath(path))
	}
}

func TestLoadClimbMissingCustomPath(t *testing.T) {
	cfg, err := LoadClimb(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
	if cfg != DefaultClimbConfig() {
		t.Error("failed load should still hand back defaults")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultClimbConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := ParseClimb(data)
	if err != nil {
		t.Fatalf("ParseClimb() failed: %v", err)
	}
	if cfg != DefaultClimbConfig() {
		t.Error("marshalled defaults do not parse back to defaults")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     Preset
		goal       float64
		pruneBelow float64
	}{
		{PresetClassic, -2000, 0},
		{PresetSprint, -1000, 0},
		{PresetMarathon, -9000, 1600},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultClimbConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.World.GoalHeight != tc.goal {
				t.Errorf("goal = %v, expected %v", cfg.World.GoalHeight, tc.goal)
			}
			if cfg.Platforms.PruneBelow != tc.pruneBelow {
				t.Errorf("prune_below = %v, expected %v", cfg.Platforms.PruneBelow, tc.pruneBelow)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != PresetClassic {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if p, err := ParsePreset("marathon"); err != nil || p != PresetMarathon {
		t.Errorf("ParsePreset(marathon) = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CLIMB_TEST_VALUE", "set")
	if GetEnv("CLIMB_TEST_VALUE", "fallback") != "set" {
		t.Error("GetEnv should return the set value")
	}
	if GetEnv("CLIMB_TEST_UNSET_VALUE", "fallback") != "fallback" {
		t.Error("GetEnv should return the fallback")
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "climb.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0.6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0.9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != w.Path() {
			t.Errorf("event for %q, expected %q", got, w.Path())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
}

func TestWatcherReportsOnceAfterBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "climb.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0.6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	// Editors often truncate first and write the new contents right after
	if err := os.Truncate(path, 0); err != nil {
		t.Fatal(err)
	}
	time.Sleep(debounce / 5)
	full := "physics:\n  gravity: 0.9\n"
	if err := os.WriteFile(path, []byte(full), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Events:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}

	cfg, err := LoadClimb(path)
	if err != nil {
		t.Fatalf("LoadClimb() after event failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.9 {
		t.Errorf("gravity = %v, expected the completed write", cfg.Physics.Gravity)
	}

	select {
	case <-w.Events:
		t.Error("one save should produce one event")
	case <-time.After(3 * debounce):
	}
}
