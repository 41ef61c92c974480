package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	def := Default()
	if cfg.UI.CardWidth != def.UI.CardWidth || !cfg.UI.AnimationsEnabled {
		t.Fatalf("missing file did not yield defaults: %+v", cfg)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.UI.CardWidth = 40
	cfg.UI.AnimationsEnabled = false
	cfg.Weather.RefreshInterval = "3m"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.UI.CardWidth != 40 || got.UI.AnimationsEnabled {
		t.Fatalf("UI settings did not round-trip: %+v", got.UI)
	}
	d, err := got.RefreshInterval()
	if err != nil || d != 3*time.Minute {
		t.Fatalf("RefreshInterval = %v, %v; want 3m", d, err)
	}
}

func TestLoadMergesPartialFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	partial := "[ui]\ncard_width = 50\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UI.CardWidth != 50 {
		t.Fatalf("card_width = %d, want 50", cfg.UI.CardWidth)
	}
	if cfg.Weather.RefreshInterval != Default().Weather.RefreshInterval {
		t.Fatalf("unset key lost its default: %q", cfg.Weather.RefreshInterval)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	bad := "[weather]\nrefresh_interval = \"soon\"\n"
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load accepted an invalid refresh interval")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.UI.CardWidth = 2
	if err := cfg.Validate(); err == nil {
		t.Fatalf("Validate accepted a 2-cell card width")
	}
	cfg = Default()
	cfg.UI.Gap = -1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("Validate accepted a negative gap")
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	initial := Default()
	if err := initial.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var mu sync.Mutex
	var seen *Config
	w, err := Watch(path, initial, func(c *Config) {
		mu.Lock()
		seen = c
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Stop()

	updated := Default()
	updated.UI.AnimationsEnabled = false
	if err := updated.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		got := seen
		mu.Unlock()
		if got != nil && !got.UI.AnimationsEnabled {
			if w.AnimationsEnabled() {
				t.Fatalf("Current config not updated after reload")
			}
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("watcher never observed the rewritten config")
}

func TestWatcherKeepsPreviousConfigOnBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	initial := Default()
	if err := initial.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	w, err := Watch(path, initial, nil)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("not toml ["), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	// Give the watcher a moment to pick the event up.
	time.Sleep(300 * time.Millisecond)
	if !w.AnimationsEnabled() {
		t.Fatalf("bad file replaced the served config")
	}
}
