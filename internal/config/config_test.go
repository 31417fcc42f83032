package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MOODPET_CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.BackendURL != "http://localhost:8787" {
		t.Errorf("BackendURL = %q", cfg.BackendURL)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("HTTPTimeout = %v, want 15s", cfg.HTTPTimeout)
	}
	if cfg.SaveDebounce != 300*time.Millisecond {
		t.Errorf("SaveDebounce = %v, want 300ms", cfg.SaveDebounce)
	}
	if cfg.Debug {
		t.Error("Debug = true, want false")
	}
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MOODPET_BACKEND_URL", "https://example.supabase.co/")
	t.Setenv("MOODPET_BACKEND_KEY", "anon-key")
	t.Setenv("MOODPET_SAVE_DEBOUNCE", "0s")
	t.Setenv("MOODPET_CONFIG_DIR", dir)
	t.Setenv("MOODPET_DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.BackendURL != "https://example.supabase.co" {
		t.Errorf("BackendURL = %q, want trailing slash trimmed", cfg.BackendURL)
	}
	if cfg.BackendKey != "anon-key" {
		t.Errorf("BackendKey = %q", cfg.BackendKey)
	}
	if cfg.SaveDebounce != 0 {
		t.Errorf("SaveDebounce = %v, want 0", cfg.SaveDebounce)
	}
	if cfg.ConfigDir != dir {
		t.Errorf("ConfigDir = %q, want %q", cfg.ConfigDir, dir)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{BackendURL: "http://localhost:8787", ConfigDir: "/tmp"}, false},
		{"relative url", Config{BackendURL: "localhost:8787", ConfigDir: "/tmp"}, true},
		{"bad scheme", Config{BackendURL: "ftp://example.com", ConfigDir: "/tmp"}, true},
		{"negative debounce", Config{BackendURL: "http://x.io", SaveDebounce: -time.Second, ConfigDir: "/tmp"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Normalize()
			if (err != nil) != tt.wantErr {
				t.Errorf("Normalize() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeDefaultsTimeout(t *testing.T) {
	cfg := Config{BackendURL: "http://localhost", ConfigDir: "/tmp"}
	if err := cfg.Normalize(); err != nil {
		t.Fatalf("Normalize() failed: %v", err)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("HTTPTimeout = %v, want default 15s", cfg.HTTPTimeout)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}

	got, err := ExpandHome("~/.config/moodpet")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".config/moodpet"); got != want {
		t.Errorf("ExpandHome() = %q, want %q", got, want)
	}

	got, _ = ExpandHome("/abs/path")
	if got != "/abs/path" {
		t.Errorf("ExpandHome(/abs/path) = %q", got)
	}
}
