package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := load("")
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if cfg.Model != DefaultModel {
		t.Errorf("Model = %q, want %q", cfg.Model, DefaultModel)
	}
	if cfg.ImagesDir != DefaultImagesDir {
		t.Errorf("ImagesDir = %q, want %q", cfg.ImagesDir, DefaultImagesDir)
	}
	if cfg.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("TimeoutSeconds = %v, want %v", cfg.TimeoutSeconds, DefaultTimeoutSeconds)
	}
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "model: gemini-2.5-pro\nimages_dir: /tmp/shots\ntimeout: 2.5\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := load(path)
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if cfg.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %q, want gemini-2.5-pro", cfg.Model)
	}
	if cfg.ImagesDir != "/tmp/shots" {
		t.Errorf("ImagesDir = %q, want /tmp/shots", cfg.ImagesDir)
	}
	if cfg.TimeoutSeconds != 2.5 {
		t.Errorf("TimeoutSeconds = %v, want 2.5", cfg.TimeoutSeconds)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("model: from-file\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("IMGX_MODEL", "from-env")

	cfg, err := load(path)
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if cfg.Model != "from-env" {
		t.Errorf("Model = %q, want from-env (env must beat file)", cfg.Model)
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	cfg, err := load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load() with missing file should not error, got %v", err)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("Model = %q, want default %q", cfg.Model, DefaultModel)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("model: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := load(path); err == nil {
		t.Errorf("load() with malformed YAML should error")
	}
}

func TestTimeout(t *testing.T) {
	tests := []struct {
		seconds float64
		want    time.Duration
	}{
		{60, 60 * time.Second},
		{0.5, 500 * time.Millisecond},
		{2.5, 2500 * time.Millisecond},
		{0.0015, time.Millisecond}, // sub-millisecond fractions truncate
	}

	for _, tt := range tests {
		cfg := &Config{TimeoutSeconds: tt.seconds}
		if got := cfg.Timeout(); got != tt.want {
			t.Errorf("Timeout() with %v seconds = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}

// clearEnv blanks the variables the loader reads so tests see a clean
// environment regardless of the host shell.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GEMINI_API_KEY", "GEMINI_BASE_URL", "IMGX_MODEL", "IMGX_SYSTEM", "IMGX_IMAGES_DIR", "IMGX_TIMEOUT", "IMGX_DEBUG"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
