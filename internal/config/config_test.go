package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "LOG_PRETTY", "DECODER", "WORKERS", "DEDUPE", "ADDR", "CONFIG"} {
		t.Setenv(EnvPrefix+"_"+key, "")
		os.Unsetenv(EnvPrefix + "_" + key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Config{LogLevel: "info", Decoder: "go", Workers: 1, Dedupe: true, Addr: ":8080"}
	if *cfg != want {
		t.Errorf("Expected %+v, got %+v", want, *cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CARDOCR_LOG_LEVEL", "debug")
	t.Setenv("CARDOCR_LOG_PRETTY", "true")
	t.Setenv("CARDOCR_WORKERS", "4")
	t.Setenv("CARDOCR_DEDUPE", "false")
	t.Setenv("CARDOCR_ADDR", "127.0.0.1:9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "debug" || !cfg.LogPretty || cfg.Workers != 4 || cfg.Dedupe || cfg.Addr != "127.0.0.1:9000" {
		t.Errorf("Environment not applied: %+v", *cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cardocr.yaml")
	if err := os.WriteFile(path, []byte("workers: 3\naddr: \":7000\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CARDOCR_CONFIG", path)
	t.Setenv("CARDOCR_ADDR", ":7001")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Workers != 3 {
		t.Errorf("Expected workers from file, got %d", cfg.Workers)
	}
	if cfg.Addr != ":7001" {
		t.Errorf("Environment should override the file, got %s", cfg.Addr)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"CARDOCR_WORKERS", "0"},
		{"CARDOCR_DECODER", "magick"},
		{"CARDOCR_CONFIG", "/does/not/exist.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Expected an error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
