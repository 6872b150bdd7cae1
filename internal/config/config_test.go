package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORAGE_PATH", "")
	t.Setenv("LANGUAGE_URL", "")
	t.Setenv("LANGUAGE_ENABLED", "")
	t.Setenv("TOP_ENTITIES", "")
	t.Setenv("TOP_WORDS", "")

	cfg := Load()
	if cfg.StoragePath != "./local_storage" {
		t.Fatalf("expected default storage path ./local_storage, got %q", cfg.StoragePath)
	}
	if cfg.LanguageURL != "http://localhost:8090" {
		t.Fatalf("expected default language url, got %q", cfg.LanguageURL)
	}
	if !cfg.LanguageEnabled {
		t.Fatalf("expected language enabled by default")
	}
	if cfg.TopEntities != 5 {
		t.Fatalf("expected default top entities 5, got %d", cfg.TopEntities)
	}
	if cfg.TopWords != 10 {
		t.Fatalf("expected default top words 10, got %d", cfg.TopWords)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("STORAGE_PATH", "/tmp/records")
	t.Setenv("LANGUAGE_ENABLED", "false")
	t.Setenv("LANGUAGE_TIMEOUT_SECONDS", "15")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")

	cfg := Load()
	if cfg.StoragePath != "/tmp/records" {
		t.Fatalf("expected storage path override, got %q", cfg.StoragePath)
	}
	if cfg.LanguageEnabled {
		t.Fatalf("expected language disabled")
	}
	if cfg.LanguageTimeoutSeconds != 15 {
		t.Fatalf("expected language timeout 15, got %d", cfg.LanguageTimeoutSeconds)
	}
	if cfg.MaxUploadBytes != 1024 {
		t.Fatalf("expected max upload bytes 1024, got %d", cfg.MaxUploadBytes)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("TOP_ENTITIES", "many")
	t.Setenv("LANGUAGE_ENABLED", "maybe")

	cfg := Load()
	if cfg.TopEntities != 5 {
		t.Fatalf("expected fallback top entities 5, got %d", cfg.TopEntities)
	}
	if !cfg.LanguageEnabled {
		t.Fatalf("expected fallback language enabled")
	}
}
