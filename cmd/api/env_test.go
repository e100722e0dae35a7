package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnvWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := loadDotEnv(); err != nil {
		t.Fatalf("expected missing .env to be ignored, got %v", err)
	}
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	content := "APP_ADDR=:1234\nAPP_LOG_LEVEL=debug\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatalf("writing .env: %v", err)
	}
	t.Chdir(dir)

	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("APP_ADDR", "")
	_ = os.Unsetenv("APP_ADDR")

	if err := loadDotEnv(); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}

	if got := os.Getenv("APP_ADDR"); got != ":1234" {
		t.Fatalf("expected APP_ADDR from .env, got %q", got)
	}
	if got := os.Getenv("APP_LOG_LEVEL"); got != "warn" {
		t.Fatalf("expected existing APP_LOG_LEVEL to win, got %q", got)
	}
}
