package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestProcessRequiresAPIKey(t *testing.T) {
	env := setupCLITestEnv(t)

	img := filepath.Join(env.baseDir, "photo.jpg")
	if err := os.WriteFile(img, []byte("not really a jpg"), 0o644); err != nil {
		t.Fatalf("write image: %v", err)
	}

	_, _, err := runCLI(t, []string{"process", img}, env.configPath)
	if err == nil {
		t.Fatal("expected error without an API key")
	}
	if !strings.Contains(err.Error(), "no API key configured") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessRequiresArgs(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"process"}, env.configPath); err == nil {
		t.Fatal("expected usage error without arguments")
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("short", 10); got != "short" {
		t.Fatalf("truncateText(short) = %q", got)
	}
	long := strings.Repeat("x", 60)
	got := truncateText(long, 48)
	if len([]rune(got)) != 48 {
		t.Fatalf("expected 48 runes, got %d", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}
