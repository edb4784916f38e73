package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("ARCADE_TEST_VALUE", "set")
	if got := GetEnv("ARCADE_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnv = %q, want set", got)
	}
	if got := GetEnv("ARCADE_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, want fallback", got)
	}
}

func TestGetEnvInt64(t *testing.T) {
	t.Setenv("ARCADE_TEST_INT", " 42 ")
	if n, ok := GetEnvInt64("ARCADE_TEST_INT"); !ok || n != 42 {
		t.Errorf("GetEnvInt64 = %d, %v", n, ok)
	}
	t.Setenv("ARCADE_TEST_INT", "forty")
	if _, ok := GetEnvInt64("ARCADE_TEST_INT"); ok {
		t.Error("expected invalid number to be rejected")
	}
	if _, ok := GetEnvInt64("ARCADE_TEST_INT_MISSING"); ok {
		t.Error("expected unset variable to be rejected")
	}
}

func TestGetEnvBool(t *testing.T) {
	for _, v := range []string{"1", "true", "ON", "yes"} {
		t.Setenv("ARCADE_TEST_BOOL", v)
		if !GetEnvBool("ARCADE_TEST_BOOL") {
			t.Errorf("%q should be true", v)
		}
	}
	for _, v := range []string{"", "0", "off", "nope"} {
		t.Setenv("ARCADE_TEST_BOOL", v)
		if GetEnvBool("ARCADE_TEST_BOOL") {
			t.Errorf("%q should be false", v)
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("ARCADE_TEST_DOTENV=from-file\nARCADE_TEST_KEEP=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ARCADE_TEST_KEEP", "from-env")
	t.Setenv("ARCADE_TEST_DOTENV", "")
	os.Unsetenv("ARCADE_TEST_DOTENV")

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("ARCADE_TEST_DOTENV"); got != "from-file" {
		t.Errorf("ARCADE_TEST_DOTENV = %q", got)
	}
	if got := os.Getenv("ARCADE_TEST_KEEP"); got != "from-env" {
		t.Errorf("existing variable overridden: %q", got)
	}
}

func TestLoadDotEnvNothingPresent(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "none.env")); err != nil {
		t.Errorf("missing file should not be an error: %v", err)
	}
}

func TestNewRandSeeded(t *testing.T) {
	t.Setenv(EnvSeed, "7")
	r1, seed := NewRand()
	if seed != 7 {
		t.Fatalf("seed = %d, want 7", seed)
	}
	r2, _ := NewRand()
	for i := 0; i < 10; i++ {
		if a, b := r1.Intn(1000), r2.Intn(1000); a != b {
			t.Fatalf("draw %d differs: %d vs %d", i, a, b)
		}
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv(EnvLogLevel, "warn")
	logger := NewLogger(&buf, "test")
	logger.Info("hidden")
	logger.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected log output %q", out)
	}
	if !strings.Contains(out, "test") {
		t.Errorf("missing prefix in %q", out)
	}
}
