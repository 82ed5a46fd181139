package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_PollOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, "arm_url = \"arm.local:8090\"\npoll_seconds = 10\n")

	cfg, err := LoadConfig(Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.PollInterval() != 10*time.Second {
		t.Fatalf("PollInterval = %v, want 10s", cfg.PollInterval())
	}

	cfg, err = LoadConfig(Options{ConfigPath: path, PollEvery: 2})
	if err != nil {
		t.Fatalf("LoadConfig override: %v", err)
	}
	if cfg.PollInterval() != 2*time.Second {
		t.Fatalf("PollInterval = %v, want 2s", cfg.PollInterval())
	}
}

func TestLoadConfig_RejectsOutOfRangeOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, "")

	_, err := LoadConfig(Options{ConfigPath: path, PollEvery: 99999})
	if err == nil || !strings.Contains(err.Error(), "PollSeconds") {
		t.Fatalf("err = %v, want PollSeconds validation failure", err)
	}
}

func TestLoadConfig_WrapsParseErrors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, "arm_url = [")

	_, err := LoadConfig(Options{ConfigPath: path})
	if err == nil || !strings.HasPrefix(err.Error(), "load config: ") {
		t.Fatalf("err = %v, want load config prefix", err)
	}
}

func TestNewClient(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := LoadConfig(Options{ConfigPath: writeConfig(t, "arm_url = \"http://arm.local:8090/\"\n")})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	client, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if client.BaseURL() != "http://arm.local:8090" {
		t.Fatalf("BaseURL = %q", client.BaseURL())
	}
}
