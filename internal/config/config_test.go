package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.HTTP.Addr == "" {
		t.Fatal("expected default HTTP addr")
	}
	if cfg.Analysis.SourceTimeout != 8*time.Second {
		t.Fatalf("source timeout = %v, want 8s", cfg.Analysis.SourceTimeout)
	}
	if cfg.Analysis.FactCheckTimeout != 5*time.Second {
		t.Fatalf("fact-check timeout = %v, want 5s", cfg.Analysis.FactCheckTimeout)
	}
	if cfg.Analysis.SourceDelay != 500*time.Millisecond {
		t.Fatalf("source delay = %v, want 500ms", cfg.Analysis.SourceDelay)
	}
	if cfg.Analysis.FactCheckDelay != 300*time.Millisecond {
		t.Fatalf("fact-check delay = %v, want 300ms", cfg.Analysis.FactCheckDelay)
	}
	if cfg.Analysis.ApprovalThreshold != 50 {
		t.Fatalf("approval threshold = %v, want 50", cfg.Analysis.ApprovalThreshold)
	}
	if cfg.Worker.Count <= 0 || cfg.Worker.QueueSize <= 0 {
		t.Fatalf("worker defaults missing: %+v", cfg.Worker)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	raw := "http:\n  addr: \":9000\"\ndatabase:\n  dsn: \"file-dsn\"\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(configPathEnv, path)
	t.Setenv(databaseDSNEnv, "env-dsn")

	cfg := Load()
	if cfg.HTTP.Addr != ":9000" {
		t.Fatalf("addr = %q, want :9000 from file", cfg.HTTP.Addr)
	}
	if cfg.Database.DSN != "env-dsn" {
		t.Fatalf("dsn = %q, env must override file", cfg.Database.DSN)
	}
}
