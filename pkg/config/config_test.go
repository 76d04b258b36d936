package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsSane(t *testing.T) {
	cfg := Default()
	if cfg.QuadtreeMaxDepth <= 0 || cfg.CDThreshold <= 0 {
		t.Fatalf("expected positive defaults, got %+v", cfg)
	}
	if len(cfg.PoleCoverageSchedule) == 0 {
		t.Fatal("expected a non-empty default pole coverage schedule")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cde.yaml")
	yamlBody := "cd_threshold: 32\nn_ff_poles: 6\n"
	if err := os.WriteFile(path, []byte(yamlBody), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CDThreshold != 32 {
		t.Errorf("expected cd_threshold 32, got %d", cfg.CDThreshold)
	}
	if cfg.NFailFastPoles != 6 {
		t.Errorf("expected n_ff_poles 6, got %d", cfg.NFailFastPoles)
	}
	if cfg.QuadtreeMaxDepth != Default().QuadtreeMaxDepth {
		t.Errorf("expected untouched fields to keep their default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/cde.yaml"); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
