package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danielpatrickdp/module-affinity/go-engine/internal/affinity"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "affinity.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StatePath != "affinity_matrix.json" || cfg.TelemetryDB != "affinity_telemetry.db" || cfg.SkillsDir != "skills" {
		t.Errorf("paths: got %+v", cfg)
	}
	if cfg.Learner.BaseRate != 0.3 || cfg.Learner.FloorRate != 0.05 || cfg.Learner.AnnealFactor != 0.01 {
		t.Errorf("learner defaults: got %+v", cfg.Learner)
	}
	if cfg.Fitness.CompletedDelta != 0.05 || cfg.Fitness.IncompleteDelta != -0.02 {
		t.Errorf("fitness defaults: got %+v", cfg.Fitness)
	}
	if len(cfg.Classifier) != 0 {
		t.Error("classifier override set by default")
	}
}

func TestLoadPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "affinity.yaml")
	content := `
state_path: /var/lib/affinity/state.json
learner:
  base_rate: 0.5
  floor_rate: 0.1
  anneal_factor: 0.02
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StatePath != "/var/lib/affinity/state.json" {
		t.Errorf("state_path: got %q", cfg.StatePath)
	}
	if cfg.Learner.BaseRate != 0.5 || cfg.Learner.FloorRate != 0.1 {
		t.Errorf("learner override: got %+v", cfg.Learner)
	}
	// Untouched fields keep their defaults
	if cfg.TelemetryDB != "affinity_telemetry.db" || cfg.SkillsDir != "skills" {
		t.Errorf("defaults lost: got %+v", cfg)
	}
}

func TestLoadRejectsBadClassifier(t *testing.T) {
	path := filepath.Join(t.TempDir(), "affinity.yaml")
	content := "classifier:\n  - type: bogus\n    keywords: [x]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("classifier with unknown task type accepted")
	}
}

func TestLoadRejectsUnparseableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "affinity.yaml")
	if err := os.WriteFile(path, []byte("{not yaml:::"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("unparseable config accepted")
	}
}

func TestTableFallback(t *testing.T) {
	cfg := Default()
	if got := cfg.Table().Classify("fix the login bug"); got != affinity.TaskDebugging {
		t.Errorf("default table classify: got %q", got)
	}

	path := filepath.Join(t.TempDir(), "affinity.yaml")
	content := "classifier:\n  - type: planning\n    keywords: [milestone]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	table := cfg.Table()
	if len(table) != 1 {
		t.Fatalf("override table size: got %d, want 1", len(table))
	}
	if got := table.Classify("hit the milestone"); got != affinity.TaskPlanning {
		t.Errorf("override classify: got %q", got)
	}
}
