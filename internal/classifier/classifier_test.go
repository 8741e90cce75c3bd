package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danielpatrickdp/module-affinity/go-engine/internal/affinity"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want affinity.TaskType
	}{
		// Debugging
		{"fix-login-bug", "fix the login bug", affinity.TaskDebugging},
		{"crash-report", "the app crashes with an error on startup", affinity.TaskDebugging},

		// Generation
		{"generate-component", "generate a new component", affinity.TaskGeneration},
		{"scaffold", "scaffold the service skeleton", affinity.TaskGeneration},

		// Planning
		{"roadmap", "plan the new feature roadmap", affinity.TaskPlanning},
		{"architecture", "design the architecture for the billing system", affinity.TaskPlanning},

		// Refactoring
		{"cleanup", "refactor and clean up the parser", affinity.TaskRefactoring},

		// Documentation
		{"readme", "update the readme and document the API", affinity.TaskDocumentation},

		// Testing
		{"coverage", "add test coverage with mocks", affinity.TaskTesting},

		// Review
		{"audit", "review and audit the security layer", affinity.TaskReview},

		// Fallback when nothing matches
		{"no-keywords", "lorem ipsum", affinity.TaskGeneration},
		{"empty", "", affinity.TaskGeneration},

		// Case insensitivity
		{"uppercase", "FIX THE BUG", affinity.TaskDebugging},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			if got != tt.want {
				t.Errorf("classify: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyTieBreak(t *testing.T) {
	// "plan" (planning) and "add" (generation) both score 1; planning comes
	// first in the canonical order and must win the tie.
	if got := Classify("add a plan"); got != affinity.TaskPlanning {
		t.Errorf("tie break: got %q, want %q", got, affinity.TaskPlanning)
	}
}

func TestClassifyKeywordCountsOnce(t *testing.T) {
	// Three hits of one planning keyword count as 1; two distinct generation
	// keywords count as 2 and must win.
	if got := Classify("plan plan plan add new"); got != affinity.TaskGeneration {
		t.Errorf("repeat capping: got %q, want %q", got, affinity.TaskGeneration)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	inputs := []string{"fix the login bug", "add a plan", "lorem ipsum", "review and test everything"}
	for _, text := range inputs {
		first := Classify(text)
		for i := 0; i < 10; i++ {
			if got := Classify(text); got != first {
				t.Fatalf("classify(%q) not deterministic: %q then %q", text, first, got)
			}
		}
	}
}

func TestTableValidate(t *testing.T) {
	if err := DefaultTable().Validate(); err != nil {
		t.Errorf("default table invalid: %v", err)
	}

	bad := Table{{Type: "bogus", Keywords: []string{"x"}}}
	if err := bad.Validate(); err == nil {
		t.Error("unknown task type accepted")
	}

	empty := Table{{Type: affinity.TaskPlanning}}
	if err := empty.Validate(); err == nil {
		t.Error("empty keyword list accepted")
	}
}

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.yaml")
	content := `
- type: planning
  keywords: [blueprint, milestone]
- type: debugging
  keywords: [stacktrace]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("patterns: got %d, want 2", len(table))
	}
	if got := table.Classify("check the stacktrace"); got != affinity.TaskDebugging {
		t.Errorf("custom table classify: got %q, want %q", got, affinity.TaskDebugging)
	}

	badPath := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badPath, []byte("- type: bogus\n  keywords: [x]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTable(badPath); err == nil {
		t.Error("table with unknown task type accepted")
	}
}
