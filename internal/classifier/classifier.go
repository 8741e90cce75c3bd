package classifier

// #region imports
import (
	"fmt"
	"os"
	"strings"

	"github.com/danielpatrickdp/module-affinity/go-engine/internal/affinity"
	"gopkg.in/yaml.v3"
)

// #endregion

// #region table

// Pattern binds one task type to the keywords that signal it.
type Pattern struct {
	Type     affinity.TaskType `yaml:"type"`
	Keywords []string          `yaml:"keywords"`
}

// Table is an ordered keyword table. Order matters: ties in keyword counts
// resolve to the pattern that appears first.
type Table []Pattern

// defaultTable lists the canonical task patterns in canonical task order.
// The keyword sets are empirically chosen; keep the defaults stable.
var defaultTable = Table{
	{Type: affinity.TaskPlanning, Keywords: []string{"plan", "design", "architect", "implement", "feature", "roadmap", "strategy"}},
	{Type: affinity.TaskDebugging, Keywords: []string{"fix", "bug", "error", "issue", "broken", "failing", "crash", "debug"}},
	{Type: affinity.TaskRefactoring, Keywords: []string{"refactor", "clean", "improve", "optimize", "restructure", "modernize"}},
	{Type: affinity.TaskDocumentation, Keywords: []string{"doc", "readme", "comment", "explain", "document"}},
	{Type: affinity.TaskTesting, Keywords: []string{"test", "spec", "coverage", "assert", "mock", "e2e"}},
	{Type: affinity.TaskReview, Keywords: []string{"review", "audit", "check", "analyze", "assess"}},
	{Type: affinity.TaskGeneration, Keywords: []string{"create", "generate", "scaffold", "new", "add", "build"}},
}

// Fallback is returned when no keyword matches at all.
const Fallback = affinity.TaskGeneration

// DefaultTable returns the built-in keyword table.
func DefaultTable() Table {
	return defaultTable
}

// #endregion table

// #region classify

// Classify maps a free-text task description to a task type via keyword
// counting. Each keyword contributes at most 1 regardless of repeats; the
// strictly highest count wins and ties keep the earliest pattern. Zero hits
// fall back to Fallback. Pure, never fails.
func (t Table) Classify(text string) affinity.TaskType {
	lower := strings.ToLower(text)

	best := Fallback
	bestCount := 0
	for _, p := range t {
		count := 0
		for _, kw := range p.Keywords {
			if strings.Contains(lower, kw) {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			best = p.Type
		}
	}
	return best
}

// Classify runs the default table.
func Classify(text string) affinity.TaskType {
	return defaultTable.Classify(text)
}

// #endregion classify

// #region validate

// Validate checks that every pattern names a known task type and carries at
// least one keyword.
func (t Table) Validate() error {
	for i, p := range t {
		if _, ok := affinity.ParseTaskType(string(p.Type)); !ok {
			return fmt.Errorf("pattern %d: unknown task type %q", i, p.Type)
		}
		if len(p.Keywords) == 0 {
			return fmt.Errorf("pattern %d (%s): no keywords", i, p.Type)
		}
	}
	return nil
}

// #endregion validate

// #region load

// LoadTable reads a keyword table override from a YAML file. The file is a
// sequence of {type, keywords} entries whose order is preserved.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("table %s: %w", path, err)
	}
	return t, nil
}

// #endregion load
