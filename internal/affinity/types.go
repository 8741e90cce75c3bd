package affinity

import "math"

// #region task-type

// TaskType labels the category of a unit of work. The set is closed; the
// declaration order below is the canonical order used for tie-breaks and
// display.
type TaskType string

const (
	TaskPlanning      TaskType = "planning"
	TaskDebugging     TaskType = "debugging"
	TaskRefactoring   TaskType = "refactoring"
	TaskDocumentation TaskType = "documentation"
	TaskTesting       TaskType = "testing"
	TaskReview        TaskType = "review"
	TaskGeneration    TaskType = "generation"
)

// TaskTypes is the canonical ordering of the closed task-type set.
var TaskTypes = []TaskType{
	TaskPlanning,
	TaskDebugging,
	TaskRefactoring,
	TaskDocumentation,
	TaskTesting,
	TaskReview,
	TaskGeneration,
}

// ParseTaskType returns the TaskType for s, or false if s is not a known label.
func ParseTaskType(s string) (TaskType, bool) {
	for _, tt := range TaskTypes {
		if string(tt) == s {
			return tt, true
		}
	}
	return "", false
}

// #endregion task-type

// #region score-bounds

const (
	// MinScore and MaxScore bound every stored affinity score.
	MinScore = 0.1
	MaxScore = 0.99
	// DefaultScore is the neutral prior implied by an absent entry. It is
	// never persisted explicitly unless written by an update.
	DefaultScore = 0.5
)

// Clamp forces a score into [MinScore, MaxScore].
func Clamp(s float64) float64 {
	if s < MinScore {
		return MinScore
	}
	if s > MaxScore {
		return MaxScore
	}
	return s
}

// Round3 rounds to 3 decimal places, matching the stored score precision.
func Round3(s float64) float64 {
	return math.Round(s*1000) / 1000
}

// #endregion score-bounds

// #region matrix

// TaskScores maps task types to learned scores for one variant.
type TaskScores map[TaskType]float64

// Variant is one concrete implementation of a module type.
type Variant struct {
	Name   string
	Scores TaskScores
}

// Module is a category of interchangeable implementations. Variant order is
// significant: ties in selection resolve to the earliest variant.
type Module struct {
	Name     string
	Variants []Variant
}

// Variant returns the named variant, or nil if absent.
func (m *Module) Variant(name string) *Variant {
	for i := range m.Variants {
		if m.Variants[i].Name == name {
			return &m.Variants[i]
		}
	}
	return nil
}

// Matrix is the full module → variant → task-type score mapping. Module order
// is significant and preserved through persistence.
type Matrix struct {
	Modules []Module
}

// Module returns the named module, or nil if absent.
func (m *Matrix) Module(name string) *Module {
	for i := range m.Modules {
		if m.Modules[i].Name == name {
			return &m.Modules[i]
		}
	}
	return nil
}

// Has reports whether the (module, variant) pair exists.
func (m *Matrix) Has(module, variant string) bool {
	mod := m.Module(module)
	return mod != nil && mod.Variant(variant) != nil
}

// Score returns the stored score for (module, variant, task), or DefaultScore
// when any level of the entry is absent. Scores are never clamped on read.
func (m *Matrix) Score(module, variant string, task TaskType) float64 {
	mod := m.Module(module)
	if mod == nil {
		return DefaultScore
	}
	v := mod.Variant(variant)
	if v == nil {
		return DefaultScore
	}
	if s, ok := v.Scores[task]; ok {
		return s
	}
	return DefaultScore
}

// SetScore clamps score into bounds and stores it for (module, variant, task).
// Unknown module/variant pairs are not created; SetScore reports whether the
// write landed.
func (m *Matrix) SetScore(module, variant string, task TaskType, score float64) bool {
	mod := m.Module(module)
	if mod == nil {
		return false
	}
	v := mod.Variant(variant)
	if v == nil {
		return false
	}
	if v.Scores == nil {
		v.Scores = make(TaskScores)
	}
	v.Scores[task] = Clamp(score)
	return true
}

// EnsureVariant registers a (module, variant) pair, appending new entries at
// the end so existing declaration order is preserved. This is the boundary
// used by registry synchronization; scores start at the implicit default.
func (m *Matrix) EnsureVariant(module, variant string) {
	mod := m.Module(module)
	if mod == nil {
		m.Modules = append(m.Modules, Module{Name: module})
		mod = &m.Modules[len(m.Modules)-1]
	}
	if mod.Variant(variant) == nil {
		mod.Variants = append(mod.Variants, Variant{Name: variant, Scores: make(TaskScores)})
	}
}

// #endregion matrix

// #region state

// TimestampLayout is the persisted form of last_updated (ISO-8601 UTC).
const TimestampLayout = "2006-01-02T15:04:05Z"

// State is the persisted root object.
type State struct {
	Matrix       Matrix  `json:"matrix"`
	Observations int     `json:"observations"`
	LastUpdated  *string `json:"last_updated"`
}

// #endregion state
