package affinity

// #region seed-matrix

// SeedMatrix returns the hardcoded prior scores used before any learning.
// The values are empirically chosen; downstream consumers depend on the
// score trajectories they produce, so they must not be altered.
func SeedMatrix() Matrix {
	return Matrix{Modules: []Module{
		{Name: "research", Variants: []Variant{
			{Name: "v1", Scores: TaskScores{TaskPlanning: 0.72, TaskDebugging: 0.45, TaskRefactoring: 0.68, TaskDocumentation: 0.50, TaskTesting: 0.55, TaskReview: 0.60, TaskGeneration: 0.65}},
			{Name: "v2", Scores: TaskScores{TaskPlanning: 0.81, TaskDebugging: 0.52, TaskRefactoring: 0.71, TaskDocumentation: 0.65, TaskTesting: 0.60, TaskReview: 0.75, TaskGeneration: 0.70}},
			{Name: "v3", Scores: TaskScores{TaskPlanning: 0.65, TaskDebugging: 0.78, TaskRefactoring: 0.59, TaskDocumentation: 0.40, TaskTesting: 0.70, TaskReview: 0.55, TaskGeneration: 0.80}},
		}},
		{Name: "structure", Variants: []Variant{
			{Name: "v1", Scores: TaskScores{TaskPlanning: 0.88, TaskDebugging: 0.61, TaskRefactoring: 0.74, TaskDocumentation: 0.70, TaskTesting: 0.65, TaskReview: 0.80, TaskGeneration: 0.72}},
			{Name: "v2", Scores: TaskScores{TaskPlanning: 0.71, TaskDebugging: 0.69, TaskRefactoring: 0.82, TaskDocumentation: 0.60, TaskTesting: 0.75, TaskReview: 0.68, TaskGeneration: 0.78}},
			{Name: "v3", Scores: TaskScores{TaskPlanning: 0.60, TaskDebugging: 0.75, TaskRefactoring: 0.65, TaskDocumentation: 0.45, TaskTesting: 0.80, TaskReview: 0.55, TaskGeneration: 0.85}},
		}},
		{Name: "output", Variants: []Variant{
			{Name: "v1", Scores: TaskScores{TaskPlanning: 0.85, TaskDebugging: 0.60, TaskRefactoring: 0.70, TaskDocumentation: 0.80, TaskTesting: 0.55, TaskReview: 0.75, TaskGeneration: 0.65}},
			{Name: "v2", Scores: TaskScores{TaskPlanning: 0.70, TaskDebugging: 0.70, TaskRefactoring: 0.75, TaskDocumentation: 0.65, TaskTesting: 0.70, TaskReview: 0.65, TaskGeneration: 0.75}},
			{Name: "v3", Scores: TaskScores{TaskPlanning: 0.55, TaskDebugging: 0.80, TaskRefactoring: 0.60, TaskDocumentation: 0.40, TaskTesting: 0.85, TaskReview: 0.50, TaskGeneration: 0.88}},
		}},
		{Name: "workflow", Variants: []Variant{
			{Name: "v1", Scores: TaskScores{TaskPlanning: 0.80, TaskDebugging: 0.55, TaskRefactoring: 0.65, TaskDocumentation: 0.70, TaskTesting: 0.60, TaskReview: 0.85, TaskGeneration: 0.60}},
			{Name: "v2", Scores: TaskScores{TaskPlanning: 0.75, TaskDebugging: 0.70, TaskRefactoring: 0.80, TaskDocumentation: 0.65, TaskTesting: 0.75, TaskReview: 0.70, TaskGeneration: 0.70}},
			{Name: "v3", Scores: TaskScores{TaskPlanning: 0.65, TaskDebugging: 0.85, TaskRefactoring: 0.70, TaskDocumentation: 0.50, TaskTesting: 0.80, TaskReview: 0.60, TaskGeneration: 0.85}},
		}},
		{Name: "input", Variants: []Variant{
			{Name: "v1", Scores: TaskScores{TaskPlanning: 0.70, TaskDebugging: 0.75, TaskRefactoring: 0.65, TaskDocumentation: 0.80, TaskTesting: 0.70, TaskReview: 0.75, TaskGeneration: 0.60}},
			{Name: "v2", Scores: TaskScores{TaskPlanning: 0.75, TaskDebugging: 0.70, TaskRefactoring: 0.70, TaskDocumentation: 0.65, TaskTesting: 0.65, TaskReview: 0.70, TaskGeneration: 0.75}},
		}},
		{Name: "validation", Variants: []Variant{
			{Name: "v1", Scores: TaskScores{TaskPlanning: 0.60, TaskDebugging: 0.85, TaskRefactoring: 0.80, TaskDocumentation: 0.50, TaskTesting: 0.90, TaskReview: 0.75, TaskGeneration: 0.70}},
			{Name: "v2", Scores: TaskScores{TaskPlanning: 0.70, TaskDebugging: 0.80, TaskRefactoring: 0.85, TaskDocumentation: 0.55, TaskTesting: 0.85, TaskReview: 0.80, TaskGeneration: 0.75}},
			{Name: "v3", Scores: TaskScores{TaskPlanning: 0.80, TaskDebugging: 0.50, TaskRefactoring: 0.60, TaskDocumentation: 0.70, TaskTesting: 0.55, TaskReview: 0.65, TaskGeneration: 0.80}},
		}},
	}}
}

// SeedState returns the initial state used when nothing has been persisted.
func SeedState() State {
	return State{Matrix: SeedMatrix(), Observations: 0, LastUpdated: nil}
}

// #endregion seed-matrix
