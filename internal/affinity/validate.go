package affinity

// #region imports
import (
	"fmt"
	"time"
)

// #endregion

// #region check-types

// CheckMetric is one named invariant check over a state.
type CheckMetric struct {
	Name  string
	Value float64
	Pass  bool
}

// CheckResult aggregates invariant checks with pass/fail and reasons.
type CheckResult struct {
	Passed      bool
	Metrics     []CheckMetric
	FailReasons []string
}

// #endregion check-types

// #region validate

// Validate runs lightweight invariant checks on a state: non-negative
// observation counter, non-empty variant sets, score bounds, known task
// labels, and a parseable last_updated stamp. The store uses it to decide
// whether a decoded file is trustworthy.
func Validate(st State) CheckResult {
	var metrics []CheckMetric
	passed := true
	var failReasons []string

	// 1. Observation counter is non-negative
	obsPass := st.Observations >= 0
	metrics = append(metrics, CheckMetric{Name: "observations", Value: float64(st.Observations), Pass: obsPass})
	if !obsPass {
		passed = false
		failReasons = append(failReasons, fmt.Sprintf("observations %d is negative", st.Observations))
	}

	// 2. Every module owns at least one variant
	for _, mod := range st.Matrix.Modules {
		modPass := len(mod.Variants) > 0
		metrics = append(metrics, CheckMetric{
			Name:  fmt.Sprintf("module_%s_variants", mod.Name),
			Value: float64(len(mod.Variants)),
			Pass:  modPass,
		})
		if !modPass {
			passed = false
			failReasons = append(failReasons, fmt.Sprintf("module %q has no variants", mod.Name))
		}
	}

	// 3. Score bounds and task labels
	violations := 0
	for _, mod := range st.Matrix.Modules {
		for _, v := range mod.Variants {
			for tt, s := range v.Scores {
				if _, ok := ParseTaskType(string(tt)); !ok {
					violations++
					failReasons = append(failReasons, fmt.Sprintf("%s/%s: unknown task type %q", mod.Name, v.Name, tt))
					continue
				}
				if s < MinScore || s > MaxScore {
					violations++
					failReasons = append(failReasons, fmt.Sprintf("%s/%s task %s: score %v outside bounds", mod.Name, v.Name, tt, s))
				}
			}
		}
	}
	boundsPass := violations == 0
	metrics = append(metrics, CheckMetric{Name: "score_violations", Value: float64(violations), Pass: boundsPass})
	if !boundsPass {
		passed = false
	}

	// 4. last_updated parses when present
	stampPass := true
	if st.LastUpdated != nil {
		if _, err := time.Parse(TimestampLayout, *st.LastUpdated); err != nil {
			stampPass = false
			passed = false
			failReasons = append(failReasons, fmt.Sprintf("last_updated %q: %v", *st.LastUpdated, err))
		}
	}
	metrics = append(metrics, CheckMetric{Name: "last_updated_valid", Value: 1, Pass: stampPass})

	return CheckResult{Passed: passed, Metrics: metrics, FailReasons: failReasons}
}

// #endregion validate
