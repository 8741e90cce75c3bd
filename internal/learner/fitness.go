package learner

// #region fitness-policy

// FitnessPolicy maps an observed task outcome to a fitness delta. The
// magnitudes are caller policy, not part of the engine contract; these
// defaults match what the telemetry driver has always supplied.
type FitnessPolicy struct {
	CompletedDelta  float64 `yaml:"completed_delta"`
	IncompleteDelta float64 `yaml:"incomplete_delta"`
}

// DefaultFitnessPolicy rewards completion and mildly penalizes the rest.
func DefaultFitnessPolicy() FitnessPolicy {
	return FitnessPolicy{CompletedDelta: 0.05, IncompleteDelta: -0.02}
}

// Delta returns the fitness delta for an outcome.
func (p FitnessPolicy) Delta(completed bool) float64 {
	if completed {
		return p.CompletedDelta
	}
	return p.IncompleteDelta
}

// #endregion fitness-policy
