package learner

// #region imports
import (
	"fmt"

	"github.com/danielpatrickdp/module-affinity/go-engine/internal/affinity"
	"github.com/danielpatrickdp/module-affinity/go-engine/internal/store"
)

// #endregion

// #region config

// Config holds the annealing schedule for the online update rule. The
// defaults are canonical; downstream score trajectories depend on them.
type Config struct {
	BaseRate     float64 `yaml:"base_rate"`     // rate at zero observations
	FloorRate    float64 `yaml:"floor_rate"`    // learning never freezes below this
	AnnealFactor float64 `yaml:"anneal_factor"` // per-observation decay of the rate
}

// DefaultConfig returns the canonical schedule constants.
func DefaultConfig() Config {
	return Config{
		BaseRate:     0.3,
		FloorRate:    0.05,
		AnnealFactor: 0.01,
	}
}

// Rate computes the learning rate for a given observation count:
// max(floor, base / (1 + observations*anneal)). Strictly non-increasing in
// observations, asymptotic to the floor.
func (c Config) Rate(observations int) float64 {
	r := c.BaseRate / (1 + float64(observations)*c.AnnealFactor)
	if r < c.FloorRate {
		return c.FloorRate
	}
	return r
}

// #endregion config

// #region selection

// Selection names one module/variant pair used on a task.
type Selection struct {
	Module  string `json:"module"`
	Variant string `json:"variant"`
}

// #endregion selection

// #region result

// PairUpdate records one applied score adjustment.
type PairUpdate struct {
	Module  string            `json:"module"`
	Variant string            `json:"variant"`
	Task    affinity.TaskType `json:"task"`
	Old     float64           `json:"old"`
	New     float64           `json:"new"`
}

// Decision records what the update decided overall.
type Decision struct {
	Action string // "applied" | "no_op"
	Reason string
}

// Result bundles everything produced by one update.
type Result struct {
	Rate         float64
	Observations int // counter after the update
	Applied      []PairUpdate
	Skipped      []Selection
	Decision     Decision
}

// #endregion result

// #region apply

// Apply is a pure function that runs one online update against st in place.
// Each selected pair that exists in the matrix has its score for task moved
// by delta*rate, clamped into bounds and rounded to 3 decimals; unknown
// pairs are skipped, never created. The observation counter increments
// exactly once per call regardless of how many pairs were touched.
func Apply(st *affinity.State, selections []Selection, task affinity.TaskType, delta float64, cfg Config) Result {
	rate := cfg.Rate(st.Observations)

	var applied []PairUpdate
	var skipped []Selection
	for _, sel := range selections {
		if !st.Matrix.Has(sel.Module, sel.Variant) {
			skipped = append(skipped, sel)
			continue
		}
		old := st.Matrix.Score(sel.Module, sel.Variant, task)
		next := affinity.Round3(affinity.Clamp(old + delta*rate))
		st.Matrix.SetScore(sel.Module, sel.Variant, task, next)
		applied = append(applied, PairUpdate{
			Module:  sel.Module,
			Variant: sel.Variant,
			Task:    task,
			Old:     old,
			New:     next,
		})
	}

	st.Observations++

	decision := Decision{Action: "no_op", Reason: "no known module/variant pairs"}
	if len(applied) > 0 {
		decision = Decision{
			Action: "applied",
			Reason: fmt.Sprintf("%d pairs adjusted at rate %.4f", len(applied), rate),
		}
	}

	return Result{
		Rate:         rate,
		Observations: st.Observations,
		Applied:      applied,
		Skipped:      skipped,
		Decision:     decision,
	}
}

// #endregion apply

// #region updater

// Updater binds the pure update rule to a store, running each update inside
// the store's scoped load-mutate-save cycle.
type Updater struct {
	store *store.Store
	cfg   Config
}

// NewUpdater creates an Updater over the given store.
func NewUpdater(s *store.Store, cfg Config) *Updater {
	return &Updater{store: s, cfg: cfg}
}

// Update applies one observed outcome and persists the whole state. Unknown
// pairs never fail the call; a persistence failure does.
func (u *Updater) Update(selections []Selection, task affinity.TaskType, delta float64) (Result, error) {
	var res Result
	_, err := u.store.Update(func(st *affinity.State) error {
		res = Apply(st, selections, task, delta, u.cfg)
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("update: %w", err)
	}
	return res, nil
}

// #endregion updater
