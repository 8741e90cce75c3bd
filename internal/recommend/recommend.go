package recommend

// #region imports
import (
	"sort"

	"github.com/danielpatrickdp/module-affinity/go-engine/internal/affinity"
)

// #endregion

// #region pick

// Pick is the winning variant for one module type.
type Pick struct {
	Module  string
	Variant string
	Score   float64
}

// #endregion pick

// #region best-for

// BestFor selects, per module in declared order, the variant with the
// strictly highest score for task. Absent entries read as the neutral prior.
// Ties keep the earliest variant in the module's declared order; modules
// with no variants are omitted.
func BestFor(m *affinity.Matrix, task affinity.TaskType) []Pick {
	var picks []Pick
	for _, mod := range m.Modules {
		if len(mod.Variants) == 0 {
			continue
		}
		best := Pick{Module: mod.Name, Score: -1}
		for _, v := range mod.Variants {
			score := affinity.DefaultScore
			if s, ok := v.Scores[task]; ok {
				score = s
			}
			if score > best.Score {
				best.Variant = v.Name
				best.Score = score
			}
		}
		picks = append(picks, best)
	}
	return picks
}

// #endregion best-for

// #region ranked

// Ranked returns picks sorted by descending score for display. The sort is
// stable, so equal scores keep the declared module order.
func Ranked(picks []Pick) []Pick {
	out := make([]Pick, len(picks))
	copy(out, picks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// #endregion ranked
