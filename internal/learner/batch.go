package learner

// #region imports
import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/danielpatrickdp/module-affinity/go-engine/internal/affinity"
	"github.com/danielpatrickdp/module-affinity/go-engine/internal/logging"
	"github.com/danielpatrickdp/module-affinity/go-engine/internal/skills"
	"github.com/danielpatrickdp/module-affinity/go-engine/internal/telemetry"
)

// #endregion

// #region batch-learner

// BatchLearner replays a log of observed task outcomes through the updater:
// classify the context, resolve the skill's module selections, derive a
// fitness delta from completion, apply one update per event. A bad record
// never aborts the batch.
type BatchLearner struct {
	updater  *Updater
	classify func(string) affinity.TaskType
	skills   *skills.Library
	policy   FitnessPolicy
	db       *sql.DB // provenance sink; nil disables provenance rows
}

// NewBatchLearner wires a batch run. classify is typically
// classifier.Classify or a Table method; db is the telemetry database for
// provenance rows.
func NewBatchLearner(updater *Updater, classify func(string) affinity.TaskType, lib *skills.Library, policy FitnessPolicy, db *sql.DB) *BatchLearner {
	return &BatchLearner{
		updater:  updater,
		classify: classify,
		skills:   lib,
		policy:   policy,
		db:       db,
	}
}

// #endregion batch-learner

// #region summary

// BatchSummary counts how a batch run went. Skipped events lacked the data
// to learn from; Failed events hit a persistence error.
type BatchSummary struct {
	Total   int
	Applied int
	Skipped int
	Failed  int
	Errors  []string
}

// #endregion summary

// #region run

// Run applies every learnable event in order and reports counts.
func (b *BatchLearner) Run(events []telemetry.Event) BatchSummary {
	var sum BatchSummary
	sum.Total = len(events)

	for _, ev := range events {
		if ev.Skill == "" || ev.Context == "" {
			sum.Skipped++
			continue
		}
		def, ok := b.skills.Lookup(ev.Skill)
		if !ok || len(def.Modules) == 0 {
			sum.Skipped++
			continue
		}

		task := b.classify(ev.Context)
		delta := b.policy.Delta(ev.Completed)

		res, err := b.updater.Update(selectionsFor(def), task, delta)
		if err != nil {
			sum.Failed++
			sum.Errors = append(sum.Errors, fmt.Sprintf("observation %s: %v", ev.ID, err))
			continue
		}
		sum.Applied++

		if b.db != nil {
			pairs, _ := json.Marshal(res.Applied)
			err := logging.LogUpdate(b.db, logging.UpdateEntry{
				ObservationID: ev.ID,
				TaskType:      string(task),
				Rate:          res.Rate,
				PairsJSON:     string(pairs),
				Decision:      res.Decision.Action,
				Reason:        res.Decision.Reason,
			})
			if err != nil {
				sum.Errors = append(sum.Errors, fmt.Sprintf("observation %s provenance: %v", ev.ID, err))
			}
		}
	}
	return sum
}

// selectionsFor flattens a skill's module map into a deterministic order.
func selectionsFor(def skills.Definition) []Selection {
	names := make([]string, 0, len(def.Modules))
	for name := range def.Modules {
		names = append(names, name)
	}
	sort.Strings(names)

	sels := make([]Selection, 0, len(names))
	for _, name := range names {
		sels = append(sels, Selection{Module: name, Variant: def.Modules[name]})
	}
	return sels
}

// #endregion run
