package main

// #region imports
import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/danielpatrickdp/module-affinity/go-engine/internal/affinity"
	"github.com/danielpatrickdp/module-affinity/go-engine/internal/config"
	"github.com/danielpatrickdp/module-affinity/go-engine/internal/learner"
	"github.com/danielpatrickdp/module-affinity/go-engine/internal/recommend"
	"github.com/danielpatrickdp/module-affinity/go-engine/internal/skills"
	"github.com/danielpatrickdp/module-affinity/go-engine/internal/store"
	"github.com/danielpatrickdp/module-affinity/go-engine/internal/telemetry"
)

// #endregion

const heavyRule = "═══════════════════════════════════════════════════"
const lightRule = "───────────────────────────────────────────────────"

// #region main
func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"show"}
	}

	cfg, err := config.Load(envOr("AFFINITY_CONFIG", "affinity.yaml"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.StatePath = envOr("AFFINITY_FILE", cfg.StatePath)
	cfg.TelemetryDB = envOr("AFFINITY_TELEMETRY_DB", cfg.TelemetryDB)
	cfg.SkillsDir = envOr("AFFINITY_SKILLS_DIR", cfg.SkillsDir)

	st := store.NewFile(cfg.StatePath)

	switch args[0] {
	case "show":
		runShow(st)
	case "learn":
		runLearn(cfg, st)
	case "suggest":
		if len(args) < 2 {
			usage()
		}
		runSuggest(cfg, st, strings.Join(args[1:], " "))
	case "best":
		task := string(affinity.TaskPlanning)
		if len(args) > 1 {
			task = args[1]
		}
		runBest(st, task)
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: affinity [show|learn|suggest <task text>|best <task type>]")
	os.Exit(2)
}

// #endregion main

// #region show

func runShow(st *store.Store) {
	state, info := st.Load()
	warnDegraded(info)

	fmt.Println(heavyRule)
	fmt.Println("MODULE-TASK AFFINITY MATRIX")
	fmt.Println(heavyRule)
	fmt.Printf("Observations: %d\n", state.Observations)
	last := "Never"
	if state.LastUpdated != nil {
		last = *state.LastUpdated
	}
	fmt.Printf("Last updated: %s\n", last)
	fmt.Println()

	for _, mod := range state.Matrix.Modules {
		fmt.Println(strings.ToUpper(mod.Name))
		fmt.Println(lightRule)

		header := fmt.Sprintf("%-10s", "Variant")
		for _, tt := range affinity.TaskTypes {
			label := string(tt)
			if r := []rune(label); len(r) > 8 {
				label = string(r[:8])
			}
			header += rjust(label, 10)
		}
		fmt.Println(header)

		for _, v := range mod.Variants {
			row := fmt.Sprintf("%-10s", v.Name)
			for _, tt := range affinity.TaskTypes {
				score := affinity.DefaultScore
				if s, ok := v.Scores[tt]; ok {
					score = s
				}
				row += rjust(marker(score)+fmt.Sprintf("%.2f", score), 10)
			}
			fmt.Println(row)
		}
		fmt.Println()
	}

	fmt.Println(heavyRule)
	fmt.Println("LEGEND: ██ ≥0.8 (excellent)  ▓▓ ≥0.6 (good)  ░░ ≥0.4 (fair)")
	fmt.Println(heavyRule)
}

func marker(score float64) string {
	switch {
	case score >= 0.8:
		return "██"
	case score >= 0.6:
		return "▓▓"
	case score >= 0.4:
		return "░░"
	default:
		return "  "
	}
}

// #endregion show

// #region learn

func runLearn(cfg config.Config, st *store.Store) {
	ts, err := telemetry.NewStore(cfg.TelemetryDB)
	if err != nil {
		log.Fatalf("open telemetry db: %v", err)
	}
	defer ts.Close()

	lib, err := skills.Load(cfg.SkillsDir)
	if err != nil {
		log.Fatalf("load skills: %v", err)
	}

	events, err := ts.ListEvents(0)
	if err != nil {
		log.Fatalf("list observations: %v", err)
	}
	if len(events) == 0 {
		fmt.Println("No telemetry observations found.")
		return
	}

	_, info := st.Load()
	warnDegraded(info)

	updater := learner.NewUpdater(st, cfg.Learner)
	table := cfg.Table()
	batch := learner.NewBatchLearner(updater, table.Classify, lib, cfg.Fitness, ts.DB())

	fmt.Println("Learning from telemetry...")
	summary := batch.Run(events)
	for _, msg := range summary.Errors {
		log.Printf("learn: %s", msg)
	}
	fmt.Printf("Applied %d of %d observations (skipped %d, failed %d).\n",
		summary.Applied, summary.Total, summary.Skipped, summary.Failed)
}

// #endregion learn

// #region suggest

func runSuggest(cfg config.Config, st *store.Store, text string) {
	task := cfg.Table().Classify(text)

	state, info := st.Load()
	warnDegraded(info)

	picks := recommend.Ranked(recommend.BestFor(&state.Matrix, task))

	fmt.Println(heavyRule)
	fmt.Printf("MODULE SUGGESTIONS FOR: %s\n", strings.ToUpper(string(task)))
	fmt.Println(heavyRule)
	fmt.Printf("Task context: %q\n", short(text, 50))
	fmt.Println()

	fmt.Println("RECOMMENDED MODULES")
	fmt.Println(lightRule)
	for _, p := range picks {
		filled := int(p.Score * 10)
		bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
		fmt.Printf("  %-12s → %-4s  %s  %.2f\n", p.Module, p.Variant, bar, p.Score)
	}

	fmt.Println()
	fmt.Println(heavyRule)
}

// #endregion suggest

// #region best

func runBest(st *store.Store, taskArg string) {
	task, ok := affinity.ParseTaskType(taskArg)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown task type %q (known: %v)\n", taskArg, affinity.TaskTypes)
		os.Exit(2)
	}

	state, info := st.Load()
	warnDegraded(info)

	type bestOut struct {
		Variant string  `json:"variant"`
		Score   float64 `json:"score"`
	}
	out := make(map[string]bestOut)
	for _, p := range recommend.BestFor(&state.Matrix, task) {
		out[p.Module] = bestOut{Variant: p.Variant, Score: p.Score}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	fmt.Println(string(data))
}

// #endregion best

// #region helpers

func warnDegraded(info store.LoadInfo) {
	if !info.Degraded() {
		return
	}
	switch info.Source {
	case store.SourceSeedMissing:
		log.Printf("no persisted state, using seed defaults")
	case store.SourceSeedCorrupt:
		log.Printf("persisted state unusable (%v), using seed defaults", info.Err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func rjust(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

func short(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

// #endregion helpers
