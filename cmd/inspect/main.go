package main

// #region imports
import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/module-affinity/go-engine/internal/affinity"
	"github.com/danielpatrickdp/module-affinity/go-engine/internal/logging"
	"github.com/danielpatrickdp/module-affinity/go-engine/internal/store"
	"github.com/danielpatrickdp/module-affinity/go-engine/internal/telemetry"
)

// #endregion

// #region main

func main() {
	dbPath := flag.String("db", "", "path to affinity_telemetry.db")
	last := flag.Int("last", 20, "show N most recent update provenance rows")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	check := flag.Bool("check", false, "validate the persisted affinity state")
	statePath := flag.String("state", "affinity_matrix.json", "path to affinity state (with --check)")
	flag.Parse()

	if *check {
		if err := runCheckMode(*statePath, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/affinity_telemetry.db [--last N] [--json] | --check [--state path]")
		os.Exit(2)
	}

	if err := runListMode(*dbPath, *last, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

func runListMode(dbPath string, last int, jsonOut bool) error {
	ts, err := telemetry.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer ts.Close()

	entries, err := logging.ListUpdates(ts.DB(), last)
	if err != nil {
		return err
	}
	observations, err := ts.CountEvents()
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(struct {
			Observations int                   `json:"observations"`
			Updates      []logging.UpdateEntry `json:"updates"`
		}{observations, entries})
	}

	fmt.Printf("Logged observations: %d\n\n", observations)
	if len(entries) == 0 {
		fmt.Println("no update provenance recorded")
		return nil
	}

	fmt.Printf("%-6s  %-14s  %-8s  %-8s  %-36s  %s\n",
		"ID", "Task", "Rate", "Decision", "Observation", "Time")
	fmt.Printf("%-6s+-%-14s+-%-8s+-%-8s+-%-36s+-%s\n",
		"------", "--------------", "--------", "--------", "------------------------------------", "--------------------")
	for _, e := range entries {
		fmt.Printf("%-6d  %-14s  %-8.4f  %-8s  %-36s  %s\n",
			e.ID, e.TaskType, e.Rate, e.Decision, e.ObservationID,
			e.CreatedAt.Format("2006-01-02T15:04:05Z"))
	}
	return nil
}

// #endregion list-mode

// #region check-mode

func runCheckMode(statePath string, jsonOut bool) error {
	st := store.NewFile(statePath)
	state, info := st.Load()

	result := affinity.Validate(state)

	if jsonOut {
		type metricOut struct {
			Name  string  `json:"name"`
			Value float64 `json:"value"`
			Pass  bool    `json:"pass"`
		}
		out := struct {
			Source  string      `json:"source"`
			Passed  bool        `json:"passed"`
			Metrics []metricOut `json:"metrics"`
			Reasons []string    `json:"reasons,omitempty"`
		}{Source: string(info.Source), Passed: result.Passed}
		for _, m := range result.Metrics {
			out.Metrics = append(out.Metrics, metricOut{m.Name, m.Value, m.Pass})
		}
		out.Reasons = result.FailReasons
		return printJSON(out)
	}

	fmt.Printf("State source: %s\n", info.Source)
	if info.Err != nil {
		fmt.Printf("Load detail:  %v\n", info.Err)
	}
	fmt.Printf("Passed:       %v\n\n", result.Passed)
	for _, m := range result.Metrics {
		status := "ok"
		if !m.Pass {
			status = "FAIL"
		}
		fmt.Printf("  %-28s %10.2f  %s\n", m.Name, m.Value, status)
	}
	for _, r := range result.FailReasons {
		fmt.Printf("  ! %s\n", r)
	}
	return nil
}

// #endregion check-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// #endregion output
