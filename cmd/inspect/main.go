// inspect prints style traces and drift alerts from a persona_matrix.db.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/danielpatrickdp/persona-matrix/internal/model"
	"github.com/danielpatrickdp/persona-matrix/internal/trace"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to persona_matrix.db")
	last := flag.Int("last", 20, "show N most recent traces")
	eventType := flag.String("event", "", "filter traces to one event type")
	alerts := flag.Bool("alerts", false, "show drift alerts instead of traces")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/persona_matrix.db [--last N] [--event type] [--alerts] [--json]")
		os.Exit(2)
	}

	store, err := trace.NewStore(*dbPath, trace.DefaultStoreConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *alerts {
		err = runAlertMode(store, *last, *jsonOut)
	} else {
		err = runTraceMode(store, *last, *eventType, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region trace-mode

func runTraceMode(store *trace.Store, last int, eventType string, jsonOut bool) error {
	var traces []trace.StyleTrace
	var err error
	if eventType != "" {
		traces, err = store.ByEventType(model.EventType(eventType))
		if err == nil && len(traces) > last {
			traces = traces[:last]
		}
	} else {
		traces, err = store.Recent(last)
	}
	if err != nil {
		return err
	}
	if len(traces) == 0 {
		fmt.Fprintln(os.Stderr, "no traces found")
		return nil
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(traces)
	}

	fmt.Printf("%-36s  %-22s  %-20s  %9s  %8s\n", "TRACE", "EVENT", "TS", "INTENSITY", "DRIFT")
	fmt.Println(strings.Repeat("-", 100))
	for _, t := range traces {
		fmt.Printf("%-36s  %-22s  %-20s  %9.2f  %8.3f\n",
			t.ID, t.EventType, t.TS.Format(time.RFC3339), t.Intensity, t.DriftMagnitude())
	}
	return nil
}

// #endregion trace-mode

// #region alert-mode

func runAlertMode(store *trace.Store, last int, jsonOut bool) error {
	alerts, err := store.Alerts(last)
	if err != nil {
		return err
	}
	if len(alerts) == 0 {
		fmt.Fprintln(os.Stderr, "no drift alerts found")
		return nil
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(alerts)
	}

	fmt.Printf("%-36s  %-20s  %9s  %9s  %-8s\n", "ALERT", "TS", "MAGNITUDE", "THRESHOLD", "SEVERITY")
	fmt.Println(strings.Repeat("-", 90))
	for _, a := range alerts {
		fmt.Printf("%-36s  %-20s  %9.3f  %9.3f  %-8s\n",
			a.ID, a.TS.Format(time.RFC3339), a.Magnitude, a.Threshold, a.Severity)
	}
	return nil
}

// #endregion alert-mode
