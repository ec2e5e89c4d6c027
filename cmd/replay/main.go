// replay runs a JSON event fixture through the personality pipeline
// and reports per-event outcomes against the fixture's expectations.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/persona-matrix/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	verbose := flag.Bool("v", false, "print per-event state and style")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [-v]")
		os.Exit(2)
	}

	fixture, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	results, summary, err := replay.Run(fixture)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if summary.Description != "" {
		fmt.Printf("Fixture: %s\n\n", summary.Description)
	}

	for _, res := range results {
		if res.Err != nil {
			fmt.Printf("[%3d] %-22s REJECTED: %v\n", res.Index, res.EventType, res.Err)
			continue
		}
		status := "ok"
		if len(res.Mismatches) > 0 {
			status = "MISMATCH"
		}
		fmt.Printf("[%3d] %-22s %-8s valence=%+.3f arousal=%.3f fatigue=%.3f drift=%.3f\n",
			res.Index, res.EventType, status,
			res.State.Valence, res.State.Arousal, res.State.Fatigue, res.DriftMagnitude)
		for _, m := range res.Mismatches {
			fmt.Printf("      mismatch: %s\n", m)
		}
		if *verbose {
			fmt.Printf("      tags=%v warmth=%.3f formality=%.3f humor=%.3f\n",
				res.State.Tags, res.Style.Tone.Warmth, res.Style.Tone.Formality, res.Style.Tone.Humor)
		}
	}

	fmt.Printf("\n%d events: %d applied, %d rejected, %d mismatched\n",
		summary.TotalEvents, summary.Applied, summary.Rejected, summary.Mismatched)

	if summary.Mismatched > 0 || summary.Rejected > 0 {
		os.Exit(1)
	}
}

// #endregion main
