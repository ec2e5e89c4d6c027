// Package replay runs recorded event sequences through the full
// personality pipeline, in memory, and checks them against per-event
// expectations. It exists so state transitions can be reproduced and
// inspected outside the daemon.
package replay

import (
	"fmt"

	"github.com/danielpatrickdp/persona-matrix/internal/model"
	"github.com/danielpatrickdp/persona-matrix/internal/orchestrator"
)

// #region types

// Result captures the outcome of replaying one event.
type Result struct {
	Index          int
	EventType      model.EventType
	State          model.AffectiveState
	Style          model.StyleProfile
	Boundaries     model.BoundaryCaps
	DriftDetected  bool
	DriftMagnitude float64
	Err            error    // non-nil when the event was rejected
	Mismatches     []string // expectation failures, empty when all held
}

// Summary aggregates one replay run.
type Summary struct {
	Description string
	TotalEvents int
	Applied     int
	Rejected    int
	Mismatched  int
	FinalState  model.AffectiveState
	FinalStyle  model.StyleProfile
}

// #endregion types

// #region run

// Run replays every fixture event through a fresh matrix and evaluates
// expectations by position. Rejected events leave the matrix untouched
// and are reported, not fatal.
func Run(fixture *Fixture) ([]Result, Summary, error) {
	matrix, err := orchestrator.New(fixture.EffectiveConfig(), nil)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("build matrix: %w", err)
	}

	results := make([]Result, 0, len(fixture.Events))
	summary := Summary{
		Description: fixture.Description,
		TotalEvents: len(fixture.Events),
	}

	for i, event := range fixture.Events {
		res := Result{Index: i, EventType: event.EventType}

		outcome, err := matrix.ApplyEvent(event)
		if err != nil {
			res.Err = err
			summary.Rejected++
			results = append(results, res)
			continue
		}
		summary.Applied++

		res.State = outcome.State
		res.Style = outcome.Style
		res.Boundaries = outcome.Boundaries
		res.DriftDetected = outcome.DriftDetected
		res.DriftMagnitude = outcome.DriftMagnitude

		if i < len(fixture.ExpectedResults) {
			res.Mismatches = check(fixture.ExpectedResults[i], res)
			if len(res.Mismatches) > 0 {
				summary.Mismatched++
			}
		}
		results = append(results, res)
	}

	summary.FinalState = matrix.State()
	summary.FinalStyle = matrix.Style()
	return results, summary, nil
}

func check(expected ExpectedResult, res Result) []string {
	var mismatches []string

	if expected.MinValence != nil && res.State.Valence < *expected.MinValence {
		mismatches = append(mismatches,
			fmt.Sprintf("valence %.4f below min %.4f", res.State.Valence, *expected.MinValence))
	}
	if expected.MaxValence != nil && res.State.Valence > *expected.MaxValence {
		mismatches = append(mismatches,
			fmt.Sprintf("valence %.4f above max %.4f", res.State.Valence, *expected.MaxValence))
	}
	if expected.MinArousal != nil && res.State.Arousal < *expected.MinArousal {
		mismatches = append(mismatches,
			fmt.Sprintf("arousal %.4f below min %.4f", res.State.Arousal, *expected.MinArousal))
	}
	if expected.MaxArousal != nil && res.State.Arousal > *expected.MaxArousal {
		mismatches = append(mismatches,
			fmt.Sprintf("arousal %.4f above max %.4f", res.State.Arousal, *expected.MaxArousal))
	}
	for _, tag := range expected.Tags {
		if !model.HasTag(res.State.Tags, tag) {
			mismatches = append(mismatches, fmt.Sprintf("missing tag %q", tag))
		}
	}
	if expected.DriftDetected != nil && res.DriftDetected != *expected.DriftDetected {
		mismatches = append(mismatches,
			fmt.Sprintf("drift_detected=%v, expected %v", res.DriftDetected, *expected.DriftDetected))
	}

	return mismatches
}

// #endregion run
