package trace

import (
	"time"

	"github.com/danielpatrickdp/persona-matrix/internal/model"
)

// #region style-trace

// StyleTrace is one immutable record of a state transition: what came
// in, where the affective state landed, and how the style and sampler
// parameters moved.
type StyleTrace struct {
	ID            string               `json:"id"`
	TS            time.Time            `json:"ts"`
	EventType     model.EventType      `json:"event_type"`
	Intensity     float64              `json:"intensity"`
	State         model.AffectiveState `json:"state"`
	StyleDelta    map[string]float64   `json:"style_delta"`
	DecodingDelta map[string]float64   `json:"decoding_delta"`
	Boundaries    model.BoundaryCaps   `json:"boundaries"`
	Rationale     string               `json:"rationale,omitempty"`
}

// DriftMagnitude sums the absolute style deltas. This is the quantity
// the alerting threshold applies to.
func (t StyleTrace) DriftMagnitude() float64 {
	total := 0.0
	for _, d := range t.StyleDelta {
		if d < 0 {
			d = -d
		}
		total += d
	}
	return total
}

// #endregion style-trace

// #region drift-alert

// DriftAlert records a transition whose style delta exceeded the
// configured threshold.
type DriftAlert struct {
	ID        string    `json:"id"`
	TS        time.Time `json:"ts"`
	TraceID   string    `json:"trace_id"`
	Magnitude float64   `json:"magnitude"`
	Threshold float64   `json:"threshold"`
	Severity  string    `json:"severity"` // "medium" | "high"
	Rationale string    `json:"rationale,omitempty"`
}

// #endregion drift-alert

// #region evolution

// DimensionChange summarizes how one style dimension moved across
// recent traces.
type DimensionChange struct {
	Count       int     `json:"count"`
	AvgChange   float64 `json:"avg_change"`
	MaxIncrease float64 `json:"max_increase"`
	MaxDecrease float64 `json:"max_decrease"`
}

// EvolutionSummary aggregates style movement over a time window.
type EvolutionSummary struct {
	TotalTraces      int                        `json:"total_traces"`
	TotalChanges     int                        `json:"total_style_changes"`
	ChangeFrequency  float64                    `json:"change_frequency"`
	DimensionChanges map[string]DimensionChange `json:"dimension_changes"`
}

// #endregion evolution

// #region config

// StoreConfig controls retention and drift alerting for a Store.
type StoreConfig struct {
	RetentionDays     int
	DriftThreshold    float64
	EnableDriftAlerts bool
}

// DefaultStoreConfig mirrors the engine-level defaults.
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		RetentionDays:     30,
		DriftThreshold:    0.2,
		EnableDriftAlerts: true,
	}
}

// #endregion config
