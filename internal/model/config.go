package model

// #region config

// Config holds the tuning surface for the whole persona pipeline.
type Config struct {
	Traits TraitKernel `json:"traits"`

	// Affect engine
	AffectDecayRate float64 `json:"affect_decay_rate"` // per-update multiplicative decay
	ValenceSetpoint float64 `json:"valence_setpoint"`  // recovery target, [-1,1]
	ArousalSetpoint float64 `json:"arousal_setpoint"`  // recovery target, [0,1]

	// Style synthesizer
	StyleAdaptationRate float64 `json:"style_adaptation_rate"` // reserved for tuning, not read by the blend
	DriftThreshold      float64 `json:"drift_threshold"`

	// Observability collaborator
	TraceRetentionDays int  `json:"trace_retention_days"`
	EnableDriftAlerts  bool `json:"enable_drift_alerts"`

	// Orchestrator
	HistoryLimit      int          `json:"history_limit"` // bounded most-recent-N state history
	DefaultBoundaries BoundaryCaps `json:"default_boundaries"`
}

// DefaultConfig returns the baseline tuning used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Traits:              DefaultTraits(),
		AffectDecayRate:     0.92,
		ValenceSetpoint:     0.5,
		ArousalSetpoint:     0.4,
		StyleAdaptationRate: 0.3,
		DriftThreshold:      0.2,
		TraceRetentionDays:  30,
		EnableDriftAlerts:   true,
		HistoryLimit:        50,
		DefaultBoundaries:   DefaultBoundaryCaps(),
	}
}

// DefaultTraits returns a neutral trait kernel.
func DefaultTraits() TraitKernel {
	return TraitKernel{
		Curiosity: 0.5,
		Balance:   0.5,
		Wit:       0.5,
		Candor:    0.5,
		Care:      0.5,
	}
}

// DefaultBoundaryCaps returns the permissive starting caps that each
// adjustment pass tightens from.
func DefaultBoundaryCaps() BoundaryCaps {
	return BoundaryCaps{
		MaxFlirtation: 0.5,
		MaxHumor:      0.8,
		MaxCandor:     0.9,
		MinFormality:  0.2,
	}
}

// #endregion config
