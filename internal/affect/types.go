package affect

// #region impact

// Impact is the base delta an event applies to each affective dimension
// before intensity scaling and context modifiers.
type Impact struct {
	Valence float64
	Arousal float64
	Fatigue float64
}

// #endregion impact

// #region config

// Config holds the recovery targets for the affect engine. Decay is not
// here: it rides on each state snapshot.
type Config struct {
	ValenceSetpoint float64 // [-1,1]
	ArousalSetpoint float64 // [0,1]
}

// DefaultConfig returns the standard resting targets.
func DefaultConfig() Config {
	return Config{
		ValenceSetpoint: 0.5,
		ArousalSetpoint: 0.4,
	}
}

// #endregion config
