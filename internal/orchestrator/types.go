package orchestrator

import (
	"time"

	"github.com/danielpatrickdp/persona-matrix/internal/model"
	"github.com/danielpatrickdp/persona-matrix/internal/trace"
)

// #region outcome

// Outcome is the result of processing one event through the pipeline.
type Outcome struct {
	State          model.AffectiveState
	Style          model.StyleProfile
	Boundaries     model.BoundaryCaps
	DriftDetected  bool
	DriftMagnitude float64
	Trace          trace.StyleTrace
}

// #endregion outcome

// #region summary

// Summary is a categorical snapshot of the whole personality for
// reporting surfaces.
type Summary struct {
	Traits             model.TraitKernel     `json:"traits"`
	CurrentMood        MoodSummary           `json:"current_mood"`
	CommunicationStyle StyleSummary          `json:"communication_style"`
	Boundaries         BoundarySummary       `json:"boundaries"`
	LLMSettings        model.DecodingProfile `json:"llm_settings"`
	Stability          float64               `json:"stability"`
}

// MoodSummary reports the affective state plus its derived tags.
type MoodSummary struct {
	Valence float64  `json:"valence"`
	Arousal float64  `json:"arousal"`
	Fatigue float64  `json:"fatigue"`
	Tags    []string `json:"tags"`
}

// StyleSummary reports the headline style dimensions.
type StyleSummary struct {
	Warmth        float64 `json:"warmth"`
	Formality     float64 `json:"formality"`
	Humor         float64 `json:"humor"`
	Assertiveness float64 `json:"assertiveness"`
}

// BoundarySummary reports the caps that matter most to callers.
type BoundarySummary struct {
	MaxFlirtation float64  `json:"max_flirtation"`
	MaxHumor      float64  `json:"max_humor"`
	SafetyTags    []string `json:"safety_tags"`
}

// #endregion summary

// #region history

// historyEntry pairs a state and the style it produced, for the
// bounded in-memory history window.
type historyEntry struct {
	TS    time.Time
	State model.AffectiveState
	Style model.StyleProfile
}

// #endregion history
