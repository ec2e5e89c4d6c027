// Package orchestrator owns the personality triad and drives the
// per-event pipeline across the affect, boundary, and style engines.
package orchestrator

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/danielpatrickdp/persona-matrix/internal/affect"
	"github.com/danielpatrickdp/persona-matrix/internal/boundary"
	"github.com/danielpatrickdp/persona-matrix/internal/lensing"
	"github.com/danielpatrickdp/persona-matrix/internal/model"
	"github.com/danielpatrickdp/persona-matrix/internal/style"
	"github.com/danielpatrickdp/persona-matrix/internal/trace"
)

// #region matrix-struct

// TraceSink receives completed style traces. Failures are logged and
// never propagate into the pipeline.
type TraceSink interface {
	Record(trace.StyleTrace) error
}

// Matrix is the top-level coordinator. It owns the current affective
// state, style profile, and boundary caps, and serializes all updates
// behind one mutex.
type Matrix struct {
	mu sync.Mutex

	config model.Config
	traits model.TraitKernel

	state  model.AffectiveState
	style  model.StyleProfile
	caps   model.BoundaryCaps
	lenses lensing.Lenses

	history []historyEntry
	sink    TraceSink
}

// #endregion matrix-struct

// #region constructor

// New validates the configuration, builds a matrix, and initializes it
// to the baseline triad. Pass a nil sink to disable tracing.
func New(config model.Config, sink TraceSink) (*Matrix, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	m := &Matrix{
		config: config,
		traits: config.Traits,
		sink:   sink,
	}
	m.initBaseline()

	log.Printf("[MATRIX] initialized: curiosity=%.2f balance=%.2f wit=%.2f candor=%.2f care=%.2f",
		m.traits.Curiosity, m.traits.Balance, m.traits.Wit, m.traits.Candor, m.traits.Care)
	return m, nil
}

// initBaseline sets the triad to its rest configuration: state at the
// setpoints with zero fatigue, style synthesized without context,
// default caps.
func (m *Matrix) initBaseline() {
	m.state = model.AffectiveState{
		Timestamp: time.Now().UTC(),
		Valence:   m.config.ValenceSetpoint,
		Arousal:   m.config.ArousalSetpoint,
		Fatigue:   0.0,
		Decay:     m.config.AffectDecayRate,
		Tags:      []string{"baseline"},
	}
	m.style = style.Synthesize(m.traits, m.state, nil, nil, nil)
	m.caps = m.config.DefaultBoundaries
	m.caps.SafetyTags = model.CopyTags(m.config.DefaultBoundaries.SafetyTags)
	m.lenses = lensing.Lenses{}
}

// #endregion constructor

// #region apply-event

// ApplyEvent runs one event through the full pipeline and atomically
// replaces the triad. Invalid events are rejected before any stage
// runs, leaving the triad untouched.
func (m *Matrix) ApplyEvent(event model.EventUpdate) (Outcome, error) {
	if err := event.Validate(); err != nil {
		return Outcome{}, fmt.Errorf("validate event: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	log.Printf("[MATRIX] event: type=%s intensity=%.2f", event.EventType, event.Intensity)

	now := event.Timestamp
	if now.IsZero() {
		now = time.Now().UTC()
	}

	newState := affect.Update(m.state, event, affect.Config{
		ValenceSetpoint: m.config.ValenceSetpoint,
		ArousalSetpoint: m.config.ArousalSetpoint,
	})

	newCaps := boundary.Adjust(m.caps, event.Audience, event.Channel, event.Context, now)

	newStyle := style.Synthesize(m.traits, newState, event.Audience, event.Channel, &newCaps)

	drift := style.Drift(m.style, newStyle)
	driftDetected := drift > m.config.DriftThreshold
	if driftDetected {
		log.Printf("[MATRIX] drift detected: magnitude=%.3f threshold=%.3f, correcting",
			drift, m.config.DriftThreshold)
		baseline := style.Synthesize(m.traits, newState, nil, nil, nil)
		newStyle = style.CorrectDrift(newStyle, baseline)
	}

	t := m.buildTrace(event, newState, newStyle, newCaps, now)

	// Commit the triad only after every stage has produced a value.
	m.state = newState
	m.style = newStyle
	m.caps = newCaps
	m.lenses = lensing.ApplyLensing(newState, newStyle, event.Context)

	m.history = append(m.history, historyEntry{TS: now, State: newState, Style: newStyle})
	if limit := m.config.HistoryLimit; limit > 0 && len(m.history) > limit {
		m.history = m.history[len(m.history)-limit:]
	}

	if m.sink != nil {
		if err := m.sink.Record(t); err != nil {
			log.Printf("[MATRIX] trace record failed: %v", err)
		}
	}

	return Outcome{
		State:          newState,
		Style:          newStyle,
		Boundaries:     newCaps,
		DriftDetected:  driftDetected,
		DriftMagnitude: drift,
		Trace:          t,
	}, nil
}

// buildTrace captures the per-dimension movement from the current
// triad to the proposed one.
func (m *Matrix) buildTrace(
	event model.EventUpdate,
	newState model.AffectiveState,
	newStyle model.StyleProfile,
	newCaps model.BoundaryCaps,
	now time.Time,
) trace.StyleTrace {
	styleDelta := map[string]float64{
		"warmth":        newStyle.Tone.Warmth - m.style.Tone.Warmth,
		"formality":     newStyle.Tone.Formality - m.style.Tone.Formality,
		"humor":         newStyle.Tone.Humor - m.style.Tone.Humor,
		"flirtation":    newStyle.Tone.Flirtation - m.style.Tone.Flirtation,
		"assertiveness": newStyle.Stance.Assertiveness - m.style.Stance.Assertiveness,
		"expansiveness": newStyle.Pacing.Expansiveness - m.style.Pacing.Expansiveness,
	}
	decodingDelta := map[string]float64{
		"temp":       newStyle.Decoding.Temp - m.style.Decoding.Temp,
		"top_p":      newStyle.Decoding.TopP - m.style.Decoding.TopP,
		"penalty":    newStyle.Decoding.Penalty - m.style.Decoding.Penalty,
		"max_tokens": float64(newStyle.Decoding.MaxTokens - m.style.Decoding.MaxTokens),
	}

	return trace.StyleTrace{
		TS:            now,
		EventType:     event.EventType,
		Intensity:     event.Intensity,
		State:         newState,
		StyleDelta:    styleDelta,
		DecodingDelta: decodingDelta,
		Boundaries:    newCaps,
		Rationale:     fmt.Sprintf("event %s at intensity %.2f", event.EventType, event.Intensity),
	}
}

// #endregion apply-event

// #region accessors

// Traits returns the current trait kernel. Snapshot import can replace
// it, so reads go through the lock like every other accessor.
func (m *Matrix) Traits() model.TraitKernel {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.traits
}

// State returns a copy of the current affective state.
func (m *Matrix) State() model.AffectiveState {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.state
	s.Tags = model.CopyTags(m.state.Tags)
	return s
}

// Style returns the current style profile.
func (m *Matrix) Style() model.StyleProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.style
}

// Boundaries returns a copy of the current boundary caps.
func (m *Matrix) Boundaries() model.BoundaryCaps {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.caps
	c.SafetyTags = model.CopyTags(m.caps.SafetyTags)
	return c
}

// Decoding returns the sampler parameters of the current style.
func (m *Matrix) Decoding() model.DecodingProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.style.Decoding
}

// Lenses returns the lens set derived from the last transition.
func (m *Matrix) Lenses() lensing.Lenses {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := lensing.Lenses{}
	for k, v := range m.lenses {
		out[k] = v
	}
	return out
}

// Stability scores how close the state sits to its setpoints.
func (m *Matrix) Stability() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return affect.StabilityScore(m.state, affect.Config{
		ValenceSetpoint: m.config.ValenceSetpoint,
		ArousalSetpoint: m.config.ArousalSetpoint,
	})
}

// History returns the bounded transition history, oldest first.
func (m *Matrix) History() []model.AffectiveState {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.AffectiveState, len(m.history))
	for i, e := range m.history {
		out[i] = e.State
	}
	return out
}

// #endregion accessors

// #region reset

// ResetToBaseline returns the triad to its rest configuration. The
// most recent history entries survive the reset.
func (m *Matrix) ResetToBaseline() model.StyleProfile {
	m.mu.Lock()
	defer m.mu.Unlock()

	log.Printf("[MATRIX] reset to baseline")
	m.initBaseline()
	if len(m.history) > 10 {
		m.history = m.history[len(m.history)-10:]
	}
	return m.style
}

// #endregion reset

// #region summarize

// Summarize reports the whole personality in one structure.
func (m *Matrix) Summarize() Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Summary{
		Traits: m.traits,
		CurrentMood: MoodSummary{
			Valence: m.state.Valence,
			Arousal: m.state.Arousal,
			Fatigue: m.state.Fatigue,
			Tags:    model.CopyTags(m.state.Tags),
		},
		CommunicationStyle: StyleSummary{
			Warmth:        m.style.Tone.Warmth,
			Formality:     m.style.Tone.Formality,
			Humor:         m.style.Tone.Humor,
			Assertiveness: m.style.Stance.Assertiveness,
		},
		Boundaries: BoundarySummary{
			MaxFlirtation: m.caps.MaxFlirtation,
			MaxHumor:      m.caps.MaxHumor,
			SafetyTags:    model.CopyTags(m.caps.SafetyTags),
		},
		LLMSettings: m.style.Decoding,
		Stability: affect.StabilityScore(m.state, affect.Config{
			ValenceSetpoint: m.config.ValenceSetpoint,
			ArousalSetpoint: m.config.ArousalSetpoint,
		}),
	}
}

// #endregion summarize

// #region snapshot

// ExportSnapshot captures the full triad plus configuration.
func (m *Matrix) ExportSnapshot() model.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := m.state
	state.Tags = model.CopyTags(m.state.Tags)
	caps := m.caps
	caps.SafetyTags = model.CopyTags(m.caps.SafetyTags)

	return model.Snapshot{
		Traits:          m.traits,
		State:           state,
		Style:           m.style,
		Boundaries:      caps,
		Config:          m.config,
		ExportTimestamp: time.Now().UTC(),
	}
}

// ImportSnapshot validates the snapshot as a whole and then replaces
// the triad, traits, and configuration. A failed validation leaves the
// matrix exactly as it was.
func (m *Matrix) ImportSnapshot(snap model.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return fmt.Errorf("import snapshot: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.traits = snap.Traits
	m.config = snap.Config
	m.state = snap.State
	m.state.Tags = model.CopyTags(snap.State.Tags)
	m.style = snap.Style
	m.caps = snap.Boundaries
	m.caps.SafetyTags = model.CopyTags(snap.Boundaries.SafetyTags)

	log.Printf("[MATRIX] snapshot imported: exported_at=%s", snap.ExportTimestamp.Format(time.RFC3339))
	return nil
}

// #endregion snapshot
