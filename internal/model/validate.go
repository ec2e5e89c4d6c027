package model

import (
	"errors"
	"fmt"
)

// #region errors

// ValidationError reports a field that violated its declared range or
// enumeration at a system boundary. Internal pipeline math never
// produces one; it clamps instead.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}

// InvalidSnapshotError reports a snapshot blob that failed import
// validation. The current triad is left untouched when one is returned.
type InvalidSnapshotError struct {
	Err error
}

func (e *InvalidSnapshotError) Error() string {
	return fmt.Sprintf("invalid snapshot: %v", e.Err)
}

func (e *InvalidSnapshotError) Unwrap() error { return e.Err }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// #endregion errors

// #region helpers

func checkUnit(field string, v float64) error {
	if v < 0 || v > 1 {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be in [0,1], got %g", v)}
	}
	return nil
}

func checkRange(field string, v, lo, hi float64) error {
	if v < lo || v > hi {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be in [%g,%g], got %g", lo, hi, v)}
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// #endregion helpers

// #region trait-construction

// NewTraitKernel validates each trait scalar and returns the immutable
// kernel. This is the only sanctioned way to build one from outside data.
func NewTraitKernel(curiosity, balance, wit, candor, care float64) (TraitKernel, error) {
	k := TraitKernel{
		Curiosity: curiosity,
		Balance:   balance,
		Wit:       wit,
		Candor:    candor,
		Care:      care,
	}
	if err := k.Validate(); err != nil {
		return TraitKernel{}, err
	}
	return k, nil
}

// Validate checks every trait scalar against [0,1].
func (k TraitKernel) Validate() error {
	return firstErr(
		checkUnit("traits.curiosity", k.Curiosity),
		checkUnit("traits.balance", k.Balance),
		checkUnit("traits.wit", k.Wit),
		checkUnit("traits.candor", k.Candor),
		checkUnit("traits.care", k.Care),
	)
}

// #endregion trait-construction

// #region state-validation

// Validate checks every affective field against its domain.
func (s AffectiveState) Validate() error {
	return firstErr(
		checkRange("state.valence", s.Valence, -1, 1),
		checkUnit("state.arousal", s.Arousal),
		checkUnit("state.fatigue", s.Fatigue),
		checkUnit("state.decay", s.Decay),
	)
}

// #endregion state-validation

// #region event-validation

// Validate checks an externally constructed event before it enters the
// pipeline. Unknown event types pass and become a zero-impact no-op,
// but out-of-range intensity and malformed contexts are rejected.
func (e EventUpdate) Validate() error {
	if e.EventType == "" {
		return &ValidationError{Field: "event.event_type", Reason: "must not be empty"}
	}
	if err := checkUnit("event.intensity", e.Intensity); err != nil {
		return err
	}
	if e.Audience != nil && !e.Audience.Type.Known() {
		return &ValidationError{
			Field:  "event.audience.type",
			Reason: fmt.Sprintf("unknown audience type %q", e.Audience.Type),
		}
	}
	if e.Channel != nil && !e.Channel.Type.Known() {
		return &ValidationError{
			Field:  "event.channel.type",
			Reason: fmt.Sprintf("unknown channel type %q", e.Channel.Type),
		}
	}
	return nil
}

// #endregion event-validation

// #region caps-validation

// Validate checks every cap against [0,1].
func (c BoundaryCaps) Validate() error {
	return firstErr(
		checkUnit("boundaries.max_flirtation", c.MaxFlirtation),
		checkUnit("boundaries.max_humor", c.MaxHumor),
		checkUnit("boundaries.max_candor", c.MaxCandor),
		checkUnit("boundaries.min_formality", c.MinFormality),
	)
}

// #endregion caps-validation

// #region style-validation

// Validate checks every style field against its domain, including the
// decoding hard bounds.
func (p StyleProfile) Validate() error {
	if err := firstErr(
		checkUnit("style.tone.warmth", p.Tone.Warmth),
		checkUnit("style.tone.formality", p.Tone.Formality),
		checkUnit("style.tone.humor", p.Tone.Humor),
		checkUnit("style.tone.flirtation", p.Tone.Flirtation),
		checkUnit("style.diction.metaphor", p.Diction.Metaphor),
		checkUnit("style.pacing.expansiveness", p.Pacing.Expansiveness),
		checkUnit("style.stance.assertiveness", p.Stance.Assertiveness),
	); err != nil {
		return err
	}
	if !p.Diction.SentenceLen.Known() {
		return &ValidationError{
			Field:  "style.diction.sentence_len",
			Reason: fmt.Sprintf("unknown sentence length %q", p.Diction.SentenceLen),
		}
	}
	if !p.Boundaries.Sensitive.Known() {
		return &ValidationError{
			Field:  "style.boundaries.sensitive",
			Reason: fmt.Sprintf("unknown sensitivity level %q", p.Boundaries.Sensitive),
		}
	}
	if err := firstErr(
		checkRange("style.decoding.temp", p.Decoding.Temp, 0.1, 2.0),
		checkRange("style.decoding.top_p", p.Decoding.TopP, 0.1, 1.0),
		checkRange("style.decoding.penalty", p.Decoding.Penalty, 0.1, 2.0),
	); err != nil {
		return err
	}
	if p.Decoding.TopK < 1 || p.Decoding.TopK > 100 {
		return &ValidationError{
			Field:  "style.decoding.top_k",
			Reason: fmt.Sprintf("must be in [1,100], got %d", p.Decoding.TopK),
		}
	}
	if p.Decoding.MaxTokens < 100 || p.Decoding.MaxTokens > 4000 {
		return &ValidationError{
			Field:  "style.decoding.max_tokens",
			Reason: fmt.Sprintf("must be in [100,4000], got %d", p.Decoding.MaxTokens),
		}
	}
	return nil
}

// #endregion style-validation

// #region config-validation

// Validate checks the tuning surface.
func (c Config) Validate() error {
	if err := c.Traits.Validate(); err != nil {
		return err
	}
	if err := firstErr(
		checkUnit("config.affect_decay_rate", c.AffectDecayRate),
		checkRange("config.valence_setpoint", c.ValenceSetpoint, -1, 1),
		checkUnit("config.arousal_setpoint", c.ArousalSetpoint),
		checkUnit("config.style_adaptation_rate", c.StyleAdaptationRate),
		checkUnit("config.drift_threshold", c.DriftThreshold),
	); err != nil {
		return err
	}
	if c.TraceRetentionDays < 1 {
		return &ValidationError{Field: "config.trace_retention_days", Reason: "must be >= 1"}
	}
	if c.HistoryLimit < 1 {
		return &ValidationError{Field: "config.history_limit", Reason: "must be >= 1"}
	}
	return c.DefaultBoundaries.Validate()
}

// #endregion config-validation

// #region snapshot-validation

// Validate checks every snapshot field against its declared range or
// enumeration. Import is all-or-nothing: the first failure wraps into
// an InvalidSnapshotError and nothing is replaced.
func (s Snapshot) Validate() error {
	if err := firstErr(
		s.Traits.Validate(),
		s.State.Validate(),
		s.Style.Validate(),
		s.Boundaries.Validate(),
		s.Config.Validate(),
	); err != nil {
		return &InvalidSnapshotError{Err: err}
	}
	return nil
}

// #endregion snapshot-validation
