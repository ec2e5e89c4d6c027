package affect

import (
	"time"

	"github.com/danielpatrickdp/persona-matrix/internal/model"
)

// #region impact-table

// eventImpacts maps each event type to its base delta. Unlisted types
// contribute nothing.
var eventImpacts = map[model.EventType]Impact{
	model.EventPositiveInteraction: {Valence: 0.3, Arousal: 0.2, Fatigue: -0.1},
	model.EventNegativeInteraction: {Valence: -0.4, Arousal: 0.3, Fatigue: 0.1},
	model.EventAchievement:         {Valence: 0.5, Arousal: 0.4, Fatigue: -0.2},
	model.EventFailure:             {Valence: -0.6, Arousal: 0.2, Fatigue: 0.3},
	model.EventSurprise:            {Valence: 0.1, Arousal: 0.6, Fatigue: 0.0},
	model.EventBoredom:             {Valence: -0.2, Arousal: -0.3, Fatigue: 0.2},
	model.EventStress:              {Valence: -0.3, Arousal: 0.5, Fatigue: 0.4},
	model.EventRelaxation:          {Valence: 0.2, Arousal: -0.4, Fatigue: -0.1},
	model.EventCreativity:          {Valence: 0.4, Arousal: 0.3, Fatigue: 0.1},
	model.EventLearning:            {Valence: 0.3, Arousal: 0.2, Fatigue: 0.2},
	model.EventSocial:              {Valence: 0.2, Arousal: 0.3, Fatigue: -0.1},
	model.EventSolitary:            {Valence: 0.1, Arousal: -0.2, Fatigue: 0.0},
}

// #endregion impact-table

// #region interaction-constants

// Cross-dimension interaction bonuses keyed by the (valence, arousal)
// quadrant of the decayed state, plus the fatigue drag.
const (
	excitementBonus    = 0.1   // high valence, high arousal
	anxietyPenalty     = -0.1  // low valence, high arousal
	contentmentBonus   = 0.05  // high valence, low arousal
	sadnessPenalty     = -0.05 // low valence, low arousal
	fatigueValenceDrag = -0.2  // fatigue > 0.7
	fatigueArousalDrag = -0.3
)

// Per-dimension recovery rates toward setpoints. Fatigue recovers
// fastest, then arousal, then valence.
const (
	valenceRecoveryRate = 0.1
	arousalRecoveryRate = 0.15
	fatigueRecoveryRate = 0.2
)

// #endregion interaction-constants

// #region update

// Update is a pure function computing the next affective snapshot from
// the current one and a single event. Fixed stage order: decay, event
// impact, cross-dimension interaction, recovery toward setpoints,
// clamp, tag recomputation. It never fails; out-of-domain intermediate
// values are clamped, and an unrecognized event type contributes a zero
// delta.
func Update(state model.AffectiveState, event model.EventUpdate, config Config) model.AffectiveState {
	// 1. Decay: the snapshot's own decay factor attenuates all three
	// dimensions before new impact lands.
	decayedValence := state.Valence * state.Decay
	decayedArousal := state.Arousal * state.Decay
	decayedFatigue := state.Fatigue * state.Decay

	valence := decayedValence
	arousal := decayedArousal
	fatigue := decayedFatigue

	// 2. Event impact, scaled by intensity and context modifiers.
	impact := eventImpact(event)
	mods := contextModifiers(event)
	valence += impact.Valence * mods.Valence
	arousal += impact.Arousal * mods.Arousal
	fatigue += impact.Fatigue * mods.Fatigue

	// 3. Cross-dimension interaction, keyed off the decayed state.
	inter := interactions(decayedValence, decayedArousal, decayedFatigue)
	valence += inter.Valence
	arousal += inter.Arousal
	fatigue += inter.Fatigue

	// 4. Recovery: pull each dimension a fixed fraction toward its setpoint.
	valence += (config.ValenceSetpoint - valence) * valenceRecoveryRate
	arousal += (config.ArousalSetpoint - arousal) * arousalRecoveryRate
	fatigue += (0.0 - fatigue) * fatigueRecoveryRate

	// 5. Clamp to declared domains.
	valence = clamp(valence, -1, 1)
	arousal = clamp(arousal, 0, 1)
	fatigue = clamp(fatigue, 0, 1)

	ts := event.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	next := model.AffectiveState{
		Timestamp: ts,
		Valence:   valence,
		Arousal:   arousal,
		Fatigue:   fatigue,
		Decay:     state.Decay,
	}

	// 6. Tags derive purely from the final values.
	next.Tags = DeriveTags(next)
	return next
}

// #endregion update

// #region event-impact

// eventImpact returns the intensity-scaled base delta for an event.
func eventImpact(event model.EventUpdate) Impact {
	base, ok := eventImpacts[event.EventType]
	if !ok {
		return Impact{}
	}
	return Impact{
		Valence: base.Valence * event.Intensity,
		Arousal: base.Arousal * event.Intensity,
		Fatigue: base.Fatigue * event.Intensity,
	}
}

// contextModifiers composes the multiplicative audience, channel, and
// time-of-day modifiers for an event. Each starts at 1 and composes
// independently.
func contextModifiers(event model.EventUpdate) Impact {
	mods := Impact{Valence: 1, Arousal: 1, Fatigue: 1}

	if event.Audience != nil {
		switch event.Audience.Type {
		case model.AudienceFriend:
			mods.Valence *= 1.2
		case model.AudienceProfessional:
			mods.Arousal *= 0.8
		case model.AudienceChild:
			mods.Valence *= 1.3
			mods.Arousal *= 1.1
		}
	}

	if event.Channel != nil {
		switch event.Channel.Type {
		case model.ChannelVoice:
			mods.Arousal *= 1.1
		case model.ChannelEmail:
			mods.Arousal *= 0.9
		}
	}

	if !event.Timestamp.IsZero() {
		hour := event.Timestamp.Hour()
		if hour >= 22 || hour <= 6 {
			mods.Arousal *= 0.7
			mods.Fatigue *= 1.2
		}
	}

	return mods
}

// #endregion event-impact

// #region interactions

// interactions returns the quadrant bonuses and fatigue drag for the
// decayed state.
func interactions(valence, arousal, fatigue float64) Impact {
	var inter Impact

	switch {
	case valence > 0.5 && arousal > 0.5:
		inter.Valence += excitementBonus
	case valence < -0.5 && arousal > 0.5:
		inter.Valence += anxietyPenalty
	case valence > 0.5 && arousal < 0.3:
		inter.Valence += contentmentBonus
	case valence < -0.5 && arousal < 0.3:
		inter.Valence += sadnessPenalty
	}

	if fatigue > 0.7 {
		inter.Valence += fatigueValenceDrag
		inter.Arousal += fatigueArousalDrag
	}

	return inter
}

// #endregion interactions

// #region tags

// DeriveTags recomputes the descriptive tag set from final state values.
func DeriveTags(state model.AffectiveState) []string {
	var tags []string

	switch {
	case state.Valence > 0.5:
		tags = model.AddTag(tags, "positive")
	case state.Valence < -0.5:
		tags = model.AddTag(tags, "negative")
	default:
		tags = model.AddTag(tags, "neutral")
	}

	switch {
	case state.Arousal > 0.7:
		tags = model.AddTag(tags, "excited")
	case state.Arousal > 0.4:
		tags = model.AddTag(tags, "engaged")
	case state.Arousal < 0.3:
		tags = model.AddTag(tags, "calm")
	}

	switch {
	case state.Fatigue > 0.7:
		tags = model.AddTag(tags, "tired")
	case state.Fatigue > 0.4:
		tags = model.AddTag(tags, "moderate_energy")
	default:
		tags = model.AddTag(tags, "energetic")
	}

	switch {
	case state.Valence > 0.6 && state.Arousal > 0.6:
		tags = model.AddTag(tags, "enthusiastic")
	case state.Valence < -0.6 && state.Arousal > 0.6:
		tags = model.AddTag(tags, "anxious")
	case state.Valence > 0.6 && state.Arousal < 0.3:
		tags = model.AddTag(tags, "content")
	case state.Valence < -0.6 && state.Arousal < 0.3:
		tags = model.AddTag(tags, "sad")
	}

	return tags
}

// #endregion tags

// #region stability

// StabilityScore measures how close a state sits to its setpoints.
// 1 means fully at rest; 0 means maximally displaced.
func StabilityScore(state model.AffectiveState, config Config) float64 {
	valenceDist := abs(state.Valence - config.ValenceSetpoint)
	arousalDist := abs(state.Arousal - config.ArousalSetpoint)
	fatigueDist := abs(state.Fatigue)

	avg := (valenceDist + arousalDist + fatigueDist) / 3.0
	if avg > 1 {
		return 0
	}
	return 1 - avg
}

// #endregion stability

// #region helpers

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// #endregion helpers
