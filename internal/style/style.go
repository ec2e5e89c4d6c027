// Package style turns the trait kernel, the current affective state,
// and the conversational context into a concrete communication style
// profile plus the sampler parameters that realize it.
package style

import (
	"math"

	"github.com/danielpatrickdp/persona-matrix/internal/model"
)

// #region synthesize

// Synthesize blends traits and state into a style profile, applies
// audience and channel modifiers, derives sampler parameters, and
// finally constrains tone by the caps. Nil audience, channel, or caps
// skip the corresponding stage, which is how the trait-plus-state
// baseline used for drift correction is produced.
func Synthesize(
	traits model.TraitKernel,
	state model.AffectiveState,
	audience *model.AudienceContext,
	channel *model.ChannelContext,
	caps *model.BoundaryCaps,
) model.StyleProfile {
	tone := synthesizeTone(traits, state, audience, channel)
	diction := synthesizeDiction(traits, state, audience, channel)
	pacing := synthesizePacing(traits, state, channel)
	stance := synthesizeStance(traits, state, audience)
	bounds := synthesizeBoundaryProfile(audience)
	decoding := deriveDecoding(tone, pacing, stance)

	profile := model.StyleProfile{
		Tone:       tone,
		Diction:    diction,
		Pacing:     pacing,
		Stance:     stance,
		Boundaries: bounds,
		Decoding:   decoding,
	}
	return constrain(profile, caps)
}

func synthesizeTone(
	traits model.TraitKernel,
	state model.AffectiveState,
	audience *model.AudienceContext,
	channel *model.ChannelContext,
) model.ToneProfile {
	baseWarmth := traits.Care*0.8 + traits.Balance*0.2
	baseFormality := 1.0 - traits.Candor*0.6 - traits.Wit*0.4
	baseHumor := traits.Wit*0.8 + traits.Curiosity*0.2
	baseFlirtation := traits.Candor*0.4 + traits.Wit*0.3

	stateWarmth := (state.Valence + 1.0) / 2.0
	stateFormality := 1.0 - state.Arousal*0.3
	stateHumor := (state.Valence + 1.0) / 2.0 * (1.0 - state.Fatigue*0.5)
	stateFlirtation := (state.Valence + 1.0) / 2.0 * (1.0 - state.Fatigue*0.3)

	warmth := baseWarmth*traitWeight + stateWarmth*stateWeight
	formality := baseFormality*traitWeight + stateFormality*stateWeight
	humor := baseHumor*traitWeight + stateHumor*stateWeight
	flirtation := baseFlirtation*traitWeight + stateFlirtation*stateWeight

	if audience != nil {
		if mod, ok := audienceModifiers[audience.Type]; ok {
			warmth *= mod.Warmth
			formality *= mod.Formality
			humor *= mod.Humor
			flirtation *= mod.Flirtation
		}
	}
	if channel != nil {
		if mod, ok := channelModifiers[channel.Type]; ok {
			warmth *= mod.Warmth
			formality *= mod.Formality
			humor *= mod.Humor
		}
	}

	return model.ToneProfile{
		Warmth:     clamp(warmth, 0, 1),
		Formality:  clamp(formality, 0, 1),
		Humor:      clamp(humor, 0, 1),
		Flirtation: clamp(flirtation, 0, 1),
	}
}

func synthesizeDiction(
	traits model.TraitKernel,
	state model.AffectiveState,
	audience *model.AudienceContext,
	channel *model.ChannelContext,
) model.DictionProfile {
	var sentenceLen model.SentenceLength
	switch {
	case traits.Curiosity > 0.7 && state.Arousal > 0.5:
		sentenceLen = model.SentenceLong
	case traits.Candor > 0.8 || state.Fatigue > 0.6:
		sentenceLen = model.SentenceShort
	default:
		sentenceLen = model.SentenceMedium
	}

	// The channel's preferred length wins over the trait heuristic.
	if channel != nil {
		if mod, ok := channelModifiers[channel.Type]; ok {
			sentenceLen = mod.SentenceLen
		}
	}

	metaphor := traits.Wit*0.6 + traits.Curiosity*0.4
	metaphor *= 1.0 - state.Fatigue*0.3
	if audience != nil {
		switch audience.Type {
		case model.AudienceChild:
			metaphor *= 1.2
		case model.AudienceProfessional:
			metaphor *= 0.7
		}
	}

	return model.DictionProfile{
		SentenceLen: sentenceLen,
		Metaphor:    clamp(metaphor, 0, 1),
	}
}

func synthesizePacing(
	traits model.TraitKernel,
	state model.AffectiveState,
	channel *model.ChannelContext,
) model.PacingProfile {
	baseExpansiveness := traits.Curiosity*0.7 + traits.Candor*0.3
	stateExpansiveness := state.Arousal*0.6 + (1.0-state.Fatigue)*0.4

	expansiveness := baseExpansiveness*traitWeight + stateExpansiveness*stateWeight
	if channel != nil {
		if mod, ok := channelModifiers[channel.Type]; ok {
			expansiveness *= mod.Expansiveness
		}
	}

	return model.PacingProfile{Expansiveness: clamp(expansiveness, 0, 1)}
}

func synthesizeStance(
	traits model.TraitKernel,
	state model.AffectiveState,
	audience *model.AudienceContext,
) model.StanceProfile {
	baseAssertiveness := traits.Candor*0.8 + traits.Balance*0.2
	stateAssertiveness := state.Arousal*0.5 + (state.Valence+1.0)/2.0*0.5

	assertiveness := baseAssertiveness*traitWeight + stateAssertiveness*stateWeight
	if audience != nil {
		if mod, ok := audienceModifiers[audience.Type]; ok {
			assertiveness *= mod.Assertiveness
		}
	}

	return model.StanceProfile{Assertiveness: clamp(assertiveness, 0, 1)}
}

// synthesizeBoundaryProfile sets the content-handling flags. Only the
// intimate audience unlocks NSFW output, and only children trigger
// softened sensitivity.
func synthesizeBoundaryProfile(audience *model.AudienceContext) model.BoundaryProfile {
	profile := model.BoundaryProfile{
		NSFW:      false,
		Sensitive: model.SensitivityNormal,
	}
	if audience == nil {
		return profile
	}
	if audience.Type == model.AudienceChild {
		profile.Sensitive = model.SensitivitySoften
	}
	if audience.Type == model.AudienceIntimate {
		profile.NSFW = true
	}
	return profile
}

// #endregion synthesize

// #region decoding

// deriveDecoding maps the synthesized style onto sampler parameters.
// Warmth and humor push temperature up, formality lowers the repeat
// penalty, expansiveness buys output budget, assertiveness widens the
// nucleus slightly.
func deriveDecoding(
	tone model.ToneProfile,
	pacing model.PacingProfile,
	stance model.StanceProfile,
) model.DecodingProfile {
	temp := baseTemp + tone.Warmth*warmthToTemp + tone.Humor*humorToTemp
	topP := baseTopP + stance.Assertiveness*assertivenessToTopP
	penalty := basePenalty + tone.Formality*formalityToPenalty
	maxTokens := baseMaxTokens + int(pacing.Expansiveness*expansivenessTokens*expansivenessScale)

	return model.DecodingProfile{
		Temp:      clamp(temp, 0.1, 2.0),
		TopP:      clamp(topP, 0.1, 1.0),
		TopK:      baseTopK,
		Penalty:   clamp(penalty, 0.1, 2.0),
		MaxTokens: clampInt(maxTokens, 100, 4000),
	}
}

// #endregion decoding

// #region constrain

// constrain enforces the caps on tone. MaxCandor is carried in caps
// for reporting but no tone dimension maps to it, so it is not
// enforced here.
func constrain(profile model.StyleProfile, caps *model.BoundaryCaps) model.StyleProfile {
	if caps == nil {
		return profile
	}
	if profile.Tone.Flirtation > caps.MaxFlirtation {
		profile.Tone.Flirtation = caps.MaxFlirtation
	}
	if profile.Tone.Humor > caps.MaxHumor {
		profile.Tone.Humor = caps.MaxHumor
	}
	if profile.Tone.Formality < caps.MinFormality {
		profile.Tone.Formality = caps.MinFormality
	}
	return profile
}

// #endregion constrain

// #region drift

// Drift measures how far next has moved from prev across warmth,
// formality, humor, and assertiveness, normalized to [0, 1]-ish scale
// by the four dimensions compared.
func Drift(prev, next model.StyleProfile) float64 {
	toneDrift := math.Abs(next.Tone.Warmth-prev.Tone.Warmth) +
		math.Abs(next.Tone.Formality-prev.Tone.Formality) +
		math.Abs(next.Tone.Humor-prev.Tone.Humor)
	stanceDrift := math.Abs(next.Stance.Assertiveness - prev.Stance.Assertiveness)
	return (toneDrift + stanceDrift) / 4.0
}

// CorrectDrift pulls the drifting profile partway back toward the
// trait-based baseline on the same four dimensions the drift metric
// watches. The correction weight keeps most of the new style.
func CorrectDrift(drifted, baseline model.StyleProfile) model.StyleProfile {
	const correctionWeight = 0.3

	drifted.Tone.Warmth = blend(drifted.Tone.Warmth, baseline.Tone.Warmth, correctionWeight)
	drifted.Tone.Formality = blend(drifted.Tone.Formality, baseline.Tone.Formality, correctionWeight)
	drifted.Tone.Humor = blend(drifted.Tone.Humor, baseline.Tone.Humor, correctionWeight)
	drifted.Stance.Assertiveness = blend(drifted.Stance.Assertiveness, baseline.Stance.Assertiveness, correctionWeight)
	return drifted
}

func blend(current, baseline, weight float64) float64 {
	return (1-weight)*current + weight*baseline
}

// #endregion drift

// #region compatibility

// CompatibilityScore measures how close two style profiles are, 1 for
// identical and falling toward 0 as tone, stance, and pacing diverge.
func CompatibilityScore(a, b model.StyleProfile) float64 {
	toneDiff := (math.Abs(a.Tone.Warmth-b.Tone.Warmth) +
		math.Abs(a.Tone.Formality-b.Tone.Formality) +
		math.Abs(a.Tone.Humor-b.Tone.Humor)) / 3.0
	stanceDiff := math.Abs(a.Stance.Assertiveness - b.Stance.Assertiveness)
	pacingDiff := math.Abs(a.Pacing.Expansiveness - b.Pacing.Expansiveness)

	totalDiff := (toneDiff + stanceDiff + pacingDiff) / 3.0
	return math.Max(0.0, 1.0-totalDiff)
}

// #endregion compatibility

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

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// #endregion helpers
