package style

import "github.com/danielpatrickdp/persona-matrix/internal/model"

// #region weights

// Blend weights for the trait and state contributions to each style
// dimension. Audience and channel enter multiplicatively, so their
// weights from the component split are expressed through the modifier
// tables below rather than added here.
const (
	traitWeight = 0.4
	stateWeight = 0.3
)

// #endregion weights

// #region modifiers

// audienceModifier scales tone and stance dimensions for one audience type.
type audienceModifier struct {
	Warmth        float64
	Formality     float64
	Humor         float64
	Flirtation    float64
	Assertiveness float64
}

var audienceModifiers = map[model.AudienceType]audienceModifier{
	model.AudienceFriend:       {Warmth: 1.3, Formality: 0.6, Humor: 1.2, Flirtation: 1.1, Assertiveness: 1.1},
	model.AudienceFamily:       {Warmth: 1.4, Formality: 0.5, Humor: 1.1, Flirtation: 0.8, Assertiveness: 1.0},
	model.AudienceColleague:    {Warmth: 0.9, Formality: 1.2, Humor: 0.8, Flirtation: 0.3, Assertiveness: 1.1},
	model.AudienceStranger:     {Warmth: 0.8, Formality: 1.1, Humor: 0.7, Flirtation: 0.2, Assertiveness: 0.9},
	model.AudienceChild:        {Warmth: 1.5, Formality: 0.3, Humor: 1.3, Flirtation: 0.1, Assertiveness: 0.8},
	model.AudienceProfessional: {Warmth: 0.7, Formality: 1.4, Humor: 0.6, Flirtation: 0.1, Assertiveness: 1.2},
	model.AudienceIntimate:     {Warmth: 1.6, Formality: 0.2, Humor: 1.0, Flirtation: 1.4, Assertiveness: 1.0},
}

// channelModifier scales tone and pacing for one channel type and
// overrides the preferred sentence length.
type channelModifier struct {
	Warmth        float64
	Formality     float64
	Humor         float64
	Expansiveness float64
	SentenceLen   model.SentenceLength
}

var channelModifiers = map[model.ChannelType]channelModifier{
	model.ChannelChat:  {Warmth: 1.0, Formality: 0.8, Humor: 1.1, Expansiveness: 0.9, SentenceLen: model.SentenceMedium},
	model.ChannelEmail: {Warmth: 0.9, Formality: 1.2, Humor: 0.8, Expansiveness: 1.1, SentenceLen: model.SentenceLong},
	model.ChannelVoice: {Warmth: 1.2, Formality: 0.7, Humor: 1.2, Expansiveness: 1.0, SentenceLen: model.SentenceMedium},
	model.ChannelVideo: {Warmth: 1.1, Formality: 0.9, Humor: 1.0, Expansiveness: 0.8, SentenceLen: model.SentenceShort},
	model.ChannelText:  {Warmth: 0.8, Formality: 1.0, Humor: 0.9, Expansiveness: 0.7, SentenceLen: model.SentenceShort},
}

// #endregion modifiers

// #region decoding

// Linear mappings from style dimensions into sampler parameter deltas,
// applied on top of the base decoding profile.
const (
	warmthToTemp        = 0.3
	humorToTemp         = 0.4
	formalityToPenalty  = -0.2
	expansivenessTokens = 0.5
	assertivenessToTopP = 0.1
	expansivenessScale  = 1000
)

// Base sampler parameters before style adjustments.
const (
	baseTemp      = 0.7
	baseTopP      = 0.9
	baseTopK      = 50
	basePenalty   = 1.1
	baseMaxTokens = 800
)

// #endregion decoding
