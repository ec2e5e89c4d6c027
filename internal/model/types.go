package model

import "time"

// #region enums

// EventType enumerates the closed set of life-events that move the
// affective state.
type EventType string

const (
	EventPositiveInteraction EventType = "positive_interaction"
	EventNegativeInteraction EventType = "negative_interaction"
	EventAchievement         EventType = "achievement"
	EventFailure             EventType = "failure"
	EventSurprise            EventType = "surprise"
	EventBoredom             EventType = "boredom"
	EventStress              EventType = "stress"
	EventRelaxation          EventType = "relaxation"
	EventCreativity          EventType = "creativity"
	EventLearning            EventType = "learning"
	EventSocial              EventType = "social"
	EventSolitary            EventType = "solitary"
)

// EventTypes lists every recognized event type.
var EventTypes = []EventType{
	EventPositiveInteraction, EventNegativeInteraction,
	EventAchievement, EventFailure, EventSurprise, EventBoredom,
	EventStress, EventRelaxation, EventCreativity, EventLearning,
	EventSocial, EventSolitary,
}

// Known reports whether t is one of the recognized event types.
// Unknown types are a zero-impact no-op in the affect engine, not an error.
func (t EventType) Known() bool {
	for _, k := range EventTypes {
		if t == k {
			return true
		}
	}
	return false
}

// AudienceType enumerates who the agent is talking to.
type AudienceType string

const (
	AudienceFriend       AudienceType = "friend"
	AudienceFamily       AudienceType = "family"
	AudienceColleague    AudienceType = "colleague"
	AudienceStranger     AudienceType = "stranger"
	AudienceChild        AudienceType = "child"
	AudienceProfessional AudienceType = "professional"
	AudienceIntimate     AudienceType = "intimate"
)

// AudienceTypes lists every recognized audience type.
var AudienceTypes = []AudienceType{
	AudienceFriend, AudienceFamily, AudienceColleague, AudienceStranger,
	AudienceChild, AudienceProfessional, AudienceIntimate,
}

// Known reports whether t is a recognized audience type.
func (t AudienceType) Known() bool {
	for _, k := range AudienceTypes {
		if t == k {
			return true
		}
	}
	return false
}

// ChannelType enumerates the communication medium.
type ChannelType string

const (
	ChannelChat  ChannelType = "chat"
	ChannelEmail ChannelType = "email"
	ChannelVoice ChannelType = "voice"
	ChannelVideo ChannelType = "video"
	ChannelText  ChannelType = "text"
)

// ChannelTypes lists every recognized channel type.
var ChannelTypes = []ChannelType{
	ChannelChat, ChannelEmail, ChannelVoice, ChannelVideo, ChannelText,
}

// Known reports whether t is a recognized channel type.
func (t ChannelType) Known() bool {
	for _, k := range ChannelTypes {
		if t == k {
			return true
		}
	}
	return false
}

// SentenceLength is the diction sentence-length preference.
type SentenceLength string

const (
	SentenceShort  SentenceLength = "short"
	SentenceMedium SentenceLength = "medium"
	SentenceLong   SentenceLength = "long"
)

// Known reports whether l is a recognized sentence length.
func (l SentenceLength) Known() bool {
	return l == SentenceShort || l == SentenceMedium || l == SentenceLong
}

// SensitivityLevel controls how sensitive content is handled.
type SensitivityLevel string

const (
	SensitivityNormal SensitivityLevel = "normal"
	SensitivitySoften SensitivityLevel = "soften"
	SensitivityHide   SensitivityLevel = "hide"
)

// Known reports whether l is a recognized sensitivity level.
func (l SensitivityLevel) Known() bool {
	return l == SensitivityNormal || l == SensitivitySoften || l == SensitivityHide
}

// #endregion enums

// #region trait-kernel

// TraitKernel holds the immutable baseline personality scalars, each in
// [0,1]. It is a value type constructed once at initialization and only
// ever passed by value; nothing mutates it after NewTraitKernel.
type TraitKernel struct {
	Curiosity float64 `json:"curiosity"`
	Balance   float64 `json:"balance"`
	Wit       float64 `json:"wit"`
	Candor    float64 `json:"candor"`
	Care      float64 `json:"care"`
}

// #endregion trait-kernel

// #region affective-state

// AffectiveState is one immutable snapshot of the agent's affect.
// Updates allocate a new snapshot; the previous one is never touched.
type AffectiveState struct {
	Timestamp time.Time `json:"ts"`
	Valence   float64   `json:"valence"` // [-1,1]
	Arousal   float64   `json:"arousal"` // [0,1]
	Fatigue   float64   `json:"fatigue"` // [0,1]
	Decay     float64   `json:"decay"`   // per-update multiplicative decay, [0,1]
	Tags      []string  `json:"tags"`    // sorted descriptive tag set
}

// #endregion affective-state

// #region contexts

// AudienceContext describes who the agent is addressing.
type AudienceContext struct {
	Name           string       `json:"name,omitempty"`
	Type           AudienceType `json:"type"`
	Role           string       `json:"role,omitempty"`
	Relationship   string       `json:"relationship,omitempty"`
	AgeGroup       string       `json:"age_group,omitempty"`
	ExpertiseLevel string       `json:"expertise_level,omitempty"`
}

// ChannelContext describes the medium the agent is speaking through.
type ChannelContext struct {
	Type          ChannelType `json:"type"`
	Platform      string      `json:"platform,omitempty"`
	IsPrivate     bool        `json:"is_private"`
	HasAudience   bool        `json:"has_audience"`
	IsSynchronous bool        `json:"is_synchronous"`
}

// EventContext carries the optional situational flags inspected by the
// boundary manager and the memory lenser. It replaces the open
// string-keyed map of earlier iterations; unknown keys simply have no
// field to land in.
type EventContext struct {
	ChildrenPresent bool     `json:"children_present,omitempty"`
	WorkContext     bool     `json:"work_context,omitempty"`
	SocialContext   bool     `json:"social_context,omitempty"`
	LearningContext bool     `json:"learning_context,omitempty"`
	CreativeContext bool     `json:"creative_context,omitempty"`
	SensitiveTopics []string `json:"sensitive_topics,omitempty"`
	EmotionalState  string   `json:"emotional_state,omitempty"`
}

// IsZero reports whether no context flag is set.
func (c EventContext) IsZero() bool {
	return !c.ChildrenPresent && !c.WorkContext && !c.SocialContext &&
		!c.LearningContext && !c.CreativeContext &&
		len(c.SensitiveTopics) == 0 && c.EmotionalState == ""
}

// #endregion contexts

// #region event-update

// EventUpdate is one discrete life-event entering the pipeline.
type EventUpdate struct {
	EventType EventType        `json:"event_type"`
	Intensity float64          `json:"intensity"` // [0,1]
	Audience  *AudienceContext `json:"audience,omitempty"`
	Channel   *ChannelContext  `json:"channel,omitempty"`
	Context   EventContext     `json:"context"`
	Timestamp time.Time        `json:"timestamp"`
}

// #endregion event-update

// #region boundary-caps

// BoundaryCaps bound the style output for safety and appropriateness.
// Within one adjustment pass the max fields only decrease and
// MinFormality only increases.
type BoundaryCaps struct {
	MaxFlirtation float64  `json:"max_flirtation"` // [0,1]
	MaxHumor      float64  `json:"max_humor"`      // [0,1]
	MaxCandor     float64  `json:"max_candor"`     // [0,1]
	MinFormality  float64  `json:"min_formality"`  // [0,1]
	SafetyTags    []string `json:"safety_tags"`    // sorted tag set
}

// #endregion boundary-caps

// #region style-profile

// ToneProfile holds the tone dimensions, each in [0,1].
type ToneProfile struct {
	Warmth     float64 `json:"warmth"`
	Formality  float64 `json:"formality"`
	Humor      float64 `json:"humor"`
	Flirtation float64 `json:"flirtation"`
}

// DictionProfile holds word-choice preferences.
type DictionProfile struct {
	SentenceLen SentenceLength `json:"sentence_len"`
	Metaphor    float64        `json:"metaphor"` // [0,1]
}

// PacingProfile holds pacing preferences.
type PacingProfile struct {
	Expansiveness float64 `json:"expansiveness"` // [0,1]
}

// StanceProfile holds stance preferences.
type StanceProfile struct {
	Assertiveness float64 `json:"assertiveness"` // [0,1]
}

// BoundaryProfile holds the audience-derived content posture.
type BoundaryProfile struct {
	NSFW      bool             `json:"nsfw"`
	Sensitive SensitivityLevel `json:"sensitive"`
}

// DecodingProfile holds the LLM sampling parameters derived from style.
type DecodingProfile struct {
	Temp      float64 `json:"temp"`       // [0.1,2.0]
	TopP      float64 `json:"top_p"`      // [0.1,1.0]
	TopK      int     `json:"top_k"`      // [1,100]
	Penalty   float64 `json:"penalty"`    // [0.1,2.0]
	MaxTokens int     `json:"max_tokens"` // [100,4000]
}

// StyleProfile is the complete synthesized communication style.
type StyleProfile struct {
	Tone       ToneProfile     `json:"tone"`
	Diction    DictionProfile  `json:"diction"`
	Pacing     PacingProfile   `json:"pacing"`
	Stance     StanceProfile   `json:"stance"`
	Boundaries BoundaryProfile `json:"boundaries"`
	Decoding   DecodingProfile `json:"decoding"`
}

// #endregion style-profile

// #region snapshot

// Snapshot is the exported form of a full persona triad plus the config
// it was produced under. Every field round-trips through ImportSnapshot.
type Snapshot struct {
	Traits          TraitKernel    `json:"traits"`
	State           AffectiveState `json:"state"`
	Style           StyleProfile   `json:"style"`
	Boundaries      BoundaryCaps   `json:"boundaries"`
	Config          Config         `json:"config"`
	ExportTimestamp time.Time      `json:"export_timestamp"`
}

// #endregion snapshot

// #region tag-set

// AddTag inserts tag into the sorted set if absent and returns the set.
func AddTag(tags []string, tag string) []string {
	for i, t := range tags {
		if t == tag {
			return tags
		}
		if t > tag {
			out := make([]string, 0, len(tags)+1)
			out = append(out, tags[:i]...)
			out = append(out, tag)
			out = append(out, tags[i:]...)
			return out
		}
	}
	return append(tags, tag)
}

// HasTag reports membership in a tag set.
func HasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// CopyTags returns an independent copy of a tag set.
func CopyTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

// #endregion tag-set
