// Package boundary adjusts safety and appropriateness caps for the
// current audience, channel, situational context, and time of day.
// Every rule can only tighten the caps it receives: maxima shrink,
// the formality floor rises, and safety tags accumulate.
package boundary

import (
	"strings"
	"time"

	"github.com/danielpatrickdp/persona-matrix/internal/model"
)

// #region rule-tables

// audienceRules keys on model.AudienceType values. Candor-neutral rules
// use 1.0 so min() leaves the cap alone.
var audienceRules = map[model.AudienceType]Rule{
	model.AudienceChild: {
		MaxFlirtation: 0.0, MaxHumor: 0.9, MaxCandor: 0.3, MinFormality: 0.4,
		SafetyTags: []string{"child_safe", "educational"},
	},
	model.AudienceProfessional: {
		MaxFlirtation: 0.1, MaxHumor: 0.6, MaxCandor: 0.7, MinFormality: 0.6,
		SafetyTags: []string{"professional", "appropriate"},
	},
	model.AudienceFriend: {
		MaxFlirtation: 0.8, MaxHumor: 0.9, MaxCandor: 0.9, MinFormality: 0.1,
		SafetyTags: []string{"casual", "friendly"},
	},
	model.AudienceFamily: {
		MaxFlirtation: 0.3, MaxHumor: 0.8, MaxCandor: 0.8, MinFormality: 0.2,
		SafetyTags: []string{"family_appropriate"},
	},
	model.AudienceStranger: {
		MaxFlirtation: 0.2, MaxHumor: 0.7, MaxCandor: 0.5, MinFormality: 0.5,
		SafetyTags: []string{"polite", "reserved"},
	},
	model.AudienceIntimate: {
		MaxFlirtation: 1.0, MaxHumor: 0.8, MaxCandor: 1.0, MinFormality: 0.0,
		SafetyTags: []string{"intimate", "trusted"},
	},
}

var channelRules = map[channelClass]Rule{
	classPublic: {
		MaxFlirtation: 0.2, MaxHumor: 0.6, MaxCandor: 0.4, MinFormality: 0.6,
		SafetyTags: []string{"public_appropriate"},
	},
	classPrivate: {
		MaxFlirtation: 0.8, MaxHumor: 0.9, MaxCandor: 0.9, MinFormality: 0.2,
		SafetyTags: []string{"private"},
	},
	classWork: {
		MaxFlirtation: 0.1, MaxHumor: 0.5, MaxCandor: 0.6, MinFormality: 0.7,
		SafetyTags: []string{"work_appropriate"},
	},
}

// timeRules never touch candor.
var timeRules = map[timePeriod]Rule{
	periodBusinessHours: {MaxFlirtation: 0.3, MaxHumor: 0.7, MaxCandor: 1.0, MinFormality: 0.5},
	periodAfterHours:    {MaxFlirtation: 0.7, MaxHumor: 0.8, MaxCandor: 1.0, MinFormality: 0.3},
	periodLateNight:     {MaxFlirtation: 0.5, MaxHumor: 0.6, MaxCandor: 1.0, MinFormality: 0.4},
}

var childrenPresentRule = Rule{
	MaxFlirtation: 0.0, MaxHumor: 0.8, MaxCandor: 0.3, MinFormality: 0.5,
	SafetyTags: []string{"child_safe"},
}

var workContextRule = Rule{
	MaxFlirtation: 0.1, MaxHumor: 0.6, MaxCandor: 0.7, MinFormality: 0.6,
	SafetyTags: []string{"work_appropriate"},
}

var sensitiveTopicsRule = Rule{
	MaxFlirtation: 1.0, MaxHumor: 1.0, MaxCandor: 0.5, MinFormality: 0.6,
	SafetyTags: []string{"sensitive_content"},
}

var emotionalStateRule = Rule{
	MaxFlirtation: 1.0, MaxHumor: 0.5, MaxCandor: 0.6, MinFormality: 0.0,
	SafetyTags: []string{"emotionally_sensitive"},
}

// fragileStates are emotional states that trigger emotionalStateRule.
var fragileStates = map[string]bool{
	"vulnerable": true,
	"sad":        true,
	"angry":      true,
}

// #endregion rule-tables

// #region adjust

// Adjust tightens caps for the given contexts. Nil audience or channel
// skips that stage; a zero event context skips the context stage. The
// time-of-day stage always runs against now's local hour, so callers
// control wall-clock sensitivity by what they pass in.
func Adjust(
	caps model.BoundaryCaps,
	audience *model.AudienceContext,
	channel *model.ChannelContext,
	evctx model.EventContext,
	now time.Time,
) model.BoundaryCaps {
	adjusted := model.BoundaryCaps{
		MaxFlirtation: caps.MaxFlirtation,
		MaxHumor:      caps.MaxHumor,
		MaxCandor:     caps.MaxCandor,
		MinFormality:  caps.MinFormality,
		SafetyTags:    model.CopyTags(caps.SafetyTags),
	}

	if audience != nil {
		if rule, ok := audienceRules[audience.Type]; ok {
			adjusted = applyRule(adjusted, rule)
		}
	}
	if channel != nil {
		adjusted = applyRule(adjusted, channelRules[classifyChannel(*channel)])
	}
	if !evctx.IsZero() {
		adjusted = applyContext(adjusted, evctx)
	}
	adjusted = applyRule(adjusted, timeRules[periodFor(now.Hour())])

	return clampCaps(adjusted)
}

// applyRule tightens caps by one rule: min on maxima, max on the
// formality floor, union on safety tags.
func applyRule(caps model.BoundaryCaps, rule Rule) model.BoundaryCaps {
	caps.MaxFlirtation = min(caps.MaxFlirtation, rule.MaxFlirtation)
	caps.MaxHumor = min(caps.MaxHumor, rule.MaxHumor)
	caps.MaxCandor = min(caps.MaxCandor, rule.MaxCandor)
	caps.MinFormality = max(caps.MinFormality, rule.MinFormality)
	for _, tag := range rule.SafetyTags {
		caps.SafetyTags = model.AddTag(caps.SafetyTags, tag)
	}
	return caps
}

func applyContext(caps model.BoundaryCaps, evctx model.EventContext) model.BoundaryCaps {
	if evctx.ChildrenPresent {
		caps = applyRule(caps, childrenPresentRule)
	}
	if evctx.WorkContext {
		caps = applyRule(caps, workContextRule)
	}
	if len(evctx.SensitiveTopics) > 0 {
		caps = applyRule(caps, sensitiveTopicsRule)
	}
	if fragileStates[evctx.EmotionalState] {
		caps = applyRule(caps, emotionalStateRule)
	}
	return caps
}

// classifyChannel maps a channel context to its privacy class. Public
// wins over everything; a platform name containing "work" marks a work
// channel.
func classifyChannel(channel model.ChannelContext) channelClass {
	if !channel.IsPrivate {
		return classPublic
	}
	if strings.Contains(strings.ToLower(channel.Platform), "work") {
		return classWork
	}
	return classPrivate
}

func periodFor(hour int) timePeriod {
	switch {
	case hour >= 9 && hour <= 17:
		return periodBusinessHours
	case hour >= 18 && hour <= 22:
		return periodAfterHours
	default:
		return periodLateNight
	}
}

func clampCaps(caps model.BoundaryCaps) model.BoundaryCaps {
	caps.MaxFlirtation = clamp(caps.MaxFlirtation, 0, 1)
	caps.MaxHumor = clamp(caps.MaxHumor, 0, 1)
	caps.MaxCandor = clamp(caps.MaxCandor, 0, 1)
	caps.MinFormality = clamp(caps.MinFormality, 0, 1)
	return caps
}

// #endregion adjust

// #region summary

// Summarize buckets the caps into coarse categories for reporting.
func Summarize(caps model.BoundaryCaps) Summary {
	return Summary{
		FlirtationAllowed:      caps.MaxFlirtation > 0.3,
		HumorLevel:             level(caps.MaxHumor, 0.7, 0.4),
		CandorLevel:            level(caps.MaxCandor, 0.7, 0.4),
		FormalityLevel:         level(caps.MinFormality, 0.6, 0.3),
		SafetyTags:             model.CopyTags(caps.SafetyTags),
		OverallRestrictiveness: restrictiveness(caps),
	}
}

func level(v, high, moderate float64) string {
	switch {
	case v > high:
		return "high"
	case v > moderate:
		return "moderate"
	default:
		return "low"
	}
}

func restrictiveness(caps model.BoundaryCaps) string {
	switch {
	case caps.MaxFlirtation < 0.2 && caps.MaxCandor < 0.4:
		return "high"
	case caps.MaxFlirtation < 0.5 && caps.MaxCandor < 0.6:
		return "moderate"
	default:
		return "low"
	}
}

// #endregion summary

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

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// #endregion helpers
