package boundary

import (
	"testing"
	"time"

	"github.com/danielpatrickdp/persona-matrix/internal/model"
)

var noon = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func TestAdjustChildAudience(t *testing.T) {
	caps := model.DefaultBoundaryCaps()
	child := &model.AudienceContext{Type: model.AudienceChild, AgeGroup: "child"}

	adjusted := Adjust(caps, child, nil, model.EventContext{}, noon)

	if adjusted.MaxFlirtation != 0 {
		t.Errorf("max_flirtation = %f, want 0", adjusted.MaxFlirtation)
	}
	if adjusted.MaxCandor != 0.3 {
		t.Errorf("max_candor = %f, want 0.3", adjusted.MaxCandor)
	}
	// noon pushes the floor past the child rule's 0.4
	if adjusted.MinFormality != 0.5 {
		t.Errorf("min_formality = %f, want 0.5", adjusted.MinFormality)
	}
	if !model.HasTag(adjusted.SafetyTags, "child_safe") {
		t.Errorf("tags %v missing child_safe", adjusted.SafetyTags)
	}
	if !model.HasTag(adjusted.SafetyTags, "educational") {
		t.Errorf("tags %v missing educational", adjusted.SafetyTags)
	}
}

func TestAdjustOnlyTightens(t *testing.T) {
	caps := model.BoundaryCaps{MaxFlirtation: 1, MaxHumor: 1, MaxCandor: 1, MinFormality: 0}

	channels := []*model.ChannelContext{
		nil,
		{Type: model.ChannelChat, IsPrivate: true},
		{Type: model.ChannelEmail, IsPrivate: true, Platform: "work-mail"},
		{Type: model.ChannelVideo, IsPrivate: false},
	}
	contexts := []model.EventContext{
		{},
		{ChildrenPresent: true},
		{WorkContext: true, SensitiveTopics: []string{"layoffs"}},
		{EmotionalState: "sad"},
	}
	hours := []int{3, 12, 20}

	for _, at := range model.AudienceTypes {
		audience := &model.AudienceContext{Type: at}
		for _, channel := range channels {
			for _, evctx := range contexts {
				for _, hour := range hours {
					now := time.Date(2026, 3, 14, hour, 0, 0, 0, time.UTC)
					adjusted := Adjust(caps, audience, channel, evctx, now)

					if adjusted.MaxFlirtation > caps.MaxFlirtation ||
						adjusted.MaxHumor > caps.MaxHumor ||
						adjusted.MaxCandor > caps.MaxCandor {
						t.Fatalf("caps loosened for %s/%v/%v/%d: %+v", at, channel, evctx, hour, adjusted)
					}
					if adjusted.MinFormality < caps.MinFormality {
						t.Fatalf("formality floor dropped for %s/%v/%v/%d: %+v", at, channel, evctx, hour, adjusted)
					}

					// a second pass over already-tight caps must be a no-op or tighter
					again := Adjust(adjusted, audience, channel, evctx, now)
					if again.MaxFlirtation > adjusted.MaxFlirtation ||
						again.MaxHumor > adjusted.MaxHumor ||
						again.MaxCandor > adjusted.MaxCandor ||
						again.MinFormality < adjusted.MinFormality {
						t.Fatalf("second pass loosened caps for %s/%v/%v/%d", at, channel, evctx, hour)
					}
				}
			}
		}
	}
}

func TestAdjustFragileEmotionalState(t *testing.T) {
	caps := model.DefaultBoundaryCaps()

	sad := Adjust(caps, nil, nil, model.EventContext{EmotionalState: "sad"}, noon)
	if sad.MaxHumor != 0.5 {
		t.Errorf("max_humor = %f, want 0.5", sad.MaxHumor)
	}
	if !model.HasTag(sad.SafetyTags, "emotionally_sensitive") {
		t.Errorf("tags %v missing emotionally_sensitive", sad.SafetyTags)
	}

	cheerful := Adjust(caps, nil, nil, model.EventContext{EmotionalState: "cheerful"}, noon)
	if model.HasTag(cheerful.SafetyTags, "emotionally_sensitive") {
		t.Error("non-fragile emotional state should not add the sensitive tag")
	}
}

func TestClassifyChannel(t *testing.T) {
	cases := []struct {
		name    string
		channel model.ChannelContext
		want    channelClass
	}{
		{"public", model.ChannelContext{Type: model.ChannelChat, IsPrivate: false}, classPublic},
		{"private", model.ChannelContext{Type: model.ChannelChat, IsPrivate: true}, classPrivate},
		{"work platform", model.ChannelContext{Type: model.ChannelChat, IsPrivate: true, Platform: "WorkSlack"}, classWork},
		{"public work platform", model.ChannelContext{Type: model.ChannelChat, IsPrivate: false, Platform: "work"}, classPublic},
	}
	for _, tc := range cases {
		if got := classifyChannel(tc.channel); got != tc.want {
			t.Errorf("%s: classifyChannel = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPeriodFor(t *testing.T) {
	cases := []struct {
		hour int
		want timePeriod
	}{
		{9, periodBusinessHours},
		{17, periodBusinessHours},
		{18, periodAfterHours},
		{22, periodAfterHours},
		{23, periodLateNight},
		{0, periodLateNight},
		{8, periodLateNight},
	}
	for _, tc := range cases {
		if got := periodFor(tc.hour); got != tc.want {
			t.Errorf("periodFor(%d) = %v, want %v", tc.hour, got, tc.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	caps := model.BoundaryCaps{
		MaxFlirtation: 0.1,
		MaxHumor:      0.8,
		MaxCandor:     0.3,
		MinFormality:  0.7,
		SafetyTags:    []string{"child_safe"},
	}
	summary := Summarize(caps)

	if summary.FlirtationAllowed {
		t.Error("flirtation should not be allowed at 0.1")
	}
	if summary.HumorLevel != "high" {
		t.Errorf("humor level = %s, want high", summary.HumorLevel)
	}
	if summary.CandorLevel != "low" {
		t.Errorf("candor level = %s, want low", summary.CandorLevel)
	}
	if summary.FormalityLevel != "high" {
		t.Errorf("formality level = %s, want high", summary.FormalityLevel)
	}
	if summary.OverallRestrictiveness != "high" {
		t.Errorf("restrictiveness = %s, want high", summary.OverallRestrictiveness)
	}
}
