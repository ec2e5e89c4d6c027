package boundary

import (
	"testing"

	"github.com/danielpatrickdp/persona-matrix/internal/model"
)

func TestCheckContentSafetyClean(t *testing.T) {
	report := CheckContentSafety("the weather is lovely today", model.DefaultBoundaryCaps())
	if !report.Safe {
		t.Errorf("clean content flagged unsafe: %+v", report)
	}
	if report.RiskLevel != "low" {
		t.Errorf("risk = %s, want low", report.RiskLevel)
	}
	if len(report.Issues) != 0 || len(report.Violations) != 0 {
		t.Errorf("unexpected findings: %+v", report)
	}
}

func TestCheckContentSafetySensitiveWords(t *testing.T) {
	report := CheckContentSafety("the threat of violence caused trauma", model.DefaultBoundaryCaps())

	if report.Safe {
		t.Error("sensitive words must mark the content unsafe")
	}
	if report.RiskLevel != "medium" {
		t.Errorf("risk = %s, want medium", report.RiskLevel)
	}
	if len(report.Issues) != 1 {
		t.Fatalf("issues = %d, want 1", len(report.Issues))
	}
	issue := report.Issues[0]
	if issue.Category != "sensitive_words" || issue.Severity != "medium" {
		t.Errorf("issue = %+v, want medium sensitive_words", issue)
	}
	if len(issue.Words) != 3 {
		t.Errorf("matched words = %v, want threat, violence, trauma", issue.Words)
	}
	if len(report.Recommendations) == 0 {
		t.Error("expected a softening recommendation")
	}
}

func TestCheckContentSafetyHumorViolation(t *testing.T) {
	caps := model.BoundaryCaps{MaxFlirtation: 0.5, MaxHumor: 0.5, MaxCandor: 0.9, MinFormality: 0.2}

	report := CheckContentSafety("that joke was so funny lol haha hilarious", caps)

	if report.Safe {
		t.Error("a capped-humor violation must mark the content unsafe")
	}
	if report.RiskLevel != "low" {
		t.Errorf("risk = %s, want low (no keyword issues)", report.RiskLevel)
	}
	if len(report.Violations) != 1 || report.Violations[0] != "excessive_humor" {
		t.Errorf("violations = %v, want [excessive_humor]", report.Violations)
	}

	// same content under a generous humor cap passes
	report = CheckContentSafety("that joke was so funny lol haha hilarious", model.BoundaryCaps{
		MaxFlirtation: 0.5, MaxHumor: 0.9, MaxCandor: 0.9, MinFormality: 0.2,
	})
	if !report.Safe {
		t.Errorf("uncapped humor flagged: %+v", report)
	}
}

func TestCheckContentSafetyCandorViolation(t *testing.T) {
	caps := model.BoundaryCaps{MaxFlirtation: 0.5, MaxHumor: 0.8, MaxCandor: 0.5, MinFormality: 0.2}

	report := CheckContentSafety("honestly and frankly, bluntly speaking", caps)
	if len(report.Violations) != 1 || report.Violations[0] != "excessive_candor" {
		t.Errorf("violations = %v, want [excessive_candor]", report.Violations)
	}
}

func TestCheckContentSafetyTagRecommendations(t *testing.T) {
	caps := model.DefaultBoundaryCaps()
	caps.SafetyTags = model.AddTag(caps.SafetyTags, "child_safe")
	caps.SafetyTags = model.AddTag(caps.SafetyTags, "work_appropriate")

	report := CheckContentSafety("completely benign", caps)
	if len(report.Recommendations) != 2 {
		t.Fatalf("recommendations = %v, want child and work hints", report.Recommendations)
	}
}
