package boundary

import (
	"strings"

	"github.com/danielpatrickdp/persona-matrix/internal/model"
)

// #region patterns

// safetyPatterns maps a category to its keyword list. Only the
// sensitive_words category is scored medium severity.
var safetyPatterns = map[string][]string{
	"sensitive_words": {
		"violence", "harm", "danger", "threat", "attack",
		"hate", "discrimination", "prejudice", "racism", "sexism",
		"suicide", "self-harm", "abuse", "trauma",
	},
	"adult_content": {
		"explicit", "sexual", "pornographic", "adult", "mature",
		"intimate", "romantic", "flirtatious",
	},
	"political_sensitive": {
		"controversial", "divisive", "partisan", "extreme",
		"radical", "conspiracy", "misinformation",
	},
	"personal_boundaries": {
		"private", "personal", "confidential", "secret",
		"embarrassing", "shameful", "vulnerable",
	},
}

// categoryOrder keeps report output deterministic across runs.
var categoryOrder = []string{
	"sensitive_words",
	"adult_content",
	"political_sensitive",
	"personal_boundaries",
}

var flirtationIndicators = []string{"flirt", "romantic", "attractive", "beautiful", "handsome"}
var humorIndicators = []string{"joke", "funny", "hilarious", "lol", "haha"}
var candorIndicators = []string{"honestly", "truthfully", "frankly", "bluntly"}

// #endregion patterns

// #region check

// CheckContentSafety scans content against the keyword categories and
// the style indicator lists, then reports issues, violations of the
// current caps, and remediation hints. Matching is substring-based on
// the lowercased content.
func CheckContentSafety(content string, caps model.BoundaryCaps) SafetyReport {
	lower := strings.ToLower(content)

	var issues []SafetyIssue
	for _, category := range categoryOrder {
		var found []string
		for _, word := range safetyPatterns[category] {
			if strings.Contains(lower, word) {
				found = append(found, word)
			}
		}
		if len(found) == 0 {
			continue
		}
		severity := "low"
		if category == "sensitive_words" {
			severity = "medium"
		}
		issues = append(issues, SafetyIssue{Category: category, Words: found, Severity: severity})
	}

	risk := "low"
	if hasMedium(issues) {
		risk = "medium"
	} else if len(issues) > 2 {
		risk = "high"
	}

	var violations []string
	if countIndicators(lower, flirtationIndicators) > 2 && caps.MaxFlirtation < 0.5 {
		violations = append(violations, "excessive_flirtation")
	}
	if countIndicators(lower, humorIndicators) > 3 && caps.MaxHumor < 0.7 {
		violations = append(violations, "excessive_humor")
	}
	if countIndicators(lower, candorIndicators) > 2 && caps.MaxCandor < 0.6 {
		violations = append(violations, "excessive_candor")
	}

	return SafetyReport{
		Safe:            len(issues) == 0 && len(violations) == 0,
		RiskLevel:       risk,
		Issues:          issues,
		Violations:      violations,
		Recommendations: recommendations(issues, violations, caps),
	}
}

func hasMedium(issues []SafetyIssue) bool {
	for _, issue := range issues {
		if issue.Severity == "medium" {
			return true
		}
	}
	return false
}

// countIndicators counts how many distinct indicator words appear.
func countIndicators(lower string, indicators []string) int {
	count := 0
	for _, word := range indicators {
		if strings.Contains(lower, word) {
			count++
		}
	}
	return count
}

func recommendations(issues []SafetyIssue, violations []string, caps model.BoundaryCaps) []string {
	var recs []string
	if len(issues) > 0 {
		recs = append(recs, "Consider softening language around sensitive topics")
	}
	for _, violation := range violations {
		switch violation {
		case "excessive_flirtation":
			recs = append(recs, "Reduce flirtatious language for current context")
		case "excessive_humor":
			recs = append(recs, "Tone down humor for current audience")
		case "excessive_candor":
			recs = append(recs, "Consider more diplomatic language")
		}
	}
	if model.HasTag(caps.SafetyTags, "child_safe") {
		recs = append(recs, "Ensure content is appropriate for children")
	}
	if model.HasTag(caps.SafetyTags, "work_appropriate") {
		recs = append(recs, "Maintain professional tone")
	}
	return recs
}

// #endregion check
