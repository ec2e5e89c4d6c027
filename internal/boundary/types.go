package boundary

// #region rule

// Rule is one tightening step in the adjustment pipeline. Max fields are
// combined with min(), MinFormality with max(), so a field set to its
// identity (1 for maxes, 0 for the minimum) leaves the cap untouched.
type Rule struct {
	MaxFlirtation float64
	MaxHumor      float64
	MaxCandor     float64
	MinFormality  float64
	SafetyTags    []string
}

// #endregion rule

// #region time-period

// timePeriod buckets wall-clock hours for the time-of-day rules.
type timePeriod string

const (
	periodBusinessHours timePeriod = "business_hours" // 9..17
	periodAfterHours    timePeriod = "after_hours"    // 18..22
	periodLateNight     timePeriod = "late_night"     // everything else
)

// #endregion time-period

// #region channel-class

// channelClass is the privacy class a channel context resolves to.
type channelClass string

const (
	classPublic  channelClass = "public"
	classWork    channelClass = "work"
	classPrivate channelClass = "private"
)

// #endregion channel-class

// #region safety-report

// SafetyIssue is one keyword category that matched in content.
type SafetyIssue struct {
	Category string   `json:"category"`
	Words    []string `json:"words"`
	Severity string   `json:"severity"` // "low" | "medium"
}

// SafetyReport is the result of a content-safety scan.
type SafetyReport struct {
	Safe            bool          `json:"safe"`
	RiskLevel       string        `json:"risk_level"` // "low" | "medium" | "high"
	Issues          []SafetyIssue `json:"issues"`
	Violations      []string      `json:"violations"`
	Recommendations []string      `json:"recommendations"`
}

// #endregion safety-report

// #region summary

// Summary buckets each cap into a coarse category for reporting.
type Summary struct {
	FlirtationAllowed      bool     `json:"flirtation_allowed"`
	HumorLevel             string   `json:"humor_level"`
	CandorLevel            string   `json:"candor_level"`
	FormalityLevel         string   `json:"formality_level"`
	SafetyTags             []string `json:"safety_tags"`
	OverallRestrictiveness string   `json:"overall_restrictiveness"`
}

// #endregion summary
