// Package analysis assesses a document's completeness against the
// requirement checklist of its module type and derives a compliance score
// with a risk tier.
package analysis

// Status classifies how well a single requirement is covered.
type Status string

const (
	StatusComplete Status = "complete"
	StatusPartial  Status = "partial"
	StatusMissing  Status = "missing"
)

// Severity of a deficiency.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Priority of a suggestion.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// RiskLevel is the four-tier classification derived from the score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// CompletenessItem is one requirement checklist line with its assessed
// status. Items appear in requirement order, one per requirement.
type CompletenessItem struct {
	Item   string `json:"item"`
	Status Status `json:"status"`
	Notes  string `json:"notes"`
}

// DeficiencyItem is a non-complete completeness item re-expressed as a
// remediation-worthy finding.
type DeficiencyItem struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Impact      string   `json:"impact"`
}

// SuggestionItem is an improvement recommendation for a non-complete item.
type SuggestionItem struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Reference   string   `json:"reference,omitempty"`
}

// Finding is the legacy compatibility view consumed by older dashboard
// screens.
type Finding struct {
	Severity    string `json:"severity"` // info | warning
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Result is the full outcome of one completeness analysis. Score is a
// deterministic function of the completeness items; RiskLevel is a
// deterministic function of Score.
type Result struct {
	Score           int                `json:"score"`
	Summary         string             `json:"summary"`
	RiskLevel       RiskLevel          `json:"riskLevel"`
	Completeness    []CompletenessItem `json:"completeness"`
	Deficiencies    []DeficiencyItem   `json:"deficiencies"`
	Suggestions     []SuggestionItem   `json:"suggestions"`
	Findings        []Finding          `json:"findings"`
	Recommendations []string           `json:"recommendations"`
}
