package entities

// RiskGrade is the review-based risk letter for a place.
type RiskGrade string

const (
	RiskGradeA RiskGrade = "A" // avg >= 4.5
	RiskGradeB RiskGrade = "B" // avg >= 4.0
	RiskGradeC RiskGrade = "C" // avg >= 3.5, or no reviews
	RiskGradeD RiskGrade = "D" // avg < 3.5
)

// TrustLabel buckets the trust score.
type TrustLabel string

const (
	TrustHigh   TrustLabel = "HIGH"
	TrustMedium TrustLabel = "MEDIUM"
	TrustLow    TrustLabel = "LOW"
)

// TrustDetails breaks the trust score into its components.
type TrustDetails struct {
	TotalScore          int        `json:"total_score"`
	ConfirmedRatioScore int        `json:"confirmed_ratio_score"` // 0-60
	RecencyBonus        int        `json:"recency_bonus"`         // 0 or 20
	PendingPenalty      int        `json:"pending_penalty"`
	DisputedPenalty     int        `json:"disputed_penalty"`
	Label               TrustLabel `json:"label"`
}

// Score is derived on every read and never stored.
type Score struct {
	RiskGrade    RiskGrade    `json:"risk_grade"`
	TrustDetails TrustDetails `json:"trust_details"`
}
