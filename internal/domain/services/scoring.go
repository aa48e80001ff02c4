package services

import (
	"math"
	"time"

	"github.com/ersonp/logitrust/internal/domain/entities"
)

// Trust score weights.
const (
	baseScore           = 20
	confirmedRatioMax   = 60
	recencyBonusPoints  = 20
	pendingPenaltyUnit  = 5
	disputedPenaltyUnit = 15
	recencyWindowDays   = 30

	highTrustThreshold   = 80
	mediumTrustThreshold = 50
)

// RiskGradeFor grades a place by its average review rating.
func RiskGradeFor(reviews []entities.Review) entities.RiskGrade {
	if len(reviews) == 0 {
		return entities.RiskGradeC
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	switch {
	case avg >= 4.5:
		return entities.RiskGradeA
	case avg >= 4.0:
		return entities.RiskGradeB
	case avg >= 3.5:
		return entities.RiskGradeC
	default:
		return entities.RiskGradeD
	}
}

// TrustLabelFor buckets a total trust score.
func TrustLabelFor(total int) entities.TrustLabel {
	switch {
	case total >= highTrustThreshold:
		return entities.TrustHigh
	case total >= mediumTrustThreshold:
		return entities.TrustMedium
	default:
		return entities.TrustLow
	}
}

// FieldKeys returns the keys scored for a place: stored constraint keys in
// order, then keys that only have pending requests.
func FieldKeys(placeID string, constraints []entities.Constraint, requests []entities.EditRequest) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, c := range constraints {
		if c.PlaceID == placeID && !seen[c.FieldKey] {
			seen[c.FieldKey] = true
			keys = append(keys, c.FieldKey)
		}
	}
	for _, r := range requests {
		if r.PlaceID == placeID && r.Status == entities.RequestPending && !seen[r.FieldKey] {
			seen[r.FieldKey] = true
			keys = append(keys, r.FieldKey)
		}
	}
	return keys
}

// ComputeScore derives the risk grade and trust score of a place.
// Inputs may hold data for every place; only placeID's rows are used.
func ComputeScore(now time.Time, placeID string, reviews []entities.Review, constraints []entities.Constraint, requests []entities.EditRequest) entities.Score {
	var placeReviews []entities.Review
	for _, r := range reviews {
		if r.PlaceID == placeID {
			placeReviews = append(placeReviews, r)
		}
	}

	keys := FieldKeys(placeID, constraints, requests)
	var confirmed, pending, disputed int
	for _, key := range keys {
		switch ResolveStatus(now, placeID, key, constraints, requests) {
		case entities.ConstraintConfirmed:
			confirmed++
		case entities.ConstraintPending:
			pending++
		case entities.ConstraintDisputed:
			disputed++
		}
	}

	total := len(keys)
	if total == 0 {
		total = 1
	}
	ratio := int(math.Floor(float64(confirmed)/float64(total)*confirmedRatioMax + 0.5))

	recency := 0
	cutoff := now.AddDate(0, 0, -recencyWindowDays)
	for _, c := range constraints {
		if c.PlaceID == placeID && c.UpdatedAt.After(cutoff) {
			recency = recencyBonusPoints
			break
		}
	}

	details := entities.TrustDetails{
		ConfirmedRatioScore: ratio,
		RecencyBonus:        recency,
		PendingPenalty:      pending * pendingPenaltyUnit,
		DisputedPenalty:     disputed * disputedPenaltyUnit,
	}
	score := baseScore + ratio + recency - details.PendingPenalty - details.DisputedPenalty
	details.TotalScore = max(0, min(100, score))
	details.Label = TrustLabelFor(details.TotalScore)

	return entities.Score{
		RiskGrade:    RiskGradeFor(placeReviews),
		TrustDetails: details,
	}
}
