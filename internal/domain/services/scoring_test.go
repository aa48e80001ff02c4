package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ersonp/logitrust/internal/domain/entities"
)

func reviewsWith(placeID string, ratings ...int) []entities.Review {
	out := make([]entities.Review, len(ratings))
	for i, r := range ratings {
		out[i] = entities.Review{ID: "rv" + string(rune('a'+i)), PlaceID: placeID, Rating: r}
	}
	return out
}

func TestRiskGradeFor(t *testing.T) {
	tests := []struct {
		name     string
		ratings  []int
		expected entities.RiskGrade
	}{
		{name: "no reviews is C", expected: entities.RiskGradeC},
		{name: "4.5 average is A", ratings: []int{5, 4}, expected: entities.RiskGradeA},
		{name: "4.0 average is B", ratings: []int{4, 4}, expected: entities.RiskGradeB},
		{name: "3.5 average is C", ratings: []int{4, 3}, expected: entities.RiskGradeC},
		{name: "below 3.5 is D", ratings: []int{3, 4, 3}, expected: entities.RiskGradeD},
		{name: "all ones is D", ratings: []int{1, 1}, expected: entities.RiskGradeD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RiskGradeFor(reviewsWith("p1", tt.ratings...)))
		})
	}
}

func TestTrustLabelFor(t *testing.T) {
	assert.Equal(t, entities.TrustHigh, TrustLabelFor(100))
	assert.Equal(t, entities.TrustHigh, TrustLabelFor(80))
	assert.Equal(t, entities.TrustMedium, TrustLabelFor(79))
	assert.Equal(t, entities.TrustMedium, TrustLabelFor(50))
	assert.Equal(t, entities.TrustLow, TrustLabelFor(49))
	assert.Equal(t, entities.TrustLow, TrustLabelFor(0))
}

func TestComputeScore(t *testing.T) {
	stored := func(n int, status entities.ConstraintStatus, keyPrefix string) []entities.Constraint {
		out := make([]entities.Constraint, n)
		for i := range out {
			out[i] = testConstraint("p1", keyPrefix+string(rune('a'+i)), "v", status, daysAgo(100))
		}
		return out
	}

	tests := []struct {
		name        string
		reviews     []entities.Review
		constraints []entities.Constraint
		requests    []entities.EditRequest
		expected    entities.TrustDetails
		grade       entities.RiskGrade
	}{
		{
			name:     "place with no data keeps the base score",
			expected: entities.TrustDetails{TotalScore: 20, Label: entities.TrustLow},
			grade:    entities.RiskGradeC,
		},
		{
			name: "single pending request today",
			requests: []entities.EditRequest{
				testRequest("r1", "p1", "height", "4.2", entities.RequestPending, testNow),
			},
			expected: entities.TrustDetails{TotalScore: 15, PendingPenalty: 5, Label: entities.TrustLow},
			grade:    entities.RiskGradeC,
		},
		{
			name: "disputed dock",
			requests: []entities.EditRequest{
				testRequest("r1", "p1", "dock", "3개", entities.RequestPending, daysAgo(1)),
				testRequest("r2", "p1", "dock", "4개", entities.RequestPending, daysAgo(2)),
			},
			expected: entities.TrustDetails{TotalScore: 5, DisputedPenalty: 15, Label: entities.TrustLow},
			grade:    entities.RiskGradeC,
		},
		{
			name:        "fully confirmed and fresh",
			reviews:     reviewsWith("p1", 5, 5),
			constraints: []entities.Constraint{testConstraint("p1", "height", "4.0", entities.ConstraintConfirmed, daysAgo(1)), testConstraint("p1", "dock", "2개", entities.ConstraintConfirmed, daysAgo(90))},
			expected:    entities.TrustDetails{TotalScore: 100, ConfirmedRatioScore: 60, RecencyBonus: 20, Label: entities.TrustHigh},
			grade:       entities.RiskGradeA,
		},
		{
			name:        "fully confirmed but stale",
			constraints: stored(2, entities.ConstraintConfirmed, "f"),
			expected:    entities.TrustDetails{TotalScore: 80, ConfirmedRatioScore: 60, Label: entities.TrustHigh},
			grade:       entities.RiskGradeC,
		},
		{
			name:        "constraint updated exactly 30 days ago earns no bonus",
			constraints: []entities.Constraint{testConstraint("p1", "height", "4.0", entities.ConstraintConfirmed, daysAgo(30))},
			expected:    entities.TrustDetails{TotalScore: 80, ConfirmedRatioScore: 60, Label: entities.TrustHigh},
			grade:       entities.RiskGradeC,
		},
		{
			name:        "ratio rounds half up",
			constraints: append(stored(3, entities.ConstraintConfirmed, "c"), stored(5, entities.ConstraintPending, "p")...),
			expected:    entities.TrustDetails{TotalScore: 18, ConfirmedRatioScore: 23, PendingPenalty: 25, Label: entities.TrustLow},
			grade:       entities.RiskGradeC,
		},
		{
			name:        "score clamps at zero",
			constraints: append(stored(1, entities.ConstraintConfirmed, "c"), stored(7, entities.ConstraintDisputed, "d")...),
			expected:    entities.TrustDetails{TotalScore: 0, ConfirmedRatioScore: 8, DisputedPenalty: 105, Label: entities.TrustLow},
			grade:       entities.RiskGradeC,
		},
		{
			name:        "stale pending request still adds its key",
			constraints: []entities.Constraint{testConstraint("p1", "height", "4.0", entities.ConstraintConfirmed, daysAgo(90))},
			requests: []entities.EditRequest{
				testRequest("r1", "p1", "dock", "3개", entities.RequestPending, daysAgo(45)),
			},
			expected: entities.TrustDetails{TotalScore: 45, ConfirmedRatioScore: 30, PendingPenalty: 5, Label: entities.TrustLow},
			grade:    entities.RiskGradeC,
		},
		{
			name:        "medium trust",
			reviews:     reviewsWith("p1", 3, 3),
			constraints: []entities.Constraint{testConstraint("p1", "height", "4.0", entities.ConstraintConfirmed, daysAgo(2)), testConstraint("p1", "dock", "2개", entities.ConstraintConfirmed, daysAgo(90))},
			requests: []entities.EditRequest{
				testRequest("r1", "p1", "dock", "3개", entities.RequestPending, daysAgo(1)),
			},
			expected: entities.TrustDetails{TotalScore: 65, ConfirmedRatioScore: 30, RecencyBonus: 20, PendingPenalty: 5, Label: entities.TrustMedium},
			grade:    entities.RiskGradeD,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := ComputeScore(testNow, "p1", tt.reviews, tt.constraints, tt.requests)
			assert.Equal(t, tt.expected, score.TrustDetails)
			assert.Equal(t, tt.grade, score.RiskGrade)
		})
	}
}

func TestComputeScore_IgnoresOtherPlaces(t *testing.T) {
	reviews := append(reviewsWith("p2", 1, 1), reviewsWith("p1", 5)...)
	constraints := []entities.Constraint{testConstraint("p2", "height", "4.0", entities.ConstraintConfirmed, daysAgo(1))}
	requests := []entities.EditRequest{testRequest("r1", "p2", "dock", "3개", entities.RequestPending, daysAgo(1))}

	score := ComputeScore(testNow, "p1", reviews, constraints, requests)

	assert.Equal(t, entities.RiskGradeA, score.RiskGrade)
	assert.Equal(t, 20, score.TrustDetails.TotalScore)
}

func TestComputeScore_Bounds(t *testing.T) {
	snap := entities.DemoSnapshot(testNow)
	for _, p := range snap.Places {
		d := ComputeScore(testNow, p.ID, snap.Reviews, snap.Constraints, snap.Requests).TrustDetails
		assert.GreaterOrEqual(t, d.ConfirmedRatioScore, 0, p.ID)
		assert.LessOrEqual(t, d.ConfirmedRatioScore, 60, p.ID)
		assert.Contains(t, []int{0, 20}, d.RecencyBonus, p.ID)
		assert.GreaterOrEqual(t, d.TotalScore, 0, p.ID)
		assert.LessOrEqual(t, d.TotalScore, 100, p.ID)
	}
}
