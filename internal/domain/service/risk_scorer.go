package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/creditosur/lending-engine/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// RiskScorer – domain service for rule-based credit risk classification
// ---------------------------------------------------------------------------

// RiskProfile is the outcome of scoring a client. It is recomputed wholesale
// whenever the income or tenure inputs change; it is never mutated in place.
type RiskProfile struct {
	// Score is an integer credit score in [0,100].
	Score int
	// Tier is the deterministic classification of Score.
	Tier valueobject.RiskTier
	// CreditLimit is the maximum loan principal the client may receive,
	// rounded to the nearest 100 currency units.
	CreditLimit decimal.Decimal
}

// Scoring thresholds. Income thresholds are strict ("exceeds"); tenure
// thresholds are inclusive, so twelve full months of employment already earn
// the first tenure bonus.
var (
	highIncomeThreshold = decimal.NewFromInt(1_200_000)
	midIncomeThreshold  = decimal.NewFromInt(600_000)
)

const (
	baseScore        = 50
	maxScore         = 100
	longTenureMonths = 24
	midTenureMonths  = 12
)

// RiskScorer computes credit scores, tiers and limits from a client's monthly
// income and employment tenure. It holds no state; scoring is a pure function.
type RiskScorer struct{}

// NewRiskScorer returns a new scorer instance.
func NewRiskScorer() *RiskScorer {
	return &RiskScorer{}
}

// Score evaluates a client and returns their risk profile.
//
// The model is additive from a base of 50 points:
//
//	+20 income over 1,200,000
//	+10 income over 600,000
//	+20 tenure of 24 months or more
//	+10 tenure of 12 months or more
//
// clamped at 100. Negative income or tenure is an integration defect and is
// rejected rather than clamped.
func (s *RiskScorer) Score(monthlyIncome decimal.Decimal, tenureMonths int) (RiskProfile, error) {
	if monthlyIncome.IsNegative() {
		return RiskProfile{}, fmt.Errorf("score: %w: monthly income must not be negative, got %s",
			valueobject.ErrInvalidInput, monthlyIncome)
	}
	if tenureMonths < 0 {
		return RiskProfile{}, fmt.Errorf("score: %w: tenure months must not be negative, got %d",
			valueobject.ErrInvalidInput, tenureMonths)
	}

	score := baseScore
	if monthlyIncome.GreaterThan(highIncomeThreshold) {
		score += 20
	}
	if monthlyIncome.GreaterThan(midIncomeThreshold) {
		score += 10
	}
	if tenureMonths >= longTenureMonths {
		score += 20
	}
	if tenureMonths >= midTenureMonths {
		score += 10
	}
	if score > maxScore {
		score = maxScore
	}

	return RiskProfile{
		Score:       score,
		Tier:        valueobject.TierForScore(score),
		CreditLimit: creditLimit(score, monthlyIncome),
	}, nil
}

// creditLimit derives the maximum principal from the score and income:
// six months of income, scaled up for strong scores, rounded to the nearest
// 100 currency units.
func creditLimit(score int, monthlyIncome decimal.Decimal) decimal.Decimal {
	base := monthlyIncome.Mul(decimal.NewFromInt(6))

	multiplier := decimal.NewFromInt(1)
	switch {
	case score >= 80:
		multiplier = decimal.NewFromFloat(1.5)
	case score >= 70:
		multiplier = decimal.NewFromFloat(1.2)
	}

	hundred := decimal.NewFromInt(100)
	return base.Mul(multiplier).Div(hundred).Round(0).Mul(hundred)
}
