package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// RiskTier – immutable value object
// ---------------------------------------------------------------------------

// RiskTier is a three-level classification of a client's creditworthiness.
// The collections UI renders LOW as green, MEDIUM as yellow and HIGH as red.
type RiskTier struct {
	value string
}

const (
	riskTierLow    = "LOW"
	riskTierMedium = "MEDIUM"
	riskTierHigh   = "HIGH"
)

var (
	RiskTierLow    = RiskTier{value: riskTierLow}
	RiskTierMedium = RiskTier{value: riskTierMedium}
	RiskTierHigh   = RiskTier{value: riskTierHigh}
)

var validRiskTiers = map[string]RiskTier{
	riskTierLow:    RiskTierLow,
	riskTierMedium: RiskTierMedium,
	riskTierHigh:   RiskTierHigh,
}

// NewRiskTier creates a RiskTier from a raw string.
func NewRiskTier(s string) (RiskTier, error) {
	v, ok := validRiskTiers[s]
	if !ok {
		return RiskTier{}, fmt.Errorf("invalid risk tier: %q", s)
	}
	return v, nil
}

// TierForScore maps a credit score in [0,100] to a risk tier.
func TierForScore(score int) RiskTier {
	switch {
	case score >= 70:
		return RiskTierLow
	case score >= 50:
		return RiskTierMedium
	default:
		return RiskTierHigh
	}
}

// String returns the string representation of the tier.
func (t RiskTier) String() string { return t.value }

// IsZero returns true if the tier has not been initialised.
func (t RiskTier) IsZero() bool { return t.value == "" }

// Equal returns true when both tiers carry the same value.
func (t RiskTier) Equal(other RiskTier) bool { return t.value == other.value }
