package tests

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditosur/lending-engine/internal/domain/service"
	"github.com/creditosur/lending-engine/internal/domain/valueobject"
)

func TestRiskScorer_Score(t *testing.T) {
	scorer := service.NewRiskScorer()

	cases := []struct {
		name      string
		income    decimal.Decimal
		tenure    int
		wantScore int
		wantTier  valueobject.RiskTier
		wantLimit decimal.Decimal
	}{
		{
			name:      "base profile",
			income:    decimal.NewFromInt(500_000),
			tenure:    0,
			wantScore: 50,
			wantTier:  valueobject.RiskTierMedium,
			wantLimit: decimal.NewFromInt(3_000_000), // 6x income, multiplier 1.0
		},
		{
			name:      "income threshold is strict",
			income:    decimal.NewFromInt(600_000),
			tenure:    0,
			wantScore: 50,
			wantTier:  valueobject.RiskTierMedium,
			wantLimit: decimal.NewFromInt(3_600_000),
		},
		{
			name:      "mid income bonus",
			income:    decimal.NewFromInt(600_001),
			tenure:    0,
			wantScore: 60,
			wantTier:  valueobject.RiskTierMedium,
			wantLimit: decimal.NewFromInt(3_600_000), // 3,600,006 rounded to nearest 100
		},
		{
			name:      "high income earns both income bonuses",
			income:    decimal.NewFromInt(1_300_000),
			tenure:    0,
			wantScore: 80,
			wantTier:  valueobject.RiskTierLow,
			wantLimit: decimal.NewFromInt(11_700_000), // 6x income, multiplier 1.5
		},
		{
			name:      "tenure thresholds are inclusive",
			income:    decimal.NewFromInt(500_000),
			tenure:    12,
			wantScore: 60,
			wantTier:  valueobject.RiskTierMedium,
			wantLimit: decimal.NewFromInt(3_000_000),
		},
		{
			name:      "long tenure earns both tenure bonuses",
			income:    decimal.NewFromInt(500_000),
			tenure:    24,
			wantScore: 80,
			wantTier:  valueobject.RiskTierLow,
			wantLimit: decimal.NewFromInt(4_500_000), // multiplier 1.5
		},
		{
			name:      "score clamps at 100",
			income:    decimal.NewFromInt(1_250_000),
			tenure:    36,
			wantScore: 100,
			wantTier:  valueobject.RiskTierLow,
			wantLimit: decimal.NewFromInt(11_250_000),
		},
		{
			name:      "scored profile from collections form",
			income:    decimal.NewFromInt(1_300_000),
			tenure:    12,
			wantScore: 90,
			wantTier:  valueobject.RiskTierLow,
			wantLimit: decimal.NewFromInt(11_700_000),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile, err := scorer.Score(tc.income, tc.tenure)
			require.NoError(t, err)

			assert.Equal(t, tc.wantScore, profile.Score)
			assert.True(t, tc.wantTier.Equal(profile.Tier),
				"tier = %s, want %s", profile.Tier, tc.wantTier)
			assert.True(t, tc.wantLimit.Equal(profile.CreditLimit),
				"credit limit = %s, want %s", profile.CreditLimit, tc.wantLimit)
		})
	}
}

func TestRiskScorer_LimitRoundsToNearestHundred(t *testing.T) {
	scorer := service.NewRiskScorer()

	profile, err := scorer.Score(decimal.NewFromInt(123_456), 0)
	require.NoError(t, err)

	// 123,456 * 6 = 740,736 -> 740,700.
	assert.True(t, decimal.NewFromInt(740_700).Equal(profile.CreditLimit),
		"credit limit = %s", profile.CreditLimit)
}

func TestRiskScorer_RejectsNegativeInputs(t *testing.T) {
	scorer := service.NewRiskScorer()

	_, err := scorer.Score(decimal.NewFromInt(-1), 12)
	require.Error(t, err)
	assert.ErrorIs(t, err, valueobject.ErrInvalidInput)

	_, err = scorer.Score(decimal.NewFromInt(500_000), -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, valueobject.ErrInvalidInput)
}

func TestTierForScore_Boundaries(t *testing.T) {
	assert.True(t, valueobject.RiskTierLow.Equal(valueobject.TierForScore(100)))
	assert.True(t, valueobject.RiskTierLow.Equal(valueobject.TierForScore(70)))
	assert.True(t, valueobject.RiskTierMedium.Equal(valueobject.TierForScore(69)))
	assert.True(t, valueobject.RiskTierMedium.Equal(valueobject.TierForScore(50)))
	assert.True(t, valueobject.RiskTierHigh.Equal(valueobject.TierForScore(49)))
	assert.True(t, valueobject.RiskTierHigh.Equal(valueobject.TierForScore(0)))
}
