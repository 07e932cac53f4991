package valueobject_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditosur/lending-engine/internal/domain/valueobject"
)

func TestNewPaymentFrequency_ValidValues(t *testing.T) {
	tests := []struct {
		input    string
		expected valueobject.PaymentFrequency
	}{
		{"DAILY", valueobject.FrequencyDaily},
		{"WEEKLY", valueobject.FrequencyWeekly},
		{"BIWEEKLY", valueobject.FrequencyBiweekly},
		{"MONTHLY", valueobject.FrequencyMonthly},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			freq, err := valueobject.NewPaymentFrequency(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, freq)
			assert.Equal(t, tc.input, freq.String())
			assert.False(t, freq.IsZero())
		})
	}
}

func TestNewPaymentFrequency_InvalidValues(t *testing.T) {
	invalid := []string{"", "QUARTERLY", "daily", "Monthly", "FORTNIGHTLY"}

	for _, input := range invalid {
		t.Run(input, func(t *testing.T) {
			_, err := valueobject.NewPaymentFrequency(input)
			require.Error(t, err, "no unknown value may fall back to a default")
		})
	}
}

func TestPaymentFrequency_PeriodsPerMonth(t *testing.T) {
	assert.InDelta(t, 30, valueobject.FrequencyDaily.PeriodsPerMonth(), 0)
	assert.InDelta(t, 4.33, valueobject.FrequencyWeekly.PeriodsPerMonth(), 0)
	assert.InDelta(t, 2, valueobject.FrequencyBiweekly.PeriodsPerMonth(), 0)
	assert.InDelta(t, 1, valueobject.FrequencyMonthly.PeriodsPerMonth(), 0)
}

func TestPaymentFrequency_Step(t *testing.T) {
	base := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), valueobject.FrequencyDaily.Step(base))
	assert.Equal(t, time.Date(2025, 2, 7, 0, 0, 0, 0, time.UTC), valueobject.FrequencyWeekly.Step(base))
	assert.Equal(t, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), valueobject.FrequencyBiweekly.Step(base))
	// AddDate normalizes Jan 31 + 1 month into March.
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), valueobject.FrequencyMonthly.Step(base))
}

func TestTierForScore(t *testing.T) {
	assert.Equal(t, valueobject.RiskTierLow, valueobject.TierForScore(85))
	assert.Equal(t, valueobject.RiskTierMedium, valueobject.TierForScore(60))
	assert.Equal(t, valueobject.RiskTierHigh, valueobject.TierForScore(30))
}
