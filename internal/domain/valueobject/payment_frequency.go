package valueobject

import (
	"fmt"
	"time"
)

// ---------------------------------------------------------------------------
// PaymentFrequency – immutable value object
// ---------------------------------------------------------------------------

// PaymentFrequency represents how often installments fall due.
type PaymentFrequency struct {
	value string
}

const (
	frequencyDaily    = "DAILY"
	frequencyWeekly   = "WEEKLY"
	frequencyBiweekly = "BIWEEKLY"
	frequencyMonthly  = "MONTHLY"
)

var (
	FrequencyDaily    = PaymentFrequency{value: frequencyDaily}
	FrequencyWeekly   = PaymentFrequency{value: frequencyWeekly}
	FrequencyBiweekly = PaymentFrequency{value: frequencyBiweekly}
	FrequencyMonthly  = PaymentFrequency{value: frequencyMonthly}
)

var validPaymentFrequencies = map[string]PaymentFrequency{
	frequencyDaily:    FrequencyDaily,
	frequencyWeekly:   FrequencyWeekly,
	frequencyBiweekly: FrequencyBiweekly,
	frequencyMonthly:  FrequencyMonthly,
}

// NewPaymentFrequency creates a PaymentFrequency from a raw string.
// An unrecognised value is a caller defect and is reported as an error,
// never silently replaced with a default.
func NewPaymentFrequency(s string) (PaymentFrequency, error) {
	v, ok := validPaymentFrequencies[s]
	if !ok {
		return PaymentFrequency{}, fmt.Errorf("invalid payment frequency: %q", s)
	}
	return v, nil
}

// PeriodsPerMonth returns the approximate number of installment periods in
// one month. These factors govern installment count and rate conversion;
// due-date stepping uses exact calendar increments (see Step).
func (f PaymentFrequency) PeriodsPerMonth() float64 {
	switch f.value {
	case frequencyDaily:
		return 30
	case frequencyWeekly:
		return 4.33
	case frequencyBiweekly:
		return 2
	case frequencyMonthly:
		return 1
	}
	return 0
}

// Step advances a due date by one calendar period.
func (f PaymentFrequency) Step(t time.Time) time.Time {
	switch f.value {
	case frequencyDaily:
		return t.AddDate(0, 0, 1)
	case frequencyWeekly:
		return t.AddDate(0, 0, 7)
	case frequencyBiweekly:
		return t.AddDate(0, 0, 15)
	case frequencyMonthly:
		return t.AddDate(0, 1, 0)
	}
	return t
}

// String returns the string representation of the frequency.
func (f PaymentFrequency) String() string { return f.value }

// IsZero returns true if the frequency has not been initialised.
func (f PaymentFrequency) IsZero() bool { return f.value == "" }

// Equal returns true when both frequencies carry the same value.
func (f PaymentFrequency) Equal(other PaymentFrequency) bool {
	return f.value == other.value
}
