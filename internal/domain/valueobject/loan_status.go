package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// LoanStatus – immutable value object
// ---------------------------------------------------------------------------

// LoanStatus represents the lifecycle stage of an active loan.
type LoanStatus struct {
	value string
}

const (
	loanStatusActive     = "ACTIVE"
	loanStatusDelinquent = "DELINQUENT"
	loanStatusDefault    = "DEFAULT"
	loanStatusPaidOff    = "PAID_OFF"
	loanStatusWrittenOff = "WRITTEN_OFF"
)

var (
	LoanStatusActive     = LoanStatus{value: loanStatusActive}
	LoanStatusDelinquent = LoanStatus{value: loanStatusDelinquent}
	LoanStatusDefault    = LoanStatus{value: loanStatusDefault}
	LoanStatusPaidOff    = LoanStatus{value: loanStatusPaidOff}
	LoanStatusWrittenOff = LoanStatus{value: loanStatusWrittenOff}
)

var validLoanStatuses = map[string]LoanStatus{
	loanStatusActive:     LoanStatusActive,
	loanStatusDelinquent: LoanStatusDelinquent,
	loanStatusDefault:    LoanStatusDefault,
	loanStatusPaidOff:    LoanStatusPaidOff,
	loanStatusWrittenOff: LoanStatusWrittenOff,
}

// NewLoanStatus creates a LoanStatus from a raw string.
func NewLoanStatus(s string) (LoanStatus, error) {
	v, ok := validLoanStatuses[s]
	if !ok {
		return LoanStatus{}, fmt.Errorf("invalid loan status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s LoanStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s LoanStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s LoanStatus) Equal(other LoanStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	// ErrInvalidStatusTransition is returned when a loan state transition
	// is not allowed from the current status.
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrInvalidInput is returned when a caller passes values that indicate
	// an upstream integration defect (negative income, negative tenure,
	// uninitialised payment frequency). These are never coerced.
	ErrInvalidInput = errors.New("invalid input")
)
