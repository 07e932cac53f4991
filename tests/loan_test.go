package tests

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditosur/lending-engine/internal/domain/event"
	"github.com/creditosur/lending-engine/internal/domain/model"
	"github.com/creditosur/lending-engine/internal/domain/valueobject"
)

func newActiveLoan(t *testing.T) model.Loan {
	t.Helper()
	loan, err := model.NewLoan("client-001", baseTerms(), time.Now().UTC())
	require.NoError(t, err)
	return loan
}

func TestNewLoan(t *testing.T) {
	loan := newActiveLoan(t)

	assert.NotEmpty(t, loan.ID())
	assert.Equal(t, "client-001", loan.ClientID())
	assert.True(t, valueobject.LoanStatusActive.Equal(loan.Status()))
	assert.True(t, decimal.NewFromInt(1_010_000).Equal(loan.OutstandingBalance()))
	assert.Equal(t, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), loan.NextPaymentDue())

	require.Len(t, loan.DomainEvents(), 1)
	created, ok := loan.DomainEvents()[0].(event.LoanCreated)
	require.True(t, ok)
	assert.Equal(t, loan.ID(), created.AggregateID())
}

func TestNewLoan_RejectsIncompleteTerms(t *testing.T) {
	now := time.Now().UTC()

	t.Run("missing client", func(t *testing.T) {
		_, err := model.NewLoan("", baseTerms(), now)
		require.Error(t, err)
	})

	t.Run("zero term", func(t *testing.T) {
		terms := baseTerms()
		terms.TermMonths = 0
		_, err := model.NewLoan("client-001", terms, now)
		require.Error(t, err)
	})

	t.Run("zero principal", func(t *testing.T) {
		terms := baseTerms()
		terms.PrincipalRequested = decimal.Zero
		terms.CommissionRate = decimal.Zero
		_, err := model.NewLoan("client-001", terms, now)
		require.Error(t, err)
	})
}

func TestLoan_ScheduleRederivedFromTerms(t *testing.T) {
	loan := newActiveLoan(t)

	schedule, err := loan.Schedule()
	require.NoError(t, err)
	require.Len(t, schedule, 2)

	// Re-derivation matches the frozen summary exactly.
	totalCapital := decimal.Zero
	for _, entry := range schedule {
		totalCapital = totalCapital.Add(entry.CapitalPortion)
	}
	assert.True(t, totalCapital.Equal(loan.Summary().FinancedPrincipal))
	assert.Equal(t, loan.NextPaymentDue(), schedule[0].DueDate)
}

func TestLoan_RegisterPayment(t *testing.T) {
	now := time.Now().UTC()

	t.Run("partial payment", func(t *testing.T) {
		loan := newActiveLoan(t)

		paid, err := loan.RegisterPayment(decimal.NewFromInt(400_000), now)
		require.NoError(t, err)

		assert.True(t, decimal.NewFromInt(610_000).Equal(paid.OutstandingBalance()))
		assert.True(t, valueobject.LoanStatusActive.Equal(paid.Status()))
		// The original copy is untouched.
		assert.True(t, decimal.NewFromInt(1_010_000).Equal(loan.OutstandingBalance()))
	})

	t.Run("full payoff", func(t *testing.T) {
		loan := newActiveLoan(t)

		paid, err := loan.RegisterPayment(decimal.NewFromInt(1_010_000), now)
		require.NoError(t, err)

		assert.True(t, paid.OutstandingBalance().IsZero())
		assert.True(t, valueobject.LoanStatusPaidOff.Equal(paid.Status()))

		var sawPaidOff bool
		for _, evt := range paid.DomainEvents() {
			if _, ok := evt.(event.LoanPaidOff); ok {
				sawPaidOff = true
			}
		}
		assert.True(t, sawPaidOff, "expected a paid-off event")
	})

	t.Run("overpayment rejected", func(t *testing.T) {
		loan := newActiveLoan(t)

		_, err := loan.RegisterPayment(decimal.NewFromInt(2_000_000), now)
		require.Error(t, err)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		loan := newActiveLoan(t)

		_, err := loan.RegisterPayment(decimal.Zero, now)
		require.Error(t, err)
	})

	t.Run("rejected on paid-off loan", func(t *testing.T) {
		loan := newActiveLoan(t)
		paid, err := loan.RegisterPayment(decimal.NewFromInt(1_010_000), now)
		require.NoError(t, err)

		_, err = paid.RegisterPayment(decimal.NewFromInt(1), now)
		require.Error(t, err)
	})
}

func TestLoan_DelinquencyLifecycle(t *testing.T) {
	now := time.Now().UTC()
	loan := newActiveLoan(t)

	delinquent, err := loan.MarkDelinquent(now)
	require.NoError(t, err)
	assert.True(t, valueobject.LoanStatusDelinquent.Equal(delinquent.Status()))

	// Payments are still accepted while delinquent.
	paid, err := delinquent.RegisterPayment(decimal.NewFromInt(100_000), now)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(910_000).Equal(paid.OutstandingBalance()))

	defaulted, err := delinquent.MarkDefault(now)
	require.NoError(t, err)
	assert.True(t, valueobject.LoanStatusDefault.Equal(defaulted.Status()))

	written, err := defaulted.WriteOff(now)
	require.NoError(t, err)
	assert.True(t, valueobject.LoanStatusWrittenOff.Equal(written.Status()))
}

func TestLoan_InvalidTransitions(t *testing.T) {
	now := time.Now().UTC()
	loan := newActiveLoan(t)

	// ACTIVE cannot jump straight to DEFAULT or WRITTEN_OFF.
	_, err := loan.MarkDefault(now)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)

	_, err = loan.WriteOff(now)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)

	delinquent, err := loan.MarkDelinquent(now)
	require.NoError(t, err)

	_, err = delinquent.MarkDelinquent(now)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
}
