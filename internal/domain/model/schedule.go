package model

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/creditosur/lending-engine/internal/domain/valueobject"
)

// ScheduleEntry is an immutable value object representing one installment in
// an amortization schedule. Monetary amounts are recorded in whole currency
// units; this domain has no sub-unit currency.
type ScheduleEntry struct {
	DueDate          time.Time
	InterestPortion  decimal.Decimal
	CapitalPortion   decimal.Decimal
	InstallmentTotal decimal.Decimal
	RemainingBalance decimal.Decimal
	Number           int
}

// CreditSummary aggregates the cost-of-credit metrics for a schedule.
type CreditSummary struct {
	// FinancedPrincipal is requested − upfront + capitalized commission.
	FinancedPrincipal decimal.Decimal
	// CapitalizedCommission is the one-time fee financed into the principal.
	CapitalizedCommission decimal.Decimal
	// FixedInstallmentAmount is the constant periodic payment, before the
	// final-period rounding adjustment.
	FixedInstallmentAmount decimal.Decimal
	// TotalInterest is the sum of every interest portion.
	TotalInterest decimal.Decimal
	// TotalToPay is financed principal plus total interest.
	TotalToPay decimal.Decimal
	// CostOfCredit is total interest plus the administrative fee plus the
	// capitalized commission.
	CostOfCredit decimal.Decimal
	// EffectiveAnnualRate (TEA) is the nominal monthly rate compounded over
	// twelve months, as a percentage with two decimals.
	EffectiveAnnualRate decimal.Decimal
	// PeriodEquivalentRate is the per-period rate compounded over the full
	// installment count, as a percentage with two decimals. It is an
	// informational approximation, not a standardized TAE, and must be
	// labeled as such wherever it is displayed.
	PeriodEquivalentRate decimal.Decimal
	// Installments is the total installment count.
	Installments int
}

// ComputeSchedule produces a French (constant-installment) amortization
// schedule and its cost-of-credit summary from a set of loan terms.
//
// The calculation is pure and idempotent: identical terms always produce an
// identical schedule. Incomplete terms (financed principal or term not yet
// positive) return an empty schedule and a zero summary instead of an error,
// so callers can recompute on every form change while the user is typing.
// An uninitialised payment frequency is a caller defect and returns an error.
func ComputeSchedule(terms LoanTerms) ([]ScheduleEntry, CreditSummary, error) {
	if terms.Frequency.IsZero() {
		return nil, CreditSummary{}, fmt.Errorf("compute schedule: %w: payment frequency not set", valueobject.ErrInvalidInput)
	}

	financed := terms.FinancedPrincipal()
	if terms.TermMonths <= 0 || financed.LessThanOrEqual(decimal.Zero) {
		return nil, CreditSummary{}, nil
	}

	factor := terms.Frequency.PeriodsPerMonth()
	installments := int(math.Ceil(float64(terms.TermMonths) * factor))

	// The period rate derives from the quoted monthly rate and the frequency
	// factor. float64 is used for the power calculations; monetary arithmetic
	// stays in decimal.
	monthlyRate := terms.NominalMonthlyRate.InexactFloat64() / 100.0
	periodRate := monthlyRate / factor

	var installment decimal.Decimal
	if periodRate == 0 {
		// Zero-interest: even split.
		installment = financed.Div(decimal.NewFromInt(int64(installments))).Round(0)
	} else {
		// P * r / (1 - (1+r)^-n)
		raw := financed.InexactFloat64() * periodRate / (1 - math.Pow(1+periodRate, float64(-installments)))
		installment = decimal.NewFromFloat(raw).Round(0)
	}

	schedule := make([]ScheduleEntry, 0, installments)
	balance := financed
	periodRateDec := decimal.NewFromFloat(periodRate)
	totalInterest := decimal.Zero
	dueDate := terms.StartDate

	for i := 1; i <= installments; i++ {
		dueDate = terms.Frequency.Step(dueDate)

		interest := balance.Mul(periodRateDec).Round(0)
		capital := installment.Sub(interest)

		// Final installment: the capital portion is forced to the remaining
		// balance so rounding residue is absorbed and the balance reaches
		// exactly zero.
		if i == installments || capital.GreaterThan(balance) {
			capital = balance
		}

		balance = balance.Sub(capital)
		if balance.LessThan(decimal.Zero) {
			balance = decimal.Zero
		}

		totalInterest = totalInterest.Add(interest)

		schedule = append(schedule, ScheduleEntry{
			Number:           i,
			DueDate:          dueDate,
			InterestPortion:  interest,
			CapitalPortion:   capital,
			InstallmentTotal: capital.Add(interest),
			RemainingBalance: balance,
		})
	}

	commission := terms.CapitalizedCommission()

	summary := CreditSummary{
		FinancedPrincipal:      financed,
		CapitalizedCommission:  commission,
		FixedInstallmentAmount: installment,
		TotalInterest:          totalInterest,
		TotalToPay:             financed.Add(totalInterest),
		CostOfCredit:           totalInterest.Add(terms.AdministrativeFee).Add(commission),
		EffectiveAnnualRate:    compoundedPercent(monthlyRate, 12),
		PeriodEquivalentRate:   compoundedPercent(periodRate, installments),
		Installments:           installments,
	}

	return schedule, summary, nil
}

// compoundedPercent returns ((1+rate)^periods − 1) expressed as a percentage
// with two decimals.
func compoundedPercent(rate float64, periods int) decimal.Decimal {
	return decimal.NewFromFloat((math.Pow(1+rate, float64(periods)) - 1) * 100).Round(2)
}
