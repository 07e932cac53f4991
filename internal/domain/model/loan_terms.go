package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/creditosur/lending-engine/internal/domain/valueobject"
)

// LoanTerms is the immutable input to a schedule calculation. A caller builds
// one per calculation request; the engine never mutates it.
type LoanTerms struct {
	// PrincipalRequested is the amount the client asked for.
	PrincipalRequested decimal.Decimal
	// UpfrontPayment is paid before financing begins and reduces the
	// financed principal.
	UpfrontPayment decimal.Decimal
	// CommissionRate is a one-time percentage fee on PrincipalRequested.
	// It is capitalized into the financed principal: it increases what is
	// owed, not what is disbursed.
	CommissionRate decimal.Decimal
	// AdministrativeFee is a flat amount. It is never capitalized and never
	// appears in the installment split; it only raises the cost of credit.
	AdministrativeFee decimal.Decimal
	// NominalMonthlyRate is the contractually quoted monthly interest rate,
	// as a percentage (5 means 5% per month).
	NominalMonthlyRate decimal.Decimal
	// TermMonths is the nominal duration of the loan in months.
	TermMonths int
	// Frequency determines how often installments fall due.
	Frequency valueobject.PaymentFrequency
	// StartDate is the base date from which due dates are stepped.
	StartDate time.Time
}

// NetPrincipal returns the requested amount less the upfront payment.
func (t LoanTerms) NetPrincipal() decimal.Decimal {
	return t.PrincipalRequested.Sub(t.UpfrontPayment)
}

// CapitalizedCommission returns the one-time commission computed on the
// requested principal, rounded to whole currency units.
func (t LoanTerms) CapitalizedCommission() decimal.Decimal {
	return t.PrincipalRequested.Mul(t.CommissionRate).Div(decimal.NewFromInt(100)).Round(0)
}

// FinancedPrincipal returns the interest-bearing debt: net principal plus the
// capitalized commission, in whole currency units.
func (t LoanTerms) FinancedPrincipal() decimal.Decimal {
	return t.NetPrincipal().Add(t.CapitalizedCommission()).Round(0)
}
