package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/creditosur/lending-engine/internal/domain/event"
	"github.com/creditosur/lending-engine/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Loan aggregate root
// ---------------------------------------------------------------------------

// Loan is an immutable aggregate. Mutations return a new copy.
//
// A loan stores its terms and the derived credit summary, but not the
// schedule itself: the schedule is recomputed from the terms on demand,
// which is safe because the calculation is idempotent.
type Loan struct {
	id                 string
	clientID           string
	terms              LoanTerms
	summary            CreditSummary
	status             valueobject.LoanStatus
	outstandingBalance decimal.Decimal
	nextPaymentDue     time.Time
	createdAt          time.Time
	updatedAt          time.Time
	domainEvents       []event.DomainEvent
}

// NewLoan creates a loan from agreed terms and freezes the credit summary.
// The loan starts in ACTIVE status. Terms that the preview contract would
// degrade to an empty result (financed principal or term not positive) are a
// hard error here: a loan cannot be opened on incomplete terms.
func NewLoan(clientID string, terms LoanTerms, now time.Time) (Loan, error) {
	if clientID == "" {
		return Loan{}, errors.New("client ID is required")
	}
	if terms.TermMonths <= 0 {
		return Loan{}, errors.New("term months must be positive")
	}
	if terms.FinancedPrincipal().LessThanOrEqual(decimal.Zero) {
		return Loan{}, errors.New("financed principal must be positive")
	}

	schedule, summary, err := ComputeSchedule(terms)
	if err != nil {
		return Loan{}, err
	}
	if len(schedule) == 0 {
		return Loan{}, errors.New("terms produce an empty schedule")
	}

	id := uuid.New().String()
	firstDue := schedule[0].DueDate

	loan := Loan{
		id:                 id,
		clientID:           clientID,
		terms:              terms,
		summary:            summary,
		status:             valueobject.LoanStatusActive,
		outstandingBalance: summary.FinancedPrincipal,
		nextPaymentDue:     firstDue,
		createdAt:          now,
		updatedAt:          now,
	}

	loan.domainEvents = append(loan.domainEvents, event.NewLoanCreated(
		id, clientID,
		summary.FinancedPrincipal, summary.FixedInstallmentAmount, summary.TotalToPay,
		terms.Frequency.String(), terms.TermMonths, summary.Installments,
		firstDue,
	))

	return loan, nil
}

// ReconstructLoan rebuilds a Loan aggregate from persistence.
func ReconstructLoan(
	id, clientID string,
	terms LoanTerms,
	summary CreditSummary,
	status valueobject.LoanStatus,
	outstandingBalance decimal.Decimal,
	nextPaymentDue time.Time,
	createdAt, updatedAt time.Time,
) Loan {
	return Loan{
		id:                 id,
		clientID:           clientID,
		terms:              terms,
		summary:            summary,
		status:             status,
		outstandingBalance: outstandingBalance,
		nextPaymentDue:     nextPaymentDue,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// RegisterPayment reduces the outstanding balance and emits PaymentRegistered.
// This is bookkeeping only; no funds move through this system.
func (l Loan) RegisterPayment(amount decimal.Decimal, now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusActive) && !l.status.Equal(valueobject.LoanStatusDelinquent) {
		return l, errors.New("payments can only be registered on active or delinquent loans")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return l, errors.New("payment amount must be positive")
	}
	if amount.GreaterThan(l.outstandingBalance) {
		return l, errors.New("payment exceeds outstanding balance")
	}

	next := l
	next.outstandingBalance = l.outstandingBalance.Sub(amount)
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewPaymentRegistered(
		l.id, l.clientID, amount, next.outstandingBalance,
	))

	if next.outstandingBalance.Equal(decimal.Zero) {
		next.status = valueobject.LoanStatusPaidOff
		next.domainEvents = append(next.domainEvents, event.NewLoanPaidOff(l.id, l.clientID))
	}

	return next, nil
}

// MarkDelinquent transitions ACTIVE -> DELINQUENT.
func (l Loan) MarkDelinquent(now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusActive) {
		return l, valueobject.ErrInvalidStatusTransition
	}
	next := l
	next.status = valueobject.LoanStatusDelinquent
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanDelinquent(l.id, l.clientID, l.outstandingBalance))
	return next, nil
}

// MarkDefault transitions DELINQUENT -> DEFAULT.
func (l Loan) MarkDefault(now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusDelinquent) {
		return l, valueobject.ErrInvalidStatusTransition
	}
	next := l
	next.status = valueobject.LoanStatusDefault
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanDefaulted(l.id, l.clientID, l.outstandingBalance))
	return next, nil
}

// WriteOff transitions DEFAULT -> WRITTEN_OFF.
func (l Loan) WriteOff(now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusDefault) {
		return l, valueobject.ErrInvalidStatusTransition
	}
	next := l
	next.status = valueobject.LoanStatusWrittenOff
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l Loan) ID() string                          { return l.id }
func (l Loan) ClientID() string                    { return l.clientID }
func (l Loan) Terms() LoanTerms                    { return l.terms }
func (l Loan) Summary() CreditSummary              { return l.summary }
func (l Loan) Status() valueobject.LoanStatus      { return l.status }
func (l Loan) OutstandingBalance() decimal.Decimal { return l.outstandingBalance }
func (l Loan) NextPaymentDue() time.Time           { return l.nextPaymentDue }
func (l Loan) CreatedAt() time.Time                { return l.createdAt }
func (l Loan) UpdatedAt() time.Time                { return l.updatedAt }
func (l Loan) DomainEvents() []event.DomainEvent   { return l.domainEvents }

// Schedule re-derives the installment schedule from the stored terms.
func (l Loan) Schedule() ([]ScheduleEntry, error) {
	schedule, _, err := ComputeSchedule(l.terms)
	return schedule, err
}

// ClearEvents returns a copy with an empty event list.
func (l Loan) ClearEvents() Loan {
	next := l
	next.domainEvents = nil
	return next
}
