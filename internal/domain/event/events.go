package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DomainEvent is the interface all domain events implement.
type DomainEvent interface {
	EventID() string
	EventType() string
	AggregateID() string
	AggregateType() string
	OccurredAt() time.Time
}

// BaseEvent provides the common implementation of DomainEvent.
type BaseEvent struct {
	ID            string    `json:"event_id"`
	Type          string    `json:"event_type"`
	Aggregate     string    `json:"aggregate_id"`
	AggregateKind string    `json:"aggregate_type"`
	Occurred      time.Time `json:"occurred_at"`
}

// NewBaseEvent creates a BaseEvent with a generated UUID and the current time.
func NewBaseEvent(eventType, aggregateID, aggregateType string) BaseEvent {
	return BaseEvent{
		ID:            uuid.New().String(),
		Type:          eventType,
		Aggregate:     aggregateID,
		AggregateKind: aggregateType,
		Occurred:      time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() string       { return e.ID }
func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) AggregateID() string   { return e.Aggregate }
func (e BaseEvent) AggregateType() string { return e.AggregateKind }
func (e BaseEvent) OccurredAt() time.Time { return e.Occurred }

// ---------------------------------------------------------------------------
// Client events
// ---------------------------------------------------------------------------

// ClientScored is raised when a client's risk profile is recomputed.
type ClientScored struct {
	BaseEvent
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	CreditLimit   decimal.Decimal `json:"credit_limit"`
	Tier          string          `json:"tier"`
	TenureMonths  int             `json:"tenure_months"`
	Score         int             `json:"score"`
}

func NewClientScored(clientID string, income decimal.Decimal, tenureMonths, score int, tier string, limit decimal.Decimal) ClientScored {
	return ClientScored{
		BaseEvent:     NewBaseEvent("lending.client.scored", clientID, "Client"),
		MonthlyIncome: income,
		TenureMonths:  tenureMonths,
		Score:         score,
		Tier:          tier,
		CreditLimit:   limit,
	}
}

// ---------------------------------------------------------------------------
// Loan events
// ---------------------------------------------------------------------------

// LoanCreated is raised when a loan and its schedule are registered.
type LoanCreated struct {
	BaseEvent
	ClientID           string          `json:"client_id"`
	FinancedPrincipal  decimal.Decimal `json:"financed_principal"`
	FixedInstallment   decimal.Decimal `json:"fixed_installment"`
	TotalToPay         decimal.Decimal `json:"total_to_pay"`
	PaymentFrequency   string          `json:"payment_frequency"`
	FirstInstallmentAt time.Time       `json:"first_installment_at"`
	TermMonths         int             `json:"term_months"`
	Installments       int             `json:"installments"`
}

func NewLoanCreated(
	loanID, clientID string,
	financed, fixedInstallment, totalToPay decimal.Decimal,
	frequency string, termMonths, installments int,
	firstInstallmentAt time.Time,
) LoanCreated {
	return LoanCreated{
		BaseEvent:          NewBaseEvent("lending.loan.created", loanID, "Loan"),
		ClientID:           clientID,
		FinancedPrincipal:  financed,
		FixedInstallment:   fixedInstallment,
		TotalToPay:         totalToPay,
		PaymentFrequency:   frequency,
		TermMonths:         termMonths,
		Installments:       installments,
		FirstInstallmentAt: firstInstallmentAt,
	}
}

// PaymentRegistered is raised when a payment is registered against a loan.
type PaymentRegistered struct {
	BaseEvent
	ClientID           string          `json:"client_id"`
	Amount             decimal.Decimal `json:"amount"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

func NewPaymentRegistered(loanID, clientID string, amount, outstanding decimal.Decimal) PaymentRegistered {
	return PaymentRegistered{
		BaseEvent:          NewBaseEvent("lending.loan.payment_registered", loanID, "Loan"),
		ClientID:           clientID,
		Amount:             amount,
		OutstandingBalance: outstanding,
	}
}

// LoanPaidOff is raised when a loan's balance reaches zero.
type LoanPaidOff struct {
	BaseEvent
	ClientID string `json:"client_id"`
}

func NewLoanPaidOff(loanID, clientID string) LoanPaidOff {
	return LoanPaidOff{
		BaseEvent: NewBaseEvent("lending.loan.paid_off", loanID, "Loan"),
		ClientID:  clientID,
	}
}

// LoanDelinquent is raised when a loan is marked delinquent.
type LoanDelinquent struct {
	BaseEvent
	ClientID           string          `json:"client_id"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

func NewLoanDelinquent(loanID, clientID string, outstanding decimal.Decimal) LoanDelinquent {
	return LoanDelinquent{
		BaseEvent:          NewBaseEvent("lending.loan.delinquent", loanID, "Loan"),
		ClientID:           clientID,
		OutstandingBalance: outstanding,
	}
}

// LoanDefaulted is raised when a delinquent loan is moved to default.
type LoanDefaulted struct {
	BaseEvent
	ClientID           string          `json:"client_id"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

func NewLoanDefaulted(loanID, clientID string, outstanding decimal.Decimal) LoanDefaulted {
	return LoanDefaulted{
		BaseEvent:          NewBaseEvent("lending.loan.defaulted", loanID, "Loan"),
		ClientID:           clientID,
		OutstandingBalance: outstanding,
	}
}
