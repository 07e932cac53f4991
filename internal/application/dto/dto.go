package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// LoanTermsRequest carries raw loan terms as collected by a form. The caller
// has already parsed currency-formatted strings into numbers; frequency
// arrives as its wire name (DAILY, WEEKLY, BIWEEKLY, MONTHLY).
type LoanTermsRequest struct {
	PrincipalRequested decimal.Decimal `json:"principal_requested"`
	UpfrontPayment     decimal.Decimal `json:"upfront_payment"`
	CommissionRate     decimal.Decimal `json:"commission_rate"`
	AdministrativeFee  decimal.Decimal `json:"administrative_fee"`
	NominalMonthlyRate decimal.Decimal `json:"nominal_monthly_rate"`
	TermMonths         int             `json:"term_months"`
	PaymentFrequency   string          `json:"payment_frequency"`
	StartDate          time.Time       `json:"start_date"`
}

// RegisterClientRequest carries the data needed to register a client.
type RegisterClientRequest struct {
	Name          string          `json:"name"`
	Document      string          `json:"document"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	TenureMonths  int             `json:"tenure_months"`
}

// ScoreClientRequest asks for a client's risk profile to be recomputed from
// fresh income and tenure figures.
type ScoreClientRequest struct {
	ClientID      string          `json:"client_id"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	TenureMonths  int             `json:"tenure_months"`
}

// CreateLoanRequest opens a loan for a client on the given terms.
type CreateLoanRequest struct {
	ClientID string           `json:"client_id"`
	Terms    LoanTermsRequest `json:"terms"`
}

// RegisterPaymentRequest records a collected payment against a loan.
type RegisterPaymentRequest struct {
	LoanID string          `json:"loan_id"`
	Amount decimal.Decimal `json:"amount"`
}

// GetLoanRequest identifies a loan to retrieve.
type GetLoanRequest struct {
	LoanID string `json:"loan_id"`
}

// GetClientRequest identifies a client to retrieve.
type GetClientRequest struct {
	ClientID string `json:"client_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// ScheduleEntryResponse represents a single installment.
type ScheduleEntryResponse struct {
	Number           int             `json:"number"`
	DueDate          time.Time       `json:"due_date"`
	InterestPortion  decimal.Decimal `json:"interest_portion"`
	CapitalPortion   decimal.Decimal `json:"capital_portion"`
	InstallmentTotal decimal.Decimal `json:"installment_total"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// CreditSummaryResponse represents the aggregate cost-of-credit metrics.
// PeriodEquivalentRate is an approximation, not a standardized TAE, and the
// UI must label it accordingly.
type CreditSummaryResponse struct {
	FinancedPrincipal      decimal.Decimal `json:"financed_principal"`
	CapitalizedCommission  decimal.Decimal `json:"capitalized_commission"`
	FixedInstallmentAmount decimal.Decimal `json:"fixed_installment_amount"`
	TotalInterest          decimal.Decimal `json:"total_interest"`
	TotalToPay             decimal.Decimal `json:"total_to_pay"`
	CostOfCredit           decimal.Decimal `json:"cost_of_credit"`
	EffectiveAnnualRate    decimal.Decimal `json:"effective_annual_rate"`
	PeriodEquivalentRate   decimal.Decimal `json:"period_equivalent_rate"`
	Installments           int             `json:"installments"`
}

// SchedulePreviewResponse is a live preview of a schedule. Incomplete terms
// yield an empty schedule and a zeroed summary rather than an error.
type SchedulePreviewResponse struct {
	Schedule []ScheduleEntryResponse `json:"schedule"`
	Summary  CreditSummaryResponse   `json:"summary"`
}

// ClientResponse is the external representation of a client.
type ClientResponse struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Document             string          `json:"document"`
	MonthlyIncome        decimal.Decimal `json:"monthly_income"`
	TenureMonths         int             `json:"tenure_months"`
	Score                int             `json:"score"`
	Tier                 string          `json:"tier"`
	CreditLimit          decimal.Decimal `json:"credit_limit"`
	OutstandingPrincipal decimal.Decimal `json:"outstanding_principal"`
	AvailableLimit       decimal.Decimal `json:"available_limit"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// LoanResponse is the external representation of a loan, including its
// re-derived schedule.
type LoanResponse struct {
	ID                 string                  `json:"id"`
	ClientID           string                  `json:"client_id"`
	Terms              LoanTermsRequest        `json:"terms"`
	Summary            CreditSummaryResponse   `json:"summary"`
	Schedule           []ScheduleEntryResponse `json:"schedule,omitempty"`
	Status             string                  `json:"status"`
	OutstandingBalance decimal.Decimal         `json:"outstanding_balance"`
	NextPaymentDue     time.Time               `json:"next_payment_due"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
}

// PaymentResponse is the external representation of a registered payment.
type PaymentResponse struct {
	LoanID             string          `json:"loan_id"`
	AmountPaid         decimal.Decimal `json:"amount_paid"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	LoanStatus         string          `json:"loan_status"`
}
