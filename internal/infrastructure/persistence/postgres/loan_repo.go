package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/creditosur/lending-engine/internal/domain/model"
	"github.com/creditosur/lending-engine/internal/domain/port"
	"github.com/creditosur/lending-engine/internal/domain/valueobject"
)

// LoanRepo implements port.LoanRepository. A loan row stores the agreed terms
// and the frozen credit summary; the installment schedule is not persisted,
// it is re-derived from the terms when needed.
type LoanRepo struct {
	pool *pgxpool.Pool
}

// NewLoanRepo creates a new PostgreSQL-backed loan repository.
func NewLoanRepo(pool *pgxpool.Pool) *LoanRepo {
	return &LoanRepo{pool: pool}
}

// Save upserts a loan.
func (r *LoanRepo) Save(ctx context.Context, loan model.Loan) error {
	terms := loan.Terms()
	summary := loan.Summary()

	query := `
		INSERT INTO loans (
			id, client_id,
			principal_requested, upfront_payment, commission_rate,
			administrative_fee, nominal_monthly_rate, term_months,
			payment_frequency, start_date,
			financed_principal, fixed_installment, total_interest,
			total_to_pay, cost_of_credit, effective_annual_rate,
			period_equivalent_rate, installments,
			status, outstanding_balance, next_payment_due,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
		ON CONFLICT (id) DO UPDATE SET
			status              = EXCLUDED.status,
			outstanding_balance = EXCLUDED.outstanding_balance,
			next_payment_due    = EXCLUDED.next_payment_due,
			updated_at          = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		loan.ID(), loan.ClientID(),
		terms.PrincipalRequested, terms.UpfrontPayment, terms.CommissionRate,
		terms.AdministrativeFee, terms.NominalMonthlyRate, terms.TermMonths,
		terms.Frequency.String(), terms.StartDate,
		summary.FinancedPrincipal, summary.FixedInstallmentAmount, summary.TotalInterest,
		summary.TotalToPay, summary.CostOfCredit, summary.EffectiveAnnualRate,
		summary.PeriodEquivalentRate, summary.Installments,
		loan.Status().String(), loan.OutstandingBalance(), loan.NextPaymentDue(),
		loan.CreatedAt(), loan.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save loan: %w", err)
	}
	return nil
}

// FindByID retrieves a loan by ID.
func (r *LoanRepo) FindByID(ctx context.Context, id string) (model.Loan, error) {
	query := selectLoan + ` WHERE id = $1`
	loan, err := scanLoanRow(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Loan{}, port.ErrLoanNotFound
	}
	return loan, err
}

// FindByClientID retrieves all loans for a client, newest first.
func (r *LoanRepo) FindByClientID(ctx context.Context, clientID string) ([]model.Loan, error) {
	query := selectLoan + ` WHERE client_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var loans []model.Loan
	for rows.Next() {
		loan, err := scanLoanRow(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, rows.Err()
}

const selectLoan = `
	SELECT id, client_id,
	       principal_requested, upfront_payment, commission_rate,
	       administrative_fee, nominal_monthly_rate, term_months,
	       payment_frequency, start_date,
	       financed_principal, fixed_installment, total_interest,
	       total_to_pay, cost_of_credit, effective_annual_rate,
	       period_equivalent_rate, installments,
	       status, outstanding_balance, next_payment_due,
	       created_at, updated_at
	FROM loans`

func scanLoanRow(s scannable) (model.Loan, error) {
	var (
		id, clientID                          string
		principalRequested, upfrontPayment    decimal.Decimal
		commissionRate, administrativeFee     decimal.Decimal
		nominalMonthlyRate                    decimal.Decimal
		termMonths                            int
		frequencyStr                          string
		startDate                             time.Time
		financedPrincipal, fixedInstallment   decimal.Decimal
		totalInterest, totalToPay             decimal.Decimal
		costOfCredit, effectiveAnnualRate     decimal.Decimal
		periodEquivalentRate                  decimal.Decimal
		installments                          int
		statusStr                             string
		outstandingBalance                    decimal.Decimal
		nextPaymentDue, createdAt, updatedAt  time.Time
	)

	err := s.Scan(
		&id, &clientID,
		&principalRequested, &upfrontPayment, &commissionRate,
		&administrativeFee, &nominalMonthlyRate, &termMonths,
		&frequencyStr, &startDate,
		&financedPrincipal, &fixedInstallment, &totalInterest,
		&totalToPay, &costOfCredit, &effectiveAnnualRate,
		&periodEquivalentRate, &installments,
		&statusStr, &outstandingBalance, &nextPaymentDue,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return model.Loan{}, fmt.Errorf("scan loan: %w", err)
	}

	frequency, err := valueobject.NewPaymentFrequency(frequencyStr)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parse payment frequency: %w", err)
	}
	status, err := valueobject.NewLoanStatus(statusStr)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parse loan status: %w", err)
	}

	terms := model.LoanTerms{
		PrincipalRequested: principalRequested,
		UpfrontPayment:     upfrontPayment,
		CommissionRate:     commissionRate,
		AdministrativeFee:  administrativeFee,
		NominalMonthlyRate: nominalMonthlyRate,
		TermMonths:         termMonths,
		Frequency:          frequency,
		StartDate:          startDate,
	}
	summary := model.CreditSummary{
		FinancedPrincipal:      financedPrincipal,
		CapitalizedCommission:  terms.CapitalizedCommission(),
		FixedInstallmentAmount: fixedInstallment,
		TotalInterest:          totalInterest,
		TotalToPay:             totalToPay,
		CostOfCredit:           costOfCredit,
		EffectiveAnnualRate:    effectiveAnnualRate,
		PeriodEquivalentRate:   periodEquivalentRate,
		Installments:           installments,
	}

	return model.ReconstructLoan(
		id, clientID, terms, summary, status,
		outstandingBalance, nextPaymentDue,
		createdAt, updatedAt,
	), nil
}
