package usecase

import (
	"fmt"

	"github.com/creditosur/lending-engine/internal/application/dto"
	"github.com/creditosur/lending-engine/internal/domain/model"
	"github.com/creditosur/lending-engine/internal/domain/valueobject"
)

func termsFromRequest(req dto.LoanTermsRequest) (model.LoanTerms, error) {
	frequency, err := valueobject.NewPaymentFrequency(req.PaymentFrequency)
	if err != nil {
		return model.LoanTerms{}, fmt.Errorf("%w: %v", valueobject.ErrInvalidInput, err)
	}

	return model.LoanTerms{
		PrincipalRequested: req.PrincipalRequested,
		UpfrontPayment:     req.UpfrontPayment,
		CommissionRate:     req.CommissionRate,
		AdministrativeFee:  req.AdministrativeFee,
		NominalMonthlyRate: req.NominalMonthlyRate,
		TermMonths:         req.TermMonths,
		Frequency:          frequency,
		StartDate:          req.StartDate,
	}, nil
}

func termsToResponse(terms model.LoanTerms) dto.LoanTermsRequest {
	return dto.LoanTermsRequest{
		PrincipalRequested: terms.PrincipalRequested,
		UpfrontPayment:     terms.UpfrontPayment,
		CommissionRate:     terms.CommissionRate,
		AdministrativeFee:  terms.AdministrativeFee,
		NominalMonthlyRate: terms.NominalMonthlyRate,
		TermMonths:         terms.TermMonths,
		PaymentFrequency:   terms.Frequency.String(),
		StartDate:          terms.StartDate,
	}
}

func scheduleToResponse(schedule []model.ScheduleEntry) []dto.ScheduleEntryResponse {
	out := make([]dto.ScheduleEntryResponse, 0, len(schedule))
	for _, entry := range schedule {
		out = append(out, dto.ScheduleEntryResponse{
			Number:           entry.Number,
			DueDate:          entry.DueDate,
			InterestPortion:  entry.InterestPortion,
			CapitalPortion:   entry.CapitalPortion,
			InstallmentTotal: entry.InstallmentTotal,
			RemainingBalance: entry.RemainingBalance,
		})
	}
	return out
}

func summaryToResponse(summary model.CreditSummary) dto.CreditSummaryResponse {
	return dto.CreditSummaryResponse{
		FinancedPrincipal:      summary.FinancedPrincipal,
		CapitalizedCommission:  summary.CapitalizedCommission,
		FixedInstallmentAmount: summary.FixedInstallmentAmount,
		TotalInterest:          summary.TotalInterest,
		TotalToPay:             summary.TotalToPay,
		CostOfCredit:           summary.CostOfCredit,
		EffectiveAnnualRate:    summary.EffectiveAnnualRate,
		PeriodEquivalentRate:   summary.PeriodEquivalentRate,
		Installments:           summary.Installments,
	}
}

func clientToResponse(client model.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:                   client.ID(),
		Name:                 client.Name(),
		Document:             client.Document(),
		MonthlyIncome:        client.MonthlyIncome(),
		TenureMonths:         client.TenureMonths(),
		Score:                client.Score(),
		Tier:                 client.Tier().String(),
		CreditLimit:          client.CreditLimit(),
		OutstandingPrincipal: client.OutstandingPrincipal(),
		AvailableLimit:       client.AvailableLimit(),
		CreatedAt:            client.CreatedAt(),
		UpdatedAt:            client.UpdatedAt(),
	}
}

func loanToResponse(loan model.Loan, schedule []model.ScheduleEntry) dto.LoanResponse {
	return dto.LoanResponse{
		ID:                 loan.ID(),
		ClientID:           loan.ClientID(),
		Terms:              termsToResponse(loan.Terms()),
		Summary:            summaryToResponse(loan.Summary()),
		Schedule:           scheduleToResponse(schedule),
		Status:             loan.Status().String(),
		OutstandingBalance: loan.OutstandingBalance(),
		NextPaymentDue:     loan.NextPaymentDue(),
		CreatedAt:          loan.CreatedAt(),
		UpdatedAt:          loan.UpdatedAt(),
	}
}
