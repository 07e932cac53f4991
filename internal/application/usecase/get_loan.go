package usecase

import (
	"context"
	"fmt"

	"github.com/creditosur/lending-engine/internal/application/dto"
	"github.com/creditosur/lending-engine/internal/domain/port"
)

// GetLoanUseCase retrieves a loan and re-derives its schedule.
type GetLoanUseCase struct {
	loans port.LoanRepository
}

// NewGetLoanUseCase wires dependencies.
func NewGetLoanUseCase(loans port.LoanRepository) *GetLoanUseCase {
	return &GetLoanUseCase{loans: loans}
}

// Execute fetches the loan by ID.
func (uc *GetLoanUseCase) Execute(ctx context.Context, req dto.GetLoanRequest) (dto.LoanResponse, error) {
	loan, err := uc.loans.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}

	schedule, err := loan.Schedule()
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("derive schedule: %w", err)
	}

	return loanToResponse(loan, schedule), nil
}
