package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/creditosur/lending-engine/internal/application/dto"
	"github.com/creditosur/lending-engine/internal/domain/model"
	"github.com/creditosur/lending-engine/internal/domain/port"
)

// ErrLimitExceeded is returned when the requested principal does not fit in
// the client's available credit limit. The limit gate lives here, at the
// caller level; the schedule calculation itself never enforces it.
var ErrLimitExceeded = errors.New("requested principal exceeds available credit limit")

// CreateLoanUseCase opens a loan for a client. The schedule is always
// regenerated here from the submitted terms; a schedule computed by a client
// frontend is never trusted.
type CreateLoanUseCase struct {
	clients   port.ClientRepository
	loans     port.LoanRepository
	publisher port.EventPublisher
}

// NewCreateLoanUseCase wires dependencies.
func NewCreateLoanUseCase(
	clients port.ClientRepository,
	loans port.LoanRepository,
	publisher port.EventPublisher,
) *CreateLoanUseCase {
	return &CreateLoanUseCase{clients: clients, loans: loans, publisher: publisher}
}

// Execute validates the limit gate, creates the loan and records the
// client's increased exposure.
func (uc *CreateLoanUseCase) Execute(
	ctx context.Context,
	req dto.CreateLoanRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	client, err := uc.clients.FindByID(ctx, req.ClientID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find client: %w", err)
	}

	terms, err := termsFromRequest(req.Terms)
	if err != nil {
		return dto.LoanResponse{}, err
	}

	if terms.PrincipalRequested.GreaterThan(client.AvailableLimit()) {
		return dto.LoanResponse{}, fmt.Errorf("%w: requested %s, available %s",
			ErrLimitExceeded, terms.PrincipalRequested, client.AvailableLimit())
	}

	loan, err := model.NewLoan(client.ID(), terms, now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("create loan: %w", err)
	}

	client, err = client.IncreaseExposure(terms.PrincipalRequested, now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("increase exposure: %w", err)
	}

	if err := uc.loans.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}
	if err := uc.clients.Save(ctx, client); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save client: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	schedule, err := loan.Schedule()
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("derive schedule: %w", err)
	}

	return loanToResponse(loan, schedule), nil
}
