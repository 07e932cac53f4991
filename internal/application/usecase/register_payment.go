package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/creditosur/lending-engine/internal/application/dto"
	"github.com/creditosur/lending-engine/internal/domain/port"
	"github.com/creditosur/lending-engine/internal/domain/valueobject"
)

// RegisterPaymentUseCase records a collected payment against a loan. This is
// bookkeeping for the collections workflow, not payment processing: no funds
// move through this system.
type RegisterPaymentUseCase struct {
	loans     port.LoanRepository
	clients   port.ClientRepository
	publisher port.EventPublisher
}

// NewRegisterPaymentUseCase wires dependencies.
func NewRegisterPaymentUseCase(
	loans port.LoanRepository,
	clients port.ClientRepository,
	publisher port.EventPublisher,
) *RegisterPaymentUseCase {
	return &RegisterPaymentUseCase{loans: loans, clients: clients, publisher: publisher}
}

// Execute applies the payment. When the loan is fully paid off the client's
// exposure is released so their available limit recovers.
func (uc *RegisterPaymentUseCase) Execute(
	ctx context.Context,
	req dto.RegisterPaymentRequest,
) (dto.PaymentResponse, error) {
	now := time.Now().UTC()

	loan, err := uc.loans.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("find loan: %w", err)
	}

	loan, err = loan.RegisterPayment(req.Amount, now)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("register payment: %w", err)
	}

	if err := uc.loans.Save(ctx, loan); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("save loan: %w", err)
	}

	if loan.Status().Equal(valueobject.LoanStatusPaidOff) {
		client, err := uc.clients.FindByID(ctx, loan.ClientID())
		if err != nil {
			return dto.PaymentResponse{}, fmt.Errorf("find client: %w", err)
		}
		client, err = client.DecreaseExposure(loan.Terms().PrincipalRequested, now)
		if err != nil {
			return dto.PaymentResponse{}, fmt.Errorf("decrease exposure: %w", err)
		}
		if err := uc.clients.Save(ctx, client); err != nil {
			return dto.PaymentResponse{}, fmt.Errorf("save client: %w", err)
		}
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.PaymentResponse{
		LoanID:             loan.ID(),
		AmountPaid:         req.Amount,
		OutstandingBalance: loan.OutstandingBalance(),
		LoanStatus:         loan.Status().String(),
	}, nil
}
