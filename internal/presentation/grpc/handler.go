package grpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/creditosur/lending-engine/internal/application/dto"
	"github.com/creditosur/lending-engine/internal/application/usecase"
	"github.com/creditosur/lending-engine/internal/domain/port"
	"github.com/creditosur/lending-engine/internal/domain/valueobject"
)

// LendingHandler is the gRPC handler for lending operations.
type LendingHandler struct {
	UnimplementedLendingServiceServer

	preview        *usecase.PreviewScheduleUseCase
	registerClient *usecase.RegisterClientUseCase
	scoreClient    *usecase.ScoreClientUseCase
	createLoan     *usecase.CreateLoanUseCase
	getLoan        *usecase.GetLoanUseCase
	getClient      *usecase.GetClientUseCase
	payment        *usecase.RegisterPaymentUseCase
	logger         *slog.Logger
}

// NewLendingHandler creates a new handler with all use-case dependencies.
func NewLendingHandler(
	preview *usecase.PreviewScheduleUseCase,
	registerClient *usecase.RegisterClientUseCase,
	scoreClient *usecase.ScoreClientUseCase,
	createLoan *usecase.CreateLoanUseCase,
	getLoan *usecase.GetLoanUseCase,
	getClient *usecase.GetClientUseCase,
	payment *usecase.RegisterPaymentUseCase,
	logger *slog.Logger,
) *LendingHandler {
	return &LendingHandler{
		preview:        preview,
		registerClient: registerClient,
		scoreClient:    scoreClient,
		createLoan:     createLoan,
		getLoan:        getLoan,
		getClient:      getClient,
		payment:        payment,
		logger:         logger,
	}
}

// PreviewSchedule computes an amortization preview without touching storage.
func (h *LendingHandler) PreviewSchedule(ctx context.Context, req *PreviewScheduleRequest) (*PreviewScheduleResponse, error) {
	preview, err := h.preview.Execute(ctx, req.Terms)
	if err != nil {
		return nil, h.toStatus(ctx, "PreviewSchedule", err)
	}
	return &PreviewScheduleResponse{Preview: preview}, nil
}

// RegisterClient registers a new, not-yet-scored client.
func (h *LendingHandler) RegisterClient(ctx context.Context, req *RegisterClientRequest) (*RegisterClientResponse, error) {
	client, err := h.registerClient.Execute(ctx, req.Client)
	if err != nil {
		return nil, h.toStatus(ctx, "RegisterClient", err)
	}
	return &RegisterClientResponse{Client: client}, nil
}

// ScoreClient recomputes a client's risk profile from fresh figures.
func (h *LendingHandler) ScoreClient(ctx context.Context, req *ScoreClientRequest) (*ScoreClientResponse, error) {
	income, err := decimal.NewFromString(req.MonthlyIncome)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid monthly income: %v", err)
	}

	client, err := h.scoreClient.Execute(ctx, dto.ScoreClientRequest{
		ClientID:      req.ClientID,
		MonthlyIncome: income,
		TenureMonths:  req.TenureMonths,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "ScoreClient", err)
	}
	return &ScoreClientResponse{Client: client}, nil
}

// CreateLoan opens a loan for a client on the given terms.
func (h *LendingHandler) CreateLoan(ctx context.Context, req *CreateLoanRequest) (*CreateLoanResponse, error) {
	loan, err := h.createLoan.Execute(ctx, dto.CreateLoanRequest{
		ClientID: req.ClientID,
		Terms:    req.Terms,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "CreateLoan", err)
	}
	return &CreateLoanResponse{Loan: loan}, nil
}

// GetLoan retrieves a loan by ID, including its re-derived schedule.
func (h *LendingHandler) GetLoan(ctx context.Context, req *GetLoanRequest) (*GetLoanResponse, error) {
	loan, err := h.getLoan.Execute(ctx, dto.GetLoanRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, h.toStatus(ctx, "GetLoan", err)
	}
	return &GetLoanResponse{Loan: loan}, nil
}

// GetClient retrieves a client by ID.
func (h *LendingHandler) GetClient(ctx context.Context, req *GetClientRequest) (*GetClientResponse, error) {
	client, err := h.getClient.Execute(ctx, dto.GetClientRequest{ClientID: req.ClientID})
	if err != nil {
		return nil, h.toStatus(ctx, "GetClient", err)
	}
	return &GetClientResponse{Client: client}, nil
}

// RegisterPayment records a collected payment against a loan.
func (h *LendingHandler) RegisterPayment(ctx context.Context, req *RegisterPaymentRequest) (*RegisterPaymentResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount: %v", err)
	}

	payment, err := h.payment.Execute(ctx, dto.RegisterPaymentRequest{
		LoanID: req.LoanID,
		Amount: amount,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "RegisterPayment", err)
	}
	return &RegisterPaymentResponse{Payment: payment}, nil
}

// toStatus maps domain errors to gRPC status codes.
func (h *LendingHandler) toStatus(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, port.ErrClientNotFound), errors.Is(err, port.ErrLoanNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, valueobject.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, usecase.ErrLimitExceeded),
		errors.Is(err, valueobject.ErrInvalidStatusTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		h.logger.ErrorContext(ctx, "request failed", "method", method, "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}
