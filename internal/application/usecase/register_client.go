package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/creditosur/lending-engine/internal/application/dto"
	"github.com/creditosur/lending-engine/internal/domain/model"
	"github.com/creditosur/lending-engine/internal/domain/port"
)

// RegisterClientUseCase registers a new client. The client starts with an
// empty risk profile; scoring is a separate, explicit step.
type RegisterClientUseCase struct {
	clients port.ClientRepository
}

// NewRegisterClientUseCase wires dependencies.
func NewRegisterClientUseCase(clients port.ClientRepository) *RegisterClientUseCase {
	return &RegisterClientUseCase{clients: clients}
}

// Execute creates and persists the client.
func (uc *RegisterClientUseCase) Execute(
	ctx context.Context,
	req dto.RegisterClientRequest,
) (dto.ClientResponse, error) {
	now := time.Now().UTC()

	client, err := model.NewClient(req.Name, req.Document, req.MonthlyIncome, req.TenureMonths, now)
	if err != nil {
		return dto.ClientResponse{}, fmt.Errorf("register client: %w", err)
	}

	if err := uc.clients.Save(ctx, client); err != nil {
		return dto.ClientResponse{}, fmt.Errorf("save client: %w", err)
	}

	return clientToResponse(client), nil
}
