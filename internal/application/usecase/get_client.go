package usecase

import (
	"context"
	"fmt"

	"github.com/creditosur/lending-engine/internal/application/dto"
	"github.com/creditosur/lending-engine/internal/domain/port"
)

// GetClientUseCase retrieves a client and their current risk profile.
type GetClientUseCase struct {
	clients port.ClientRepository
}

// NewGetClientUseCase wires dependencies.
func NewGetClientUseCase(clients port.ClientRepository) *GetClientUseCase {
	return &GetClientUseCase{clients: clients}
}

// Execute fetches the client by ID.
func (uc *GetClientUseCase) Execute(ctx context.Context, req dto.GetClientRequest) (dto.ClientResponse, error) {
	client, err := uc.clients.FindByID(ctx, req.ClientID)
	if err != nil {
		return dto.ClientResponse{}, fmt.Errorf("find client: %w", err)
	}
	return clientToResponse(client), nil
}
