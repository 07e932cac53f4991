package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/creditosur/lending-engine/internal/application/dto"
	"github.com/creditosur/lending-engine/internal/domain/port"
	"github.com/creditosur/lending-engine/internal/domain/service"
)

// ScoreClientUseCase recomputes a client's risk profile from fresh income and
// tenure figures and persists the result.
type ScoreClientUseCase struct {
	clients   port.ClientRepository
	publisher port.EventPublisher
	scorer    *service.RiskScorer
}

// NewScoreClientUseCase wires dependencies.
func NewScoreClientUseCase(
	clients port.ClientRepository,
	publisher port.EventPublisher,
	scorer *service.RiskScorer,
) *ScoreClientUseCase {
	return &ScoreClientUseCase{clients: clients, publisher: publisher, scorer: scorer}
}

// Execute scores the client and replaces their stored profile.
func (uc *ScoreClientUseCase) Execute(
	ctx context.Context,
	req dto.ScoreClientRequest,
) (dto.ClientResponse, error) {
	now := time.Now().UTC()

	client, err := uc.clients.FindByID(ctx, req.ClientID)
	if err != nil {
		return dto.ClientResponse{}, fmt.Errorf("find client: %w", err)
	}

	profile, err := uc.scorer.Score(req.MonthlyIncome, req.TenureMonths)
	if err != nil {
		return dto.ClientResponse{}, fmt.Errorf("score client: %w", err)
	}

	client = client.Rescore(
		req.MonthlyIncome, req.TenureMonths,
		profile.Score, profile.Tier, profile.CreditLimit,
		now,
	)

	if err := uc.clients.Save(ctx, client); err != nil {
		return dto.ClientResponse{}, fmt.Errorf("save client: %w", err)
	}

	if err := uc.publisher.Publish(ctx, client.DomainEvents()...); err != nil {
		return dto.ClientResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return clientToResponse(client), nil
}
