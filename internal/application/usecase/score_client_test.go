package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditosur/lending-engine/internal/application/dto"
	"github.com/creditosur/lending-engine/internal/application/usecase"
	"github.com/creditosur/lending-engine/internal/domain/event"
	"github.com/creditosur/lending-engine/internal/domain/model"
	"github.com/creditosur/lending-engine/internal/domain/port"
	"github.com/creditosur/lending-engine/internal/domain/service"
	"github.com/creditosur/lending-engine/internal/domain/valueobject"
)

func TestScoreClient_Execute(t *testing.T) {
	t.Run("scores and persists the client", func(t *testing.T) {
		clientRepo := &mockClientRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Client, error) {
				return scoredClient().ClearEvents(), nil
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewScoreClientUseCase(clientRepo, publisher, service.NewRiskScorer())

		resp, err := uc.Execute(context.Background(), dto.ScoreClientRequest{
			ClientID:      "client-001",
			MonthlyIncome: decimal.NewFromInt(1_300_000),
			TenureMonths:  12,
		})

		require.NoError(t, err)
		assert.Equal(t, 90, resp.Score)
		assert.Equal(t, "LOW", resp.Tier)
		assert.True(t, decimal.NewFromInt(11_700_000).Equal(resp.CreditLimit))

		require.Len(t, clientRepo.savedClients, 1)
		require.NotEmpty(t, publisher.publishedEvents)
		scored, ok := publisher.publishedEvents[0].(event.ClientScored)
		require.True(t, ok)
		assert.Equal(t, 90, scored.Score)
		assert.Equal(t, "LOW", scored.Tier)
	})

	t.Run("downgrade to medium tier", func(t *testing.T) {
		clientRepo := &mockClientRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Client, error) {
				return scoredClient().ClearEvents(), nil
			},
		}
		uc := usecase.NewScoreClientUseCase(clientRepo, &mockEventPublisher{}, service.NewRiskScorer())

		resp, err := uc.Execute(context.Background(), dto.ScoreClientRequest{
			ClientID:      "client-001",
			MonthlyIncome: decimal.NewFromInt(400_000),
			TenureMonths:  6,
		})

		require.NoError(t, err)
		assert.Equal(t, 50, resp.Score)
		assert.Equal(t, "MEDIUM", resp.Tier)
		assert.True(t, decimal.NewFromInt(2_400_000).Equal(resp.CreditLimit))
	})

	t.Run("rejects negative income", func(t *testing.T) {
		clientRepo := &mockClientRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Client, error) {
				return scoredClient().ClearEvents(), nil
			},
		}
		uc := usecase.NewScoreClientUseCase(clientRepo, &mockEventPublisher{}, service.NewRiskScorer())

		_, err := uc.Execute(context.Background(), dto.ScoreClientRequest{
			ClientID:      "client-001",
			MonthlyIncome: decimal.NewFromInt(-1),
			TenureMonths:  12,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, valueobject.ErrInvalidInput)
		assert.Empty(t, clientRepo.savedClients)
	})

	t.Run("fails when client not found", func(t *testing.T) {
		uc := usecase.NewScoreClientUseCase(&mockClientRepository{}, &mockEventPublisher{}, service.NewRiskScorer())

		_, err := uc.Execute(context.Background(), dto.ScoreClientRequest{
			ClientID:      "missing",
			MonthlyIncome: decimal.NewFromInt(1),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, port.ErrClientNotFound)
	})
}
