package tests

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditosur/lending-engine/internal/domain/event"
	"github.com/creditosur/lending-engine/internal/domain/model"
	"github.com/creditosur/lending-engine/internal/domain/valueobject"
)

func newRegisteredClient(t *testing.T) model.Client {
	t.Helper()
	client, err := model.NewClient(
		"Maria Fernanda Rojas", "CC-1098765432",
		decimal.NewFromInt(1_300_000), 12,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	client := newRegisteredClient(t)

	assert.NotEmpty(t, client.ID())
	assert.Equal(t, "Maria Fernanda Rojas", client.Name())
	assert.Equal(t, "CC-1098765432", client.Document())
	// A fresh client has no risk profile until first scored.
	assert.Equal(t, 0, client.Score())
	assert.True(t, client.Tier().IsZero())
	assert.True(t, client.CreditLimit().IsZero())
	assert.True(t, client.AvailableLimit().IsZero())
}

func TestNewClient_Validation(t *testing.T) {
	now := time.Now().UTC()

	_, err := model.NewClient("", "CC-1", decimal.NewFromInt(1), 1, now)
	require.Error(t, err)

	_, err = model.NewClient("Ana", "", decimal.NewFromInt(1), 1, now)
	require.Error(t, err)

	_, err = model.NewClient("Ana", "CC-1", decimal.NewFromInt(-1), 1, now)
	require.Error(t, err)

	_, err = model.NewClient("Ana", "CC-1", decimal.NewFromInt(1), -1, now)
	require.Error(t, err)
}

func TestClient_Rescore(t *testing.T) {
	client := newRegisteredClient(t)
	now := time.Now().UTC()

	scored := client.Rescore(
		decimal.NewFromInt(1_300_000), 12,
		90, valueobject.RiskTierLow, decimal.NewFromInt(11_700_000),
		now,
	)

	assert.Equal(t, 90, scored.Score())
	assert.True(t, valueobject.RiskTierLow.Equal(scored.Tier()))
	assert.True(t, decimal.NewFromInt(11_700_000).Equal(scored.CreditLimit()))
	// The original copy is untouched.
	assert.Equal(t, 0, client.Score())

	require.Len(t, scored.DomainEvents(), 1)
	evt, ok := scored.DomainEvents()[0].(event.ClientScored)
	require.True(t, ok)
	assert.Equal(t, client.ID(), evt.AggregateID())
	assert.Equal(t, 90, evt.Score)
}

func TestClient_ExposureAndAvailableLimit(t *testing.T) {
	now := time.Now().UTC()
	client := newRegisteredClient(t).Rescore(
		decimal.NewFromInt(1_300_000), 12,
		90, valueobject.RiskTierLow, decimal.NewFromInt(11_700_000),
		now,
	)

	client, err := client.IncreaseExposure(decimal.NewFromInt(4_000_000), now)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(7_700_000).Equal(client.AvailableLimit()))

	client, err = client.DecreaseExposure(decimal.NewFromInt(1_000_000), now)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(8_700_000).Equal(client.AvailableLimit()))

	// Releasing more than the recorded exposure floors at zero.
	client, err = client.DecreaseExposure(decimal.NewFromInt(99_000_000), now)
	require.NoError(t, err)
	assert.True(t, client.OutstandingPrincipal().IsZero())
	assert.True(t, decimal.NewFromInt(11_700_000).Equal(client.AvailableLimit()))
}

func TestClient_AvailableLimitFloorsAtZero(t *testing.T) {
	now := time.Now().UTC()
	client := newRegisteredClient(t).Rescore(
		decimal.NewFromInt(500_000), 0,
		50, valueobject.RiskTierMedium, decimal.NewFromInt(3_000_000),
		now,
	)

	client, err := client.IncreaseExposure(decimal.NewFromInt(3_000_000), now)
	require.NoError(t, err)
	assert.True(t, client.AvailableLimit().IsZero())

	// A downward rescore can leave exposure above the new limit; the
	// available limit never goes negative.
	client = client.Rescore(
		decimal.NewFromInt(200_000), 0,
		50, valueobject.RiskTierMedium, decimal.NewFromInt(1_200_000),
		now,
	)
	assert.True(t, client.AvailableLimit().IsZero())
}
