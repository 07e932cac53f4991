package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditosur/lending-engine/internal/application/usecase"
	"github.com/creditosur/lending-engine/internal/domain/valueobject"
)

type mockPreviewCache struct {
	entries map[string][]byte
	gets    int
	hits    int
	sets    int
}

func newMockPreviewCache() *mockPreviewCache {
	return &mockPreviewCache{entries: map[string][]byte{}}
}

func (m *mockPreviewCache) Get(_ context.Context, key string) ([]byte, bool) {
	m.gets++
	raw, ok := m.entries[key]
	if ok {
		m.hits++
	}
	return raw, ok
}

func (m *mockPreviewCache) Set(_ context.Context, key string, value []byte) error {
	m.sets++
	m.entries[key] = value
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPreviewSchedule_Execute(t *testing.T) {
	t.Run("computes without a cache", func(t *testing.T) {
		uc := usecase.NewPreviewScheduleUseCase(nil, discardLogger())

		resp, err := uc.Execute(context.Background(), validTermsRequest())
		require.NoError(t, err)

		require.Len(t, resp.Schedule, 2)
		assert.True(t, decimal.NewFromInt(1_010_000).Equal(resp.Summary.FinancedPrincipal))
		assert.True(t, decimal.NewFromInt(524_015).Equal(resp.Summary.FixedInstallmentAmount))
		assert.True(t, resp.Schedule[1].RemainingBalance.IsZero())
	})

	t.Run("memoizes identical terms", func(t *testing.T) {
		cache := newMockPreviewCache()
		uc := usecase.NewPreviewScheduleUseCase(cache, discardLogger())

		first, err := uc.Execute(context.Background(), validTermsRequest())
		require.NoError(t, err)
		assert.Equal(t, 1, cache.sets)
		assert.Equal(t, 0, cache.hits)

		second, err := uc.Execute(context.Background(), validTermsRequest())
		require.NoError(t, err)
		assert.Equal(t, 1, cache.hits)
		assert.Equal(t, 1, cache.sets, "a cache hit must not rewrite the entry")

		assert.True(t, first.Summary.TotalToPay.Equal(second.Summary.TotalToPay))
		require.Len(t, second.Schedule, len(first.Schedule))
		for i := range first.Schedule {
			assert.True(t, first.Schedule[i].CapitalPortion.Equal(second.Schedule[i].CapitalPortion))
		}
	})

	t.Run("different terms use different cache keys", func(t *testing.T) {
		cache := newMockPreviewCache()
		uc := usecase.NewPreviewScheduleUseCase(cache, discardLogger())

		_, err := uc.Execute(context.Background(), validTermsRequest())
		require.NoError(t, err)

		other := validTermsRequest()
		other.TermMonths = 6
		_, err = uc.Execute(context.Background(), other)
		require.NoError(t, err)

		assert.Equal(t, 2, cache.sets)
		assert.Equal(t, 0, cache.hits)
	})

	t.Run("falls through on undecodable cache entry", func(t *testing.T) {
		cache := newMockPreviewCache()
		uc := usecase.NewPreviewScheduleUseCase(cache, discardLogger())

		// Poison every key so the first lookup hits garbage.
		_, err := uc.Execute(context.Background(), validTermsRequest())
		require.NoError(t, err)
		for key := range cache.entries {
			cache.entries[key] = []byte("{not json")
		}

		resp, err := uc.Execute(context.Background(), validTermsRequest())
		require.NoError(t, err)
		assert.Len(t, resp.Schedule, 2)
	})

	t.Run("incomplete terms yield an empty preview", func(t *testing.T) {
		uc := usecase.NewPreviewScheduleUseCase(nil, discardLogger())

		req := validTermsRequest()
		req.TermMonths = 0

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Empty(t, resp.Schedule)
		assert.True(t, resp.Summary.FinancedPrincipal.IsZero())
		assert.Equal(t, 0, resp.Summary.Installments)
	})

	t.Run("rejects unknown frequency", func(t *testing.T) {
		uc := usecase.NewPreviewScheduleUseCase(nil, discardLogger())

		req := validTermsRequest()
		req.PaymentFrequency = "YEARLY"

		_, err := uc.Execute(context.Background(), req)
		require.Error(t, err)
		assert.ErrorIs(t, err, valueobject.ErrInvalidInput)
	})
}
