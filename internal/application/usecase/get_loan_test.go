package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditosur/lending-engine/internal/application/dto"
	"github.com/creditosur/lending-engine/internal/application/usecase"
	"github.com/creditosur/lending-engine/internal/domain/model"
	"github.com/creditosur/lending-engine/internal/domain/port"
)

func TestGetLoan_Execute(t *testing.T) {
	t.Run("returns the loan with a re-derived schedule", func(t *testing.T) {
		loan := activeLoan(t)
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Loan, error) {
				assert.Equal(t, loan.ID(), id)
				return loan, nil
			},
		}

		uc := usecase.NewGetLoanUseCase(loanRepo)

		resp, err := uc.Execute(context.Background(), dto.GetLoanRequest{LoanID: loan.ID()})
		require.NoError(t, err)

		assert.Equal(t, loan.ID(), resp.ID)
		assert.Equal(t, "MONTHLY", resp.Terms.PaymentFrequency)
		// The schedule is not stored with the loan; it comes back from the
		// terms on every read.
		require.Len(t, resp.Schedule, 2)
		assert.True(t, resp.Schedule[1].RemainingBalance.IsZero())
	})

	t.Run("fails when loan not found", func(t *testing.T) {
		uc := usecase.NewGetLoanUseCase(&mockLoanRepository{})

		_, err := uc.Execute(context.Background(), dto.GetLoanRequest{LoanID: "missing"})
		require.Error(t, err)
		assert.ErrorIs(t, err, port.ErrLoanNotFound)
	})
}

func TestGetClient_Execute(t *testing.T) {
	t.Run("returns the client with available limit", func(t *testing.T) {
		client := scoredClient()
		clientRepo := &mockClientRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Client, error) {
				return client, nil
			},
		}

		uc := usecase.NewGetClientUseCase(clientRepo)

		resp, err := uc.Execute(context.Background(), dto.GetClientRequest{ClientID: "client-001"})
		require.NoError(t, err)

		assert.Equal(t, "client-001", resp.ID)
		assert.Equal(t, 90, resp.Score)
		assert.Equal(t, "LOW", resp.Tier)
		assert.True(t, decimal.NewFromInt(11_700_000).Equal(resp.AvailableLimit))
	})

	t.Run("fails when client not found", func(t *testing.T) {
		uc := usecase.NewGetClientUseCase(&mockClientRepository{})

		_, err := uc.Execute(context.Background(), dto.GetClientRequest{ClientID: "missing"})
		require.Error(t, err)
		assert.ErrorIs(t, err, port.ErrClientNotFound)
	})
}

func TestRegisterClient_Execute(t *testing.T) {
	t.Run("registers an unscored client", func(t *testing.T) {
		clientRepo := &mockClientRepository{}
		uc := usecase.NewRegisterClientUseCase(clientRepo)

		resp, err := uc.Execute(context.Background(), dto.RegisterClientRequest{
			Name:          "Jorge Luis Cantillo",
			Document:      "CC-79811224",
			MonthlyIncome: decimal.NewFromInt(900_000),
			TenureMonths:  18,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "Jorge Luis Cantillo", resp.Name)
		assert.Equal(t, 0, resp.Score)
		assert.Empty(t, resp.Tier)
		assert.True(t, resp.CreditLimit.IsZero())
		require.Len(t, clientRepo.savedClients, 1)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		uc := usecase.NewRegisterClientUseCase(&mockClientRepository{})

		_, err := uc.Execute(context.Background(), dto.RegisterClientRequest{
			Document:      "CC-1",
			MonthlyIncome: decimal.NewFromInt(1),
		})
		require.Error(t, err)
	})
}
