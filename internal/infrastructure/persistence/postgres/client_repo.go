package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/creditosur/lending-engine/internal/domain/model"
	"github.com/creditosur/lending-engine/internal/domain/port"
	"github.com/creditosur/lending-engine/internal/domain/valueobject"
)

// ClientRepo implements port.ClientRepository.
type ClientRepo struct {
	pool *pgxpool.Pool
}

// NewClientRepo creates a new PostgreSQL-backed client repository.
func NewClientRepo(pool *pgxpool.Pool) *ClientRepo {
	return &ClientRepo{pool: pool}
}

// Save upserts a client and their current risk profile.
func (r *ClientRepo) Save(ctx context.Context, client model.Client) error {
	query := `
		INSERT INTO clients (
			id, name, document, monthly_income, tenure_months,
			score, tier, credit_limit, outstanding_principal,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (id) DO UPDATE SET
			monthly_income        = EXCLUDED.monthly_income,
			tenure_months         = EXCLUDED.tenure_months,
			score                 = EXCLUDED.score,
			tier                  = EXCLUDED.tier,
			credit_limit          = EXCLUDED.credit_limit,
			outstanding_principal = EXCLUDED.outstanding_principal,
			updated_at            = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		client.ID(), client.Name(), client.Document(),
		client.MonthlyIncome(), client.TenureMonths(),
		client.Score(), client.Tier().String(),
		client.CreditLimit(), client.OutstandingPrincipal(),
		client.CreatedAt(), client.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save client: %w", err)
	}
	return nil
}

// FindByID retrieves a client by ID.
func (r *ClientRepo) FindByID(ctx context.Context, id string) (model.Client, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

// FindByDocument retrieves a client by their identity document.
func (r *ClientRepo) FindByDocument(ctx context.Context, document string) (model.Client, error) {
	return r.findOne(ctx, `WHERE document = $1`, document)
}

func (r *ClientRepo) findOne(ctx context.Context, where string, arg any) (model.Client, error) {
	query := `
		SELECT id, name, document, monthly_income, tenure_months,
		       score, tier, credit_limit, outstanding_principal,
		       created_at, updated_at
		FROM clients ` + where
	client, err := scanClientRow(r.pool.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Client{}, port.ErrClientNotFound
	}
	return client, err
}

func scanClientRow(s scannable) (model.Client, error) {
	var (
		id, name, document   string
		monthlyIncome        decimal.Decimal
		tenureMonths, score  int
		tierStr              string
		creditLimit          decimal.Decimal
		outstandingPrincipal decimal.Decimal
		createdAt, updatedAt time.Time
	)

	err := s.Scan(
		&id, &name, &document, &monthlyIncome, &tenureMonths,
		&score, &tierStr, &creditLimit, &outstandingPrincipal,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return model.Client{}, fmt.Errorf("scan client: %w", err)
	}

	// An unscored client has an empty tier.
	var tier valueobject.RiskTier
	if tierStr != "" {
		tier, err = valueobject.NewRiskTier(tierStr)
		if err != nil {
			return model.Client{}, fmt.Errorf("parse risk tier: %w", err)
		}
	}

	return model.ReconstructClient(
		id, name, document,
		monthlyIncome, tenureMonths, score, tier,
		creditLimit, outstandingPrincipal,
		createdAt, updatedAt,
	), nil
}
