package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/creditosur/lending-engine/internal/domain/event"
	"github.com/creditosur/lending-engine/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Client aggregate root
// ---------------------------------------------------------------------------

// Client is an immutable aggregate. Mutations return a new copy.
type Client struct {
	id                   string
	name                 string
	document             string
	monthlyIncome        decimal.Decimal
	tenureMonths         int
	score                int
	tier                 valueobject.RiskTier
	creditLimit          decimal.Decimal
	outstandingPrincipal decimal.Decimal
	createdAt            time.Time
	updatedAt            time.Time
	domainEvents         []event.DomainEvent
}

// NewClient registers a client. The risk profile starts empty until the
// client is first scored.
func NewClient(name, document string, monthlyIncome decimal.Decimal, tenureMonths int, now time.Time) (Client, error) {
	if name == "" {
		return Client{}, errors.New("client name is required")
	}
	if document == "" {
		return Client{}, errors.New("client document is required")
	}
	if monthlyIncome.IsNegative() {
		return Client{}, errors.New("monthly income must not be negative")
	}
	if tenureMonths < 0 {
		return Client{}, errors.New("tenure months must not be negative")
	}

	return Client{
		id:                   uuid.New().String(),
		name:                 name,
		document:             document,
		monthlyIncome:        monthlyIncome,
		tenureMonths:         tenureMonths,
		creditLimit:          decimal.Zero,
		outstandingPrincipal: decimal.Zero,
		createdAt:            now,
		updatedAt:            now,
	}, nil
}

// ReconstructClient rebuilds a Client aggregate from persistence.
func ReconstructClient(
	id, name, document string,
	monthlyIncome decimal.Decimal,
	tenureMonths, score int,
	tier valueobject.RiskTier,
	creditLimit, outstandingPrincipal decimal.Decimal,
	createdAt, updatedAt time.Time,
) Client {
	return Client{
		id:                   id,
		name:                 name,
		document:             document,
		monthlyIncome:        monthlyIncome,
		tenureMonths:         tenureMonths,
		score:                score,
		tier:                 tier,
		creditLimit:          creditLimit,
		outstandingPrincipal: outstandingPrincipal,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// Rescore replaces the client's risk profile wholesale. The profile is always
// recomputed from current income and tenure, never adjusted incrementally.
func (c Client) Rescore(
	monthlyIncome decimal.Decimal,
	tenureMonths, score int,
	tier valueobject.RiskTier,
	creditLimit decimal.Decimal,
	now time.Time,
) Client {
	next := c
	next.monthlyIncome = monthlyIncome
	next.tenureMonths = tenureMonths
	next.score = score
	next.tier = tier
	next.creditLimit = creditLimit
	next.updatedAt = now
	next.domainEvents = copyEvents(c.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewClientScored(
		c.id, monthlyIncome, tenureMonths, score, tier.String(), creditLimit,
	))
	return next
}

// IncreaseExposure records newly financed principal against the client.
func (c Client) IncreaseExposure(amount decimal.Decimal, now time.Time) (Client, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return c, errors.New("exposure amount must be positive")
	}
	next := c
	next.outstandingPrincipal = c.outstandingPrincipal.Add(amount)
	next.updatedAt = now
	next.domainEvents = copyEvents(c.domainEvents)
	return next, nil
}

// DecreaseExposure releases repaid principal. The exposure never goes below
// zero.
func (c Client) DecreaseExposure(amount decimal.Decimal, now time.Time) (Client, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return c, errors.New("exposure amount must be positive")
	}
	next := c
	next.outstandingPrincipal = c.outstandingPrincipal.Sub(amount)
	if next.outstandingPrincipal.IsNegative() {
		next.outstandingPrincipal = decimal.Zero
	}
	next.updatedAt = now
	next.domainEvents = copyEvents(c.domainEvents)
	return next, nil
}

// AvailableLimit returns how much new principal the client may still take:
// credit limit minus current exposure, floored at zero.
func (c Client) AvailableLimit() decimal.Decimal {
	available := c.creditLimit.Sub(c.outstandingPrincipal)
	if available.IsNegative() {
		return decimal.Zero
	}
	return available
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (c Client) ID() string                            { return c.id }
func (c Client) Name() string                          { return c.name }
func (c Client) Document() string                      { return c.document }
func (c Client) MonthlyIncome() decimal.Decimal        { return c.monthlyIncome }
func (c Client) TenureMonths() int                     { return c.tenureMonths }
func (c Client) Score() int                            { return c.score }
func (c Client) Tier() valueobject.RiskTier            { return c.tier }
func (c Client) CreditLimit() decimal.Decimal          { return c.creditLimit }
func (c Client) OutstandingPrincipal() decimal.Decimal { return c.outstandingPrincipal }
func (c Client) CreatedAt() time.Time                  { return c.createdAt }
func (c Client) UpdatedAt() time.Time                  { return c.updatedAt }
func (c Client) DomainEvents() []event.DomainEvent     { return c.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (c Client) ClearEvents() Client {
	next := c
	next.domainEvents = nil
	return next
}

func copyEvents(events []event.DomainEvent) []event.DomainEvent {
	if events == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(events))
	copy(out, events)
	return out
}
