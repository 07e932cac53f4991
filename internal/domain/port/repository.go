package port

import (
	"context"
	"errors"

	"github.com/creditosur/lending-engine/internal/domain/event"
	"github.com/creditosur/lending-engine/internal/domain/model"
)

// Not-found sentinels. Adapters wrap their driver-specific errors into these
// so callers can branch without importing the driver.
var (
	ErrClientNotFound = errors.New("client not found")
	ErrLoanNotFound   = errors.New("loan not found")
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ClientRepository persists and retrieves clients.
type ClientRepository interface {
	Save(ctx context.Context, client model.Client) error
	FindByID(ctx context.Context, id string) (model.Client, error)
	FindByDocument(ctx context.Context, document string) (model.Client, error)
}

// LoanRepository persists and retrieves loans. Schedules are never stored;
// they are re-derived from the loan terms.
type LoanRepository interface {
	Save(ctx context.Context, loan model.Loan) error
	FindByID(ctx context.Context, id string) (model.Loan, error)
	FindByClientID(ctx context.Context, clientID string) ([]model.Loan, error)
}

// ---------------------------------------------------------------------------
// Preview cache port
// ---------------------------------------------------------------------------

// PreviewCache memoizes schedule previews keyed by a terms fingerprint.
// The cache is an optimization only: a miss always falls through to the
// pure calculation, so correctness never depends on it.
type PreviewCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
