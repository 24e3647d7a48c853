package ports

import (
	"context"

	"github.com/beautiflow/dashboard-api/internal/core/domain"
)

// ClientRepository defines persistence operations for the client registry.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	// List returns every client visible to the session. There is no
	// pagination: the registry is read in full.
	List(ctx context.Context) ([]domain.Client, error)
	// CountByFlat groups clients by flat number.
	CountByFlat(ctx context.Context) ([]domain.FlatSummary, error)
}

// TransactionRepository defines persistence operations for transactions.
// Every call carries the resolved data scope: the shared collection for
// admin/manager sessions, the caller's private subset otherwise.
type TransactionRepository interface {
	Insert(ctx context.Context, scope domain.Scope, t *domain.Transaction) (*domain.Transaction, error)
	ListByClient(ctx context.Context, scope domain.Scope, clientID string) ([]domain.Transaction, error)
	ListAll(ctx context.Context, scope domain.Scope) ([]domain.Transaction, error)
	MarkPaid(ctx context.Context, scope domain.Scope, id string) error
}
