package ports

import (
	"context"
	"time"

	"github.com/beautiflow/dashboard-api/internal/core/domain"
)

// CreateClientInput carries all data needed to register a new client.
type CreateClientInput struct {
	Name       string
	Phone      string
	FlatNumber string
	TrustScore int
	Tags       []string
	Notes      string
}

// AddTransactionInput carries all data needed to append a transaction to a
// client's history. Amount must be non-negative; DueDate is optional.
type AddTransactionInput struct {
	ClientID    string
	ServiceName string
	Amount      float64
	IsPaid      bool
	DueDate     *time.Time
}

// ClientService defines use-case operations for the client registry.
type ClientService interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	CreateClient(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	ListFlats(ctx context.Context) ([]domain.FlatSummary, error)
	ListTransactions(ctx context.Context, sess Session, clientID string) ([]domain.Transaction, error)
	AddTransaction(ctx context.Context, sess Session, input AddTransactionInput) (*domain.Transaction, error)
	MarkPaid(ctx context.Context, sess Session, transactionID string) error
}
