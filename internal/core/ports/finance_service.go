package ports

import (
	"context"

	"github.com/beautiflow/dashboard-api/internal/core/domain"
	"github.com/beautiflow/dashboard-api/internal/core/finance"
)

// ListTransactionsQuery carries filter and sort parameters for the finances
// view.
type ListTransactionsQuery struct {
	Filter finance.Filter
	SortBy finance.SortKey
	Order  finance.SortOrder
}

// ClientActivity is one row of the dashboard overview: a client and how
// many transactions they hold in the caller's scope.
type ClientActivity struct {
	Client           domain.Client `json:"client"`
	TransactionCount int           `json:"transaction_count"`
}

// Overview is the presentation-ready dashboard payload.
type Overview struct {
	Stats    finance.Stats        `json:"stats"`
	Upcoming []domain.Transaction `json:"upcoming"`
	Clients  []ClientActivity     `json:"clients"`
}

// FinanceService derives presentation-ready views from the transactions in
// the session's data scope.
type FinanceService interface {
	List(ctx context.Context, sess Session, q ListTransactionsQuery) ([]domain.Transaction, error)
	Stats(ctx context.Context, sess Session) (*finance.Stats, error)
	Upcoming(ctx context.Context, sess Session) ([]domain.Transaction, error)
	Dashboard(ctx context.Context, sess Session) (*Overview, error)
}
