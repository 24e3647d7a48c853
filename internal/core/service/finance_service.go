package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/beautiflow/dashboard-api/internal/core/domain"
	"github.com/beautiflow/dashboard-api/internal/core/finance"
	"github.com/beautiflow/dashboard-api/internal/core/ports"
)

// dashboardFetchLimit bounds how many per-client history fetches run at
// once when building the overview.
const dashboardFetchLimit = 4

// FinanceService loads the transactions in the session's scope and derives
// views through the pure finance package.
type FinanceService struct {
	clients      ports.ClientService
	transactions ports.TransactionRepository
	logger       zerolog.Logger
	now          func() time.Time
}

func NewFinanceService(
	clients ports.ClientService,
	transactions ports.TransactionRepository,
	logger zerolog.Logger,
) *FinanceService {
	return &FinanceService{
		clients:      clients,
		transactions: transactions,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// List returns the filtered, sorted finances view.
func (s *FinanceService) List(ctx context.Context, sess ports.Session, q ports.ListTransactionsQuery) ([]domain.Transaction, error) {
	txs, err := s.load(ctx, sess)
	if err != nil {
		return nil, err
	}

	filtered := finance.Apply(txs, q.Filter, s.now())
	return finance.Sort(filtered, q.SortBy, q.Order), nil
}

// Stats computes summary statistics over the unfiltered set in scope.
func (s *FinanceService) Stats(ctx context.Context, sess ports.Session) (*finance.Stats, error) {
	txs, err := s.load(ctx, sess)
	if err != nil {
		return nil, err
	}

	stats := finance.Summarize(txs, s.now())
	return &stats, nil
}

// Upcoming returns the next unpaid transactions due within seven days.
func (s *FinanceService) Upcoming(ctx context.Context, sess ports.Session) ([]domain.Transaction, error) {
	txs, err := s.load(ctx, sess)
	if err != nil {
		return nil, err
	}
	return finance.Upcoming(txs, s.now()), nil
}

// Dashboard builds the overview: aggregate stats, upcoming payments, and
// per-client activity. Client histories are fetched concurrently with a
// bounded errgroup instead of one round trip per client in sequence.
func (s *FinanceService) Dashboard(ctx context.Context, sess ports.Session) (*ports.Overview, error) {
	clients, err := s.clients.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	scope := domain.ScopeForRole(sess.Role, sess.UserID)
	histories := make([][]domain.Transaction, len(clients))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(dashboardFetchLimit)
	for i, client := range clients {
		g.Go(func() error {
			txs, err := s.transactions.ListByClient(gctx, scope, client.ID)
			if err != nil {
				return err
			}
			histories[i] = txs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("failed to build dashboard overview")
		return nil, err
	}

	var all []domain.Transaction
	activity := make([]ports.ClientActivity, len(clients))
	for i, client := range clients {
		activity[i] = ports.ClientActivity{Client: client, TransactionCount: len(histories[i])}
		all = append(all, histories[i]...)
	}

	now := s.now()
	return &ports.Overview{
		Stats:    finance.Summarize(all, now),
		Upcoming: finance.Upcoming(all, now),
		Clients:  activity,
	}, nil
}

func (s *FinanceService) load(ctx context.Context, sess ports.Session) ([]domain.Transaction, error) {
	scope := domain.ScopeForRole(sess.Role, sess.UserID)
	txs, err := s.transactions.ListAll(ctx, scope)
	if err != nil {
		s.logger.Error().Err(err).Str("role", sess.Role).Msg("failed to load transactions")
		return nil, err
	}
	return txs, nil
}
