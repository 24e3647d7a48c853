package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/beautiflow/dashboard-api/internal/core/domain"
	"github.com/beautiflow/dashboard-api/internal/core/ports"
	"github.com/beautiflow/dashboard-api/internal/infrastructure/cache"
)

const clientsCacheKey = "clients"

// ClientService implements the client registry: a cached list of clients
// and per-client transaction histories read through the session's data
// scope.
type ClientService struct {
	clients      ports.ClientRepository
	transactions ports.TransactionRepository
	cache        *cache.TTL[[]domain.Client]
	logger       zerolog.Logger
}

func NewClientService(
	clients ports.ClientRepository,
	transactions ports.TransactionRepository,
	listCache *cache.TTL[[]domain.Client],
	logger zerolog.Logger,
) *ClientService {
	return &ClientService{
		clients:      clients,
		transactions: transactions,
		cache:        listCache,
		logger:       logger,
	}
}

// ListClients returns all clients, serving repeat calls from the in-process
// cache. Safe to call when already populated.
func (s *ClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	if cached, ok := s.cache.Get(clientsCacheKey); ok {
		return cached, nil
	}

	list, err := s.clients.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list clients")
		return nil, err
	}

	s.cache.Set(clientsCacheKey, list)
	return list, nil
}

func (s *ClientService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return s.clients.FindByID(ctx, id)
}

// CreateClient registers a new client and invalidates the cached list.
func (s *ClientService) CreateClient(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	if input.TrustScore < 0 || input.TrustScore > 100 {
		return nil, domain.ErrInvalidTrustScore
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	client := &domain.Client{
		Name:       input.Name,
		Phone:      input.Phone,
		FlatNumber: input.FlatNumber,
		TrustScore: input.TrustScore,
		Tags:       tags,
		Notes:      input.Notes,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.clients.Create(ctx, client)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create client")
		return nil, err
	}

	s.cache.Delete(clientsCacheKey)
	s.logger.Info().Str("client_id", created.ID).Str("name", created.Name).Msg("client created")
	return created, nil
}

func (s *ClientService) ListFlats(ctx context.Context) ([]domain.FlatSummary, error) {
	return s.clients.CountByFlat(ctx)
}

// ListTransactions returns one client's full transaction history, read from
// the store the session's role is scoped to. Histories are re-fetched on
// every call; only the client list itself is cached.
func (s *ClientService) ListTransactions(ctx context.Context, sess ports.Session, clientID string) ([]domain.Transaction, error) {
	scope := domain.ScopeForRole(sess.Role, sess.UserID)
	return s.transactions.ListByClient(ctx, scope, clientID)
}

// AddTransaction appends a transaction to a client's history. The client
// name is denormalized onto the record so list views can sort by it without
// a join.
func (s *ClientService) AddTransaction(ctx context.Context, sess ports.Session, input ports.AddTransactionInput) (*domain.Transaction, error) {
	if input.Amount < 0 {
		return nil, domain.ErrNegativeAmount
	}

	client, err := s.clients.FindByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tx := &domain.Transaction{
		ClientID:    client.ID,
		ClientName:  client.Name,
		ServiceName: input.ServiceName,
		Amount:      input.Amount,
		IsPaid:      input.IsPaid,
		DueDate:     input.DueDate,
		CreatedAt:   now,
	}
	if input.IsPaid {
		tx.PaidAt = &now
	}

	scope := domain.ScopeForRole(sess.Role, sess.UserID)
	created, err := s.transactions.Insert(ctx, scope, tx)
	if err != nil {
		s.logger.Error().Err(err).Str("client_id", input.ClientID).Msg("failed to add transaction")
		return nil, err
	}

	s.logger.Info().
		Str("transaction_id", created.ID).
		Str("client_id", created.ClientID).
		Float64("amount", created.Amount).
		Msg("transaction added")
	return created, nil
}

// MarkPaid flips the paid flag, the only mutation a transaction supports.
func (s *ClientService) MarkPaid(ctx context.Context, sess ports.Session, transactionID string) error {
	scope := domain.ScopeForRole(sess.Role, sess.UserID)
	return s.transactions.MarkPaid(ctx, scope, transactionID)
}
