package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/beautiflow/dashboard-api/internal/core/domain"
	"github.com/beautiflow/dashboard-api/internal/core/ports"
	"github.com/beautiflow/dashboard-api/internal/infrastructure/cache"
)

type stubClientRepo struct {
	clients   []domain.Client
	listCalls int
	createErr error
	nextID    int
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	clone := *c
	clone.ID = fmt.Sprintf("client_%d", r.nextID)
	r.clients = append(r.clients, clone)
	out := clone
	return &out, nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.ID == id {
			clone := c
			return &clone, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) List(_ context.Context) ([]domain.Client, error) {
	r.listCalls++
	return append([]domain.Client(nil), r.clients...), nil
}

func (r *stubClientRepo) CountByFlat(_ context.Context) ([]domain.FlatSummary, error) {
	counts := make(map[string]int)
	for _, c := range r.clients {
		counts[c.FlatNumber]++
	}
	out := make([]domain.FlatSummary, 0, len(counts))
	for flat, n := range counts {
		out = append(out, domain.FlatSummary{FlatNumber: flat, ClientCount: n})
	}
	return out, nil
}

// stubTxRepo keeps one transaction list per scope so tests can observe the
// shared/private branch.
type stubTxRepo struct {
	byScope map[string][]domain.Transaction
	listErr error
	nextID  int
}

func newStubTxRepo() *stubTxRepo {
	return &stubTxRepo{byScope: make(map[string][]domain.Transaction)}
}

func scopeKey(scope domain.Scope) string {
	if scope.Shared {
		return "shared"
	}
	return "private:" + scope.OwnerID
}

func (r *stubTxRepo) Insert(_ context.Context, scope domain.Scope, t *domain.Transaction) (*domain.Transaction, error) {
	r.nextID++
	clone := *t
	clone.ID = fmt.Sprintf("tx_%d", r.nextID)
	key := scopeKey(scope)
	r.byScope[key] = append(r.byScope[key], clone)
	out := clone
	return &out, nil
}

func (r *stubTxRepo) ListByClient(_ context.Context, scope domain.Scope, clientID string) ([]domain.Transaction, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []domain.Transaction
	for _, t := range r.byScope[scopeKey(scope)] {
		if t.ClientID == clientID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *stubTxRepo) ListAll(_ context.Context, scope domain.Scope) ([]domain.Transaction, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]domain.Transaction(nil), r.byScope[scopeKey(scope)]...), nil
}

func (r *stubTxRepo) MarkPaid(_ context.Context, scope domain.Scope, id string) error {
	key := scopeKey(scope)
	for i, t := range r.byScope[key] {
		if t.ID == id {
			now := time.Now().UTC()
			r.byScope[key][i].IsPaid = true
			r.byScope[key][i].PaidAt = &now
			return nil
		}
	}
	return domain.ErrTransactionNotFound
}

func newClientService(clients *stubClientRepo, txs *stubTxRepo) *ClientService {
	return NewClientService(clients, txs, cache.New[[]domain.Client](time.Minute), zerolog.Nop())
}

func managerSession() ports.Session {
	return ports.Session{UserID: "user_mgr", Role: domain.RoleManager}
}

func employeeSession() ports.Session {
	return ports.Session{UserID: "user_emp", Role: domain.RoleEmployee}
}

func TestClientService_ListClientsCaches(t *testing.T) {
	repo := &stubClientRepo{clients: []domain.Client{{ID: "client_1", Name: "Anna"}}}
	svc := newClientService(repo, newStubTxRepo())
	ctx := context.Background()

	first, err := svc.ListClients(ctx)
	if err != nil {
		t.Fatalf("ListClients: %v", err)
	}
	second, err := svc.ListClients(ctx)
	if err != nil {
		t.Fatalf("ListClients (cached): %v", err)
	}
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("unexpected list sizes: %d, %d", len(first), len(second))
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected 1 repository read, got %d", repo.listCalls)
	}
}

func TestClientService_CreateClientInvalidatesCache(t *testing.T) {
	repo := &stubClientRepo{}
	svc := newClientService(repo, newStubTxRepo())
	ctx := context.Background()

	if _, err := svc.ListClients(ctx); err != nil {
		t.Fatalf("ListClients: %v", err)
	}

	created, err := svc.CreateClient(ctx, ports.CreateClientInput{Name: "Maria", FlatNumber: "12A", TrustScore: 80})
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	if created.Tags == nil {
		t.Fatalf("tags should default to an empty slice")
	}

	list, err := svc.ListClients(ctx)
	if err != nil {
		t.Fatalf("ListClients after create: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("stale cache: expected the new client, got %d entries", len(list))
	}
	if repo.listCalls != 2 {
		t.Fatalf("expected a re-read after invalidation, got %d calls", repo.listCalls)
	}
}

func TestClientService_CreateClientTrustScoreBounds(t *testing.T) {
	svc := newClientService(&stubClientRepo{}, newStubTxRepo())
	ctx := context.Background()

	for _, score := range []int{-1, 101} {
		_, err := svc.CreateClient(ctx, ports.CreateClientInput{Name: "X", TrustScore: score})
		if !errors.Is(err, domain.ErrInvalidTrustScore) {
			t.Fatalf("score %d: expected ErrInvalidTrustScore, got %v", score, err)
		}
	}
	for _, score := range []int{0, 100} {
		if _, err := svc.CreateClient(ctx, ports.CreateClientInput{Name: "X", TrustScore: score}); err != nil {
			t.Fatalf("score %d should be accepted: %v", score, err)
		}
	}
}

func TestClientService_AddTransactionDenormalizesClientName(t *testing.T) {
	clients := &stubClientRepo{clients: []domain.Client{{ID: "client_1", Name: "Anna"}}}
	txs := newStubTxRepo()
	svc := newClientService(clients, txs)

	due := time.Now().Add(48 * time.Hour)
	created, err := svc.AddTransaction(context.Background(), managerSession(), ports.AddTransactionInput{
		ClientID:    "client_1",
		ServiceName: "Manicure",
		Amount:      45,
		DueDate:     &due,
	})
	if err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}
	if created.ClientName != "Anna" {
		t.Fatalf("client name not denormalized: %q", created.ClientName)
	}
	if created.IsPaid || created.PaidAt != nil {
		t.Fatalf("unpaid transaction should have no paid marker")
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("created_at not stamped")
	}
}

func TestClientService_AddTransactionPaidStampsPaidAt(t *testing.T) {
	clients := &stubClientRepo{clients: []domain.Client{{ID: "client_1", Name: "Anna"}}}
	svc := newClientService(clients, newStubTxRepo())

	created, err := svc.AddTransaction(context.Background(), managerSession(), ports.AddTransactionInput{
		ClientID:    "client_1",
		ServiceName: "Haircut",
		Amount:      30,
		IsPaid:      true,
	})
	if err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}
	if created.PaidAt == nil {
		t.Fatalf("paid transaction must carry paid_at")
	}
}

func TestClientService_AddTransactionNegativeAmount(t *testing.T) {
	svc := newClientService(&stubClientRepo{}, newStubTxRepo())

	_, err := svc.AddTransaction(context.Background(), managerSession(), ports.AddTransactionInput{
		ClientID: "client_1",
		Amount:   -5,
	})
	if !errors.Is(err, domain.ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestClientService_AddTransactionUnknownClient(t *testing.T) {
	svc := newClientService(&stubClientRepo{}, newStubTxRepo())

	_, err := svc.AddTransaction(context.Background(), managerSession(), ports.AddTransactionInput{
		ClientID: "missing",
		Amount:   10,
	})
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientService_ScopeSeparatesHistories(t *testing.T) {
	clients := &stubClientRepo{clients: []domain.Client{{ID: "client_1", Name: "Anna"}}}
	txs := newStubTxRepo()
	svc := newClientService(clients, txs)
	ctx := context.Background()

	// A manager writes into the shared store, an employee into their own
	// private one.
	if _, err := svc.AddTransaction(ctx, managerSession(), ports.AddTransactionInput{ClientID: "client_1", Amount: 100}); err != nil {
		t.Fatalf("manager AddTransaction: %v", err)
	}
	if _, err := svc.AddTransaction(ctx, employeeSession(), ports.AddTransactionInput{ClientID: "client_1", Amount: 20}); err != nil {
		t.Fatalf("employee AddTransaction: %v", err)
	}

	shared, err := svc.ListTransactions(ctx, managerSession(), "client_1")
	if err != nil {
		t.Fatalf("manager ListTransactions: %v", err)
	}
	if len(shared) != 1 || shared[0].Amount != 100 {
		t.Fatalf("manager should see only the shared record, got %+v", shared)
	}

	private, err := svc.ListTransactions(ctx, employeeSession(), "client_1")
	if err != nil {
		t.Fatalf("employee ListTransactions: %v", err)
	}
	if len(private) != 1 || private[0].Amount != 20 {
		t.Fatalf("employee should see only their private record, got %+v", private)
	}

	// Admin and manager share the same store.
	admin, err := svc.ListTransactions(ctx, ports.Session{UserID: "user_adm", Role: domain.RoleAdmin}, "client_1")
	if err != nil {
		t.Fatalf("admin ListTransactions: %v", err)
	}
	if len(admin) != 1 || admin[0].Amount != 100 {
		t.Fatalf("admin should see the shared record, got %+v", admin)
	}
}

func TestClientService_MarkPaidWithinScope(t *testing.T) {
	clients := &stubClientRepo{clients: []domain.Client{{ID: "client_1", Name: "Anna"}}}
	txs := newStubTxRepo()
	svc := newClientService(clients, txs)
	ctx := context.Background()

	created, err := svc.AddTransaction(ctx, employeeSession(), ports.AddTransactionInput{ClientID: "client_1", Amount: 20})
	if err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}

	// The record lives in the employee's private store, so the shared
	// scope cannot reach it.
	if err := svc.MarkPaid(ctx, managerSession(), created.ID); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound from the wrong scope, got %v", err)
	}
	if err := svc.MarkPaid(ctx, employeeSession(), created.ID); err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}

	list, err := svc.ListTransactions(ctx, employeeSession(), "client_1")
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if !list[0].IsPaid || list[0].PaidAt == nil {
		t.Fatalf("transaction not marked paid: %+v", list[0])
	}
}

func TestClientService_ListFlats(t *testing.T) {
	clients := &stubClientRepo{clients: []domain.Client{
		{ID: "client_1", FlatNumber: "12A"},
		{ID: "client_2", FlatNumber: "12A"},
		{ID: "client_3", FlatNumber: "7"},
	}}
	svc := newClientService(clients, newStubTxRepo())

	flats, err := svc.ListFlats(context.Background())
	if err != nil {
		t.Fatalf("ListFlats: %v", err)
	}
	counts := make(map[string]int, len(flats))
	for _, f := range flats {
		counts[f.FlatNumber] = f.ClientCount
	}
	if counts["12A"] != 2 || counts["7"] != 1 {
		t.Fatalf("unexpected flat counts: %v", counts)
	}
}
