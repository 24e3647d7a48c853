package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/beautiflow/dashboard-api/internal/core/domain"
)

const (
	// sharedTransactions is read by admin and manager sessions.
	sharedTransactions = "transactions"
	// privateTransactions holds per-user subsets for every other role,
	// filtered by owner_uid.
	privateTransactions = "user_transactions"
)

type TransactionRepository struct {
	db *mongo.Database
}

func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// mongoTransaction tolerates the mixed timestamp shapes of persisted
// documents; NormalizeDate converts them on read.
type mongoTransaction struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ClientID    string             `bson:"client_id"`
	ClientName  string             `bson:"client_name"`
	ServiceName string             `bson:"service_name"`
	Amount      float64            `bson:"amount"`
	IsPaid      bool               `bson:"is_paid"`
	DueDate     any                `bson:"due_date,omitempty"`
	PaidAt      any                `bson:"paid_at,omitempty"`
	CreatedAt   any                `bson:"created_at"`
	OwnerID     string             `bson:"owner_uid,omitempty"`
}

func (r *TransactionRepository) collection(scope domain.Scope) *mongo.Collection {
	if scope.Shared {
		return r.db.Collection(sharedTransactions)
	}
	return r.db.Collection(privateTransactions)
}

// scopeFilter narrows private-store queries to the owning user. The shared
// store is common to all admin/manager sessions and needs no owner filter.
func scopeFilter(scope domain.Scope, filter bson.M) bson.M {
	if !scope.Shared {
		filter["owner_uid"] = scope.OwnerID
	}
	return filter
}

func (r *TransactionRepository) Insert(ctx context.Context, scope domain.Scope, t *domain.Transaction) (*domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoTransaction{
		ClientID:    t.ClientID,
		ClientName:  t.ClientName,
		ServiceName: t.ServiceName,
		Amount:      t.Amount,
		IsPaid:      t.IsPaid,
		CreatedAt:   t.CreatedAt,
	}
	if t.DueDate != nil {
		doc.DueDate = *t.DueDate
	}
	if t.PaidAt != nil {
		doc.PaidAt = *t.PaidAt
	}
	if !scope.Shared {
		doc.OwnerID = scope.OwnerID
	}

	res, err := r.collection(scope).InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	created := *t
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// ListByClient returns one client's full history in the given scope,
// oldest first.
func (r *TransactionRepository) ListByClient(ctx context.Context, scope domain.Scope, clientID string) ([]domain.Transaction, error) {
	return r.list(ctx, scope, scopeFilter(scope, bson.M{"client_id": clientID}))
}

// ListAll returns every transaction in the given scope, oldest first.
func (r *TransactionRepository) ListAll(ctx context.Context, scope domain.Scope) ([]domain.Transaction, error) {
	return r.list(ctx, scope, scopeFilter(scope, bson.M{}))
}

func (r *TransactionRepository) list(ctx context.Context, scope domain.Scope, filter bson.M) ([]domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.collection(scope).Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	txs := []domain.Transaction{}
	for cur.Next(ctx) {
		var mt mongoTransaction
		if err := cur.Decode(&mt); err != nil {
			return nil, err
		}
		txs = append(txs, *toTransaction(mt))
	}
	return txs, cur.Err()
}

// MarkPaid flips the paid flag and stamps the payment time.
func (r *TransactionRepository) MarkPaid(ctx context.Context, scope domain.Scope, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTransactionNotFound
	}

	res, err := r.collection(scope).UpdateOne(ctx,
		scopeFilter(scope, bson.M{"_id": oid}),
		bson.M{"$set": bson.M{"is_paid": true, "paid_at": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// EnsureIndexes creates indexes on both transaction collections.
func (r *TransactionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	shared := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	}
	if _, err := r.db.Collection(sharedTransactions).Indexes().CreateMany(ctx, shared); err != nil {
		return err
	}

	private := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_uid", Value: 1}, {Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "owner_uid", Value: 1}, {Key: "created_at", Value: 1}}},
	}
	_, err := r.db.Collection(privateTransactions).Indexes().CreateMany(ctx, private)
	return err
}

func toTransaction(mt mongoTransaction) *domain.Transaction {
	created, _ := NormalizeDate(mt.CreatedAt)

	tx := &domain.Transaction{
		ID:          mt.ID.Hex(),
		ClientID:    mt.ClientID,
		ClientName:  mt.ClientName,
		ServiceName: mt.ServiceName,
		Amount:      mt.Amount,
		IsPaid:      mt.IsPaid,
		CreatedAt:   created,
	}
	if due, ok := NormalizeDate(mt.DueDate); ok {
		tx.DueDate = &due
	}
	if paid, ok := NormalizeDate(mt.PaidAt); ok {
		tx.PaidAt = &paid
	}
	return tx
}
