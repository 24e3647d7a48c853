package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/beautiflow/dashboard-api/internal/core/domain"
)

const clientsCollection = "clients"

type ClientRepository struct {
	coll *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{coll: db.Collection(clientsCollection)}
}

type mongoClient struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Phone      string             `bson:"phone"`
	FlatNumber string             `bson:"flat_number"`
	TrustScore int                `bson:"trust_score"`
	Tags       []string           `bson:"tags"`
	Notes      string             `bson:"notes,omitempty"`
	CreatedAt  any                `bson:"created_at"`
}

// Create inserts a new client document and returns it with the generated id.
func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoClient{
		Name:       c.Name,
		Phone:      c.Phone,
		FlatNumber: c.FlatNumber,
		TrustScore: c.TrustScore,
		Tags:       c.Tags,
		Notes:      c.Notes,
		CreatedAt:  c.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	created := *c
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}

	var mc mongoClient
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return toClient(mc), nil
}

// List returns every client ordered by name. The registry is read in full;
// there is no pagination.
func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	clients := []domain.Client{}
	for cur.Next(ctx) {
		var mc mongoClient
		if err := cur.Decode(&mc); err != nil {
			return nil, err
		}
		clients = append(clients, *toClient(mc))
	}
	return clients, cur.Err()
}

// CountByFlat groups clients by flat number with an aggregation pipeline.
func (r *ClientRepository) CountByFlat(ctx context.Context) ([]domain.FlatSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$flat_number"},
			{Key: "client_count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	flats := []domain.FlatSummary{}
	if err := cur.All(ctx, &flats); err != nil {
		return nil, err
	}
	return flats, nil
}

// EnsureIndexes creates the indexes list and flat grouping rely on.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "flat_number", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func toClient(mc mongoClient) *domain.Client {
	created, _ := NormalizeDate(mc.CreatedAt)
	tags := mc.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.Client{
		ID:         mc.ID.Hex(),
		Name:       mc.Name,
		Phone:      mc.Phone,
		FlatNumber: mc.FlatNumber,
		TrustScore: mc.TrustScore,
		Tags:       tags,
		Notes:      mc.Notes,
		CreatedAt:  created,
	}
}
