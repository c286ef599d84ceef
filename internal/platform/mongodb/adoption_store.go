package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adoptme/adoptme-api/internal/domain"
	"github.com/adoptme/adoptme-api/internal/store"
)

// MongoAdoptionStore implements the store.AdoptionStore interface using a
// MongoDB collection as the storage backend.
type MongoAdoptionStore struct {
	col *mongo.Collection
}

// NewMongoAdoptionStore creates a new MongoDB implementation of the AdoptionStore interface.
func NewMongoAdoptionStore(db *mongo.Database) *MongoAdoptionStore {
	return &MongoAdoptionStore{col: db.Collection(adoptionsCollection)}
}

// Ensure MongoAdoptionStore implements store.AdoptionStore interface
var _ store.AdoptionStore = (*MongoAdoptionStore)(nil)

// Create implements store.AdoptionStore.Create
func (s *MongoAdoptionStore) Create(ctx context.Context, adoption *domain.Adoption) error {
	if err := adoption.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	res, err := s.col.InsertOne(ctx, adoption)
	if err != nil {
		return store.NewStoreError("adoption", "create", "insert failed", err)
	}

	adoption.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// List implements store.AdoptionStore.List
func (s *MongoAdoptionStore) List(ctx context.Context) ([]domain.Adoption, error) {
	opts := options.Find().SetSort(bson.D{{Key: "adoption_date", Value: -1}})
	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, store.NewStoreError("adoption", "list", "find failed", err)
	}
	defer cur.Close(ctx)

	adoptions := []domain.Adoption{}
	if err := cur.All(ctx, &adoptions); err != nil {
		return nil, store.NewStoreError("adoption", "list", "cursor decode failed", err)
	}
	return adoptions, nil
}

// GetByID implements store.AdoptionStore.GetByID
func (s *MongoAdoptionStore) GetByID(ctx context.Context, id domain.ID) (*domain.Adoption, error) {
	var adoption domain.Adoption
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&adoption)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrAdoptionNotFound
		}
		return nil, store.NewStoreError("adoption", "get", "lookup by id failed", err)
	}
	return &adoption, nil
}

// CountByPet implements store.AdoptionStore.CountByPet
func (s *MongoAdoptionStore) CountByPet(ctx context.Context, petID domain.ID) (int64, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{"pet": petID})
	if err != nil {
		return 0, store.NewStoreError("adoption", "count", "count by pet failed", err)
	}
	return n, nil
}
