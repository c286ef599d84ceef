package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adoptme/adoptme-api/internal/domain"
	"github.com/adoptme/adoptme-api/internal/store"
)

// MongoUserStore implements the store.UserStore interface using a MongoDB
// collection as the storage backend.
type MongoUserStore struct {
	col *mongo.Collection
}

// NewMongoUserStore creates a new MongoDB implementation of the UserStore interface.
func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{col: db.Collection(usersCollection)}
}

// Ensure MongoUserStore implements store.UserStore interface
var _ store.UserStore = (*MongoUserStore)(nil)

// Create implements store.UserStore.Create
func (s *MongoUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrEmailExists
		}
		return store.NewStoreError("user", "create", "insert failed", err)
	}

	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// List implements store.UserStore.List
func (s *MongoUserStore) List(ctx context.Context) ([]domain.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, store.NewStoreError("user", "list", "find failed", err)
	}
	defer cur.Close(ctx)

	users := []domain.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, store.NewStoreError("user", "list", "cursor decode failed", err)
	}
	return users, nil
}

// GetByID implements store.UserStore.GetByID
func (s *MongoUserStore) GetByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	var user domain.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", "get", "lookup by id failed", err)
	}
	return &user, nil
}

// GetByEmail implements store.UserStore.GetByEmail
// The email is matched exactly as stored (case-sensitive).
func (s *MongoUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", "get", "lookup by email failed", err)
	}
	return &user, nil
}

// AddPet implements store.UserStore.AddPet
// $addToSet keeps the owned-pets list free of duplicate references.
func (s *MongoUserStore) AddPet(ctx context.Context, userID, petID domain.ID) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{
			"$addToSet": bson.M{"pets": petID},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return store.NewStoreError("user", "update", "append pet failed", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrUserNotFound
	}
	return nil
}

// CountByEmail implements store.UserStore.CountByEmail
func (s *MongoUserStore) CountByEmail(ctx context.Context, email string) (int64, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return 0, store.NewStoreError("user", "count", "count by email failed", err)
	}
	return n, nil
}
