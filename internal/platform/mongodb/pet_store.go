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

// MongoPetStore implements the store.PetStore interface using a MongoDB
// collection as the storage backend.
type MongoPetStore struct {
	col *mongo.Collection
}

// NewMongoPetStore creates a new MongoDB implementation of the PetStore interface.
func NewMongoPetStore(db *mongo.Database) *MongoPetStore {
	return &MongoPetStore{col: db.Collection(petsCollection)}
}

// Ensure MongoPetStore implements store.PetStore interface
var _ store.PetStore = (*MongoPetStore)(nil)

// Create implements store.PetStore.Create
func (s *MongoPetStore) Create(ctx context.Context, pet *domain.Pet) error {
	if err := pet.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	res, err := s.col.InsertOne(ctx, pet)
	if err != nil {
		return store.NewStoreError("pet", "create", "insert failed", err)
	}

	pet.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// List implements store.PetStore.List
func (s *MongoPetStore) List(ctx context.Context, filter store.PetFilter) ([]domain.Pet, error) {
	query := bson.M{}
	if filter.Species != "" {
		query["species"] = filter.Species
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Size != "" {
		query["size"] = filter.Size
	}
	if filter.Gender != "" {
		query["gender"] = filter.Gender
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.col.Find(ctx, query, opts)
	if err != nil {
		return nil, store.NewStoreError("pet", "list", "find failed", err)
	}
	defer cur.Close(ctx)

	pets := []domain.Pet{}
	if err := cur.All(ctx, &pets); err != nil {
		return nil, store.NewStoreError("pet", "list", "cursor decode failed", err)
	}
	return pets, nil
}

// GetByID implements store.PetStore.GetByID
func (s *MongoPetStore) GetByID(ctx context.Context, id domain.ID) (*domain.Pet, error) {
	var pet domain.Pet
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&pet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrPetNotFound
		}
		return nil, store.NewStoreError("pet", "get", "lookup by id failed", err)
	}
	return &pet, nil
}

// Update implements store.PetStore.Update
// Only fields present in the PetUpdate reach the $set document, so
// unspecified fields are left untouched.
func (s *MongoPetStore) Update(ctx context.Context, id domain.ID, update store.PetUpdate) (*domain.Pet, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Species != nil {
		set["species"] = *update.Species
	}
	if update.Breed != nil {
		set["breed"] = *update.Breed
	}
	if update.Age != nil {
		set["age"] = *update.Age
	}
	if update.Gender != nil {
		set["gender"] = *update.Gender
	}
	if update.Size != nil {
		set["size"] = *update.Size
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.Location != nil {
		set["location"] = update.Location
	}
	if update.Images != nil {
		set["images"] = update.Images
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var pet domain.Pet
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&pet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrPetNotFound
		}
		return nil, store.NewStoreError("pet", "update", "conditional update failed", err)
	}
	return &pet, nil
}

// Delete implements store.PetStore.Delete
func (s *MongoPetStore) Delete(ctx context.Context, id domain.ID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return store.NewStoreError("pet", "delete", "delete failed", err)
	}
	if res.DeletedCount == 0 {
		return store.ErrPetNotFound
	}
	return nil
}

// ClaimForAdoption implements store.PetStore.ClaimForAdoption
// The status transition and its precondition run as one conditional update,
// so two concurrent claims for the same pet cannot both succeed.
func (s *MongoPetStore) ClaimForAdoption(ctx context.Context, id domain.ID) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": id, "status": bson.M{"$ne": domain.StatusAdoptado}},
		bson.M{"$set": bson.M{
			"status":     domain.StatusAdoptado,
			"updated_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		return store.NewStoreError("pet", "claim", "conditional status update failed", err)
	}
	if res.MatchedCount == 0 {
		// Zero matches means either the pet is gone or it lost the race.
		n, err := s.col.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return store.NewStoreError("pet", "claim", "existence check failed", err)
		}
		if n == 0 {
			return store.ErrPetNotFound
		}
		return store.ErrPetAlreadyAdopted
	}
	return nil
}
