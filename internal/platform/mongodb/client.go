// Package mongodb implements the store interfaces on top of MongoDB.
// Each entity lives in its own collection (users, pets, adoptions) keyed by
// store-generated ObjectIDs; relationships are raw references, not embeds.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/adoptme/adoptme-api/internal/config"
)

// Collection names.
const (
	usersCollection     = "users"
	petsCollection      = "pets"
	adoptionsCollection = "adoptions"
)

// connectTimeout bounds the initial server selection and ping.
const connectTimeout = 10 * time.Second

// Connect establishes a MongoDB connection and verifies it with a ping.
// The returned client must be disconnected by the caller on shutdown.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Name), nil
}

// EnsureIndexes creates the indexes the stores rely on. The unique index on
// users.email is what turns a duplicate registration into a store-level
// ErrEmailExists instead of a second document.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}

	// Compound index backing the common pet listing filters.
	_, err = db.Collection(petsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "species", Value: 1}, {Key: "status", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create pets species/status index: %w", err)
	}

	return nil
}
