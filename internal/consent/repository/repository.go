package repository

import (
	"context"
	"errors"

	"consentadmin/internal/consent/registry"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrNotFound    = errors.New("document not found")
	ErrDuplicate   = errors.New("duplicate document")
	ErrUnsupported = errors.New("operation not supported by store")
)

// Collection is the slice of a document collection the managers use.
// Every method issues exactly one call against the backing store.
type Collection interface {
	// Insert a single document
	InsertOne(ctx context.Context, doc interface{}) error
	// Insert a batch in one call
	InsertMany(ctx context.Context, docs []interface{}) error
	// Find one document, ErrNotFound when nothing matches
	FindOne(ctx context.Context, filter bson.M) (bson.Raw, error)
	// Find at most limit documents in storage order
	Find(ctx context.Context, filter bson.M, limit int64) ([]bson.Raw, error)
	// Apply $set to the first match and report how many matched
	UpdateOne(ctx context.Context, filter bson.M, set bson.M) (int64, error)
	// Remove the first match and report how many were deleted
	DeleteOne(ctx context.Context, filter bson.M) (int64, error)
	CountDocuments(ctx context.Context, filter bson.M) (int64, error)
	// Run an aggregation pipeline, ErrUnsupported when the store cannot
	Aggregate(ctx context.Context, pipeline interface{}) ([]bson.Raw, error)
}

// Store hands out collections. It is opened once and shared.
type Store interface {
	Collection(name string) Collection
	EnsureIndexes(ctx context.Context, entities []*registry.Entity) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
