package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

// MockCollection is a testify mock of repository.Collection.
type MockCollection struct {
	mock.Mock
}

func (m *MockCollection) InsertOne(ctx context.Context, doc interface{}) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockCollection) InsertMany(ctx context.Context, docs []interface{}) error {
	args := m.Called(ctx, docs)
	return args.Error(0)
}

func (m *MockCollection) FindOne(ctx context.Context, filter bson.M) (bson.Raw, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.Raw), args.Error(1)
}

func (m *MockCollection) Find(ctx context.Context, filter bson.M, limit int64) ([]bson.Raw, error) {
	args := m.Called(ctx, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.Raw), args.Error(1)
}

func (m *MockCollection) UpdateOne(ctx context.Context, filter bson.M, set bson.M) (int64, error) {
	args := m.Called(ctx, filter, set)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCollection) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCollection) CountDocuments(ctx context.Context, filter bson.M) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCollection) Aggregate(ctx context.Context, pipeline interface{}) ([]bson.Raw, error) {
	args := m.Called(ctx, pipeline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.Raw), args.Error(1)
}
