package repository

import (
	"context"
	"fmt"
	"sync"

	"consentadmin/internal/consent/registry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps every collection in process as encoded BSON, in
// insertion order. It backs local runs and tests.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string]*memoryCollection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memoryCollection)}
}

func (s *MemoryStore) Collection(name string) Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		c = &memoryCollection{}
		s.collections[name] = c
	}
	return c
}

// EnsureIndexes is a no-op; lookups scan the collection.
func (s *MemoryStore) EnsureIndexes(ctx context.Context, entities []*registry.Entity) error {
	return ctx.Err()
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

type memoryCollection struct {
	mu   sync.RWMutex
	docs []bson.Raw
}

// encode marshals doc and makes sure it carries an _id.
func encode(doc interface{}) (bson.Raw, primitive.ObjectID, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, primitive.NilObjectID, err
	}
	if v, err := bson.Raw(raw).LookupErr("_id"); err == nil {
		if id, ok := v.ObjectIDOK(); ok {
			return raw, id, nil
		}
		return nil, primitive.NilObjectID, fmt.Errorf("unsupported _id type %s", v.Type)
	}

	var d bson.D
	if err := bson.Unmarshal(raw, &d); err != nil {
		return nil, primitive.NilObjectID, err
	}
	id := primitive.NewObjectID()
	raw, err = bson.Marshal(append(bson.D{{Key: "_id", Value: id}}, d...))
	if err != nil {
		return nil, primitive.NilObjectID, err
	}
	return raw, id, nil
}

func (c *memoryCollection) indexOf(id primitive.ObjectID) int {
	for i, doc := range c.docs {
		if v, err := doc.LookupErr("_id"); err == nil {
			if got, ok := v.ObjectIDOK(); ok && got == id {
				return i
			}
		}
	}
	return -1
}

func (c *memoryCollection) InsertOne(ctx context.Context, doc interface{}) error {
	return c.InsertMany(ctx, []interface{}{doc})
}

// InsertMany stores the whole batch or nothing.
func (c *memoryCollection) InsertMany(ctx context.Context, docs []interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	batch := make([]bson.Raw, 0, len(docs))
	seen := make(map[primitive.ObjectID]bool, len(docs))
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, doc := range docs {
		raw, id, err := encode(doc)
		if err != nil {
			return err
		}
		if seen[id] || c.indexOf(id) >= 0 {
			return ErrDuplicate
		}
		seen[id] = true
		batch = append(batch, raw)
	}
	c.docs = append(c.docs, batch...)
	return nil
}

func (c *memoryCollection) FindOne(ctx context.Context, filter bson.M) (bson.Raw, error) {
	docs, err := c.Find(ctx, filter, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return docs[0], nil
}

func (c *memoryCollection) Find(ctx context.Context, filter bson.M, limit int64) ([]bson.Raw, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []bson.Raw
	for _, doc := range c.docs {
		ok, err := Match(doc, filter)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		cp := make(bson.Raw, len(doc))
		copy(cp, doc)
		out = append(out, cp)
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func (c *memoryCollection) first(filter bson.M) (int, error) {
	for i, doc := range c.docs {
		ok, err := Match(doc, filter)
		if err != nil {
			return -1, err
		}
		if ok {
			return i, nil
		}
	}
	return -1, nil
}

func (c *memoryCollection) UpdateOne(ctx context.Context, filter bson.M, set bson.M) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i, err := c.first(filter)
	if err != nil || i < 0 {
		return 0, err
	}

	var d bson.D
	if err := bson.Unmarshal(c.docs[i], &d); err != nil {
		return 0, err
	}
	for k, v := range set {
		if k == "_id" {
			return 0, fmt.Errorf("_id is immutable")
		}
		replaced := false
		for j := range d {
			if d[j].Key == k {
				d[j].Value = v
				replaced = true
				break
			}
		}
		if !replaced {
			d = append(d, bson.E{Key: k, Value: v})
		}
	}
	raw, err := bson.Marshal(d)
	if err != nil {
		return 0, err
	}
	c.docs[i] = raw
	return 1, nil
}

func (c *memoryCollection) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i, err := c.first(filter)
	if err != nil || i < 0 {
		return 0, err
	}
	c.docs = append(c.docs[:i], c.docs[i+1:]...)
	return 1, nil
}

func (c *memoryCollection) CountDocuments(ctx context.Context, filter bson.M) (int64, error) {
	docs, err := c.Find(ctx, filter, 0)
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}

func (c *memoryCollection) Aggregate(ctx context.Context, pipeline interface{}) ([]bson.Raw, error) {
	return nil, ErrUnsupported
}
