package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"consentadmin/internal/consent/model"
	"consentadmin/internal/consent/registry"
	"consentadmin/internal/consent/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultListLimit = 100

// Hooks let a resource transform records on their way in and out of the
// store. Every hook is optional.
type Hooks[T any] struct {
	BeforeInsert func(doc *T) error
	AfterLoad    func(doc *T) error
	BeforeSet    func(set bson.M) error
}

// Resource is the lifecycle manager for one entity: T is the stored record
// and P its sparse update payload.
type Resource[T any, P any, PT model.DocumentPtr[T]] struct {
	Entity    *registry.Entity
	Coll      repository.Collection
	ListLimit int64
	Hooks     Hooks[T]

	required map[string]bool
	now      func() time.Time
}

func NewResource[T any, P any, PT model.DocumentPtr[T]](entity *registry.Entity, store repository.Store, listLimit int64) *Resource[T, P, PT] {
	if listLimit <= 0 {
		listLimit = DefaultListLimit
	}
	return &Resource[T, P, PT]{
		Entity:    entity,
		Coll:      store.Collection(entity.Collection),
		ListLimit: listLimit,
		required:  model.RequiredFields(new(T)),
		now:       model.Now,
	}
}

// prepare validates a new record and assigns the server-side fields.
func (r *Resource[T, P, PT]) prepare(doc *T) (primitive.ObjectID, error) {
	if doc == nil {
		return primitive.NilObjectID, fmt.Errorf("%w: empty record", ErrBadRequest)
	}
	if err := model.ValidateRecord(doc); err != nil {
		return primitive.NilObjectID, badRequest(err)
	}

	if holder, ok := any(doc).(model.StatusHolder); ok && r.Entity.HasStatus() {
		status := holder.GetStatus()
		if status == "" {
			holder.SetStatus(r.Entity.DefaultStatus)
		} else if !r.Entity.ValidStatus(status) {
			return primitive.NilObjectID, fmt.Errorf("%w %q", ErrInvalidStatus, status)
		}
	}

	id := primitive.NewObjectID()
	p := PT(doc)
	p.SetID(id)
	p.Stamp(r.now())

	if r.Hooks.BeforeInsert != nil {
		if err := r.Hooks.BeforeInsert(doc); err != nil {
			return primitive.NilObjectID, err
		}
	}
	return id, nil
}

// Create stores a new record and returns its id.
func (r *Resource[T, P, PT]) Create(ctx context.Context, doc *T) (string, error) {
	id, err := r.prepare(doc)
	if err != nil {
		return "", err
	}
	if err := r.Coll.InsertOne(ctx, doc); err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// CreateMany stores the batch in one store call. The batch is rejected
// as a whole if any record is invalid.
func (r *Resource[T, P, PT]) CreateMany(ctx context.Context, docs []*T) ([]string, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: empty batch", ErrBadRequest)
	}

	ids := make([]string, 0, len(docs))
	batch := make([]interface{}, 0, len(docs))
	for i, doc := range docs {
		id, err := r.prepare(doc)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		ids = append(ids, id.Hex())
		batch = append(batch, doc)
	}

	if err := r.Coll.InsertMany(ctx, batch); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *Resource[T, P, PT]) decode(raw bson.Raw) (*T, error) {
	doc := new(T)
	if err := bson.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.Entity.Name, err)
	}
	if r.Hooks.AfterLoad != nil {
		if err := r.Hooks.AfterLoad(doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// Get fetches a record by its hex id.
func (r *Resource[T, P, PT]) Get(ctx context.Context, id string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	raw, err := r.Coll.FindOne(ctx, bson.M{"_id": oid})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r.decode(raw)
}

// List returns at most ListLimit records in storage order.
func (r *Resource[T, P, PT]) List(ctx context.Context) ([]*T, error) {
	return r.Search(ctx, bson.M{})
}

// Search is List restricted by filter.
func (r *Resource[T, P, PT]) Search(ctx context.Context, filter bson.M) ([]*T, error) {
	raws, err := r.Coll.Find(ctx, filter, r.ListLimit)
	if err != nil {
		return nil, err
	}

	docs := make([]*T, 0, len(raws))
	for _, raw := range raws {
		doc, err := r.decode(raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (r *Resource[T, P, PT]) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.Coll.CountDocuments(ctx, filter)
}

// Summary counts all records and those in the entity's active status.
func (r *Resource[T, P, PT]) Summary(ctx context.Context) (*model.StatusSummary, error) {
	total, err := r.Count(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	active, err := r.Count(ctx, bson.M{"status": r.Entity.ActiveStatus})
	if err != nil {
		return nil, err
	}
	return &model.StatusSummary{Total: total, Active: active}, nil
}

// Update applies the fields present in patch. Omitted fields keep their
// stored value; fields sent with a zero value are written. Fields listed
// in nulls are cleared, which required fields refuse.
func (r *Resource[T, P, PT]) Update(ctx context.Context, id string, patch *P, nulls ...string) error {
	if _, err := ParseID(id); err != nil {
		return err
	}
	if patch == nil {
		patch = new(P)
	}
	if err := model.ValidateRecord(patch); err != nil {
		return badRequest(err)
	}
	for _, field := range nulls {
		if r.required[field] || field == "status" {
			return fmt.Errorf("%w: %s cannot be null", ErrBadRequest, field)
		}
	}

	set, err := model.SetFields(patch, nulls...)
	if err != nil {
		return badRequest(err)
	}
	return r.Patch(ctx, id, set)
}

// Patch writes set onto the record and stamps updated_at.
func (r *Resource[T, P, PT]) Patch(ctx context.Context, id string, set bson.M) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	if v, ok := set["status"]; ok {
		status, isString := v.(string)
		if !isString || !r.Entity.ValidStatus(status) {
			return fmt.Errorf("%w %v", ErrInvalidStatus, v)
		}
	}
	if r.Hooks.BeforeSet != nil {
		if err := r.Hooks.BeforeSet(set); err != nil {
			return err
		}
	}
	set["updated_at"] = r.now()

	matched, err := r.Coll.UpdateOne(ctx, bson.M{"_id": oid}, set)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

// Transition sets the status the action maps to, whatever the current
// status is.
func (r *Resource[T, P, PT]) Transition(ctx context.Context, id, action string) error {
	return r.TransitionWith(ctx, id, action, model.TransitionReq{})
}

// TransitionWith is Transition carrying the caller's explanation. The
// action's timestamp field, if the entity declares one, is set too.
func (r *Resource[T, P, PT]) TransitionWith(ctx context.Context, id, action string, req model.TransitionReq) error {
	target, ok := r.Entity.Target(action)
	if !ok {
		return fmt.Errorf("%w: %s cannot %s", ErrBadRequest, r.Entity.Label, action)
	}
	if _, err := ParseID(id); err != nil {
		return err
	}
	if err := model.ValidateRecord(&req); err != nil {
		return badRequest(err)
	}

	set := bson.M{"status": target}
	explanation := strings.TrimSpace(req.Explanation)
	if r.Entity.NeedsExplanation(action) {
		if explanation == "" {
			return fmt.Errorf("%w: %s needs an explanation", ErrBadRequest, action)
		}
		set["explanation"] = explanation
	}
	if field, ok := r.Entity.StampField(action); ok {
		set[field] = r.now()
	}
	return r.Patch(ctx, id, set)
}

// Categorize replaces the record's categories.
func (r *Resource[T, P, PT]) Categorize(ctx context.Context, id string, req model.CategorizeReq) error {
	if err := req.Validate(); err != nil {
		return badRequest(err)
	}
	return r.Patch(ctx, id, bson.M{"categories": req.Categories})
}

// StatusCounts counts the records in each declared status.
func (r *Resource[T, P, PT]) StatusCounts(ctx context.Context) (*model.StatusCounts, error) {
	total, err := r.Count(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	counts := &model.StatusCounts{Total: total, ByStatus: make(map[string]int64, len(r.Entity.Statuses))}
	for _, status := range r.Entity.Statuses {
		n, err := r.Count(ctx, bson.M{"status": status})
		if err != nil {
			return nil, err
		}
		counts.ByStatus[status] = n
	}
	return counts, nil
}

func (r *Resource[T, P, PT]) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	deleted, err := r.Coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

// Duplicate copies a record under a fresh id. The stored document is
// copied field by field so nothing is lost to the record type.
func (r *Resource[T, P, PT]) Duplicate(ctx context.Context, id string) (string, error) {
	oid, err := ParseID(id)
	if err != nil {
		return "", err
	}

	raw, err := r.Coll.FindOne(ctx, bson.M{"_id": oid})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	var src bson.D
	if err := bson.Unmarshal(raw, &src); err != nil {
		return "", fmt.Errorf("decode %s: %w", r.Entity.Name, err)
	}
	newID := primitive.NewObjectID()
	dup := bson.D{{Key: "_id", Value: newID}}
	for _, e := range src {
		if e.Key != "_id" {
			dup = append(dup, e)
		}
	}

	if err := r.Coll.InsertOne(ctx, dup); err != nil {
		return "", err
	}
	return newID.Hex(), nil
}
