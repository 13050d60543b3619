package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is implemented by every stored record through the embedded Base.
type Document interface {
	GetID() primitive.ObjectID
	SetID(id primitive.ObjectID)
	Stamp(now time.Time)
}

// DocumentPtr constrains a type parameter to a pointer to a record type.
type DocumentPtr[T any] interface {
	*T
	Document
}

// StatusHolder is implemented by records that embed Lifecycle.
type StatusHolder interface {
	GetStatus() string
	SetStatus(status string)
}

// Base carries the server-assigned fields.
type Base struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

func (b *Base) GetID() primitive.ObjectID {
	return b.ID
}

func (b *Base) SetID(id primitive.ObjectID) {
	b.ID = id
}

// Stamp overwrites both timestamps; it is only called on insert.
func (b *Base) Stamp(now time.Time) {
	b.CreatedAt = now
	b.UpdatedAt = now
}

type Lifecycle struct {
	Status string `json:"status" bson:"status"`
}

func (l *Lifecycle) GetStatus() string {
	return l.Status
}

func (l *Lifecycle) SetStatus(status string) {
	l.Status = status
}

// Now returns the current time at the precision the store keeps.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
