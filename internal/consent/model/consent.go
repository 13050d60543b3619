package model

import "time"

// Consent is a data principal's consent record for a set of purposes.
type Consent struct {
	Base              `bson:",inline"`
	Lifecycle         `bson:",inline"`
	DataPrincipalID   string    `json:"data_principal_id" bson:"data_principal_id" validate:"required"`
	CollectionPointID string    `json:"collection_point_id,omitempty" bson:"collection_point_id,omitempty"`
	ConsentType       string    `json:"consent_type" bson:"consent_type" validate:"required,max=50"`
	Purposes          []string  `json:"purposes,omitempty" bson:"purposes,omitempty"`
	Timestamp         time.Time `json:"timestamp" bson:"timestamp"`
}

type ConsentPatch struct {
	CollectionPointID *string    `json:"collection_point_id" bson:"collection_point_id,omitempty"`
	ConsentType       *string    `json:"consent_type" bson:"consent_type,omitempty" validate:"omitempty,min=1,max=50"`
	Purposes          *[]string  `json:"purposes" bson:"purposes,omitempty"`
	Timestamp         *time.Time `json:"timestamp" bson:"timestamp,omitempty"`
	Status            *string    `json:"status" bson:"status,omitempty"`
}

// ConsentChange is one change-data-capture record for a consent.
type ConsentChange struct {
	Base            `bson:",inline"`
	ConsentID       string                 `json:"consent_id" bson:"consent_id" validate:"required"`
	ChangeType      string                 `json:"change_type" bson:"change_type" validate:"required,max=50"`
	ChangeTimestamp time.Time              `json:"change_timestamp" bson:"change_timestamp"`
	ChangedBy       string                 `json:"changed_by,omitempty" bson:"changed_by,omitempty"`
	Previous        map[string]interface{} `json:"previous,omitempty" bson:"previous,omitempty"`
	Current         map[string]interface{} `json:"current,omitempty" bson:"current,omitempty"`
}

type ConsentChangePatch struct {
	ConsentID       *string                 `json:"consent_id" bson:"consent_id,omitempty" validate:"omitempty,min=1"`
	ChangeType      *string                 `json:"change_type" bson:"change_type,omitempty" validate:"omitempty,min=1,max=50"`
	ChangeTimestamp *time.Time              `json:"change_timestamp" bson:"change_timestamp,omitempty"`
	ChangedBy       *string                 `json:"changed_by" bson:"changed_by,omitempty"`
	Previous        *map[string]interface{} `json:"previous" bson:"previous,omitempty"`
	Current         *map[string]interface{} `json:"current" bson:"current,omitempty"`
}

type ChangeTypeCount struct {
	Type  string `json:"type" bson:"type"`
	Count int64  `json:"count" bson:"count"`
}

// ChangeInsights is Sampled when the per-type counts cover only part of
// TotalChanges.
type ChangeInsights struct {
	TotalChanges  int64             `json:"total_changes" bson:"total_changes"`
	ChangesByType []ChangeTypeCount `json:"changes_by_type" bson:"changes_by_type"`
	Sampled       bool              `json:"sampled,omitempty" bson:"-"`
}
