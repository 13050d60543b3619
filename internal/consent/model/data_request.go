package model

import "time"

// Processing carries the outcome of an approve or reject action.
type Processing struct {
	ProcessedAt *time.Time `json:"processed_at,omitempty" bson:"processed_at,omitempty"`
	Explanation string     `json:"explanation,omitempty" bson:"explanation,omitempty"`
}

// DataUpdateRequest asks the DPO to correct a data principal's data.
type DataUpdateRequest struct {
	Base            `bson:",inline"`
	Lifecycle       `bson:",inline"`
	Processing      `bson:",inline"`
	DataPrincipalID string                 `json:"data_principal_id" bson:"data_principal_id" validate:"required"`
	Changes         map[string]interface{} `json:"changes" bson:"changes" validate:"required,min=1"`
	Reason          string                 `json:"reason,omitempty" bson:"reason,omitempty" validate:"omitempty,max=2000"`
}

type DataUpdateRequestPatch struct {
	Changes *map[string]interface{} `json:"changes" bson:"changes,omitempty"`
	Reason  *string                 `json:"reason" bson:"reason,omitempty" validate:"omitempty,max=2000"`
}

// DataDeletionRequest asks the DPO to erase a data principal's data.
type DataDeletionRequest struct {
	Base            `bson:",inline"`
	Lifecycle       `bson:",inline"`
	Processing      `bson:",inline"`
	DataPrincipalID string   `json:"data_principal_id" bson:"data_principal_id" validate:"required"`
	Scope           []string `json:"scope,omitempty" bson:"scope,omitempty"`
	Reason          string   `json:"reason,omitempty" bson:"reason,omitempty" validate:"omitempty,max=2000"`
}

type DataDeletionRequestPatch struct {
	Scope  *[]string `json:"scope" bson:"scope,omitempty"`
	Reason *string   `json:"reason" bson:"reason,omitempty" validate:"omitempty,max=2000"`
}

// DPARRequest is a data principal access request.
type DPARRequest struct {
	Base            `bson:",inline"`
	Lifecycle       `bson:",inline"`
	Processing      `bson:",inline"`
	DataPrincipalID string `json:"data_principal_id" bson:"data_principal_id" validate:"required"`
	RequestType     string `json:"request_type" bson:"request_type" validate:"required,oneof=access correction erasure nomination grievance"`
	Details         string `json:"details,omitempty" bson:"details,omitempty" validate:"omitempty,max=4000"`
}

type DPARRequestPatch struct {
	RequestType *string `json:"request_type" bson:"request_type,omitempty" validate:"omitempty,oneof=access correction erasure nomination grievance"`
	Details     *string `json:"details" bson:"details,omitempty" validate:"omitempty,max=4000"`
	Status      *string `json:"status" bson:"status,omitempty"`
}
