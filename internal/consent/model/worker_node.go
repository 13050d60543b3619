package model

import "time"

type WorkerNode struct {
	Base          `bson:",inline"`
	Lifecycle     `bson:",inline"`
	Name          string                 `json:"name" bson:"name" validate:"required,max=200"`
	Description   string                 `json:"description,omitempty" bson:"description,omitempty"`
	Host          string                 `json:"host,omitempty" bson:"host,omitempty" validate:"omitempty,hostname_rfc1123|ip"`
	Region        string                 `json:"region,omitempty" bson:"region,omitempty"`
	Config        map[string]interface{} `json:"config,omitempty" bson:"config,omitempty"`
	Stats         map[string]interface{} `json:"stats,omitempty" bson:"stats,omitempty"`
	LastHeartbeat *time.Time             `json:"last_heartbeat,omitempty" bson:"last_heartbeat,omitempty"`
}

type WorkerNodePatch struct {
	Name          *string                 `json:"name" bson:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description   *string                 `json:"description" bson:"description,omitempty"`
	Host          *string                 `json:"host" bson:"host,omitempty" validate:"omitempty,hostname_rfc1123|ip"`
	Region        *string                 `json:"region" bson:"region,omitempty"`
	Config        *map[string]interface{} `json:"config" bson:"config,omitempty"`
	Stats         *map[string]interface{} `json:"stats" bson:"stats,omitempty"`
	LastHeartbeat *time.Time              `json:"last_heartbeat" bson:"last_heartbeat,omitempty"`
	Status        *string                 `json:"status" bson:"status,omitempty"`
}

type WorkerNodeStats struct {
	NodeID string                 `json:"node_id"`
	Stats  map[string]interface{} `json:"stats"`
}

type ScanProfile struct {
	Base          `bson:",inline"`
	Lifecycle     `bson:",inline"`
	Name          string                 `json:"name" bson:"name" validate:"required,max=200"`
	Description   string                 `json:"description,omitempty" bson:"description,omitempty"`
	DataSourceIDs []string               `json:"data_source_ids,omitempty" bson:"data_source_ids,omitempty"`
	Schedule      string                 `json:"schedule,omitempty" bson:"schedule,omitempty"`
	Config        map[string]interface{} `json:"config,omitempty" bson:"config,omitempty"`
}

type ScanProfilePatch struct {
	Name          *string                 `json:"name" bson:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description   *string                 `json:"description" bson:"description,omitempty"`
	DataSourceIDs *[]string               `json:"data_source_ids" bson:"data_source_ids,omitempty"`
	Schedule      *string                 `json:"schedule" bson:"schedule,omitempty"`
	Config        *map[string]interface{} `json:"config" bson:"config,omitempty"`
	Status        *string                 `json:"status" bson:"status,omitempty"`
}
