package model

// ProgressiveConsentRule asks for additional consent when a trigger fires.
type ProgressiveConsentRule struct {
	Base        `bson:",inline"`
	Lifecycle   `bson:",inline"`
	Name        string                 `json:"name" bson:"name" validate:"required,max=200"`
	Description string                 `json:"description,omitempty" bson:"description,omitempty"`
	Trigger     string                 `json:"trigger" bson:"trigger" validate:"required,max=200"`
	Purposes    []string               `json:"purposes,omitempty" bson:"purposes,omitempty"`
	Conditions  map[string]interface{} `json:"conditions,omitempty" bson:"conditions,omitempty"`
}

type ProgressiveConsentRulePatch struct {
	Name        *string                 `json:"name" bson:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string                 `json:"description" bson:"description,omitempty"`
	Trigger     *string                 `json:"trigger" bson:"trigger,omitempty" validate:"omitempty,min=1,max=200"`
	Purposes    *[]string               `json:"purposes" bson:"purposes,omitempty"`
	Conditions  *map[string]interface{} `json:"conditions" bson:"conditions,omitempty"`
	Status      *string                 `json:"status" bson:"status,omitempty"`
}

// ReconsentRule asks principals to renew consent after an interval.
type ReconsentRule struct {
	Base         `bson:",inline"`
	Lifecycle    `bson:",inline"`
	Name         string                 `json:"name" bson:"name" validate:"required,max=200"`
	Description  string                 `json:"description,omitempty" bson:"description,omitempty"`
	IntervalDays int                    `json:"interval_days" bson:"interval_days" validate:"required,min=1"`
	Purposes     []string               `json:"purposes,omitempty" bson:"purposes,omitempty"`
	Conditions   map[string]interface{} `json:"conditions,omitempty" bson:"conditions,omitempty"`
}

type ReconsentRulePatch struct {
	Name         *string                 `json:"name" bson:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description  *string                 `json:"description" bson:"description,omitempty"`
	IntervalDays *int                    `json:"interval_days" bson:"interval_days,omitempty" validate:"omitempty,min=1"`
	Purposes     *[]string               `json:"purposes" bson:"purposes,omitempty"`
	Conditions   *map[string]interface{} `json:"conditions" bson:"conditions,omitempty"`
	Status       *string                 `json:"status" bson:"status,omitempty"`
}
