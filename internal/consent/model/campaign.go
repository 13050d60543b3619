package model

import "time"

type Campaign struct {
	Base            `bson:",inline"`
	Lifecycle       `bson:",inline"`
	Name            string     `json:"name" bson:"name" validate:"required,max=200"`
	Description     string     `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,max=2000"`
	TargetPersonaID string     `json:"target_persona_id,omitempty" bson:"target_persona_id,omitempty"`
	Channels        []string   `json:"channels,omitempty" bson:"channels,omitempty"`
	StartDate       *time.Time `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty" bson:"end_date,omitempty"`
	ScheduleTime    *time.Time `json:"schedule_time,omitempty" bson:"schedule_time,omitempty"`
}

type CampaignPatch struct {
	Name            *string    `json:"name" bson:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description     *string    `json:"description" bson:"description,omitempty" validate:"omitempty,max=2000"`
	TargetPersonaID *string    `json:"target_persona_id" bson:"target_persona_id,omitempty"`
	Channels        *[]string  `json:"channels" bson:"channels,omitempty"`
	StartDate       *time.Time `json:"start_date" bson:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date" bson:"end_date,omitempty"`
	Status          *string    `json:"status" bson:"status,omitempty"`
}

type ScheduleCampaignReq struct {
	ScheduleTime *time.Time `json:"schedule_time" validate:"required"`
}

func (r *ScheduleCampaignReq) Validate() error {
	return ValidateRecord(r)
}
