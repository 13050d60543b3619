package model

type ModelNotice struct {
	Base         `bson:",inline"`
	Lifecycle    `bson:",inline"`
	TemplateName string `json:"template_name" bson:"template_name" validate:"required,max=200"`
	Content      string `json:"content" bson:"content" validate:"required"`
	Language     string `json:"language,omitempty" bson:"language,omitempty" validate:"omitempty,max=16"`
}

type ModelNoticePatch struct {
	TemplateName *string `json:"template_name" bson:"template_name,omitempty" validate:"omitempty,min=1,max=200"`
	Content      *string `json:"content" bson:"content,omitempty"`
	Language     *string `json:"language" bson:"language,omitempty" validate:"omitempty,max=16"`
	Status       *string `json:"status" bson:"status,omitempty"`
}

// Workflow routes a model notice through review steps.
type Workflow struct {
	Base        `bson:",inline"`
	Lifecycle   `bson:",inline"`
	Name        string         `json:"name" bson:"name" validate:"required,max=200"`
	Description string         `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,max=2000"`
	NoticeID    string         `json:"notice_id,omitempty" bson:"notice_id,omitempty"`
	Steps       []WorkflowStep `json:"steps,omitempty" bson:"steps,omitempty" validate:"omitempty,dive"`
}

type WorkflowStep struct {
	Name     string `json:"name" bson:"name" validate:"required"`
	Assignee string `json:"assignee,omitempty" bson:"assignee,omitempty"`
	Order    int    `json:"order" bson:"order" validate:"min=0"`
}

type WorkflowPatch struct {
	Name        *string         `json:"name" bson:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string         `json:"description" bson:"description,omitempty" validate:"omitempty,max=2000"`
	NoticeID    *string         `json:"notice_id" bson:"notice_id,omitempty"`
	Steps       *[]WorkflowStep `json:"steps" bson:"steps,omitempty" validate:"omitempty,dive"`
	Status      *string         `json:"status" bson:"status,omitempty"`
}
