package model

import "time"

type BreachIncident struct {
	Base               `bson:",inline"`
	Lifecycle          `bson:",inline"`
	Title              string     `json:"title" bson:"title" validate:"required,max=200"`
	Description        string     `json:"description,omitempty" bson:"description,omitempty"`
	Severity           string     `json:"severity" bson:"severity" validate:"required,oneof=low medium high critical"`
	DetectedAt         *time.Time `json:"detected_at,omitempty" bson:"detected_at,omitempty"`
	AffectedPrincipals int        `json:"affected_principals" bson:"affected_principals" validate:"min=0"`
	DataCategories     []string   `json:"data_categories,omitempty" bson:"data_categories,omitempty"`
}

type BreachIncidentPatch struct {
	Title              *string    `json:"title" bson:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description        *string    `json:"description" bson:"description,omitempty"`
	Severity           *string    `json:"severity" bson:"severity,omitempty" validate:"omitempty,oneof=low medium high critical"`
	DetectedAt         *time.Time `json:"detected_at" bson:"detected_at,omitempty"`
	AffectedPrincipals *int       `json:"affected_principals" bson:"affected_principals,omitempty" validate:"omitempty,min=0"`
	DataCategories     *[]string  `json:"data_categories" bson:"data_categories,omitempty"`
	Status             *string    `json:"status" bson:"status,omitempty"`
}

// BreachNotificationArtifact is the prepared text of a breach notice.
// Publishing it stamps PublishedAt.
type BreachNotificationArtifact struct {
	Base        `bson:",inline"`
	Lifecycle   `bson:",inline"`
	IncidentID  string     `json:"incident_id" bson:"incident_id" validate:"required,len=24,hexadecimal"`
	Title       string     `json:"title" bson:"title" validate:"required,max=200"`
	Content     string     `json:"content" bson:"content" validate:"required"`
	Language    string     `json:"language,omitempty" bson:"language,omitempty" validate:"omitempty,max=20"`
	PublishedAt *time.Time `json:"published_at,omitempty" bson:"published_at,omitempty"`
}

type BreachNotificationArtifactPatch struct {
	Title    *string `json:"title" bson:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content  *string `json:"content" bson:"content,omitempty" validate:"omitempty,min=1"`
	Language *string `json:"language" bson:"language,omitempty" validate:"omitempty,max=20"`
	Status   *string `json:"status" bson:"status,omitempty"`
}

// BreachNotification records a notice sent about an incident. Delivery
// happens outside this service.
type BreachNotification struct {
	Base       `bson:",inline"`
	IncidentID string   `json:"incident_id" bson:"incident_id" validate:"required,len=24,hexadecimal"`
	ArtifactID string   `json:"artifact_id,omitempty" bson:"artifact_id,omitempty" validate:"omitempty,len=24,hexadecimal"`
	Recipients []string `json:"recipients" bson:"recipients" validate:"required,min=1,dive,required"`
	Channel    string   `json:"channel,omitempty" bson:"channel,omitempty" validate:"omitempty,oneof=email sms letter portal"`
	Message    string   `json:"message,omitempty" bson:"message,omitempty"`
}

type BreachNotificationPatch struct {
	Channel *string `json:"channel" bson:"channel,omitempty" validate:"omitempty,oneof=email sms letter portal"`
	Message *string `json:"message" bson:"message,omitempty"`
}

type BreachInvestigation struct {
	Base         `bson:",inline"`
	IncidentID   string   `json:"incident_id" bson:"incident_id" validate:"required,len=24,hexadecimal"`
	Investigator string   `json:"investigator" bson:"investigator" validate:"required,max=200"`
	Findings     string   `json:"findings,omitempty" bson:"findings,omitempty"`
	RootCause    string   `json:"root_cause,omitempty" bson:"root_cause,omitempty"`
	Actions      []string `json:"actions,omitempty" bson:"actions,omitempty"`
}

type BreachInvestigationPatch struct {
	Investigator *string   `json:"investigator" bson:"investigator,omitempty" validate:"omitempty,min=1,max=200"`
	Findings     *string   `json:"findings" bson:"findings,omitempty"`
	RootCause    *string   `json:"root_cause" bson:"root_cause,omitempty"`
	Actions      *[]string `json:"actions" bson:"actions,omitempty"`
}
