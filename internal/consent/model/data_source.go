package model

type DataSource struct {
	Base          `bson:",inline"`
	Lifecycle     `bson:",inline"`
	Name          string            `json:"name" bson:"name" validate:"required,max=200"`
	Type          string            `json:"type" bson:"type" validate:"required,max=50"`
	Description   string            `json:"description,omitempty" bson:"description,omitempty"`
	Connection    map[string]string `json:"connection,omitempty" bson:"connection,omitempty"`
	CredentialsID string            `json:"credentials_id,omitempty" bson:"credentials_id,omitempty"`
}

type DataSourcePatch struct {
	Name          *string            `json:"name" bson:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Type          *string            `json:"type" bson:"type,omitempty" validate:"omitempty,min=1,max=50"`
	Description   *string            `json:"description" bson:"description,omitempty"`
	Connection    *map[string]string `json:"connection" bson:"connection,omitempty"`
	CredentialsID *string            `json:"credentials_id" bson:"credentials_id,omitempty"`
	Status        *string            `json:"status" bson:"status,omitempty"`
}

// Classifier is a custom data classification rule.
type Classifier struct {
	Base        `bson:",inline"`
	Lifecycle   `bson:",inline"`
	Name        string `json:"name" bson:"name" validate:"required,max=200"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Category    string `json:"category,omitempty" bson:"category,omitempty"`
	Pattern     string `json:"pattern,omitempty" bson:"pattern,omitempty"`
}

type ClassifierPatch struct {
	Name        *string `json:"name" bson:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" bson:"description,omitempty"`
	Category    *string `json:"category" bson:"category,omitempty"`
	Pattern     *string `json:"pattern" bson:"pattern,omitempty"`
	Status      *string `json:"status" bson:"status,omitempty"`
}

type DataElement struct {
	Base        `bson:",inline"`
	Lifecycle   `bson:",inline"`
	Name        string   `json:"name" bson:"name" validate:"required,max=200"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Category    string   `json:"category,omitempty" bson:"category,omitempty"`
	Categories  []string `json:"categories,omitempty" bson:"categories,omitempty"`
	Sensitive   bool     `json:"sensitive" bson:"sensitive"`
}

type DataElementPatch struct {
	Name        *string   `json:"name" bson:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string   `json:"description" bson:"description,omitempty"`
	Category    *string   `json:"category" bson:"category,omitempty"`
	Categories  *[]string `json:"categories" bson:"categories,omitempty"`
	Sensitive   *bool     `json:"sensitive" bson:"sensitive,omitempty"`
	Status      *string   `json:"status" bson:"status,omitempty"`
}
