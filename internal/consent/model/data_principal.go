package model

// DataPrincipal is the end user whose personal data is processed.
// It has no lifecycle status.
type DataPrincipal struct {
	Base      `bson:",inline"`
	Name      string `json:"name" bson:"name" validate:"required,max=200"`
	Email     string `json:"email" bson:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,max=32"`
	PersonaID string `json:"persona_id,omitempty" bson:"persona_id,omitempty"`
}

type DataPrincipalPatch struct {
	Name      *string `json:"name" bson:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email     *string `json:"email" bson:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone" bson:"phone,omitempty" validate:"omitempty,max=32"`
	PersonaID *string `json:"persona_id" bson:"persona_id,omitempty"`
}
