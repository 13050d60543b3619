package model

type App struct {
	Base        `bson:",inline"`
	Lifecycle   `bson:",inline"`
	Name        string `json:"name" bson:"name" validate:"required,max=200"`
	Description string `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,max=2000"`
}

type AppPatch struct {
	Name        *string `json:"name" bson:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" bson:"description,omitempty" validate:"omitempty,max=2000"`
	Status      *string `json:"status" bson:"status,omitempty"`
}

type Persona struct {
	Base        `bson:",inline"`
	Lifecycle   `bson:",inline"`
	Name        string            `json:"name" bson:"name" validate:"required,max=200"`
	Description string            `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,max=2000"`
	Attributes  map[string]string `json:"attributes,omitempty" bson:"attributes,omitempty"`
}

type PersonaPatch struct {
	Name        *string            `json:"name" bson:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string            `json:"description" bson:"description,omitempty" validate:"omitempty,max=2000"`
	Attributes  *map[string]string `json:"attributes" bson:"attributes,omitempty"`
	Status      *string            `json:"status" bson:"status,omitempty"`
}
