package model

// DataCatalogue groups discovered data elements for a business domain.
type DataCatalogue struct {
	Base        `bson:",inline"`
	Lifecycle   `bson:",inline"`
	Name        string   `json:"name" bson:"name" validate:"required,max=200"`
	Description string   `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,max=2000"`
	Owner       string   `json:"owner,omitempty" bson:"owner,omitempty"`
	Entries     []string `json:"entries,omitempty" bson:"entries,omitempty"`
	Categories  []string `json:"categories,omitempty" bson:"categories,omitempty"`
}

type DataCataloguePatch struct {
	Name        *string   `json:"name" bson:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string   `json:"description" bson:"description,omitempty" validate:"omitempty,max=2000"`
	Owner       *string   `json:"owner" bson:"owner,omitempty"`
	Entries     *[]string `json:"entries" bson:"entries,omitempty"`
	Categories  *[]string `json:"categories" bson:"categories,omitempty"`
	Status      *string   `json:"status" bson:"status,omitempty"`
}
