package model

// CollectionPoint is a place (form, banner, API) where consent is captured.
type CollectionPoint struct {
	Base         `bson:",inline"`
	Lifecycle    `bson:",inline"`
	Name         string   `json:"name" bson:"name" validate:"required,max=200"`
	Description  string   `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,max=2000"`
	AppID        string   `json:"app_id,omitempty" bson:"app_id,omitempty" validate:"omitempty,len=24,hexadecimal"`
	DataElements []string `json:"data_elements,omitempty" bson:"data_elements,omitempty"`
	Purposes     []string `json:"purposes,omitempty" bson:"purposes,omitempty" validate:"omitempty,dive,required"`
}

type CollectionPointPatch struct {
	Name         *string   `json:"name" bson:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description  *string   `json:"description" bson:"description,omitempty" validate:"omitempty,max=2000"`
	AppID        *string   `json:"app_id" bson:"app_id,omitempty" validate:"omitempty,len=24,hexadecimal"`
	DataElements *[]string `json:"data_elements" bson:"data_elements,omitempty"`
	Purposes     *[]string `json:"purposes" bson:"purposes,omitempty"`
	Status       *string   `json:"status" bson:"status,omitempty"`
}
