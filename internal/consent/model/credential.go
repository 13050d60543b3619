package model

// Credential stores access secrets for data sources. Password is
// encrypted at rest. Unreadable marks a record whose password did not
// decrypt under the current key; its Password is then empty.
type Credential struct {
	Base        `bson:",inline"`
	Lifecycle   `bson:",inline"`
	Name        string `json:"name" bson:"name" validate:"required,max=200"`
	Username    string `json:"username" bson:"username" validate:"required,max=200"`
	Password    string `json:"password" bson:"password" validate:"required"`
	Service     string `json:"service,omitempty" bson:"service,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Unreadable  bool   `json:"password_unreadable,omitempty" bson:"-"`
}

type CredentialPatch struct {
	Name        *string `json:"name" bson:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Username    *string `json:"username" bson:"username,omitempty" validate:"omitempty,min=1,max=200"`
	Password    *string `json:"password" bson:"password,omitempty" validate:"omitempty,min=1"`
	Service     *string `json:"service" bson:"service,omitempty"`
	Description *string `json:"description" bson:"description,omitempty"`
	Status      *string `json:"status" bson:"status,omitempty"`
}

type RotateCredentialReq struct {
	Password string `json:"password" validate:"required"`
}

type AttachCredentialReq struct {
	Service string `json:"service" validate:"required,max=200"`
}

type EncryptReq struct {
	Password string `json:"password" validate:"required"`
}

type EncryptResp struct {
	EncryptedPassword string `json:"encrypted_password"`
}

func (r *RotateCredentialReq) Validate() error {
	return ValidateRecord(r)
}

func (r *AttachCredentialReq) Validate() error {
	return ValidateRecord(r)
}

func (r *EncryptReq) Validate() error {
	return ValidateRecord(r)
}
