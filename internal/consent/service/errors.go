package service

import (
	"errors"
	"fmt"

	"consentadmin/internal/consent/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidID      = errors.New("invalid id")
	ErrNotFound       = errors.New("not found")
	ErrBadRequest     = errors.New("bad request")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrNotImplemented = errors.New("not implemented")
)

// ParseID rejects anything that is not a 24 character hex ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

func badRequest(err error) error {
	var detail *model.ErrorDetail
	if errors.As(err, &detail) {
		return fmt.Errorf("%w: %s", ErrBadRequest, detail.Message)
	}
	return fmt.Errorf("%w: %v", ErrBadRequest, err)
}
