package model

import (
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// SearchRequest is bound from query parameters. Filter only includes
// the parameters that were supplied.
type SearchRequest interface {
	Validate() error
	Filter() (bson.M, error)
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate accepts RFC 3339 timestamps and plain dates.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &ErrorDetail{Code: CodeBadRequest, Message: fmt.Sprintf("invalid date %q", s)}
}

// containsText matches s anywhere in the field, ignoring case.
func containsText(s string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}
}

type ConsentSearchReq struct {
	Date   string `query:"date"`
	Type   string `query:"type" validate:"omitempty,max=50"`
	Status string `query:"status" validate:"omitempty,oneof=granted revoked expired"`
}

func (r *ConsentSearchReq) Validate() error {
	return ValidateRecord(r)
}

func (r *ConsentSearchReq) Filter() (bson.M, error) {
	filter := bson.M{}
	if r.Date != "" {
		t, err := ParseDate(r.Date)
		if err != nil {
			return nil, err
		}
		filter["timestamp"] = bson.M{"$gte": t}
	}
	if r.Type != "" {
		filter["consent_type"] = r.Type
	}
	if r.Status != "" {
		filter["status"] = r.Status
	}
	return filter, nil
}

type DataSourceSearchReq struct {
	Name   string `query:"name" validate:"omitempty,max=200"`
	Type   string `query:"type" validate:"omitempty,max=50"`
	Status string `query:"status" validate:"omitempty,oneof=draft active inactive archived"`
}

func (r *DataSourceSearchReq) Validate() error {
	return ValidateRecord(r)
}

func (r *DataSourceSearchReq) Filter() (bson.M, error) {
	filter := bson.M{}
	if r.Name != "" {
		filter["name"] = r.Name
	}
	if r.Type != "" {
		filter["type"] = r.Type
	}
	if r.Status != "" {
		filter["status"] = r.Status
	}
	return filter, nil
}

// DataElementSearchReq searches name and description as literal text.
type DataElementSearchReq struct {
	Query  string `query:"q" validate:"omitempty,max=200"`
	Status string `query:"status" validate:"omitempty,oneof=draft published active archived"`
}

func (r *DataElementSearchReq) Validate() error {
	return ValidateRecord(r)
}

func (r *DataElementSearchReq) Filter() (bson.M, error) {
	filter := bson.M{}
	if r.Query != "" {
		filter["$or"] = bson.A{
			bson.M{"name": containsText(r.Query)},
			bson.M{"description": containsText(r.Query)},
		}
	}
	if r.Status != "" {
		filter["status"] = r.Status
	}
	return filter, nil
}

type ConsentChangeSearchReq struct {
	ConsentID  string `query:"consent_id"`
	ChangeType string `query:"change_type" validate:"omitempty,max=50"`
	StartDate  string `query:"start_date"`
	EndDate    string `query:"end_date"`
}

func (r *ConsentChangeSearchReq) Validate() error {
	return ValidateRecord(r)
}

func (r *ConsentChangeSearchReq) Filter() (bson.M, error) {
	filter := bson.M{}
	if r.ConsentID != "" {
		filter["consent_id"] = r.ConsentID
	}
	if r.ChangeType != "" {
		filter["change_type"] = r.ChangeType
	}
	window := bson.M{}
	if r.StartDate != "" {
		t, err := ParseDate(r.StartDate)
		if err != nil {
			return nil, err
		}
		window["$gte"] = t
	}
	if r.EndDate != "" {
		t, err := ParseDate(r.EndDate)
		if err != nil {
			return nil, err
		}
		window["$lte"] = t
	}
	if len(window) > 0 {
		filter["change_timestamp"] = window
	}
	return filter, nil
}

// DataCatalogueSearchReq matches q against the catalogue entries and name.
type DataCatalogueSearchReq struct {
	Query    string `query:"q" validate:"omitempty,max=200"`
	Category string `query:"category" validate:"omitempty,max=100"`
	Status   string `query:"status" validate:"omitempty,oneof=draft published unpublished active inactive"`
}

func (r *DataCatalogueSearchReq) Validate() error {
	return ValidateRecord(r)
}

func (r *DataCatalogueSearchReq) Filter() (bson.M, error) {
	filter := bson.M{}
	if r.Query != "" {
		filter["$or"] = bson.A{
			bson.M{"entries": containsText(r.Query)},
			bson.M{"name": containsText(r.Query)},
		}
	}
	if r.Category != "" {
		filter["categories"] = r.Category
	}
	if r.Status != "" {
		filter["status"] = r.Status
	}
	return filter, nil
}
