package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// SetFields turns a patch struct into a $set document.
//
// Patch types declare every field as a pointer tagged omitempty, so a nil
// pointer (field absent from the request) is dropped while a pointer to a
// zero value is kept and applied. Fields named in nulls are cleared.
func SetFields(patch interface{}, nulls ...string) (bson.M, error) {
	set := bson.M{}
	if patch != nil {
		raw, err := bson.Marshal(patch)
		if err != nil {
			return nil, fmt.Errorf("encode patch: %w", err)
		}
		if err := bson.Unmarshal(raw, &set); err != nil {
			return nil, fmt.Errorf("decode patch: %w", err)
		}
	}
	for _, field := range nulls {
		set[field] = nil
	}
	return set, nil
}

// NullFields returns the stored names of the patch fields that body sets
// to an explicit JSON null. Keys the patch does not declare are ignored.
func NullFields(patch interface{}, body []byte) ([]string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("body must be a JSON object: %w", err)
	}

	names := patchNames(reflect.TypeOf(patch))
	var nulls []string
	for key, value := range raw {
		if !bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			continue
		}
		if field, ok := names[key]; ok {
			nulls = append(nulls, field)
		}
	}
	sort.Strings(nulls)
	return nulls, nil
}

// patchNames maps json keys to bson names.
func patchNames(t reflect.Type) map[string]string {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	names := map[string]string{}
	if t == nil || t.Kind() != reflect.Struct {
		return names
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		key := tagName(f.Tag.Get("json"))
		field := tagName(f.Tag.Get("bson"))
		if key == "" || key == "-" || field == "" || field == "-" {
			continue
		}
		names[key] = field
	}
	return names
}

// RequiredFields returns the stored names of the record's required
// fields, following inline embedded structs.
func RequiredFields(record interface{}) map[string]bool {
	required := map[string]bool{}
	collectRequired(reflect.TypeOf(record), required)
	return required
}

func collectRequired(t reflect.Type, into map[string]bool) {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		bsonTag := f.Tag.Get("bson")
		if f.Anonymous && strings.Contains(bsonTag, "inline") {
			collectRequired(f.Type, into)
			continue
		}
		field := tagName(bsonTag)
		if field == "" || field == "-" {
			continue
		}
		rules := strings.Split(f.Tag.Get("validate"), ",")
		if len(rules) > 0 && rules[0] == "required" {
			into[field] = true
		}
	}
}

func tagName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	return name
}
