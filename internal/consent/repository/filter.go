package repository

import (
	"bytes"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Match evaluates a query filter against a document the way MongoDB does
// for top-level fields. Supported: equality (including array membership),
// $eq $ne $in $nin $gt $gte $lt $lte $regex/$options $exists, and the
// logical $and and $or.
func Match(doc bson.Raw, filter bson.M) (bool, error) {
	for key, cond := range filter {
		var ok bool
		var err error
		switch key {
		case "$and":
			ok, err = matchAll(doc, cond, true)
		case "$or":
			ok, err = matchAll(doc, cond, false)
		default:
			if strings.HasPrefix(key, "$") {
				return false, fmt.Errorf("unsupported operator %s", key)
			}
			ok, err = matchField(doc, key, cond)
		}
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func matchAll(doc bson.Raw, cond interface{}, all bool) (bool, error) {
	clauses, ok := asSlice(cond)
	if !ok {
		return false, fmt.Errorf("logical operator needs an array, got %T", cond)
	}
	for _, c := range clauses {
		sub, ok := asDoc(c)
		if !ok {
			return false, fmt.Errorf("logical clause must be a document, got %T", c)
		}
		matched, err := Match(doc, sub)
		if err != nil {
			return false, err
		}
		if matched != all {
			return matched, nil
		}
	}
	return all, nil
}

func matchField(doc bson.Raw, key string, cond interface{}) (bool, error) {
	value, lookupErr := doc.LookupErr(key)
	present := lookupErr == nil

	if re, ok := cond.(primitive.Regex); ok {
		return matchRegex(value, present, re.Pattern, re.Options)
	}

	ops, ok := asDoc(cond)
	if !ok || !isOperatorDoc(ops) {
		return equals(value, present, cond)
	}

	for op, arg := range ops {
		var matched bool
		var err error
		switch op {
		case "$eq":
			matched, err = equals(value, present, arg)
		case "$ne":
			matched, err = equals(value, present, arg)
			matched = !matched
		case "$in", "$nin":
			matched, err = in(value, present, arg)
			if op == "$nin" {
				matched = !matched
			}
		case "$gt", "$gte", "$lt", "$lte":
			matched, err = compare(value, present, op, arg)
		case "$regex":
			options, _ := ops["$options"].(string)
			pattern, isString := arg.(string)
			if !isString {
				return false, fmt.Errorf("$regex needs a string, got %T", arg)
			}
			matched, err = matchRegex(value, present, pattern, options)
		case "$options":
			continue
		case "$exists":
			want, _ := arg.(bool)
			matched = present == want
		default:
			return false, fmt.Errorf("unsupported operator %s", op)
		}
		if err != nil || !matched {
			return false, err
		}
	}
	return true, nil
}

func isOperatorDoc(m bson.M) bool {
	if len(m) == 0 {
		return false
	}
	for k := range m {
		if !strings.HasPrefix(k, "$") {
			return false
		}
	}
	return true
}

func toRaw(v interface{}) (bson.RawValue, error) {
	t, data, err := bson.MarshalValue(v)
	if err != nil {
		return bson.RawValue{}, err
	}
	return bson.RawValue{Type: t, Value: data}, nil
}

// equals also matches a scalar against any element of an array field.
func equals(value bson.RawValue, present bool, want interface{}) (bool, error) {
	if !present {
		return want == nil, nil
	}
	w, err := toRaw(want)
	if err != nil {
		return false, err
	}
	if rawEqual(value, w) {
		return true, nil
	}
	if value.Type == bsontype.Array && w.Type != bsontype.Array {
		values, err := value.Array().Values()
		if err != nil {
			return false, err
		}
		for _, v := range values {
			if rawEqual(v, w) {
				return true, nil
			}
		}
	}
	return false, nil
}

func rawEqual(a, b bson.RawValue) bool {
	if x, ok := number(a); ok {
		if y, ok := number(b); ok {
			return x == y
		}
	}
	return a.Type == b.Type && bytes.Equal(a.Value, b.Value)
}

func number(v bson.RawValue) (float64, bool) {
	switch v.Type {
	case bsontype.Double:
		return v.Double(), true
	case bsontype.Int32:
		return float64(v.Int32()), true
	case bsontype.Int64:
		return float64(v.Int64()), true
	}
	return 0, false
}

func in(value bson.RawValue, present bool, arg interface{}) (bool, error) {
	candidates, ok := asSlice(arg)
	if !ok {
		return false, fmt.Errorf("$in needs an array, got %T", arg)
	}
	for _, c := range candidates {
		matched, err := equals(value, present, c)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

func compare(value bson.RawValue, present bool, op string, arg interface{}) (bool, error) {
	if !present {
		return false, nil
	}
	w, err := toRaw(arg)
	if err != nil {
		return false, err
	}

	var cmp int
	if x, ok := number(value); ok {
		y, ok := number(w)
		if !ok {
			return false, nil
		}
		cmp = compareOrdered(x, y)
	} else if value.Type != w.Type {
		return false, nil
	} else {
		switch value.Type {
		case bsontype.DateTime:
			cmp = compareOrdered(value.DateTime(), w.DateTime())
		case bsontype.String:
			cmp = strings.Compare(value.StringValue(), w.StringValue())
		case bsontype.ObjectID:
			a, b := value.ObjectID(), w.ObjectID()
			cmp = bytes.Compare(a[:], b[:])
		default:
			return false, fmt.Errorf("cannot order %s values", value.Type)
		}
	}

	switch op {
	case "$gt":
		return cmp > 0, nil
	case "$gte":
		return cmp >= 0, nil
	case "$lt":
		return cmp < 0, nil
	default:
		return cmp <= 0, nil
	}
}

func compareOrdered[T int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// matchRegex matches a string field, or any string element of an array
// field.
func matchRegex(value bson.RawValue, present bool, pattern, options string) (bool, error) {
	if strings.Contains(options, "i") {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, fmt.Errorf("invalid regex: %w", err)
	}
	if !present {
		return false, nil
	}

	switch value.Type {
	case bsontype.String:
		return re.MatchString(value.StringValue()), nil
	case bsontype.Array:
		values, err := value.Array().Values()
		if err != nil {
			return false, err
		}
		for _, v := range values {
			if v.Type == bsontype.String && re.MatchString(v.StringValue()) {
				return true, nil
			}
		}
	}
	return false, nil
}

func asDoc(v interface{}) (bson.M, bool) {
	switch d := v.(type) {
	case bson.M:
		return d, true
	case map[string]interface{}:
		return bson.M(d), true
	case bson.D:
		m := bson.M{}
		for _, e := range d {
			m[e.Key] = e.Value
		}
		return m, true
	}
	return nil, false
}

func asSlice(v interface{}) ([]interface{}, bool) {
	switch s := v.(type) {
	case bson.A:
		return s, true
	case []interface{}:
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
