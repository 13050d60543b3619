package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMatch(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	doc, err := bson.Marshal(bson.M{
		"name":        "Email Address",
		"description": "contact (primary)",
		"status":      "active",
		"count":       int32(7),
		"purposes":    bson.A{"marketing", "analytics"},
		"timestamp":   ts,
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter bson.M
		want   bool
	}{
		{"empty filter", bson.M{}, true},
		{"equality", bson.M{"status": "active"}, true},
		{"equality miss", bson.M{"status": "draft"}, false},
		{"numeric across widths", bson.M{"count": int64(7)}, true},
		{"array membership", bson.M{"purposes": "analytics"}, true},
		{"missing field equals nil", bson.M{"gone": nil}, true},
		{"missing field", bson.M{"gone": "x"}, false},
		{"ne", bson.M{"status": bson.M{"$ne": "draft"}}, true},
		{"in", bson.M{"status": bson.M{"$in": []string{"draft", "active"}}}, true},
		{"nin", bson.M{"status": bson.M{"$nin": bson.A{"active"}}}, false},
		{"gte date", bson.M{"timestamp": bson.M{"$gte": ts}}, true},
		{"gt date", bson.M{"timestamp": bson.M{"$gt": ts}}, false},
		{"date window", bson.M{"timestamp": bson.M{"$gte": ts.Add(-time.Hour), "$lte": ts.Add(time.Hour)}}, true},
		{"lt number", bson.M{"count": bson.M{"$lt": 10}}, true},
		{"regex case insensitive", bson.M{"name": bson.M{"$regex": "email", "$options": "i"}}, true},
		{"regex case sensitive", bson.M{"name": bson.M{"$regex": "email"}}, false},
		{"primitive regex", bson.M{"name": primitive.Regex{Pattern: "^Email", Options: ""}}, true},
		{"regex over array", bson.M{"purposes": bson.M{"$regex": "^ANALY", "$options": "i"}}, true},
		{"regex over array miss", bson.M{"purposes": bson.M{"$regex": "billing"}}, false},
		{"regex on number", bson.M{"count": bson.M{"$regex": "7"}}, false},
		{"escaped regex", bson.M{"description": bson.M{"$regex": `\(primary\)`}}, true},
		{"exists", bson.M{"gone": bson.M{"$exists": false}}, true},
		{"or", bson.M{"$or": bson.A{bson.M{"name": "x"}, bson.M{"status": "active"}}}, true},
		{"or miss", bson.M{"$or": bson.A{bson.M{"name": "x"}, bson.M{"status": "y"}}}, false},
		{"and", bson.M{"$and": bson.A{bson.M{"status": "active"}, bson.M{"count": 7}}}, true},
		{"anded fields", bson.M{"status": "active", "count": 8}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Match(doc, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatch_Errors(t *testing.T) {
	doc, err := bson.Marshal(bson.M{"name": "x"})
	require.NoError(t, err)

	_, err = Match(doc, bson.M{"$where": "true"})
	assert.Error(t, err)

	_, err = Match(doc, bson.M{"name": bson.M{"$elemMatch": bson.M{}}})
	assert.Error(t, err)

	_, err = Match(doc, bson.M{"name": bson.M{"$regex": "("}})
	assert.Error(t, err)
}
