package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"consentadmin/internal/consent/model"
	"consentadmin/internal/consent/repository"
	"consentadmin/internal/consent/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestConsentChangeService_InsightsInProcess(t *testing.T) {
	ctx := context.Background()
	svc := NewConsentChangeService(loadEntity(t, model.EntityConsentChange), repository.NewMemoryStore(), 0)

	empty, err := svc.Insights(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.TotalChanges)
	assert.NotNil(t, empty.ChangesByType)

	for _, ct := range []string{"revoked", "granted", "revoked"} {
		_, err := svc.Create(ctx, &model.ConsentChange{ConsentID: "c1", ChangeType: ct})
		require.NoError(t, err)
	}

	got, err := svc.Insights(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.TotalChanges)
	assert.Equal(t, []model.ChangeTypeCount{{Type: "granted", Count: 1}, {Type: "revoked", Count: 2}}, got.ChangesByType)
}

func TestConsentChangeService_InsightsScanCap(t *testing.T) {
	ctx := context.Background()
	var logs bytes.Buffer
	prevLogger, prevLimit := util.Logger, insightsScanLimit
	util.Logger = util.NewLogger(&logs, "warn")
	insightsScanLimit = 2
	t.Cleanup(func() {
		util.Logger = prevLogger
		insightsScanLimit = prevLimit
	})

	svc := NewConsentChangeService(loadEntity(t, model.EntityConsentChange), repository.NewMemoryStore(), 0)
	for _, ct := range []string{"granted", "granted", "revoked", "revoked", "revoked"} {
		_, err := svc.Create(ctx, &model.ConsentChange{ConsentID: "c1", ChangeType: ct})
		require.NoError(t, err)
	}

	got, err := svc.Insights(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.TotalChanges)
	assert.True(t, got.Sampled)
	var scanned int64
	for _, c := range got.ChangesByType {
		scanned += c.Count
	}
	assert.Equal(t, int64(2), scanned)
	assert.Contains(t, logs.String(), "consent change insights sampled")

	insightsScanLimit = 10
	got, err = svc.Insights(ctx)
	require.NoError(t, err)
	assert.False(t, got.Sampled)
	assert.Equal(t, []model.ChangeTypeCount{{Type: "granted", Count: 2}, {Type: "revoked", Count: 3}}, got.ChangesByType)
}

func TestConsentChangeService_InsightsAggregate(t *testing.T) {
	ctx := context.Background()
	coll := new(MockCollection)
	svc := NewConsentChangeService(loadEntity(t, model.EntityConsentChange), repository.NewMemoryStore(), 0)
	svc.Coll = coll

	doc, err := bson.Marshal(bson.M{
		"_id":           nil,
		"total_changes": int32(4),
		"changes_by_type": bson.A{
			bson.M{"type": "granted", "count": int32(3)},
			bson.M{"type": "revoked", "count": int32(1)},
		},
	})
	require.NoError(t, err)
	coll.On("Aggregate", mock.Anything, changeInsightsPipeline).Return([]bson.Raw{doc}, nil).Once()

	got, err := svc.Insights(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.TotalChanges)
	assert.Len(t, got.ChangesByType, 2)
	assert.Equal(t, model.ChangeTypeCount{Type: "granted", Count: 3}, got.ChangesByType[0])

	coll.On("Aggregate", mock.Anything, changeInsightsPipeline).Return([]bson.Raw{}, nil).Once()
	got, err = svc.Insights(ctx)
	require.NoError(t, err)
	assert.Zero(t, got.TotalChanges)
	assert.Empty(t, got.ChangesByType)

	coll.AssertExpectations(t)
}

func TestConsentChangeService_Filter(t *testing.T) {
	ctx := context.Background()
	svc := NewConsentChangeService(loadEntity(t, model.EntityConsentChange), repository.NewMemoryStore(), 0)

	day := func(d int) time.Time { return time.Date(2024, 3, d, 10, 0, 0, 0, time.UTC) }
	for _, c := range []model.ConsentChange{
		{ConsentID: "a", ChangeType: "granted", ChangeTimestamp: day(1)},
		{ConsentID: "a", ChangeType: "revoked", ChangeTimestamp: day(5)},
		{ConsentID: "b", ChangeType: "granted", ChangeTimestamp: day(9)},
	} {
		c := c
		_, err := svc.Create(ctx, &c)
		require.NoError(t, err)
	}

	count := func(req model.ConsentChangeSearchReq) int {
		filter, err := req.Filter()
		require.NoError(t, err)
		docs, err := svc.Search(ctx, filter)
		require.NoError(t, err)
		return len(docs)
	}

	assert.Equal(t, 2, count(model.ConsentChangeSearchReq{ConsentID: "a"}))
	assert.Equal(t, 2, count(model.ConsentChangeSearchReq{ChangeType: "granted"}))
	assert.Equal(t, 1, count(model.ConsentChangeSearchReq{StartDate: "2024-03-02", EndDate: "2024-03-08"}))
	assert.Equal(t, 2, count(model.ConsentChangeSearchReq{StartDate: "2024-03-05T00:00:00Z"}))
	assert.Equal(t, 0, count(model.ConsentChangeSearchReq{ConsentID: "b", ChangeType: "revoked"}))
}

func TestConsentChangeService_DefaultTimestamp(t *testing.T) {
	ctx := context.Background()
	svc := NewConsentChangeService(loadEntity(t, model.EntityConsentChange), repository.NewMemoryStore(), 0)

	id, err := svc.Create(ctx, &model.ConsentChange{ConsentID: "a", ChangeType: "granted"})
	require.NoError(t, err)
	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.ChangeTimestamp.Equal(got.CreatedAt))
}
