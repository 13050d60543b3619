package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"consentadmin/internal/consent/model"
	"consentadmin/internal/consent/registry"
	"consentadmin/internal/consent/repository"
	"consentadmin/internal/consent/util"

	"go.mongodb.org/mongo-driver/bson"
)

// insightsScanLimit caps the documents read when the store cannot run the
// aggregation itself.
var insightsScanLimit int64 = 10000

var changeInsightsPipeline = bson.A{
	bson.M{"$group": bson.M{"_id": "$change_type", "count": bson.M{"$sum": 1}}},
	bson.M{"$group": bson.M{
		"_id":             nil,
		"total_changes":   bson.M{"$sum": "$count"},
		"changes_by_type": bson.M{"$push": bson.M{"type": "$_id", "count": "$count"}},
	}},
}

type ConsentChangeService struct {
	*Resource[model.ConsentChange, model.ConsentChangePatch, *model.ConsentChange]
}

func NewConsentChangeService(entity *registry.Entity, store repository.Store, listLimit int64) *ConsentChangeService {
	s := &ConsentChangeService{
		Resource: NewResource[model.ConsentChange, model.ConsentChangePatch](entity, store, listLimit),
	}
	s.Hooks.BeforeInsert = func(doc *model.ConsentChange) error {
		if doc.ChangeTimestamp.IsZero() {
			doc.ChangeTimestamp = doc.CreatedAt
		}
		return nil
	}
	return s
}

// Insights counts changes per change type.
func (s *ConsentChangeService) Insights(ctx context.Context) (*model.ChangeInsights, error) {
	raws, err := s.Coll.Aggregate(ctx, changeInsightsPipeline)
	if errors.Is(err, repository.ErrUnsupported) {
		return s.groupInProcess(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := &model.ChangeInsights{ChangesByType: []model.ChangeTypeCount{}}
	if len(raws) == 0 {
		return out, nil
	}
	if err := bson.Unmarshal(raws[0], out); err != nil {
		return nil, fmt.Errorf("decode insights: %w", err)
	}
	return out, nil
}

// groupInProcess reads at most insightsScanLimit changes. The total is
// always counted by the store, so a capped scan shows up as Sampled.
func (s *ConsentChangeService) groupInProcess(ctx context.Context) (*model.ChangeInsights, error) {
	total, err := s.Count(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	raws, err := s.Coll.Find(ctx, bson.M{}, insightsScanLimit)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, raw := range raws {
		changeType, _ := raw.Lookup("change_type").StringValueOK()
		counts[changeType]++
	}

	out := &model.ChangeInsights{
		TotalChanges:  total,
		ChangesByType: make([]model.ChangeTypeCount, 0, len(counts)),
		Sampled:       int64(len(raws)) < total,
	}
	if out.Sampled {
		util.GetLogger().Warn("consent change insights sampled",
			"scanned", len(raws),
			"total", total,
		)
	}
	for t, n := range counts {
		out.ChangesByType = append(out.ChangesByType, model.ChangeTypeCount{Type: t, Count: n})
	}
	sort.Slice(out.ChangesByType, func(i, j int) bool {
		return out.ChangesByType[i].Type < out.ChangesByType[j].Type
	})
	return out, nil
}
