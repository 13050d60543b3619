package repository

import (
	"strings"

	"consentadmin/internal/consent/registry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IndexModels builds the secondary indexes an entity declares.
// Names follow idx_<collection>_<key>_<key>.
func IndexModels(e *registry.Entity) []mongo.IndexModel {
	models := make([]mongo.IndexModel, 0, len(e.Indexes))
	for _, idx := range e.Indexes {
		if len(idx.Keys) == 0 {
			continue
		}
		keys := bson.D{}
		for _, k := range idx.Keys {
			keys = append(keys, bson.E{Key: k, Value: 1})
		}
		opts := options.Index().SetName("idx_" + e.Collection + "_" + strings.Join(idx.Keys, "_"))
		if idx.Unique {
			opts.SetUnique(true)
		}
		models = append(models, mongo.IndexModel{Keys: keys, Options: opts})
	}
	return models
}
