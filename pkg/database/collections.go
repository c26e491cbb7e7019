package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	StopsCollection     = "stops"
	BusesCollection     = "buses"
	DistancesCollection = "distances"
)

func CreateIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		StopsCollection: {
			{
				Keys: bson.D{{Key: "name", Value: 1}},
			},
		},
		BusesCollection: {
			{
				Keys: bson.D{{Key: "name", Value: 1}},
			},
			{
				Keys: bson.D{{Key: "stops", Value: 1}},
			},
		},
		DistancesCollection: {
			{
				Keys: bson.D{{Key: "from", Value: 1}, {Key: "to", Value: 1}},
			},
		},
	}

	for collectionName, models := range indexes {
		opts := options.CreateIndexes()
		if _, err := GetCollection(collectionName).Indexes().CreateMany(ctx, models, opts); err != nil {
			return err
		}
	}

	return nil
}
