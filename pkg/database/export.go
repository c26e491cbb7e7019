package database

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/catalogue/pkg/catalogue"
	"github.com/travigo/catalogue/pkg/util"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ExportCatalogue upserts the catalogue's stops, buses and distances into
// their collections, batchSize writes per BulkWrite
func ExportCatalogue(ctx context.Context, transportCatalogue *catalogue.TransportCatalogue, batchSize int) error {
	if err := CreateIndexes(ctx); err != nil {
		return fmt.Errorf("creating indexes: %w", err)
	}

	exports := []struct {
		collection string
		models     []mongo.WriteModel
	}{
		{StopsCollection, StopWriteModels(BuildStopDocuments(transportCatalogue))},
		{BusesCollection, BusWriteModels(BuildBusDocuments(transportCatalogue))},
		{DistancesCollection, DistanceWriteModels(BuildDistanceDocuments(transportCatalogue))},
	}

	for _, export := range exports {
		log.Info().Str("collection", export.collection).Msg("Exporting catalogue into Mongo")

		written, err := bulkWriteBatches(ctx, GetCollection(export.collection), export.models, batchSize)
		if err != nil {
			return fmt.Errorf("writing %s: %w", export.collection, err)
		}

		log.Info().Msg(" - Written to MongoDB")
		log.Info().Msgf(" - %d upserts", written)
	}

	return nil
}

func bulkWriteBatches(ctx context.Context, collection *mongo.Collection, models []mongo.WriteModel, batchSize int) (uint64, error) {
	var written uint64

	p := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(runtime.NumCPU())

	for _, batch := range util.Batch(models, batchSize) {
		p.Go(func(ctx context.Context) error {
			_, err := collection.BulkWrite(ctx, batch, &options.BulkWriteOptions{})
			if err != nil {
				return err
			}

			atomic.AddUint64(&written, uint64(len(batch)))
			return nil
		})
	}

	err := p.Wait()

	return written, err
}
