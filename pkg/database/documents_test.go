package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/catalogue/pkg/catalogue"
	"github.com/travigo/catalogue/pkg/inputreader"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const testInput = `Stop A: 55.611087, 37.20829, 3900m to B
Stop B: 55.595884, 37.209755, 100m to A
Bus 1: A - B - Missing
`

func testCatalogue(t *testing.T) *catalogue.TransportCatalogue {
	t.Helper()

	transportCatalogue, err := inputreader.ReadCatalogue(strings.NewReader(testInput))
	require.NoError(t, err)

	return transportCatalogue
}

func TestBuildStopDocuments(t *testing.T) {
	documents := BuildStopDocuments(testCatalogue(t))

	require.Len(t, documents, 2)
	assert.Equal(t, &StopDocument{Name: "A", Latitude: 55.611087, Longitude: 37.20829}, documents[0])
}

func TestBuildBusDocumentsSkipsMissingStops(t *testing.T) {
	documents := BuildBusDocuments(testCatalogue(t))

	require.Len(t, documents, 1)
	assert.Equal(t, "ThereAndBack", documents[0].Type)
	assert.Equal(t, []string{"A", "B", "B", "A"}, documents[0].Stops)
}

func TestBuildDistanceDocuments(t *testing.T) {
	documents := BuildDistanceDocuments(testCatalogue(t))

	assert.Equal(t, []*DistanceDocument{
		{From: "A", To: "B", Distance: 3900},
		{From: "B", To: "A", Distance: 100},
	}, documents)
}

func TestWriteModelsUpsertByName(t *testing.T) {
	models := StopWriteModels([]*StopDocument{{Name: "A"}})
	require.Len(t, models, 1)

	updateModel, ok := models[0].(*mongo.UpdateOneModel)
	require.True(t, ok)
	assert.Equal(t, bson.M{"name": "A"}, updateModel.Filter)
	require.NotNil(t, updateModel.Upsert)
	assert.True(t, *updateModel.Upsert)

	distanceModels := DistanceWriteModels([]*DistanceDocument{{From: "A", To: "B", Distance: 1}})
	distanceModel := distanceModels[0].(*mongo.UpdateOneModel)
	assert.Equal(t, bson.M{"from": "A", "to": "B"}, distanceModel.Filter)
}
