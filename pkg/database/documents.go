package database

import (
	"github.com/travigo/catalogue/pkg/catalogue"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type StopDocument struct {
	Name      string  `bson:"name"`
	Latitude  float64 `bson:"latitude"`
	Longitude float64 `bson:"longitude"`
}

type BusDocument struct {
	Name  string   `bson:"name"`
	Type  string   `bson:"type"`
	Stops []string `bson:"stops"`
}

type DistanceDocument struct {
	From     string `bson:"from"`
	To       string `bson:"to"`
	Distance int    `bson:"distance"`
}

func BuildStopDocuments(transportCatalogue *catalogue.TransportCatalogue) []*StopDocument {
	documents := []*StopDocument{}
	for _, stop := range transportCatalogue.Stops() {
		documents = append(documents, &StopDocument{
			Name:      stop.Name,
			Latitude:  stop.Coordinates.Lat,
			Longitude: stop.Coordinates.Lng,
		})
	}

	return documents
}

// BuildBusDocuments lists each bus with the names of its stops. Route entries
// for undeclared stops are left out.
func BuildBusDocuments(transportCatalogue *catalogue.TransportCatalogue) []*BusDocument {
	documents := []*BusDocument{}
	for _, bus := range transportCatalogue.Buses() {
		stops := []string{}
		for _, stopID := range bus.Stops {
			if stop := transportCatalogue.GetStop(stopID); stop != nil {
				stops = append(stops, stop.Name)
			}
		}

		documents = append(documents, &BusDocument{
			Name:  bus.Name,
			Type:  string(bus.Type),
			Stops: stops,
		})
	}

	return documents
}

func BuildDistanceDocuments(transportCatalogue *catalogue.TransportCatalogue) []*DistanceDocument {
	documents := []*DistanceDocument{}
	for _, distance := range transportCatalogue.Distances() {
		from := transportCatalogue.GetStop(distance.From)
		to := transportCatalogue.GetStop(distance.To)
		if from == nil || to == nil {
			continue
		}

		documents = append(documents, &DistanceDocument{
			From:     from.Name,
			To:       to.Name,
			Distance: distance.Distance,
		})
	}

	return documents
}

func upsertModel(filter bson.M, document interface{}) mongo.WriteModel {
	updateModel := mongo.NewUpdateOneModel()
	updateModel.SetFilter(filter)
	updateModel.SetUpdate(bson.M{"$set": document})
	updateModel.SetUpsert(true)

	return updateModel
}

func StopWriteModels(documents []*StopDocument) []mongo.WriteModel {
	models := []mongo.WriteModel{}
	for _, document := range documents {
		models = append(models, upsertModel(bson.M{"name": document.Name}, document))
	}

	return models
}

func BusWriteModels(documents []*BusDocument) []mongo.WriteModel {
	models := []mongo.WriteModel{}
	for _, document := range documents {
		models = append(models, upsertModel(bson.M{"name": document.Name}, document))
	}

	return models
}

func DistanceWriteModels(documents []*DistanceDocument) []mongo.WriteModel {
	models := []mongo.WriteModel{}
	for _, document := range documents {
		models = append(models, upsertModel(bson.M{"from": document.From, "to": document.To}, document))
	}

	return models
}
