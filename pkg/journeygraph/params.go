package journeygraph

import (
	"github.com/travigo/catalogue/pkg/catalogue"
)

const (
	createStopQuery = `MERGE (s:Stop {name: $name}) SET s.latitude = $latitude, s.longitude = $longitude`

	createRoadQuery = `
		MATCH (from:Stop {name: $from})
		MATCH (to:Stop {name: $to})
		MERGE (from)-[r:ROAD]->(to)
		SET r.distance = $distance
	`

	createBusQuery = `MERGE (b:Bus {name: $name}) SET b.type = $type`

	createCallsAtQuery = `
		MATCH (b:Bus {name: $bus})
		MATCH (s:Stop {name: $stop})
		CREATE (b)-[:CALLS_AT {sequence: $sequence}]->(s)
	`
)

func StopParams(transportCatalogue *catalogue.TransportCatalogue) []map[string]any {
	params := []map[string]any{}
	for _, stop := range transportCatalogue.Stops() {
		params = append(params, map[string]any{
			"name":      stop.Name,
			"latitude":  stop.Coordinates.Lat,
			"longitude": stop.Coordinates.Lng,
		})
	}

	return params
}

func RoadParams(transportCatalogue *catalogue.TransportCatalogue) []map[string]any {
	params := []map[string]any{}
	for _, distance := range transportCatalogue.Distances() {
		from := transportCatalogue.GetStop(distance.From)
		to := transportCatalogue.GetStop(distance.To)
		if from == nil || to == nil {
			continue
		}

		params = append(params, map[string]any{
			"from":     from.Name,
			"to":       to.Name,
			"distance": int64(distance.Distance),
		})
	}

	return params
}

func BusParams(bus *catalogue.Bus) map[string]any {
	return map[string]any{
		"name": bus.Name,
		"type": string(bus.Type),
	}
}

// CallsAtParams numbers the stops of a route from 0. Undeclared stops keep
// their place in the numbering but get no relationship.
func CallsAtParams(bus *catalogue.Bus, transportCatalogue *catalogue.TransportCatalogue) []map[string]any {
	params := []map[string]any{}
	for sequence, stopID := range bus.Stops {
		stop := transportCatalogue.GetStop(stopID)
		if stop == nil {
			continue
		}

		params = append(params, map[string]any{
			"bus":      bus.Name,
			"stop":     stop.Name,
			"sequence": int64(sequence),
		})
	}

	return params
}
