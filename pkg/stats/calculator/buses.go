package calculator

import (
	"github.com/travigo/catalogue/pkg/catalogue"
	"github.com/travigo/catalogue/pkg/geo"
)

type BusStats struct {
	Name string              `groups:"basic" csv:"bus"`
	Type catalogue.RouteType `groups:"detailed" csv:"type"`

	StopsCount       int `groups:"basic" csv:"stops"`
	UniqueStopsCount int `groups:"basic" csv:"unique_stops"`

	RouteLength      Metric `groups:"basic" csv:"route_length"`
	GeographicLength Metric `groups:"detailed" csv:"geographic_length"`
	Curvature        Metric `groups:"basic" csv:"curvature"`

	Stops []string `groups:"detailed" csv:"-"`
}

// Env exposes the stats as plain values for filter expressions
func (b *BusStats) Env() map[string]any {
	return map[string]any{
		"Name":             b.Name,
		"Type":             string(b.Type),
		"StopsCount":       b.StopsCount,
		"UniqueStopsCount": b.UniqueStopsCount,
		"RouteLength":      float64(b.RouteLength),
		"GeographicLength": float64(b.GeographicLength),
		"Curvature":        float64(b.Curvature),
	}
}

func GetStopsCount(bus *catalogue.Bus) int {
	return len(bus.Stops)
}

func GetUniqueStopsCount(bus *catalogue.Bus) int {
	uniqueStops := map[catalogue.StopID]struct{}{}
	for _, stopID := range bus.Stops {
		uniqueStops[stopID] = struct{}{}
	}

	return len(uniqueStops)
}

// GetRouteLength sums the declared road distances between consecutive stops
func GetRouteLength(bus *catalogue.Bus, transportCatalogue *catalogue.TransportCatalogue) float64 {
	var routeLength float64
	for i := 1; i < len(bus.Stops); i++ {
		routeLength += float64(transportCatalogue.GetDistance(bus.Stops[i-1], bus.Stops[i]))
	}

	return routeLength
}

// GetGeographicRouteLength sums the great-circle distances between
// consecutive stops. Segments touching an unknown stop count as 0.
func GetGeographicRouteLength(bus *catalogue.Bus, transportCatalogue *catalogue.TransportCatalogue) float64 {
	var geoLength float64
	for i := 1; i < len(bus.Stops); i++ {
		from := transportCatalogue.GetStop(bus.Stops[i-1])
		to := transportCatalogue.GetStop(bus.Stops[i])
		if from == nil || to == nil {
			continue
		}

		geoLength += geo.ComputeDistance(from.Coordinates, to.Coordinates)
	}

	return geoLength
}

// GetCurvature is not guarded against a zero geographic length
func GetCurvature(routeLength float64, geoLength float64) float64 {
	return routeLength / geoLength
}

func CalculateBusStats(bus *catalogue.Bus, transportCatalogue *catalogue.TransportCatalogue) *BusStats {
	routeLength := GetRouteLength(bus, transportCatalogue)
	geoLength := GetGeographicRouteLength(bus, transportCatalogue)

	stops := make([]string, 0, len(bus.Stops))
	for _, stopID := range bus.Stops {
		if stop := transportCatalogue.GetStop(stopID); stop != nil {
			stops = append(stops, stop.Name)
		}
	}

	return &BusStats{
		Name:             bus.Name,
		Type:             bus.Type,
		StopsCount:       GetStopsCount(bus),
		UniqueStopsCount: GetUniqueStopsCount(bus),
		RouteLength:      Metric(routeLength),
		GeographicLength: Metric(geoLength),
		Curvature:        Metric(GetCurvature(routeLength, geoLength)),
		Stops:            stops,
	}
}

// GetBusInfo answers a bus query. The bool is false when no bus has that name.
func GetBusInfo(transportCatalogue *catalogue.TransportCatalogue, busName string) (*BusStats, bool) {
	bus := transportCatalogue.GetBusByName(busName)
	if bus == nil {
		return nil, false
	}

	return CalculateBusStats(bus, transportCatalogue), true
}
