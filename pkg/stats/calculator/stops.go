package calculator

import (
	"github.com/travigo/catalogue/pkg/catalogue"
	"golang.org/x/exp/slices"
)

type StopStats struct {
	Name      string `groups:"basic"`
	Latitude  Metric `groups:"detailed"`
	Longitude Metric `groups:"detailed"`

	// Empty but non-nil when no bus calls at the stop
	Buses []string `groups:"basic"`
}

// GetStopInfo answers a stop query with the sorted names of the buses calling
// at it. The bool is false when no stop has that name.
func GetStopInfo(transportCatalogue *catalogue.TransportCatalogue, stopName string) (*StopStats, bool) {
	stop := transportCatalogue.GetStopByName(stopName)
	if stop == nil {
		return nil, false
	}

	buses := transportCatalogue.GetBusesByStop(stopName)
	slices.Sort(buses)

	return &StopStats{
		Name:      stop.Name,
		Latitude:  Metric(stop.Coordinates.Lat),
		Longitude: Metric(stop.Coordinates.Lng),
		Buses:     buses,
	}, true
}
