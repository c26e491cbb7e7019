package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadius is the mean radius in metres used for stop distances
const EarthRadius = 6371000.0

type Coordinates struct {
	Lat float64
	Lng float64
}

// NoCoordinates is used for stops whose coordinates could not be parsed
func NoCoordinates() Coordinates {
	return Coordinates{Lat: math.NaN(), Lng: math.NaN()}
}

func (c Coordinates) IsValid() bool {
	return !math.IsNaN(c.Lat) && !math.IsNaN(c.Lng)
}

// Point returns the coordinates in orb (lng, lat) order
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// ComputeDistance returns the great-circle distance in metres
func ComputeDistance(from Coordinates, to Coordinates) float64 {
	if from == to {
		return 0
	}

	return orbgeo.DistanceHaversine(from.Point(), to.Point()) * EarthRadius / orb.EarthRadius
}
