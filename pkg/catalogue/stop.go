package catalogue

import "github.com/travigo/catalogue/pkg/geo"

// StopID is a stable handle into the catalogue's stop arena
type StopID int

// NoStop marks a reference to a stop name that was never declared
const NoStop StopID = -1

type Stop struct {
	ID          StopID
	Name        string
	Coordinates geo.Coordinates
}
