package catalogue

type BusID int

type RouteType string

const (
	RouteTypeRing         RouteType = "Ring"
	RouteTypeThereAndBack RouteType = "ThereAndBack"
)

// Bus is a named route. Stops holds the full travelled sequence, so a there
// and back route already includes its return leg. Entries may be NoStop.
type Bus struct {
	ID    BusID
	Name  string
	Stops []StopID
	Type  RouteType
}
