package catalogue

type stopPair struct {
	From StopID
	To   StopID
}

// TransportCatalogue holds every stop, bus and road distance.
// It is written once during ingestion and only read afterwards.
type TransportCatalogue struct {
	stops []*Stop
	buses []*Bus

	stopNameToStop map[string]*Stop
	busNameToBus   map[string]*Bus

	distances map[stopPair]int
}

func New() *TransportCatalogue {
	return &TransportCatalogue{
		stopNameToStop: map[string]*Stop{},
		busNameToBus:   map[string]*Bus{},
		distances:      map[stopPair]int{},
	}
}

// AddStop always allocates a new stop. A repeated name re-points the name
// index at the newest stop; older stops stay addressable by ID.
func (c *TransportCatalogue) AddStop(stop Stop) *Stop {
	stop.ID = StopID(len(c.stops))

	ptrStop := &stop
	c.stops = append(c.stops, ptrStop)
	c.stopNameToStop[ptrStop.Name] = ptrStop

	return ptrStop
}

func (c *TransportCatalogue) AddBus(bus Bus) *Bus {
	bus.ID = BusID(len(c.buses))
	bus.Stops = append([]StopID(nil), bus.Stops...)

	ptrBus := &bus
	c.buses = append(c.buses, ptrBus)
	c.busNameToBus[ptrBus.Name] = ptrBus

	return ptrBus
}

func (c *TransportCatalogue) GetStop(id StopID) *Stop {
	if id < 0 || int(id) >= len(c.stops) {
		return nil
	}

	return c.stops[id]
}

func (c *TransportCatalogue) GetBus(id BusID) *Bus {
	if id < 0 || int(id) >= len(c.buses) {
		return nil
	}

	return c.buses[id]
}

func (c *TransportCatalogue) GetStopByName(stopName string) *Stop {
	return c.stopNameToStop[stopName]
}

func (c *TransportCatalogue) GetBusByName(busName string) *Bus {
	return c.busNameToBus[busName]
}

// ResolveStop returns the ID currently indexed under stopName or NoStop
func (c *TransportCatalogue) ResolveStop(stopName string) StopID {
	if stop := c.GetStopByName(stopName); stop != nil {
		return stop.ID
	}

	return NoStop
}

// GetBusesByStop lists the names of the buses calling at stopName in the
// order they were added. Callers sort for display.
func (c *TransportCatalogue) GetBusesByStop(stopName string) []string {
	buses := []string{}

	for _, bus := range c.buses {
		for _, stopID := range bus.Stops {
			stop := c.GetStop(stopID)
			if stop != nil && stop.Name == stopName {
				buses = append(buses, bus.Name)
				break
			}
		}
	}

	return buses
}

// Stops returns every allocated stop in insertion order, including stops
// that were superseded in the name index
func (c *TransportCatalogue) Stops() []*Stop {
	return c.stops
}

func (c *TransportCatalogue) Buses() []*Bus {
	return c.buses
}
