package catalogue

import "golang.org/x/exp/slices"

type Distance struct {
	From     StopID
	To       StopID
	Distance int
}

// SetDistance stores the road distance for the from->to direction only.
// Pairs involving an unknown stop are ignored.
func (c *TransportCatalogue) SetDistance(from StopID, to StopID, distance int) {
	if c.GetStop(from) == nil || c.GetStop(to) == nil {
		return
	}

	c.distances[stopPair{From: from, To: to}] = distance
}

// GetDistance returns the from->to distance, falling back to to->from when
// only the reverse direction was declared. Unknown pairs are 0.
func (c *TransportCatalogue) GetDistance(from StopID, to StopID) int {
	if distance, ok := c.distances[stopPair{From: from, To: to}]; ok {
		return distance
	}

	if distance, ok := c.distances[stopPair{From: to, To: from}]; ok {
		return distance
	}

	return 0
}

// Distances returns the declared distances ordered by from and then to stop
func (c *TransportCatalogue) Distances() []Distance {
	distances := make([]Distance, 0, len(c.distances))
	for pair, distance := range c.distances {
		distances = append(distances, Distance{From: pair.From, To: pair.To, Distance: distance})
	}

	slices.SortFunc(distances, func(a, b Distance) int {
		if a.From != b.From {
			return int(a.From) - int(b.From)
		}
		return int(a.To) - int(b.To)
	})

	return distances
}
