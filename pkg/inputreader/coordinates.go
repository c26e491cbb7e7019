package inputreader

import (
	"strconv"
	"strings"

	"github.com/travigo/catalogue/pkg/geo"
	"github.com/travigo/catalogue/pkg/util"
)

// ParseCoordinates reads the leading "<lat>, <lng>" pair of a stop
// description. Anything after a second comma is ignored. Malformed input
// gives geo.NoCoordinates.
func ParseCoordinates(s string) geo.Coordinates {
	comma := strings.IndexByte(s, ',')
	if comma == -1 {
		return geo.NoCoordinates()
	}

	latText := s[:comma]
	lngText := s[comma+1:]
	if next := strings.IndexByte(lngText, ','); next != -1 {
		lngText = lngText[:next]
	}

	lat, err := strconv.ParseFloat(util.Trim(latText), 64)
	if err != nil {
		return geo.NoCoordinates()
	}
	lng, err := strconv.ParseFloat(util.Trim(lngText), 64)
	if err != nil {
		return geo.NoCoordinates()
	}

	return geo.Coordinates{Lat: lat, Lng: lng}
}
