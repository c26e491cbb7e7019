package inputreader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/travigo/catalogue/pkg/catalogue"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		name      string
		route     string
		routeType catalogue.RouteType
		stops     []string
	}{
		{
			name:      "ring",
			route:     " A > B > C",
			routeType: catalogue.RouteTypeRing,
			stops:     []string{"A", "B", "C"},
		},
		{
			name:      "closed ring",
			route:     "Biryulyovo Zapadnoye > Biryusinka > Universam > Biryulyovo Zapadnoye",
			routeType: catalogue.RouteTypeRing,
			stops:     []string{"Biryulyovo Zapadnoye", "Biryusinka", "Universam", "Biryulyovo Zapadnoye"},
		},
		{
			name:      "there and back",
			route:     " A - B - C",
			routeType: catalogue.RouteTypeThereAndBack,
			stops:     []string{"A", "B", "C", "B", "A"},
		},
		{
			name:      "there and back single stop",
			route:     " A ",
			routeType: catalogue.RouteTypeThereAndBack,
			stops:     []string{"A"},
		},
		{
			name:      "ring wins over dash",
			route:     "Naro-Fominsk > Odintsovo",
			routeType: catalogue.RouteTypeRing,
			stops:     []string{"Naro-Fominsk", "Odintsovo"},
		},
		{
			name:      "empty",
			route:     "   ",
			routeType: catalogue.RouteTypeThereAndBack,
			stops:     nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			routeType, stops := ParseRoute(test.route)

			assert.Equal(t, test.routeType, routeType)
			assert.Equal(t, test.stops, stops)
		})
	}
}
