package inputreader

import (
	"strings"

	"github.com/travigo/catalogue/pkg/catalogue"
	"github.com/travigo/catalogue/pkg/util"
)

// ParseRoute turns a bus description into its full stop sequence.
// "A > B > A" is a ring and kept as is. "A - B - C" is there and back and
// expanded to A B C B A.
func ParseRoute(route string) (catalogue.RouteType, []string) {
	if strings.IndexByte(route, '>') != -1 {
		return catalogue.RouteTypeRing, util.Split(route, '>')
	}

	stops := util.Split(route, '-')
	if len(stops) == 0 {
		return catalogue.RouteTypeThereAndBack, stops
	}

	results := make([]string, 0, 2*len(stops)-1)
	results = append(results, stops...)
	for i := len(stops) - 2; i >= 0; i-- {
		results = append(results, stops[i])
	}

	return catalogue.RouteTypeThereAndBack, results
}
