package statreader

import (
	"fmt"
	"io"
	"strings"

	"github.com/travigo/catalogue/pkg/catalogue"
	"github.com/travigo/catalogue/pkg/stats/calculator"
)

const (
	stopRequestPrefix = "Stop "
	busRequestPrefix  = "Bus "
)

// ParseAndPrintStat answers a single "Bus <name>" or "Stop <name>" request.
// Other requests are ignored.
func ParseAndPrintStat(transportCatalogue *catalogue.TransportCatalogue, request string, output io.Writer) error {
	switch {
	case strings.HasPrefix(request, stopRequestPrefix):
		return printStopInfo(transportCatalogue, strings.TrimPrefix(request, stopRequestPrefix), output)
	case strings.HasPrefix(request, busRequestPrefix):
		return printBusInfo(transportCatalogue, strings.TrimPrefix(request, busRequestPrefix), output)
	}

	return nil
}

func printBusInfo(transportCatalogue *catalogue.TransportCatalogue, busName string, output io.Writer) error {
	stats, found := calculator.GetBusInfo(transportCatalogue, busName)
	if !found {
		_, err := fmt.Fprintf(output, "Bus %s: not found\n", busName)
		return err
	}

	_, err := fmt.Fprintf(output, "Bus %s: %d stops on route, %d unique stops, %s route length, %s curvature\n",
		stats.Name,
		stats.StopsCount,
		stats.UniqueStopsCount,
		formatNumber(float64(stats.RouteLength)),
		formatNumber(float64(stats.Curvature)),
	)
	return err
}

func printStopInfo(transportCatalogue *catalogue.TransportCatalogue, stopName string, output io.Writer) error {
	stats, found := calculator.GetStopInfo(transportCatalogue, stopName)
	if !found {
		_, err := fmt.Fprintf(output, "Stop %s: not found\n", stopName)
		return err
	}

	if len(stats.Buses) == 0 {
		_, err := fmt.Fprintf(output, "Stop %s: no buses\n", stats.Name)
		return err
	}

	_, err := fmt.Fprintf(output, "Stop %s: buses %s\n", stats.Name, strings.Join(stats.Buses, " "))
	return err
}

// formatNumber prints six significant digits
func formatNumber(value float64) string {
	return fmt.Sprintf("%.6g", value)
}
