package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/gocarina/gocsv"
	"github.com/kr/pretty"
	"github.com/liip/sheriff"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/catalogue/pkg/catalogue"
	"github.com/travigo/catalogue/pkg/stats/calculator"
	"github.com/travigo/catalogue/pkg/util"
	"golang.org/x/exp/slices"
)

type ReportFormat string

const (
	ReportFormatJSON   ReportFormat = "json"
	ReportFormatCSV    ReportFormat = "csv"
	ReportFormatPretty ReportFormat = "pretty"
)

func ParseReportFormat(format string) (ReportFormat, error) {
	switch ReportFormat(format) {
	case ReportFormatJSON, ReportFormatCSV, ReportFormatPretty:
		return ReportFormat(format), nil
	}

	return "", fmt.Errorf("unknown report format %q", format)
}

// CompileFilter compiles a boolean expression over the fields of BusStats.Env
func CompileFilter(filter string) (*vm.Program, error) {
	return expr.Compile(filter, expr.Env((&calculator.BusStats{}).Env()), expr.AsBool())
}

// BuildReport calculates stats for every bus, sorted by name. An empty filter
// keeps every bus.
func BuildReport(transportCatalogue *catalogue.TransportCatalogue, filter string) ([]*calculator.BusStats, error) {
	var program *vm.Program
	if filter != "" {
		compiled, err := CompileFilter(filter)
		if err != nil {
			return nil, fmt.Errorf("compiling filter: %w", err)
		}
		program = compiled
	}

	p := pool.NewWithResults[*calculator.BusStats]()
	p.WithMaxGoroutines(runtime.NumCPU())

	for _, bus := range transportCatalogue.Buses() {
		p.Go(func() *calculator.BusStats {
			return calculator.CalculateBusStats(bus, transportCatalogue)
		})
	}

	rows := p.Wait()
	if rows == nil {
		rows = []*calculator.BusStats{}
	}

	var filterErr error
	if program != nil {
		util.InPlaceFilter(&rows, func(row *calculator.BusStats) bool {
			output, err := expr.Run(program, row.Env())
			if err != nil {
				filterErr = err
				return false
			}

			return output.(bool)
		})
	}
	if filterErr != nil {
		return nil, fmt.Errorf("running filter: %w", filterErr)
	}

	slices.SortStableFunc(rows, func(a, b *calculator.BusStats) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})

	return rows, nil
}

func WriteReport(output io.Writer, rows []*calculator.BusStats, format ReportFormat, groups []string) error {
	switch format {
	case ReportFormatCSV:
		return gocsv.Marshal(rows, output)
	case ReportFormatPretty:
		for _, row := range rows {
			if _, err := pretty.Fprintf(output, "%# v\n", row); err != nil {
				return err
			}
		}
		return nil
	default:
		reduced, err := sheriff.Marshal(&sheriff.Options{
			Groups: groups,
		}, rows)
		if err != nil {
			return err
		}

		encoder := json.NewEncoder(output)
		encoder.SetIndent("", "  ")
		return encoder.Encode(reduced)
	}
}
