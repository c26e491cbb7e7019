package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/travigo/catalogue/pkg/config"
	"github.com/travigo/catalogue/pkg/inputreader"
	"github.com/travigo/catalogue/pkg/stats"
	"github.com/urfave/cli/v2"
)

func RegisterCLI(cfg *config.AppConfig) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Provides route statistics reports",
		Subcommands: []*cli.Command{
			{
				Name:  "report",
				Usage: "print statistics for every bus in the catalogue",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "input",
						Usage: "catalogue input file",
					},
					&cli.StringFlag{
						Name:  "filter",
						Usage: "boolean expression selecting buses, eg. 'Curvature > 1.2'",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: string(stats.ReportFormatJSON),
						Usage: "json, csv or pretty",
					},
					&cli.BoolFlag{
						Name:  "detailed",
						Usage: "include detailed fields in json output",
					},
				},
				Action: func(c *cli.Context) error {
					format, err := stats.ParseReportFormat(c.String("format"))
					if err != nil {
						return err
					}

					input := cfg.Input
					if c.String("input") != "" {
						input = c.String("input")
					}
					if input == "" {
						return fmt.Errorf("no catalogue input given")
					}

					transportCatalogue, err := inputreader.ReadCatalogueFile(input)
					if err != nil {
						return err
					}

					rows, err := stats.BuildReport(transportCatalogue, c.String("filter"))
					if err != nil {
						return err
					}

					log.Info().Int("buses", len(rows)).Str("format", string(format)).Msg("Writing report")

					groups := []string{"basic"}
					if c.Bool("detailed") {
						groups = append(groups, "detailed")
					}

					return stats.WriteReport(os.Stdout, rows, format, groups)
				},
			},
		},
	}
}
