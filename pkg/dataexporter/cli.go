package dataexporter

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/catalogue/pkg/catalogue"
	"github.com/travigo/catalogue/pkg/config"
	"github.com/travigo/catalogue/pkg/database"
	"github.com/travigo/catalogue/pkg/inputreader"
	"github.com/travigo/catalogue/pkg/journeygraph"
	"github.com/urfave/cli/v2"
)

func loadInput(c *cli.Context, cfg *config.AppConfig) (*catalogue.TransportCatalogue, error) {
	input := cfg.Input
	if c.String("input") != "" {
		input = c.String("input")
	}
	if input == "" {
		return nil, fmt.Errorf("no catalogue input given")
	}

	return inputreader.ReadCatalogueFile(input)
}

func RegisterCLI(cfg *config.AppConfig) *cli.Command {
	inputFlag := &cli.StringFlag{
		Name:  "input",
		Usage: "catalogue input file",
	}

	return &cli.Command{
		Name:  "export",
		Usage: "Export a catalogue into external stores",
		Subcommands: []*cli.Command{
			{
				Name:  "mongo",
				Usage: "upsert stops, buses and distances into MongoDB",
				Flags: []cli.Flag{
					inputFlag,
				},
				Action: func(c *cli.Context) error {
					transportCatalogue, err := loadInput(c, cfg)
					if err != nil {
						return err
					}

					if err := database.ConnectMongoDB(cfg.MongoDB); err != nil {
						return err
					}
					defer database.Disconnect(context.Background())

					return database.ExportCatalogue(c.Context, transportCatalogue, cfg.MongoDB.BatchSize)
				},
			},
			{
				Name:  "neo4j",
				Usage: "replace the Neo4j graph with the catalogue's stops, roads and buses",
				Flags: []cli.Flag{
					inputFlag,
				},
				Action: func(c *cli.Context) error {
					transportCatalogue, err := loadInput(c, cfg)
					if err != nil {
						return err
					}

					exporter, err := journeygraph.Connect(c.Context, cfg.Neo4j)
					if err != nil {
						return err
					}
					defer exporter.Close(context.Background())

					if err := exporter.Export(c.Context, transportCatalogue); err != nil {
						return err
					}

					log.Info().Str("database", cfg.Neo4j.Database).Msg("Graph export complete")

					return nil
				},
			},
		},
	}
}
