package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/travigo/catalogue/pkg/api"
	"github.com/travigo/catalogue/pkg/config"
	"github.com/travigo/catalogue/pkg/dataexporter"
	"github.com/travigo/catalogue/pkg/statreader"
	statscli "github.com/travigo/catalogue/pkg/stats/cli"
	"github.com/urfave/cli/v2"
)

func main() {
	cfg := config.Default()
	cfg.Log.Apply()

	app := &cli.App{
		Name:        "catalogue",
		Description: "Transport catalogue of stops, buses and road distances",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "yaml configuration file",
				EnvVars: []string{"TRAVIGO_CONFIG"},
			},
		},

		Before: func(c *cli.Context) error {
			loaded, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			cfg = *loaded
			cfg.Log.Apply()

			return nil
		},

		Commands: []*cli.Command{
			statreader.RegisterCLI(),
			statscli.RegisterCLI(&cfg),
			api.RegisterCLI(&cfg),
			dataexporter.RegisterCLI(&cfg),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
