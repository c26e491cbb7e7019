package api

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/catalogue/pkg/cachedresults"
	"github.com/travigo/catalogue/pkg/config"
	"github.com/travigo/catalogue/pkg/inputreader"
	"github.com/travigo/catalogue/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI(cfg *config.AppConfig) *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the catalogue web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen target for the web server",
					},
					&cli.StringFlag{
						Name:  "input",
						Usage: "catalogue input file",
					},
				},
				Action: func(c *cli.Context) error {
					listen := cfg.API.Listen
					if c.String("listen") != "" {
						listen = c.String("listen")
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

					var resultsCache *cachedresults.Cache
					if cfg.Redis.Enabled {
						if err := redis_client.Connect(cfg.Redis); err != nil {
							return err
						}

						expiration, err := cfg.Redis.ExpirationDuration()
						if err != nil {
							return err
						}

						namespace, err := cachedresults.InputNamespace(input)
						if err != nil {
							return err
						}

						resultsCache = &cachedresults.Cache{}
						resultsCache.Setup(redis_client.Client, namespace, expiration)
					}

					log.Info().
						Str("listen", listen).
						Int("stops", len(transportCatalogue.Stops())).
						Int("buses", len(transportCatalogue.Buses())).
						Msg("Starting web API")

					return SetupServer(listen, transportCatalogue, resultsCache)
				},
			},
		},
	}
}
