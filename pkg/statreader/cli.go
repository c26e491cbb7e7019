package statreader

import (
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "Answer a stream of catalogue requests",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "file",
				Usage: "request stream to read instead of stdin",
			},
		},
		Action: func(c *cli.Context) error {
			var input io.Reader = os.Stdin

			if c.String("file") != "" {
				file, err := os.Open(c.String("file"))
				if err != nil {
					return err
				}
				defer file.Close()

				input = file
			}

			transportCatalogue, err := ProcessStream(input, os.Stdout)
			if err != nil {
				return err
			}

			log.Debug().
				Int("stops", len(transportCatalogue.Stops())).
				Int("buses", len(transportCatalogue.Buses())).
				Msg("Processed request stream")

			return nil
		},
	}
}
