package inputreader

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/travigo/catalogue/pkg/catalogue"
)

func ReadCatalogueFile(path string) (*catalogue.TransportCatalogue, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalogue input: %w", err)
	}
	defer file.Close()

	log.Info().Str("path", path).Msg("Loading catalogue")

	return ReadCatalogue(file)
}
