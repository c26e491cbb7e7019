package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/catalogue/pkg/api/routes"
	"github.com/travigo/catalogue/pkg/cachedresults"
	"github.com/travigo/catalogue/pkg/catalogue"
)

// NewApp builds the web API over a loaded catalogue. resultsCache may be nil.
func NewApp(transportCatalogue *catalogue.TransportCatalogue, resultsCache *cachedresults.Cache) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.BusesRouter(group.Group("/buses"), transportCatalogue, resultsCache)
	routes.StopsRouter(group.Group("/stops"), transportCatalogue)

	return webApp
}

func SetupServer(listen string, transportCatalogue *catalogue.TransportCatalogue, resultsCache *cachedresults.Cache) error {
	return NewApp(transportCatalogue, resultsCache).Listen(listen)
}
