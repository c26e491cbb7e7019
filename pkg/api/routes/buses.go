package routes

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/catalogue/pkg/cachedresults"
	"github.com/travigo/catalogue/pkg/catalogue"
	"github.com/travigo/catalogue/pkg/stats/calculator"
	"github.com/travigo/catalogue/pkg/util"
	"golang.org/x/exp/slices"
)

// BusesRouter serves bus statistics. resultsCache may be nil.
func BusesRouter(router fiber.Router, transportCatalogue *catalogue.TransportCatalogue, resultsCache *cachedresults.Cache) {
	router.Get("/", listBuses(transportCatalogue))
	router.Get("/:name", getBus(transportCatalogue, resultsCache))
}

func listBuses(transportCatalogue *catalogue.TransportCatalogue) fiber.Handler {
	return func(c *fiber.Ctx) error {
		busNames := []string{}
		for _, bus := range transportCatalogue.Buses() {
			if !util.ContainsString(busNames, bus.Name) {
				busNames = append(busNames, bus.Name)
			}
		}
		slices.Sort(busNames)

		return c.JSON(busNames)
	}
}

func getBus(transportCatalogue *catalogue.TransportCatalogue, resultsCache *cachedresults.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		busName := nameParam(c)
		groups := responseGroups(c)

		build := func() (string, bool, error) {
			stats, found := calculator.GetBusInfo(transportCatalogue, busName)
			if !found {
				return "", false, nil
			}

			body, err := marshalGroups(groups, stats)
			return body, true, err
		}

		var body string
		var found bool
		var err error
		if resultsCache == nil {
			body, found, err = build()
		} else {
			cacheKey := fmt.Sprintf("bus:%s:%s", strings.Join(groups, ","), busName)
			body, found, err = resultsCache.Get(c.Context(), cacheKey, build)
		}

		if err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if !found {
			c.SendStatus(fiber.StatusNotFound)
			return c.JSON(fiber.Map{
				"error": "Could not find Bus matching Bus Name",
			})
		}

		return sendJSONString(c, body)
	}
}
