package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/catalogue/pkg/catalogue"
	"github.com/travigo/catalogue/pkg/stats/calculator"
)

func StopsRouter(router fiber.Router, transportCatalogue *catalogue.TransportCatalogue) {
	router.Get("/:name", getStop(transportCatalogue))
}

func getStop(transportCatalogue *catalogue.TransportCatalogue) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, found := calculator.GetStopInfo(transportCatalogue, nameParam(c))
		if !found {
			c.SendStatus(fiber.StatusNotFound)
			return c.JSON(fiber.Map{
				"error": "Could not find Stop matching Stop Name",
			})
		}

		body, err := marshalGroups(responseGroups(c), stats)
		if err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return sendJSONString(c, body)
	}
}
