package routes

import (
	"encoding/json"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
)

func responseGroups(c *fiber.Ctx) []string {
	if c.QueryBool("detailed", false) {
		return []string{"basic", "detailed"}
	}

	return []string{"basic"}
}

func marshalGroups(groups []string, data interface{}) (string, error) {
	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, data)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(reduced)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

func nameParam(c *fiber.Ctx) string {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Params("name")
	}

	return name
}

func sendJSONString(c *fiber.Ctx, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.SendString(body)
}
