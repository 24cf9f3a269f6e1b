package middleware

import "github.com/gofiber/fiber/v2"

// NoStore disables HTTP caching for every response.
func NoStore() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-store")
		return c.Next()
	}
}
