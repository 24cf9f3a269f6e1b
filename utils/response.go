package utils

import "github.com/gofiber/fiber/v2"

// NoStoreJSON writes body as "application/json; charset=utf-8" with caching disabled.
func NoStoreJSON(c *fiber.Ctx, status int, body interface{}) error {
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(status).JSON(body, fiber.MIMEApplicationJSONCharsetUTF8)
}

// ErrorJSON writes {"error": err.Error()} with the given status.
func ErrorJSON(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{"error": err.Error()}, fiber.MIMEApplicationJSONCharsetUTF8)
}
