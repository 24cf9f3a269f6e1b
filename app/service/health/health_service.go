package service

import (
	"enrollment-metrics-report/utils"

	"github.com/gofiber/fiber/v2"
)

type HealthService struct{}

func NewHealthService() *HealthService {
	return &HealthService{}
}

// Health answers without touching the data store.
func (h *HealthService) Health(c *fiber.Ctx) error {
	return utils.NoStoreJSON(c, fiber.StatusOK, fiber.Map{"ok": true})
}
