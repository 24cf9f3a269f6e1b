package fiberapp

import (
	"enrollment-metrics-report/config"
	"enrollment-metrics-report/middleware"
	"enrollment-metrics-report/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func SetupFiber(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "enrollment-metrics-report",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(middleware.NoStore())
	for _, h := range middleware.CORS(cfg.AllowedOrigins) {
		app.Use(h)
	}

	return app
}

// errorHandler keeps every error response in the {"error": ...} shape.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return utils.ErrorJSON(c, code, err)
}
