package route

import (
	healthService "enrollment-metrics-report/app/service/health"
	reportService "enrollment-metrics-report/app/service/report"
	"enrollment-metrics-report/config"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, cfg *config.Config, repo reportService.EnrollmentReader) {
	reports := reportService.NewReportService(repo, cfg.ReadTimeout)
	health := healthService.NewHealthService()

	app.Get("/metrics/scalar", reports.GetScalarMetrics)
	app.Get("/health", health.Health)
}
