package service

import (
	"context"
	"time"

	models "enrollment-metrics-report/app/models"
	"enrollment-metrics-report/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// EnrollmentReader is the data-access side of the report: it returns the
// whole enrollment snapshot, fully materialized.
type EnrollmentReader interface {
	FindAll(ctx context.Context) ([]models.EnrollmentRecord, error)
}

type ReportService struct {
	repo        EnrollmentReader
	readTimeout time.Duration
}

func NewReportService(repo EnrollmentReader, readTimeout time.Duration) *ReportService {
	return &ReportService{repo: repo, readTimeout: readTimeout}
}

// GetScalarMetrics handles GET /metrics/scalar.
func (s *ReportService) GetScalarMetrics(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if s.readTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.readTimeout)
		defer cancel()
	}

	records, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Errorf("error in /metrics/scalar: %v", err)
		return utils.ErrorJSON(c, fiber.StatusInternalServerError, err)
	}

	return utils.NoStoreJSON(c, fiber.StatusOK, Aggregate(records))
}
