package repository

import (
	"context"

	models "enrollment-metrics-report/app/models"
)

// Unavailable stands in for a data source whose connection could not be set
// up at startup. Every read fails with the startup error.
type Unavailable struct {
	Err error
}

func (u Unavailable) FindAll(ctx context.Context) ([]models.EnrollmentRecord, error) {
	return nil, u.Err
}
