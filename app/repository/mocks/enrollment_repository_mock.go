package mocks

import (
	"context"

	models "enrollment-metrics-report/app/models"

	"github.com/stretchr/testify/mock"
)

type MockEnrollmentRepo struct {
	mock.Mock
}

func (m *MockEnrollmentRepo) FindAll(ctx context.Context) ([]models.EnrollmentRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EnrollmentRecord), args.Error(1)
}
