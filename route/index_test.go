package route

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	models "enrollment-metrics-report/app/models"
	"enrollment-metrics-report/app/repository"
	"enrollment-metrics-report/app/repository/mocks"
	"enrollment-metrics-report/config"
	FiberApp "enrollment-metrics-report/fiber"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"*"}, ReadTimeout: time.Second}

	t.Run("Metrics endpoint returns six entries", func(t *testing.T) {
		repo := new(mocks.MockEnrollmentRepo)
		repo.On("FindAll", mock.Anything).Return([]models.EnrollmentRecord{
			{TrainingCenter: "Centro de Servicios Financieros", Department: "Cundinamarca", HasGithub: true},
		}, nil)

		app := FiberApp.SetupFiber(cfg)
		SetupRoutes(app, cfg, repo)

		resp, err := app.Test(httptest.NewRequest("GET", "/metrics/scalar", nil))
		require.NoError(t, err)

		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))

		var report []map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.Len(t, report, 6)
		assert.EqualValues(t, 1, report[4]["value"])
		repo.AssertExpectations(t)
	})

	t.Run("Unavailable source surfaces the startup error", func(t *testing.T) {
		app := FiberApp.SetupFiber(cfg)
		SetupRoutes(app, cfg, repository.Unavailable{Err: errors.New("MONGO_URI is not set")})

		resp, err := app.Test(httptest.NewRequest("GET", "/metrics/scalar", nil))
		require.NoError(t, err)

		assert.Equal(t, 500, resp.StatusCode)
		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "MONGO_URI is not set", body["error"])
	})

	t.Run("Health does not touch the source", func(t *testing.T) {
		repo := new(mocks.MockEnrollmentRepo)
		app := FiberApp.SetupFiber(cfg)
		SetupRoutes(app, cfg, repo)

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)

		assert.Equal(t, 200, resp.StatusCode)
		repo.AssertNotCalled(t, "FindAll", mock.Anything)
	})
}
