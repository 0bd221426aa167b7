package handler_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"showcase/internal/handler"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	ok := func(ctx context.Context) error { return nil }
	down := func(ctx context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name           string
		checks         map[string]handler.HealthCheck
		expectedStatus int
		expected       handler.HealthResponse
	}{
		{
			name:           "all healthy",
			checks:         map[string]handler.HealthCheck{"oracle": ok, "redis": ok, "mongo": ok},
			expectedStatus: fiber.StatusOK,
			expected: handler.HealthResponse{Status: "ok", Checks: map[string]string{
				"oracle": "ok", "redis": "ok", "mongo": "ok",
			}},
		},
		{
			name:           "redis down",
			checks:         map[string]handler.HealthCheck{"oracle": ok, "redis": down},
			expectedStatus: fiber.StatusServiceUnavailable,
			expected: handler.HealthResponse{Status: "degraded", Checks: map[string]string{
				"oracle": "ok", "redis": "connection refused",
			}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/healthz", handler.NewHealthHandler(tc.checks, time.Second).Health)

			resp := doRequest(t, app, httptest.NewRequest("GET", "/healthz", nil))

			assert.Equal(t, tc.expectedStatus, resp.StatusCode)
			var body handler.HealthResponse
			decodeBody(t, resp, &body)
			assert.Equal(t, tc.expected, body)
		})
	}
}
