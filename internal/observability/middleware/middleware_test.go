package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizqunbw/rizqu-moneytracker/internal/observability/middleware"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	t.Run("generates an id when none is supplied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		assert.NotEmpty(t, resp.Header.Get(middleware.HeaderRequestID))
	})

	t.Run("echoes a caller-supplied id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.HeaderRequestID, "client-id-123")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, "client-id-123", resp.Header.Get(middleware.HeaderRequestID))
	})
}

func TestLoggerPassesRequestThrough(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
}
