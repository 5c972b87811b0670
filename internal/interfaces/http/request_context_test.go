package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Inventario-console/internal/interfaces/http"
)

func TestRequestContext_DeadlineAndCancelOnReturn(t *testing.T) {
	var captured context.Context
	app := fiber.New()
	app.Use(apphttp.RequestContext(2 * time.Second))
	app.Get("/", func(c *fiber.Ctx) error {
		captured = c.UserContext()
		deadline, ok := captured.Deadline()
		require.True(t, ok, "el contexto debe tener plazo")
		assert.WithinDuration(t, time.Now().Add(2*time.Second), deadline, time.Second)
		assert.NoError(t, captured.Err())
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	require.NotNil(t, captured)
	select {
	case <-captured.Done():
		assert.ErrorIs(t, captured.Err(), context.Canceled)
	default:
		t.Fatal("el contexto sigue vivo tras responder")
	}
}

func TestRequestContext_TimeoutCutsSlowWork(t *testing.T) {
	app := fiber.New()
	app.Use(apphttp.RequestContext(20 * time.Millisecond))
	app.Get("/", func(c *fiber.Ctx) error {
		select {
		case <-c.UserContext().Done():
			return c.SendStatus(fiber.StatusGatewayTimeout)
		case <-time.After(2 * time.Second):
			return c.SendStatus(fiber.StatusOK)
		}
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)
}

func TestRequestContext_NoTimeoutStillCancels(t *testing.T) {
	var captured context.Context
	app := fiber.New()
	app.Use(apphttp.RequestContext(0))
	app.Get("/", func(c *fiber.Ctx) error {
		captured = c.UserContext()
		_, ok := captured.Deadline()
		assert.False(t, ok)
		return c.SendStatus(fiber.StatusNoContent)
	})

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.ErrorIs(t, captured.Err(), context.Canceled)
}
