package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestContext deja en c.UserContext() un contexto con plazo que se cancela al
// terminar el handler. Las consultas a la API remota que sigan pendientes (fan-out
// de productos) se cortan por plazo o al responder. fasthttp no avisa cuando el
// cliente se desconecta, así que el plazo es el único corte antes de responder.
func RequestContext(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			ctx    context.Context
			cancel context.CancelFunc
		)
		if timeout > 0 {
			ctx, cancel = context.WithTimeout(c.UserContext(), timeout)
		} else {
			ctx, cancel = context.WithCancel(c.UserContext())
		}
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
