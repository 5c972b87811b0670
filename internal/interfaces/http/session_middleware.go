package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// LocalSession key de la sesión en c.Locals.
const LocalSession = "console_session"

// SessionAuthenticator resuelve el token de la consola a una sesión activa.
type SessionAuthenticator interface {
	Authenticate(consoleToken string) (*entity.Session, error)
}

// SessionMiddleware valida el Bearer de la consola y deja la sesión en c.Locals.
func SessionMiddleware(auth SessionAuthenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
		// fasthttp recorta el espacio final: "Bearer   " llega como "Bearer".
		if len(parts) == 1 && strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		sess, err := auth.Authenticate(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: err.Error()})
		}
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después del middleware).
func GetSession(c *fiber.Ctx) *entity.Session {
	s, _ := c.Locals(LocalSession).(*entity.Session)
	return s
}
