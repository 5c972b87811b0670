package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/application/session"
)

// SessionHandler login y logout de la consola.
type SessionHandler struct {
	m *session.Manager
}

// NewSessionHandler construye el handler.
func NewSessionHandler(m *session.Manager) *SessionHandler {
	return &SessionHandler{m: m}
}

// Login godoc
// @Summary      Abrir sesión de consola
// @Description  Valida el bearer de la API del vendedor, consulta el perfil y emite un token de consola.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Usuario y bearer de la API del vendedor"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/session/login [post]
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if e := bindJSON(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.m.Login(c.UserContext(), in.Username, in.Token)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         session
// @Security     Bearer
// @Success      204
// @Router       /api/session/logout [post]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	if sess := GetSession(c); sess != nil {
		h.m.Logout(sess.ID)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Sesión activa
// @Tags         session
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/session/me [get]
func (h *SessionHandler) Me(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
	}
	return c.JSON(session.ToSessionResponse(sess))
}
