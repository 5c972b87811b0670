package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	apphttp "github.com/jhoicas/Inventario-console/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const validConsoleToken = "token-consola-valido"

// stubAuthenticator acepta un único token.
type stubAuthenticator struct{}

func (stubAuthenticator) Authenticate(token string) (*entity.Session, error) {
	switch token {
	case validConsoleToken:
		return &entity.Session{ID: "sess-1", Username: "ana", Seller: entity.SellerInfo{SellerID: "S1"}}, nil
	case "cerrado":
		return nil, domain.ErrSessionClosed
	}
	return nil, domain.ErrUnauthorized
}

// buildMiddlewareApp aplicación mínima: SessionMiddleware + handler que expone la sesión.
func buildMiddlewareApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", apphttp.SessionMiddleware(stubAuthenticator{}), func(c *fiber.Ctx) error {
		sess := apphttp.GetSession(c)
		return c.JSON(fiber.Map{"seller_id": sess.SellerID(), "username": sess.Username})
	})
	return app
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var e struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(body, &e))
	return e.Code
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SessionMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Token válido → pasa y la sesión queda en Locals.
func TestSessionMiddleware_TokenValido(t *testing.T) {
	resp := doProtected(t, buildMiddlewareApp(), "Bearer "+validConsoleToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "S1", body["seller_id"])
	assert.Equal(t, "ana", body["username"])
}

// El esquema Bearer no distingue mayúsculas.
func TestSessionMiddleware_EsquemaSinDistinguirMayusculas(t *testing.T) {
	resp := doProtected(t, buildMiddlewareApp(), "bearer "+validConsoleToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSessionMiddleware_Rechazos(t *testing.T) {
	tests := []struct {
		name   string
		header string
		code   string
	}{
		{"sin header", "", "MISSING_TOKEN"},
		{"esquema distinto", "Basic abc", "INVALID_TOKEN"},
		{"bearer vacío", "Bearer   ", "MISSING_TOKEN"},
		{"solo esquema", "Bearer", "MISSING_TOKEN"},
		{"token desconocido", "Bearer otro", "INVALID_TOKEN"},
		{"sesión cerrada", "Bearer cerrado", "INVALID_TOKEN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doProtected(t, buildMiddlewareApp(), tt.header)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, tt.code, errorCode(t, resp))
		})
	}
}
