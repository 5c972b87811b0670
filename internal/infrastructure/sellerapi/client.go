// Package sellerapi adaptador HTTP hacia la API REST del vendedor.
// Implementa los puertos de internal/domain/repository; cada recurso vive en su archivo.
package sellerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// maxResponseBytes tope de lectura de cualquier respuesta (árboles y listados grandes).
const maxResponseBytes = 8 << 20

// Client cliente compartido por todos los repositorios. Es seguro para uso concurrente.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient baseURL sin "/" final, p. ej. http://localhost:8080.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// request una llamada a la API remota. op etiqueta logs y métricas.
type request struct {
	op     string
	method string
	path   string
	query  url.Values
	token  string
	body   any
}

// errorBody forma de los errores de la API remota.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do envía la petición y decodifica la respuesta 2xx en out (si out != nil).
func (c *Client) do(ctx context.Context, r request, out any) error {
	start := time.Now()
	status := "error"
	defer func() {
		RequestsTotal.WithLabelValues(r.op, status).Inc()
		RequestDuration.WithLabelValues(r.op).Observe(time.Since(start).Seconds())
	}()

	var reader io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("sellerapi: %s: serializar body: %w", r.op, err)
		}
		reader = bytes.NewReader(payload)
	}

	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, r.method, u, reader)
	if err != nil {
		return fmt.Errorf("sellerapi: %s: crear request: %w", r.op, err)
	}
	req.Header.Set("Accept", "application/json")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("sellerapi: %s: cancelado: %w", r.op, ctx.Err())
		}
		c.log.Warn().Err(err).Str("op", r.op).Msg("sellerapi: llamada HTTP fallida")
		return fmt.Errorf("%w: %s: %v", domain.ErrUpstream, r.op, err)
	}
	defer resp.Body.Close()
	status = strconv.Itoa(resp.StatusCode)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: %s: leer respuesta: %v", domain.ErrUpstream, r.op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Debug().Str("op", r.op).Int("status", resp.StatusCode).Msg("sellerapi: respuesta de error")
		return statusError(r.op, resp.StatusCode, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s: deserializar respuesta: %v", domain.ErrUpstream, r.op, err)
	}
	return nil
}

// statusError traduce el código HTTP de la API remota a un error de dominio.
func statusError(op string, code int, raw []byte) error {
	msg := upstreamMessage(raw)
	var base error
	switch {
	case code == http.StatusUnauthorized:
		base = domain.ErrUnauthorized
	case code == http.StatusForbidden:
		base = domain.ErrForbidden
	case code == http.StatusNotFound:
		base = domain.ErrNotFound
	case code == http.StatusConflict:
		base = domain.ErrConflict
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		base = domain.ErrInvalidInput
	default:
		base = domain.ErrUpstream
	}
	if msg == "" {
		return fmt.Errorf("%w: %s: HTTP %d", base, op, code)
	}
	return fmt.Errorf("%w: %s: %s", base, op, msg)
}

func upstreamMessage(raw []byte) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	s := strings.TrimSpace(string(raw))
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}

// dataEnvelope respuestas {"data": ...}.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

func tokenOf(sess *entity.Session) string {
	if sess == nil {
		return ""
	}
	return sess.Token
}

// requireSeller la mayoría de rutas remotas están indexadas por sellerId.
func requireSeller(sess *entity.Session) (string, error) {
	id := sess.SellerID()
	if id == "" {
		return "", errors.Join(domain.ErrUnauthorized, errors.New("sesión sin sellerId"))
	}
	return id, nil
}
