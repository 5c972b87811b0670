// Package session administra el contexto explícito de sesión de la consola:
// se inicializa en Login, se resuelve en cada petición y se destruye en Logout.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/domain/repository"
	"github.com/jhoicas/Inventario-console/pkg/jwt"
)

// Config firma y duración del token de consola.
type Config struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// Manager registro en memoria de sesiones activas.
type Manager struct {
	sellers repository.SellerRepository
	cfg     Config
	log     zerolog.Logger
	now     func() time.Time

	mu       sync.RWMutex
	sessions map[string]*entity.Session
}

// NewManager construye el administrador de sesiones.
func NewManager(sellers repository.SellerRepository, cfg Config, log zerolog.Logger) *Manager {
	if cfg.TTL <= 0 {
		cfg.TTL = 8 * time.Hour
	}
	return &Manager{
		sellers:  sellers,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
		sessions: make(map[string]*entity.Session),
	}
}

// Login valida el bearer contra /api/sellers/info, registra la sesión y emite el token de consola.
func (m *Manager) Login(ctx context.Context, username, upstreamToken string) (*dto.LoginResponse, error) {
	username = strings.TrimSpace(username)
	upstreamToken = strings.TrimSpace(upstreamToken)
	if username == "" || upstreamToken == "" {
		return nil, fmt.Errorf("%w: username y token son requeridos", domain.ErrInvalidInput)
	}

	info, err := m.sellers.Info(ctx, username, upstreamToken)
	if err != nil {
		m.log.Warn().Err(err).Str("username", username).Msg("login: perfil de vendedor")
		return nil, err
	}
	if info == nil || info.SellerID == "" {
		return nil, fmt.Errorf("%w: perfil de vendedor sin sellerId", domain.ErrUpstream)
	}

	now := m.now()
	sess := &entity.Session{
		ID:        uuid.New().String(),
		Username:  username,
		Token:     upstreamToken,
		Seller:    *info,
		CreatedAt: now,
		ExpiresAt: now.Add(m.cfg.TTL),
	}

	signed, exp, err := jwt.Generate(m.cfg.Secret, sess.ID, username, m.cfg.Issuer, m.cfg.TTL)
	if err != nil {
		return nil, fmt.Errorf("login: firmar token: %w", err)
	}

	m.mu.Lock()
	m.sweepLocked(now)
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	m.log.Info().Str("session_id", sess.ID).Str("seller_id", info.SellerID).Msg("sesión iniciada")
	return &dto.LoginResponse{
		Token:     signed,
		ExpiresAt: exp,
		Seller:    ToSellerResponse(*info),
	}, nil
}

// Authenticate valida el token de consola y devuelve la sesión viva.
func (m *Manager) Authenticate(consoleToken string) (*entity.Session, error) {
	claims, err := jwt.Parse(m.cfg.Secret, consoleToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return m.Resolve(claims.SessionID)
}

// Resolve devuelve la sesión o ErrSessionClosed si no existe, expiró o fue cerrada.
func (m *Manager) Resolve(sessionID string) (*entity.Session, error) {
	m.mu.RLock()
	sess, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionClosed
	}
	if sess.Expired(m.now()) {
		m.Logout(sessionID)
		return nil, domain.ErrSessionClosed
	}
	return sess, nil
}

// Logout destruye la sesión; cerrar una sesión inexistente no es error.
func (m *Manager) Logout(sessionID string) {
	m.mu.Lock()
	if _, ok := m.sessions[sessionID]; ok {
		delete(m.sessions, sessionID)
		m.log.Info().Str("session_id", sessionID).Msg("sesión cerrada")
	}
	m.mu.Unlock()
}

// Active cantidad de sesiones vigentes.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked(m.now())
	return len(m.sessions)
}

func (m *Manager) sweepLocked(now time.Time) {
	for id, s := range m.sessions {
		if s.Expired(now) {
			delete(m.sessions, id)
		}
	}
}

// ToSellerResponse mapea el perfil a su DTO.
func ToSellerResponse(s entity.SellerInfo) dto.SellerResponse {
	return dto.SellerResponse{
		SellerID:     s.SellerID,
		Username:     s.Username,
		Email:        s.Email,
		BusinessName: s.BusinessName,
	}
}

// ToSessionResponse mapea la sesión sin exponer el token remoto.
func ToSessionResponse(s *entity.Session) dto.SessionResponse {
	return dto.SessionResponse{
		Username:  s.Username,
		Seller:    ToSellerResponse(s.Seller),
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
}
