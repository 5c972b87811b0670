package session

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

type fakeSellers struct {
	info      *entity.SellerInfo
	err       error
	gotUser   string
	gotBearer string
}

func (f *fakeSellers) Info(_ context.Context, username, token string) (*entity.SellerInfo, error) {
	f.gotUser, f.gotBearer = username, token
	return f.info, f.err
}

func newTestManager(sellers *fakeSellers) *Manager {
	return NewManager(sellers, Config{Secret: "test-secret", Issuer: "console-test", TTL: time.Hour}, zerolog.Nop())
}

func TestLogin_ResolveLogout(t *testing.T) {
	sellers := &fakeSellers{info: &entity.SellerInfo{SellerID: "S-1", Username: "maria"}}
	m := newTestManager(sellers)

	out, err := m.Login(context.Background(), " maria ", "upstream-token")
	require.NoError(t, err)
	assert.Equal(t, "maria", sellers.gotUser)
	assert.Equal(t, "upstream-token", sellers.gotBearer)
	assert.Equal(t, "S-1", out.Seller.SellerID)
	assert.NotEqual(t, "upstream-token", out.Token, "el token de consola no es el remoto")

	sess, err := m.Authenticate(out.Token)
	require.NoError(t, err)
	assert.Equal(t, "S-1", sess.SellerID())
	assert.Equal(t, "upstream-token", sess.Token)
	assert.Equal(t, 1, m.Active())

	m.Logout(sess.ID)
	_, err = m.Authenticate(out.Token)
	assert.ErrorIs(t, err, domain.ErrSessionClosed)
	assert.Equal(t, 0, m.Active())

	// Cerrar dos veces no falla.
	m.Logout(sess.ID)
}

func TestLogin_Validation(t *testing.T) {
	m := newTestManager(&fakeSellers{})
	_, err := m.Login(context.Background(), "", "tok")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = m.Login(context.Background(), "maria", "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_UpstreamRejects(t *testing.T) {
	m := newTestManager(&fakeSellers{err: domain.ErrUnauthorized})
	_, err := m.Login(context.Background(), "maria", "bad")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 0, m.Active())
}

func TestLogin_ProfileWithoutSellerID(t *testing.T) {
	m := newTestManager(&fakeSellers{info: &entity.SellerInfo{}})
	_, err := m.Login(context.Background(), "maria", "tok")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestResolve_Expired(t *testing.T) {
	m := newTestManager(&fakeSellers{info: &entity.SellerInfo{SellerID: "S-1"}})
	base := time.Now()
	m.now = func() time.Time { return base }

	out, err := m.Login(context.Background(), "maria", "tok")
	require.NoError(t, err)

	m.now = func() time.Time { return base.Add(2 * time.Hour) }
	// El JWT sigue vigente para la librería (usa el reloj real) pero la sesión expiró.
	_, err = m.Authenticate(out.Token)
	assert.ErrorIs(t, err, domain.ErrSessionClosed)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	m := newTestManager(&fakeSellers{})
	_, err := m.Authenticate("not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
