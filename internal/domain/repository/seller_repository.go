package repository

import (
	"context"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// SellerRepository perfil del vendedor. Usa directamente el bearer de la API remota
// porque se invoca antes de que exista la sesión.
type SellerRepository interface {
	Info(ctx context.Context, username, token string) (*entity.SellerInfo, error)
}
