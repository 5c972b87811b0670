package repository

import (
	"context"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// ProductRepository consulta de productos. GetByID hace una petición por producto y
// devuelve domain.ErrNotFound si la API no lo conoce.
type ProductRepository interface {
	GetByID(ctx context.Context, sess *entity.Session, productID string) (*entity.Product, error)
	// ListBySeller catálogo completo del vendedor de la sesión.
	ListBySeller(ctx context.Context, sess *entity.Session) ([]entity.Product, error)
}
