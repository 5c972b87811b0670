package sellerapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository productos en /api/products.
type ProductRepository struct {
	c *Client
}

// NewProductRepository construye el repositorio.
func NewProductRepository(c *Client) *ProductRepository {
	return &ProductRepository{c: c}
}

// GetByID el documento llega sin envoltorio; 404 se traduce a domain.ErrNotFound.
func (r *ProductRepository) GetByID(ctx context.Context, sess *entity.Session, productID string) (*entity.Product, error) {
	var p entity.Product
	err := r.c.do(ctx, request{
		op:     "products.get",
		method: http.MethodGet,
		path:   "/api/products/" + url.PathEscape(productID),
		token:  tokenOf(sess),
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListBySeller catálogo en /api/products/productsBySeller/{sellerId}; llega como arreglo sin envoltorio.
func (r *ProductRepository) ListBySeller(ctx context.Context, sess *entity.Session) ([]entity.Product, error) {
	sellerID, err := requireSeller(sess)
	if err != nil {
		return nil, err
	}
	var out []entity.Product
	err = r.c.do(ctx, request{
		op:     "products.by_seller",
		method: http.MethodGet,
		path:   "/api/products/productsBySeller/" + url.PathEscape(sellerID),
		token:  tokenOf(sess),
	}, &out)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return []entity.Product{}, nil
	}
	return out, nil
}
