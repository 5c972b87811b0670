package sellerapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/domain/repository"
)

var _ repository.SellerRepository = (*SellerRepository)(nil)

// SellerRepository perfil del vendedor en /api/sellers/info.
type SellerRepository struct {
	c *Client
}

// NewSellerRepository construye el repositorio.
func NewSellerRepository(c *Client) *SellerRepository {
	return &SellerRepository{c: c}
}

func (r *SellerRepository) Info(ctx context.Context, username, token string) (*entity.SellerInfo, error) {
	var info entity.SellerInfo
	err := r.c.do(ctx, request{
		op:     "sellers.info",
		method: http.MethodGet,
		path:   "/api/sellers/info",
		query:  url.Values{"username": {username}},
		token:  token,
	}, &info)
	if err != nil {
		return nil, err
	}
	if info.Username == "" {
		info.Username = username
	}
	return &info, nil
}
