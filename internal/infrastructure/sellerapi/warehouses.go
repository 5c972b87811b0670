package sellerapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepository)(nil)

// WarehouseRepository bodegas en /api/warehouses/{sellerId}.
type WarehouseRepository struct {
	c *Client
}

// NewWarehouseRepository construye el repositorio.
func NewWarehouseRepository(c *Client) *WarehouseRepository {
	return &WarehouseRepository{c: c}
}

func (r *WarehouseRepository) List(ctx context.Context, sess *entity.Session) ([]entity.Warehouse, error) {
	sellerID, err := requireSeller(sess)
	if err != nil {
		return nil, err
	}
	var env dataEnvelope[[]entity.Warehouse]
	err = r.c.do(ctx, request{
		op:     "warehouses.list",
		method: http.MethodGet,
		path:   "/api/warehouses/" + url.PathEscape(sellerID),
		token:  tokenOf(sess),
	}, &env)
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return []entity.Warehouse{}, nil
	}
	return env.Data, nil
}

func (r *WarehouseRepository) Get(ctx context.Context, sess *entity.Session, warehouseID string) (*entity.Warehouse, error) {
	sellerID, err := requireSeller(sess)
	if err != nil {
		return nil, err
	}
	var env dataEnvelope[*entity.Warehouse]
	err = r.c.do(ctx, request{
		op:     "warehouses.get",
		method: http.MethodGet,
		path:   "/api/warehouses/" + url.PathEscape(sellerID) + "/" + url.PathEscape(warehouseID),
		token:  tokenOf(sess),
	}, &env)
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, domain.ErrNotFound
	}
	return env.Data, nil
}

// Update envía la ficha completa y devuelve la versión guardada por la API.
func (r *WarehouseRepository) Update(ctx context.Context, sess *entity.Session, w *entity.Warehouse) (*entity.Warehouse, error) {
	sellerID, err := requireSeller(sess)
	if err != nil {
		return nil, err
	}
	id := w.WarehouseID
	if id == "" {
		id = w.StorageID
	}
	var env dataEnvelope[*entity.Warehouse]
	err = r.c.do(ctx, request{
		op:     "warehouses.update",
		method: http.MethodPut,
		path:   "/api/warehouses/" + url.PathEscape(sellerID) + "/" + url.PathEscape(id),
		token:  tokenOf(sess),
		body:   w,
	}, &env)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}
