package repository

import (
	"context"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// WarehouseRepository puerto hacia las bodegas del vendedor (DIP).
type WarehouseRepository interface {
	List(ctx context.Context, sess *entity.Session) ([]entity.Warehouse, error)
	Get(ctx context.Context, sess *entity.Session, warehouseID string) (*entity.Warehouse, error)
	Update(ctx context.Context, sess *entity.Session, w *entity.Warehouse) (*entity.Warehouse, error)
}
