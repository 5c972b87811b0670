package repository

import (
	"context"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// InventoryRepository existencias por bodega (DIP).
type InventoryRepository interface {
	ListByWarehouse(ctx context.Context, sess *entity.Session, warehouseID string) ([]entity.InventoryItem, error)
	CreateItems(ctx context.Context, sess *entity.Session, items []entity.NewInventoryItem) error
	SetStockLevels(ctx context.Context, sess *entity.Session, in entity.StockLevelUpdate) error
}
