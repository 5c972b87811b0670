package repository

import (
	"context"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// StockTransactionRepository registro y consulta de transacciones de stock.
type StockTransactionRepository interface {
	Create(ctx context.Context, sess *entity.Session, tx *entity.StockTransaction) error
	ListByWarehouse(ctx context.Context, sess *entity.Session, warehouseID string) ([]entity.StockTransaction, error)
}
