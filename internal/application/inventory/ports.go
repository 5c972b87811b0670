package inventory

import (
	"context"

	"github.com/jhoicas/Inventario-console/internal/domain/inventory"
)

// CostSheet datos de una entrada ya prorrateada para su hoja de costos.
type CostSheet struct {
	SellerID      string
	WarehouseID   string
	BatchNumber   string
	PaymentMethod string
	Notes         string
	Charges       inventory.Charges
	Lines         []CostSheetLine
	Totals        inventory.Totals
}

// CostSheetLine línea con el nombre del producto resuelto.
type CostSheetLine struct {
	ProductName string
	Variant     string
	inventory.LineItem
}

// CostSheetRenderer genera el documento (PDF) de la hoja de costos.
type CostSheetRenderer interface {
	RenderStockInCostSheet(ctx context.Context, sheet CostSheet) ([]byte, error)
}
