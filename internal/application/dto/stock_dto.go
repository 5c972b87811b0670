package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockInLineRequest línea de entrada. Cantidades y precios negativos se llevan a 0.
type StockInLineRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	VariantID string          `json:"variant_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Notes     string          `json:"notes" validate:"max=500"`
}

// StockInRequest body para /api/stock-in y /api/stock-in/preview.
// Las asignaciones siempre se recalculan en el servidor.
type StockInRequest struct {
	WarehouseID      string               `json:"warehouse_id"`
	BatchNumber      string               `json:"batch_number" validate:"max=120"`
	Notes            string               `json:"notes" validate:"max=1000"`
	PaymentMethod    string               `json:"payment_method" validate:"max=60"`
	Timestamp        *time.Time           `json:"timestamp"`
	TransportCharges decimal.Decimal      `json:"transport_charges"`
	OtherCharges     decimal.Decimal      `json:"other_charges"`
	Taxes            decimal.Decimal      `json:"taxes"`
	Items            []StockInLineRequest `json:"items" validate:"dive"`
}

// AllocatedLineResponse línea con los cargos prorrateados.
type AllocatedLineResponse struct {
	ProductID          string          `json:"product_id"`
	VariantID          string          `json:"variant_id,omitempty"`
	Quantity           int64           `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	AllocatedTransport decimal.Decimal `json:"allocated_transport"`
	AllocatedOther     decimal.Decimal `json:"allocated_other"`
	AllocatedTax       decimal.Decimal `json:"allocated_tax"`
	TotalCost          decimal.Decimal `json:"total_cost"`
	FinalUnitPrice     decimal.Decimal `json:"final_unit_price"`
	Notes              string          `json:"notes,omitempty"`
}

// AllocationTotalsResponse totales de la entrada.
type AllocationTotalsResponse struct {
	Units     int64           `json:"units"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Transport decimal.Decimal `json:"transport"`
	Other     decimal.Decimal `json:"other"`
	Tax       decimal.Decimal `json:"tax"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// StockInResponse resultado de una vista previa o de un registro de entrada.
type StockInResponse struct {
	WarehouseID string                   `json:"warehouse_id"`
	BatchNumber string                   `json:"batch_number,omitempty"`
	Timestamp   *time.Time               `json:"timestamp,omitempty"`
	Lines       []AllocatedLineResponse  `json:"lines"`
	Totals      AllocationTotalsResponse `json:"totals"`
}

// StockOutLineRequest línea de salida.
type StockOutLineRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	VariantID string          `json:"variant_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Notes     string          `json:"notes" validate:"max=500"`
}

// StockOutRequest body para POST /api/stock-out.
type StockOutRequest struct {
	WarehouseID   string                `json:"warehouse_id"`
	Notes         string                `json:"notes" validate:"max=1000"`
	PaymentMethod string                `json:"payment_method" validate:"max=60"`
	Timestamp     *time.Time            `json:"timestamp"`
	Items         []StockOutLineRequest `json:"items" validate:"dive"`
}

// StockOutLineResponse cantidad solicitada y la efectivamente registrada.
type StockOutLineResponse struct {
	ProductID string          `json:"product_id"`
	VariantID string          `json:"variant_id,omitempty"`
	Requested int64           `json:"requested"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// StockOutResponse salida registrada.
type StockOutResponse struct {
	WarehouseID string                 `json:"warehouse_id"`
	Timestamp   time.Time              `json:"timestamp"`
	Lines       []StockOutLineResponse `json:"lines"`
}

// AdjustmentLine nuevo nivel absoluto para un ítem de inventario.
type AdjustmentLine struct {
	InventoryItemID string `json:"inventory_item_id" validate:"required"`
	NewStockLevel   int64  `json:"new_stock_level" validate:"gte=0"`
	Notes           string `json:"notes" validate:"max=500"`
}

// AdjustmentRequest body para POST /api/adjustments.
type AdjustmentRequest struct {
	WarehouseID string           `json:"warehouse_id"`
	Notes       string           `json:"notes" validate:"max=1000"`
	Timestamp   *time.Time       `json:"timestamp"`
	Adjustments []AdjustmentLine `json:"adjustments" validate:"dive"`
}

// AdjustmentResponse ajustes enviados.
type AdjustmentResponse struct {
	WarehouseID string    `json:"warehouse_id"`
	Applied     int       `json:"applied"`
	Timestamp   time.Time `json:"timestamp"`
}
