package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tipo de transacción de stock.
type TransactionType string

const (
	TransactionStockIn       TransactionType = "stockIn"
	TransactionStockOut      TransactionType = "stockOut"
	TransactionMoveStock     TransactionType = "moveStock"
	TransactionAdjust        TransactionType = "adjust"
	TransactionSetStockLevel TransactionType = "setStockLevel"
)

// StockTransaction transacción registrada en la API remota.
// En entradas, los cargos totales se prorratean entre las líneas (ver inventory.Allocate).
type StockTransaction struct {
	StorageID             string            `json:"_id,omitempty"`
	TransactionID         string            `json:"transactionId,omitempty"`
	TransactionType       TransactionType   `json:"transactionType"`
	WarehouseID           string            `json:"warehouseId"`
	SellerID              string            `json:"sellerId"`
	PerformedBy           string            `json:"performedBy"`
	Timestamp             time.Time         `json:"timestamp"`
	BatchNumber           string            `json:"batchNumber,omitempty"`
	Notes                 string            `json:"notes,omitempty"`
	PaymentMethod         string            `json:"paymentMethod,omitempty"`
	TotalTransportCharges decimal.Decimal   `json:"totalTransportCharges"`
	TotalOtherCharges     decimal.Decimal   `json:"totalOtherCharges"`
	TotalTaxes            decimal.Decimal   `json:"totalTaxes"`
	Products              []TransactionLine `json:"products"`
}

// TransactionLine línea de producto dentro de una transacción.
type TransactionLine struct {
	ProductID            string          `json:"productId"`
	VariantID            string          `json:"variantId,omitempty"`
	Quantity             int64           `json:"quantity"`
	UnitPrice            decimal.Decimal `json:"unitPrice"`
	AllocatedTransport   decimal.Decimal `json:"allocatedTransport"`
	AllocatedOther       decimal.Decimal `json:"allocatedOther"`
	AllocatedTax         decimal.Decimal `json:"allocatedTax"`
	TotalCost            decimal.Decimal `json:"totalCost"`
	FinalCutoffUnitPrice decimal.Decimal `json:"finalCutoffUnitPrice"`
	Notes                string          `json:"notes,omitempty"`
}
