package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem existencia de una variante de producto en una bodega.
type InventoryItem struct {
	StorageID         string          `json:"_id"`
	SellerID          string          `json:"sellerId,omitempty"`
	WarehouseID       string          `json:"warehouseId"`
	ProductID         string          `json:"productId"`
	VariantID         string          `json:"variantId,omitempty"`
	SKU               string          `json:"sku,omitempty"`
	QuantityOnHand    int64           `json:"quantityOnHand"`
	QuantityReserved  int64           `json:"quantityReserved"`
	QuantityAvailable int64           `json:"quantityAvailable"`
	ReorderPoint      int64           `json:"reorderPoint"`
	ReorderQuantity   int64           `json:"reorderQuantity"`
	MaximumStockLevel int64           `json:"maximumStockLevel"`
	Condition         string          `json:"condition,omitempty"`
	Status            string          `json:"status,omitempty"`
	CostPrice         decimal.Decimal `json:"costPrice"`
	SellPrice         decimal.Decimal `json:"sellPrice"`
}

// NewInventoryItem alta de una variante en una bodega con existencia cero.
type NewInventoryItem struct {
	SellerID    string
	WarehouseID string
	ProductID   string
	VariantID   string
	SKU         string
	Condition   string
}

// StockLevelAdjustment fija la existencia de un ítem a un valor absoluto.
type StockLevelAdjustment struct {
	InventoryItemID string
	NewStockLevel   int64
	Notes           string
}

// StockLevelUpdate lote de ajustes de existencias para una bodega.
type StockLevelUpdate struct {
	WarehouseID string
	SellerID    string
	PerformedBy string
	Timestamp   time.Time
	Notes       string
	Adjustments []StockLevelAdjustment
}
