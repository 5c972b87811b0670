package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductSummary datos del producto que necesita la consola.
type ProductSummary struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	Brand     string   `json:"brand,omitempty"`
	Image     string   `json:"image,omitempty"`
	Variants  []string `json:"variants,omitempty"`
}

// InventoryItemResponse existencia de una variante en la bodega.
type InventoryItemResponse struct {
	ID                string          `json:"id"`
	ProductID         string          `json:"product_id"`
	VariantID         string          `json:"variant_id,omitempty"`
	SKU               string          `json:"sku,omitempty"`
	QuantityOnHand    int64           `json:"quantity_on_hand"`
	QuantityReserved  int64           `json:"quantity_reserved"`
	QuantityAvailable int64           `json:"quantity_available"`
	ReorderPoint      int64           `json:"reorder_point"`
	ReorderQuantity   int64           `json:"reorder_quantity"`
	MaximumStockLevel int64           `json:"maximum_stock_level"`
	Condition         string          `json:"condition,omitempty"`
	Status            string          `json:"status,omitempty"`
	CostPrice         decimal.Decimal `json:"cost_price"`
	SellPrice         decimal.Decimal `json:"sell_price"`
	Product           *ProductSummary `json:"product,omitempty"`
	ProductMissing    bool            `json:"product_missing,omitempty"`
}

// WarehouseItemsResponse ítems de la bodega con su producto.
type WarehouseItemsResponse struct {
	WarehouseID     string                  `json:"warehouse_id"`
	Items           []InventoryItemResponse `json:"items"`
	MissingProducts []string                `json:"missing_products"`
	// UnlinkedItems ids de ítems sin productId; también salen con product_missing.
	UnlinkedItems   []string                `json:"unlinked_items"`
}

// AddToStoreSelection producto y variantes a dar de alta en la bodega.
type AddToStoreSelection struct {
	ProductID  string   `json:"product_id" validate:"required"`
	VariantIDs []string `json:"variant_ids" validate:"dive,required"`
}

// AddToStoreRequest body para POST /api/warehouses/{id}/items.
type AddToStoreRequest struct {
	Selections []AddToStoreSelection `json:"selections" validate:"dive"`
}

// AddToStoreResponse SKUs creados.
type AddToStoreResponse struct {
	Created int      `json:"created"`
	SKUs    []string `json:"skus"`
}

// MonitoringItemResponse nivel de stock de un ítem.
type MonitoringItemResponse struct {
	Item         InventoryItemResponse `json:"item"`
	Variant      string                `json:"variant"`
	MaxLevel     int64                 `json:"max_level"`
	UsagePercent float64               `json:"usage_percent"`
	BelowReorder bool                  `json:"below_reorder"`
}

// MonitoringResponse niveles de stock de la bodega.
type MonitoringResponse struct {
	WarehouseID     string                   `json:"warehouse_id"`
	Items           []MonitoringItemResponse `json:"items"`
	BelowReorder    int                      `json:"below_reorder"`
	MissingProducts []string                 `json:"missing_products"`
	UnlinkedItems   []string                 `json:"unlinked_items"`
}

// TransactionLineResponse línea de una transacción.
type TransactionLineResponse struct {
	ProductID            string          `json:"product_id"`
	VariantID            string          `json:"variant_id,omitempty"`
	Quantity             int64           `json:"quantity"`
	UnitPrice            decimal.Decimal `json:"unit_price"`
	AllocatedTransport   decimal.Decimal `json:"allocated_transport"`
	AllocatedOther       decimal.Decimal `json:"allocated_other"`
	AllocatedTax         decimal.Decimal `json:"allocated_tax"`
	TotalCost            decimal.Decimal `json:"total_cost"`
	FinalCutoffUnitPrice decimal.Decimal `json:"final_cutoff_unit_price"`
	Notes                string          `json:"notes,omitempty"`
}

// TransactionResponse transacción de stock.
type TransactionResponse struct {
	TransactionID         string                    `json:"transaction_id"`
	TransactionType       string                    `json:"transaction_type"`
	WarehouseID           string                    `json:"warehouse_id"`
	PerformedBy           string                    `json:"performed_by"`
	Timestamp             time.Time                 `json:"timestamp"`
	BatchNumber           string                    `json:"batch_number,omitempty"`
	Notes                 string                    `json:"notes,omitempty"`
	PaymentMethod         string                    `json:"payment_method,omitempty"`
	TotalTransportCharges decimal.Decimal           `json:"total_transport_charges"`
	TotalOtherCharges     decimal.Decimal           `json:"total_other_charges"`
	TotalTaxes            decimal.Decimal           `json:"total_taxes"`
	Products              []TransactionLineResponse `json:"products"`
}

// TransactionListResponse transacciones filtradas.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
	Query string                `json:"query,omitempty"`
}

// CatalogVariantResponse variante del catálogo; InWarehouse si la bodega ya la tiene.
type CatalogVariantResponse struct {
	VariantID   string `json:"variant_id"`
	Label       string `json:"label,omitempty"`
	InWarehouse bool   `json:"in_warehouse"`
}

// CatalogProductResponse producto del catálogo del vendedor.
type CatalogProductResponse struct {
	ID          string                   `json:"id"`
	ProductID   string                   `json:"product_id"`
	Name        string                   `json:"name"`
	Brand       string                   `json:"brand,omitempty"`
	Image       string                   `json:"image,omitempty"`
	InWarehouse bool                     `json:"in_warehouse"`
	Variants    []CatalogVariantResponse `json:"variants"`
}

// CatalogResponse GET /api/products y GET /api/warehouses/:id/catalog.
type CatalogResponse struct {
	WarehouseID string                   `json:"warehouse_id,omitempty"`
	Products    []CatalogProductResponse `json:"products"`
	Total       int                      `json:"total"`
	Query       string                   `json:"query,omitempty"`
}
