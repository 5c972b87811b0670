package sellerapi

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepository)(nil)

// InventoryRepository existencias en /api/inventory.
type InventoryRepository struct {
	c *Client
}

// NewInventoryRepository construye el repositorio.
func NewInventoryRepository(c *Client) *InventoryRepository {
	return &InventoryRepository{c: c}
}

type newItemWire struct {
	SellerID         string  `json:"sellerId"`
	WarehouseID      string  `json:"warehouseId"`
	ProductID        string  `json:"productId"`
	VariantID        string  `json:"variantId"`
	SKU              string  `json:"sku"`
	QuantityOnHand   int64   `json:"quantityOnHand"`
	QuantityReserved int64   `json:"quantityReserved"`
	Condition        string  `json:"condition"`
	CostPrice        float64 `json:"costPrice"`
}

type adjustmentWire struct {
	ID            string `json:"_id"`
	NewStockLevel int64  `json:"newStockLevel"`
	Notes         string `json:"notes"`
}

type stockLevelsWire struct {
	TransactionType entity.TransactionType `json:"transactionType"`
	WarehouseID     string                 `json:"warehouseId"`
	SellerID        string                 `json:"sellerId"`
	PerformedBy     string                 `json:"performedBy"`
	Timestamp       time.Time              `json:"timestamp"`
	Notes           string                 `json:"notes"`
	Adjustments     []adjustmentWire       `json:"adjustments"`
}

// ListByWarehouse ítems de la bodega; la API responde {"data": [...]}.
func (r *InventoryRepository) ListByWarehouse(ctx context.Context, sess *entity.Session, warehouseID string) ([]entity.InventoryItem, error) {
	var env dataEnvelope[[]entity.InventoryItem]
	err := r.c.do(ctx, request{
		op:     "inventory.list",
		method: http.MethodGet,
		path:   "/api/inventory/Items",
		query:  url.Values{"warehouseId": {warehouseID}},
		token:  tokenOf(sess),
	}, &env)
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return []entity.InventoryItem{}, nil
	}
	return env.Data, nil
}

// CreateItems alta en lote con existencia y costo cero.
func (r *InventoryRepository) CreateItems(ctx context.Context, sess *entity.Session, items []entity.NewInventoryItem) error {
	body := make([]newItemWire, 0, len(items))
	for _, it := range items {
		body = append(body, newItemWire{
			SellerID:    it.SellerID,
			WarehouseID: it.WarehouseID,
			ProductID:   it.ProductID,
			VariantID:   it.VariantID,
			SKU:         it.SKU,
			Condition:   it.Condition,
		})
	}
	return r.c.do(ctx, request{
		op:     "inventory.create_items",
		method: http.MethodPost,
		path:   "/api/inventory/inventoryItems",
		token:  tokenOf(sess),
		body:   body,
	}, nil)
}

// SetStockLevels fija niveles absolutos (transactionType setStockLevel).
func (r *InventoryRepository) SetStockLevels(ctx context.Context, sess *entity.Session, in entity.StockLevelUpdate) error {
	body := stockLevelsWire{
		TransactionType: entity.TransactionSetStockLevel,
		WarehouseID:     in.WarehouseID,
		SellerID:        in.SellerID,
		PerformedBy:     in.PerformedBy,
		Timestamp:       in.Timestamp,
		Notes:           in.Notes,
		Adjustments:     make([]adjustmentWire, 0, len(in.Adjustments)),
	}
	for _, a := range in.Adjustments {
		body.Adjustments = append(body.Adjustments, adjustmentWire{ID: a.InventoryItemID, NewStockLevel: a.NewStockLevel, Notes: a.Notes})
	}
	return r.c.do(ctx, request{
		op:     "inventory.set_stock_levels",
		method: http.MethodPost,
		path:   "/api/inventory/setStockLevels",
		token:  tokenOf(sess),
		body:   body,
	}, nil)
}
