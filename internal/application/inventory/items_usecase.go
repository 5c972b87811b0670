package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/catalog"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/domain/inventory"
	"github.com/jhoicas/Inventario-console/internal/domain/repository"
	"github.com/jhoicas/Inventario-console/internal/domain/search"
)

// ItemsUseCase ítems de una bodega unidos con sus productos.
type ItemsUseCase struct {
	inv    repository.InventoryRepository
	lookup *ProductLookup
	log    zerolog.Logger
}

// NewItemsUseCase construye el caso de uso.
func NewItemsUseCase(inv repository.InventoryRepository, lookup *ProductLookup, log zerolog.Logger) *ItemsUseCase {
	return &ItemsUseCase{inv: inv, lookup: lookup, log: log}
}

// WarehouseItems ítems de la bodega; los productos que no se pudieron consultar quedan marcados.
func (uc *ItemsUseCase) WarehouseItems(ctx context.Context, sess *entity.Session, warehouseID string) (*dto.WarehouseItemsResponse, error) {
	items, table, err := uc.load(ctx, sess, warehouseID)
	if err != nil {
		return nil, err
	}
	out := &dto.WarehouseItemsResponse{
		WarehouseID:     warehouseID,
		Items:           make([]dto.InventoryItemResponse, 0, len(items)),
		MissingProducts: table.MissingIDs(),
		UnlinkedItems:   unlinkedItems(items),
	}
	for _, it := range items {
		out.Items = append(out.Items, toItemResponse(it, table))
	}
	return out, nil
}

// Suggestions ítems cuyo producto es conocido, cuyo nombre contiene term y que no están en exclude.
func (uc *ItemsUseCase) Suggestions(ctx context.Context, sess *entity.Session, warehouseID, term string, exclude catalog.IDSet) ([]dto.InventoryItemResponse, error) {
	items, table, err := uc.load(ctx, sess, warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0)
	for _, it := range items {
		p := table.Product(it.ProductID)
		if p == nil || exclude.Has(it.ProductID) {
			continue
		}
		if !search.Contains(p.Name, term) {
			continue
		}
		out = append(out, toItemResponse(it, table))
	}
	return out, nil
}

// Monitoring nivel de ocupación y alerta de reorden por ítem. Un producto que no se
// pudo consultar no impide mostrar los demás.
func (uc *ItemsUseCase) Monitoring(ctx context.Context, sess *entity.Session, warehouseID string) (*dto.MonitoringResponse, error) {
	items, table, err := uc.load(ctx, sess, warehouseID)
	if err != nil {
		return nil, err
	}
	out := &dto.MonitoringResponse{
		WarehouseID:     warehouseID,
		Items:           make([]dto.MonitoringItemResponse, 0, len(items)),
		MissingProducts: table.MissingIDs(),
		UnlinkedItems:   unlinkedItems(items),
	}
	for _, it := range items {
		lvl := inventory.StockLevel(it)
		if lvl.BelowReorder {
			out.BelowReorder++
		}
		out.Items = append(out.Items, dto.MonitoringItemResponse{
			Item:         toItemResponse(it, table),
			Variant:      variantLabel(table.Product(it.ProductID), it.VariantID),
			MaxLevel:     lvl.MaxLevel,
			UsagePercent: lvl.UsagePercent,
			BelowReorder: lvl.BelowReorder,
		})
	}
	return out, nil
}

// AddToStore da de alta en la bodega, con existencia cero, las variantes elegidas.
func (uc *ItemsUseCase) AddToStore(ctx context.Context, sess *entity.Session, warehouseID string, in dto.AddToStoreRequest) (*dto.AddToStoreResponse, error) {
	if strings.TrimSpace(warehouseID) == "" {
		return nil, domain.ErrWarehouseNeeded
	}
	if len(in.Selections) == 0 {
		return nil, domain.ErrNoLineItems
	}
	ids := make([]string, 0, len(in.Selections))
	for _, sel := range in.Selections {
		if len(sel.VariantIDs) == 0 {
			return nil, fmt.Errorf("%w: selecciona al menos una variante de %s", domain.ErrInvalidInput, sel.ProductID)
		}
		ids = append(ids, sel.ProductID)
	}

	table := uc.lookup.Lookup(ctx, sess, ids)
	newItems := make([]entity.NewInventoryItem, 0)
	skus := make([]string, 0)
	for _, sel := range in.Selections {
		p := table.Product(sel.ProductID)
		if p == nil {
			return nil, fmt.Errorf("%w: producto %s no encontrado", domain.ErrInvalidInput, sel.ProductID)
		}
		for _, variantID := range catalog.NewIDSet(sel.VariantIDs...).Slice() {
			if len(p.Variants) > 0 {
				if _, ok := p.Variant(variantID); !ok {
					return nil, fmt.Errorf("%w: variante %s no pertenece a %s", domain.ErrInvalidInput, variantID, sel.ProductID)
				}
			}
			sku := skuFor(p, variantID)
			newItems = append(newItems, entity.NewInventoryItem{
				SellerID:    sess.SellerID(),
				WarehouseID: warehouseID,
				ProductID:   p.ProductID,
				VariantID:   variantID,
				SKU:         sku,
				Condition:   "New",
			})
			skus = append(skus, sku)
		}
	}

	if err := uc.inv.CreateItems(ctx, sess, newItems); err != nil {
		uc.log.Error().Err(err).Str("warehouse_id", warehouseID).Int("items", len(newItems)).Msg("inventario: alta de ítems")
		return nil, err
	}
	return &dto.AddToStoreResponse{Created: len(newItems), SKUs: skus}, nil
}

func (uc *ItemsUseCase) load(ctx context.Context, sess *entity.Session, warehouseID string) ([]entity.InventoryItem, LookupTable, error) {
	if strings.TrimSpace(warehouseID) == "" {
		return nil, LookupTable{}, domain.ErrWarehouseNeeded
	}
	items, err := uc.inv.ListByWarehouse(ctx, sess, warehouseID)
	if err != nil {
		uc.log.Error().Err(err).Str("warehouse_id", warehouseID).Msg("inventario: listar ítems")
		return nil, LookupTable{}, err
	}
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	return items, uc.lookup.Lookup(ctx, sess, ids), nil
}

// skuFor <_id del producto>-<variantId>.
func skuFor(p *entity.Product, variantID string) string {
	base := p.StorageID
	if base == "" {
		base = p.ProductID
	}
	return base + "-" + variantID
}

// variantLabel atributos de la variante o, si no se encuentra, su id o "N/A".
func variantLabel(p *entity.Product, variantID string) string {
	if v, ok := p.Variant(variantID); ok {
		if label := v.VariantType.Label(); label != "" {
			return label
		}
	}
	if variantID != "" {
		return variantID
	}
	return "N/A"
}

func toItemResponse(it entity.InventoryItem, table LookupTable) dto.InventoryItemResponse {
	out := dto.InventoryItemResponse{
		ID:                it.StorageID,
		ProductID:         it.ProductID,
		VariantID:         it.VariantID,
		SKU:               it.SKU,
		QuantityOnHand:    it.QuantityOnHand,
		QuantityReserved:  it.QuantityReserved,
		QuantityAvailable: it.QuantityAvailable,
		ReorderPoint:      it.ReorderPoint,
		ReorderQuantity:   it.ReorderQuantity,
		MaximumStockLevel: it.MaximumStockLevel,
		Condition:         it.Condition,
		Status:            it.Status,
		CostPrice:         it.CostPrice,
		SellPrice:         it.SellPrice,
	}
	if p := table.Product(it.ProductID); p != nil {
		out.Product = toProductSummary(p)
	} else {
		out.ProductMissing = true
	}
	return out
}

// unlinkedItems ítems sin productId: no hay producto que consultar, así que no
// aparecen en MissingIDs.
func unlinkedItems(items []entity.InventoryItem) []string {
	out := make([]string, 0)
	for _, it := range items {
		if strings.TrimSpace(it.ProductID) == "" {
			out = append(out, it.StorageID)
		}
	}
	return out
}

func toProductSummary(p *entity.Product) *dto.ProductSummary {
	variants := make([]string, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, v.VariantID)
	}
	return &dto.ProductSummary{
		ProductID: p.ProductID,
		Name:      p.Name,
		Brand:     p.Brand,
		Image:     p.FirstImage(),
		Variants:  variants,
	}
}
