package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/domain/inventory"
	"github.com/jhoicas/Inventario-console/internal/domain/repository"
)

// StockOutUseCase salidas de stock limitadas a la existencia de la bodega.
type StockOutUseCase struct {
	inv    repository.InventoryRepository
	txRepo repository.StockTransactionRepository
	log    zerolog.Logger
	now    func() time.Time
}

// NewStockOutUseCase construye el caso de uso.
func NewStockOutUseCase(inv repository.InventoryRepository, txRepo repository.StockTransactionRepository, log zerolog.Logger) *StockOutUseCase {
	return &StockOutUseCase{inv: inv, txRepo: txRepo, log: log, now: time.Now}
}

// Submit cada cantidad se limita a [1, quantityOnHand] según las existencias actuales.
func (uc *StockOutUseCase) Submit(ctx context.Context, sess *entity.Session, in dto.StockOutRequest) (*dto.StockOutResponse, error) {
	if strings.TrimSpace(in.WarehouseID) == "" {
		return nil, domain.ErrWarehouseNeeded
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrNoLineItems
	}

	stocked, err := uc.inv.ListByWarehouse(ctx, sess, in.WarehouseID)
	if err != nil {
		uc.log.Error().Err(err).Str("warehouse_id", in.WarehouseID).Msg("salida de stock: existencias")
		return nil, err
	}

	ts := uc.now().UTC()
	if in.Timestamp != nil && !in.Timestamp.IsZero() {
		ts = in.Timestamp.UTC()
	}
	tx := &entity.StockTransaction{
		TransactionType: entity.TransactionStockOut,
		WarehouseID:     in.WarehouseID,
		SellerID:        sess.SellerID(),
		PerformedBy:     sess.Username,
		Timestamp:       ts,
		Notes:           strings.TrimSpace(in.Notes),
		PaymentMethod:   strings.TrimSpace(in.PaymentMethod),
		Products:        make([]entity.TransactionLine, 0, len(in.Items)),
	}
	out := &dto.StockOutResponse{WarehouseID: in.WarehouseID, Timestamp: ts, Lines: make([]dto.StockOutLineResponse, 0, len(in.Items))}

	for _, it := range in.Items {
		item, ok := findStocked(stocked, it.ProductID, it.VariantID)
		if !ok {
			return nil, fmt.Errorf("%w: %s no tiene existencias en la bodega", domain.ErrInvalidInput, it.ProductID)
		}
		qty := inventory.ClampStockOutQuantity(it.Quantity, item.QuantityOnHand)
		price := inventory.ClampNonNegative(it.UnitPrice)
		tx.Products = append(tx.Products, entity.TransactionLine{
			ProductID: it.ProductID,
			VariantID: item.VariantID,
			Quantity:  qty,
			UnitPrice: price,
			TotalCost: price.Mul(decimal.NewFromInt(qty)),
			Notes:     strings.TrimSpace(it.Notes),
		})
		out.Lines = append(out.Lines, dto.StockOutLineResponse{
			ProductID: it.ProductID,
			VariantID: item.VariantID,
			Requested: it.Quantity,
			Quantity:  qty,
			UnitPrice: price,
		})
	}

	if err := uc.txRepo.Create(ctx, sess, tx); err != nil {
		uc.log.Error().Err(err).Str("warehouse_id", in.WarehouseID).Msg("salida de stock")
		return nil, err
	}
	return out, nil
}

// findStocked busca por producto y variante; sin variante toma el primer ítem del producto.
func findStocked(items []entity.InventoryItem, productID, variantID string) (entity.InventoryItem, bool) {
	for _, it := range items {
		if it.ProductID != productID {
			continue
		}
		if variantID == "" || it.VariantID == variantID {
			return it, true
		}
	}
	return entity.InventoryItem{}, false
}
