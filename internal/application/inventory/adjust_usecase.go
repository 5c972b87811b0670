package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/domain/repository"
)

// AdjustUseCase fija niveles absolutos de existencia (setStockLevel).
type AdjustUseCase struct {
	inv repository.InventoryRepository
	log zerolog.Logger
	now func() time.Time
}

// NewAdjustUseCase construye el caso de uso.
func NewAdjustUseCase(inv repository.InventoryRepository, log zerolog.Logger) *AdjustUseCase {
	return &AdjustUseCase{inv: inv, log: log, now: time.Now}
}

// Submit envía el lote de ajustes de la bodega.
func (uc *AdjustUseCase) Submit(ctx context.Context, sess *entity.Session, in dto.AdjustmentRequest) (*dto.AdjustmentResponse, error) {
	if strings.TrimSpace(in.WarehouseID) == "" {
		return nil, domain.ErrWarehouseNeeded
	}
	if len(in.Adjustments) == 0 {
		return nil, domain.ErrNoLineItems
	}

	ts := uc.now().UTC()
	if in.Timestamp != nil && !in.Timestamp.IsZero() {
		ts = in.Timestamp.UTC()
	}
	upd := entity.StockLevelUpdate{
		WarehouseID: in.WarehouseID,
		SellerID:    sess.SellerID(),
		PerformedBy: sess.Username,
		Timestamp:   ts,
		Notes:       strings.TrimSpace(in.Notes),
		Adjustments: make([]entity.StockLevelAdjustment, 0, len(in.Adjustments)),
	}
	seen := make(map[string]struct{}, len(in.Adjustments))
	for _, a := range in.Adjustments {
		id := strings.TrimSpace(a.InventoryItemID)
		if id == "" {
			return nil, fmt.Errorf("%w: inventory_item_id requerido", domain.ErrInvalidInput)
		}
		if a.NewStockLevel < 0 {
			return nil, fmt.Errorf("%w: nivel negativo para %s", domain.ErrInvalidInput, id)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %s aparece más de una vez", domain.ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
		upd.Adjustments = append(upd.Adjustments, entity.StockLevelAdjustment{
			InventoryItemID: id,
			NewStockLevel:   a.NewStockLevel,
			Notes:           strings.TrimSpace(a.Notes),
		})
	}

	if err := uc.inv.SetStockLevels(ctx, sess, upd); err != nil {
		uc.log.Error().Err(err).Str("warehouse_id", in.WarehouseID).Int("adjustments", len(upd.Adjustments)).Msg("ajuste de stock")
		return nil, err
	}
	return &dto.AdjustmentResponse{WarehouseID: in.WarehouseID, Applied: len(upd.Adjustments), Timestamp: ts}, nil
}
