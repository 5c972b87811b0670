package inventory

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/domain/inventory"
	"github.com/jhoicas/Inventario-console/internal/domain/repository"
)

// StockInUseCase entradas de stock con prorrateo de cargos.
type StockInUseCase struct {
	txRepo   repository.StockTransactionRepository
	lookup   *ProductLookup
	renderer CostSheetRenderer
	log      zerolog.Logger
	now      func() time.Time
	rnd      func(int) int
}

// NewStockInUseCase construye el caso de uso.
func NewStockInUseCase(
	txRepo repository.StockTransactionRepository,
	lookup *ProductLookup,
	renderer CostSheetRenderer,
	log zerolog.Logger,
) *StockInUseCase {
	return &StockInUseCase{
		txRepo:   txRepo,
		lookup:   lookup,
		renderer: renderer,
		log:      log,
		now:      time.Now,
		rnd:      rand.Intn,
	}
}

// Preview calcula el prorrateo sin registrar nada.
func (uc *StockInUseCase) Preview(in dto.StockInRequest) *dto.StockInResponse {
	lines, _ := allocateRequest(in)
	return &dto.StockInResponse{
		WarehouseID: in.WarehouseID,
		BatchNumber: strings.TrimSpace(in.BatchNumber),
		Lines:       toAllocatedLines(lines),
		Totals:      toTotals(inventory.Sum(lines)),
	}
}

// Submit recalcula el prorrateo (ignora asignaciones del cliente) y registra la entrada.
func (uc *StockInUseCase) Submit(ctx context.Context, sess *entity.Session, in dto.StockInRequest) (*dto.StockInResponse, error) {
	if err := validateStockIn(in); err != nil {
		return nil, err
	}
	lines, charges := allocateRequest(in)

	ts := uc.now().UTC()
	if in.Timestamp != nil && !in.Timestamp.IsZero() {
		ts = in.Timestamp.UTC()
	}
	batch := strings.TrimSpace(in.BatchNumber)
	if batch == "" {
		batch = inventory.GenerateBatchNumber(in.WarehouseID, ts, uc.rnd)
	}

	tx := &entity.StockTransaction{
		TransactionType:       entity.TransactionStockIn,
		WarehouseID:           in.WarehouseID,
		SellerID:              sess.SellerID(),
		PerformedBy:           sess.Username,
		Timestamp:             ts,
		BatchNumber:           batch,
		Notes:                 strings.TrimSpace(in.Notes),
		PaymentMethod:         strings.TrimSpace(in.PaymentMethod),
		TotalTransportCharges: charges.Transport,
		TotalOtherCharges:     charges.Other,
		TotalTaxes:            charges.Tax,
		Products:              make([]entity.TransactionLine, 0, len(lines)),
	}
	for _, l := range lines {
		tx.Products = append(tx.Products, entity.TransactionLine{
			ProductID:            l.ProductID,
			VariantID:            l.VariantID,
			Quantity:             l.Quantity,
			UnitPrice:            l.UnitPrice,
			AllocatedTransport:   l.AllocatedTransport,
			AllocatedOther:       l.AllocatedOther,
			AllocatedTax:         l.AllocatedTax,
			TotalCost:            l.TotalCost,
			FinalCutoffUnitPrice: l.FinalUnitPrice,
			Notes:                l.Notes,
		})
	}

	if err := uc.txRepo.Create(ctx, sess, tx); err != nil {
		uc.log.Error().Err(err).Str("warehouse_id", in.WarehouseID).Str("batch", batch).Msg("entrada de stock")
		return nil, err
	}
	uc.log.Info().Str("warehouse_id", in.WarehouseID).Str("batch", batch).Int("lines", len(lines)).Msg("entrada de stock registrada")

	return &dto.StockInResponse{
		WarehouseID: in.WarehouseID,
		BatchNumber: batch,
		Timestamp:   &ts,
		Lines:       toAllocatedLines(lines),
		Totals:      toTotals(inventory.Sum(lines)),
	}, nil
}

// CostSheet genera el PDF de la hoja de costos de una entrada (registrada o no).
func (uc *StockInUseCase) CostSheet(ctx context.Context, sess *entity.Session, in dto.StockInRequest) ([]byte, error) {
	if err := validateStockIn(in); err != nil {
		return nil, err
	}
	lines, charges := allocateRequest(in)

	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}
	table := uc.lookup.Lookup(ctx, sess, ids)

	sheet := CostSheet{
		SellerID:      sess.SellerID(),
		WarehouseID:   in.WarehouseID,
		BatchNumber:   strings.TrimSpace(in.BatchNumber),
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
		Notes:         strings.TrimSpace(in.Notes),
		Charges:       charges,
		Totals:        inventory.Sum(lines),
		Lines:         make([]CostSheetLine, 0, len(lines)),
	}
	for _, l := range lines {
		name := l.ProductID
		p := table.Product(l.ProductID)
		if p != nil && p.Name != "" {
			name = p.Name
		}
		variant := ""
		if l.VariantID != "" {
			variant = variantLabel(p, l.VariantID)
		}
		sheet.Lines = append(sheet.Lines, CostSheetLine{ProductName: name, Variant: variant, LineItem: l})
	}

	doc, err := uc.renderer.RenderStockInCostSheet(ctx, sheet)
	if err != nil {
		uc.log.Error().Err(err).Str("warehouse_id", in.WarehouseID).Msg("hoja de costos")
		return nil, err
	}
	return doc, nil
}

func validateStockIn(in dto.StockInRequest) error {
	if strings.TrimSpace(in.WarehouseID) == "" {
		return domain.ErrWarehouseNeeded
	}
	if len(in.Items) == 0 {
		return domain.ErrNoLineItems
	}
	for _, it := range in.Items {
		if strings.TrimSpace(it.ProductID) == "" {
			return fmt.Errorf("%w: product_id requerido", domain.ErrInvalidInput)
		}
		if it.Quantity < 1 {
			return fmt.Errorf("%w: la cantidad de %s debe ser mayor que cero", domain.ErrInvalidInput, it.ProductID)
		}
	}
	return nil
}

// allocateRequest lleva a cero los valores negativos y prorratea.
func allocateRequest(in dto.StockInRequest) ([]inventory.LineItem, inventory.Charges) {
	charges := inventory.Charges{
		Transport: inventory.ClampNonNegative(in.TransportCharges),
		Other:     inventory.ClampNonNegative(in.OtherCharges),
		Tax:       inventory.ClampNonNegative(in.Taxes),
	}
	items := make([]inventory.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, inventory.LineItem{
			ProductID: strings.TrimSpace(it.ProductID),
			VariantID: strings.TrimSpace(it.VariantID),
			Notes:     strings.TrimSpace(it.Notes),
			Quantity:  inventory.ClampNonNegativeInt(it.Quantity),
			UnitPrice: inventory.ClampNonNegative(it.UnitPrice),
		})
	}
	return inventory.Allocate(items, charges), charges
}

func toAllocatedLines(lines []inventory.LineItem) []dto.AllocatedLineResponse {
	out := make([]dto.AllocatedLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.AllocatedLineResponse{
			ProductID:          l.ProductID,
			VariantID:          l.VariantID,
			Quantity:           l.Quantity,
			UnitPrice:          l.UnitPrice,
			Subtotal:           l.Subtotal,
			AllocatedTransport: l.AllocatedTransport,
			AllocatedOther:     l.AllocatedOther,
			AllocatedTax:       l.AllocatedTax,
			TotalCost:          l.TotalCost,
			FinalUnitPrice:     l.FinalUnitPrice,
			Notes:              l.Notes,
		})
	}
	return out
}

func toTotals(t inventory.Totals) dto.AllocationTotalsResponse {
	return dto.AllocationTotalsResponse{
		Units:     t.Units,
		Subtotal:  t.Subtotal,
		Transport: t.Transport,
		Other:     t.Other,
		Tax:       t.Tax,
		TotalCost: t.TotalCost,
	}
}
