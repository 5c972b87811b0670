package inventory

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/domain/repository"
	"github.com/jhoicas/Inventario-console/internal/domain/search"
)

// TransactionsUseCase historial de transacciones de una bodega.
type TransactionsUseCase struct {
	txRepo repository.StockTransactionRepository
	log    zerolog.Logger
}

// NewTransactionsUseCase construye el caso de uso.
func NewTransactionsUseCase(txRepo repository.StockTransactionRepository, log zerolog.Logger) *TransactionsUseCase {
	return &TransactionsUseCase{txRepo: txRepo, log: log}
}

// List filtra por tipo, notas o transactionId; término vacío devuelve todas.
func (uc *TransactionsUseCase) List(ctx context.Context, sess *entity.Session, warehouseID, term string) (*dto.TransactionListResponse, error) {
	if strings.TrimSpace(warehouseID) == "" {
		return nil, domain.ErrWarehouseNeeded
	}
	txs, err := uc.txRepo.ListByWarehouse(ctx, sess, warehouseID)
	if err != nil {
		uc.log.Error().Err(err).Str("warehouse_id", warehouseID).Msg("transacciones: listar")
		return nil, err
	}
	out := &dto.TransactionListResponse{Items: make([]dto.TransactionResponse, 0, len(txs)), Query: strings.TrimSpace(term)}
	for _, tx := range txs {
		if !search.AnyContains(term, string(tx.TransactionType), tx.Notes, tx.TransactionID) {
			continue
		}
		out.Items = append(out.Items, toTransactionResponse(tx))
	}
	out.Total = len(out.Items)
	return out, nil
}

func toTransactionResponse(tx entity.StockTransaction) dto.TransactionResponse {
	id := tx.TransactionID
	if id == "" {
		id = tx.StorageID
	}
	out := dto.TransactionResponse{
		TransactionID:         id,
		TransactionType:       string(tx.TransactionType),
		WarehouseID:           tx.WarehouseID,
		PerformedBy:           tx.PerformedBy,
		Timestamp:             tx.Timestamp,
		BatchNumber:           tx.BatchNumber,
		Notes:                 tx.Notes,
		PaymentMethod:         tx.PaymentMethod,
		TotalTransportCharges: tx.TotalTransportCharges,
		TotalOtherCharges:     tx.TotalOtherCharges,
		TotalTaxes:            tx.TotalTaxes,
		Products:              make([]dto.TransactionLineResponse, 0, len(tx.Products)),
	}
	for _, l := range tx.Products {
		out.Products = append(out.Products, dto.TransactionLineResponse{
			ProductID:            l.ProductID,
			VariantID:            l.VariantID,
			Quantity:             l.Quantity,
			UnitPrice:            l.UnitPrice,
			AllocatedTransport:   l.AllocatedTransport,
			AllocatedOther:       l.AllocatedOther,
			AllocatedTax:         l.AllocatedTax,
			TotalCost:            l.TotalCost,
			FinalCutoffUnitPrice: l.FinalCutoffUnitPrice,
			Notes:                l.Notes,
		})
	}
	return out
}
