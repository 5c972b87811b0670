package sellerapi

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepository)(nil)

// StockTransactionRepository transacciones en /api/stockTransactions.
type StockTransactionRepository struct {
	c *Client
}

// NewStockTransactionRepository construye el repositorio.
func NewStockTransactionRepository(c *Client) *StockTransactionRepository {
	return &StockTransactionRepository{c: c}
}

// La API remota espera números JSON; decimal.Decimal se serializa como string.
type transactionWire struct {
	TransactionType       entity.TransactionType `json:"transactionType"`
	WarehouseID           string                 `json:"warehouseId"`
	SellerID              string                 `json:"sellerId"`
	PerformedBy           string                 `json:"performedBy"`
	Timestamp             time.Time              `json:"timestamp"`
	BatchNumber           string                 `json:"batchNumber,omitempty"`
	Notes                 string                 `json:"notes"`
	PaymentMethod         string                 `json:"paymentMethod,omitempty"`
	TotalTransportCharges *float64               `json:"totalTransportCharges,omitempty"`
	TotalOtherCharges     *float64               `json:"totalOtherCharges,omitempty"`
	TotalTaxes            *float64               `json:"totalTaxes,omitempty"`
	Products              []transactionLineWire  `json:"products"`
}

type transactionLineWire struct {
	ProductID            string   `json:"productId"`
	VariantID            *string  `json:"variantId"`
	Quantity             int64    `json:"quantity"`
	UnitPrice            float64  `json:"unitPrice"`
	AllocatedTransport   *float64 `json:"allocatedTransport,omitempty"`
	AllocatedOther       *float64 `json:"allocatedOther,omitempty"`
	AllocatedTax         *float64 `json:"allocatedTax,omitempty"`
	TotalCost            *float64 `json:"totalCost,omitempty"`
	FinalCutoffUnitPrice *float64 `json:"finalCutoffUnitPrice,omitempty"`
	Notes                string   `json:"notes,omitempty"`
}

func num(d decimal.Decimal) *float64 {
	f := d.InexactFloat64()
	return &f
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// toTransactionWire las entradas llevan cargos y prorrateo; las salidas solo cantidad y precio.
func toTransactionWire(tx *entity.StockTransaction) transactionWire {
	stockIn := tx.TransactionType == entity.TransactionStockIn
	w := transactionWire{
		TransactionType: tx.TransactionType,
		WarehouseID:     tx.WarehouseID,
		SellerID:        tx.SellerID,
		PerformedBy:     tx.PerformedBy,
		Timestamp:       tx.Timestamp,
		BatchNumber:     tx.BatchNumber,
		Notes:           tx.Notes,
		PaymentMethod:   tx.PaymentMethod,
		Products:        make([]transactionLineWire, 0, len(tx.Products)),
	}
	if stockIn {
		w.TotalTransportCharges = num(tx.TotalTransportCharges)
		w.TotalOtherCharges = num(tx.TotalOtherCharges)
		w.TotalTaxes = num(tx.TotalTaxes)
	}
	for _, l := range tx.Products {
		line := transactionLineWire{
			ProductID: l.ProductID,
			VariantID: nullable(l.VariantID),
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.InexactFloat64(),
			Notes:     l.Notes,
		}
		if stockIn {
			line.AllocatedTransport = num(l.AllocatedTransport)
			line.AllocatedOther = num(l.AllocatedOther)
			line.AllocatedTax = num(l.AllocatedTax)
			line.TotalCost = num(l.TotalCost)
			line.FinalCutoffUnitPrice = num(l.FinalCutoffUnitPrice)
		}
		w.Products = append(w.Products, line)
	}
	return w
}

func (r *StockTransactionRepository) Create(ctx context.Context, sess *entity.Session, tx *entity.StockTransaction) error {
	return r.c.do(ctx, request{
		op:     "transactions.create",
		method: http.MethodPost,
		path:   "/api/stockTransactions/create",
		token:  tokenOf(sess),
		body:   toTransactionWire(tx),
	}, nil)
}

// ListByWarehouse la API devuelve el arreglo sin envoltorio.
func (r *StockTransactionRepository) ListByWarehouse(ctx context.Context, sess *entity.Session, warehouseID string) ([]entity.StockTransaction, error) {
	var txs []entity.StockTransaction
	err := r.c.do(ctx, request{
		op:     "transactions.list",
		method: http.MethodGet,
		path:   "/api/stockTransactions",
		query:  url.Values{"warehouseId": {warehouseID}},
		token:  tokenOf(sess),
	}, &txs)
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []entity.StockTransaction{}
	}
	return txs, nil
}
