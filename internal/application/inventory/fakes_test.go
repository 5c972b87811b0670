package inventory

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de la API remota
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	errs     map[string]error
	calls    map[string]int
	delay    time.Duration
	catalog  []entity.Product
	listErr  error

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	f := &fakeProductRepo{products: map[string]*entity.Product{}, errs: map[string]error{}, calls: map[string]int{}}
	for _, p := range products {
		f.products[p.ProductID] = p
		f.catalog = append(f.catalog, *p)
	}
	return f
}

func (f *fakeProductRepo) ListBySeller(_ context.Context, _ *entity.Session) ([]entity.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.catalog, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, _ *entity.Session, id string) (*entity.Product, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		cur := f.maxInFlight.Load()
		if n <= cur || f.maxInFlight.CompareAndSwap(cur, n) {
			break
		}
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[id]++
	if err := f.errs[id]; err != nil {
		return nil, err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

type fakeInventoryRepo struct {
	items     []entity.InventoryItem
	listErr   error
	createErr error
	setErr    error

	created []entity.NewInventoryItem
	updates []entity.StockLevelUpdate
}

func (f *fakeInventoryRepo) ListByWarehouse(_ context.Context, _ *entity.Session, _ string) ([]entity.InventoryItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeInventoryRepo) CreateItems(_ context.Context, _ *entity.Session, items []entity.NewInventoryItem) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, items...)
	return nil
}

func (f *fakeInventoryRepo) SetStockLevels(_ context.Context, _ *entity.Session, in entity.StockLevelUpdate) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.updates = append(f.updates, in)
	return nil
}

type fakeTxRepo struct {
	txs       []entity.StockTransaction
	createErr error
	created   []*entity.StockTransaction
}

func (f *fakeTxRepo) Create(_ context.Context, _ *entity.Session, tx *entity.StockTransaction) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, tx)
	return nil
}

func (f *fakeTxRepo) ListByWarehouse(_ context.Context, _ *entity.Session, _ string) ([]entity.StockTransaction, error) {
	return f.txs, nil
}

type fakeRenderer struct {
	sheets []CostSheet
	err    error
}

func (f *fakeRenderer) RenderStockInCostSheet(_ context.Context, sheet CostSheet) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sheets = append(f.sheets, sheet)
	return []byte("%PDF-fake"), nil
}

func testSession() *entity.Session {
	return &entity.Session{
		ID:       "sess-1",
		Username: "ana",
		Token:    "upstream-token",
		Seller:   entity.SellerInfo{SellerID: "SELLER-1"},
	}
}

func shirt() *entity.Product {
	return &entity.Product{
		StorageID: "665f",
		ProductID: "P1",
		Name:      "Camiseta Algodón",
		Images:    []string{"https://img/p1.png"},
		Variants: []entity.ProductVariant{
			{VariantID: "V1", VariantType: entity.VariantType{Size: "M", Color: "Rojo"}},
			{VariantID: "V2", VariantType: entity.VariantType{Size: "L"}},
		},
	}
}

func mug() *entity.Product {
	return &entity.Product{StorageID: "777a", ProductID: "P2", Name: "Taza Cerámica"}
}
