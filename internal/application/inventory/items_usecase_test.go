package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/catalog"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

func newItemsUC(inv *fakeInventoryRepo, products *fakeProductRepo) *ItemsUseCase {
	return NewItemsUseCase(inv, NewProductLookup(products, 4, zerolog.Nop()), zerolog.Nop())
}

func warehouseStock() []entity.InventoryItem {
	return []entity.InventoryItem{
		{StorageID: "I1", WarehouseID: "W1", ProductID: "P1", VariantID: "V1", QuantityOnHand: 40, ReorderPoint: 10, MaximumStockLevel: 200},
		{StorageID: "I2", WarehouseID: "W1", ProductID: "P2", QuantityOnHand: 5, ReorderPoint: 5},
		{StorageID: "I3", WarehouseID: "W1", ProductID: "P3", QuantityOnHand: 1},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado y sugerencias
// ──────────────────────────────────────────────────────────────────────────────

func TestWarehouseItems_MarksMissingProducts(t *testing.T) {
	inv := &fakeInventoryRepo{items: warehouseStock()}
	uc := newItemsUC(inv, newFakeProductRepo(shirt(), mug()))

	out, err := uc.WarehouseItems(context.Background(), testSession(), "W1")

	require.NoError(t, err)
	require.Len(t, out.Items, 3)
	assert.Equal(t, []string{"P3"}, out.MissingProducts)
	assert.Empty(t, out.UnlinkedItems)
	require.NotNil(t, out.Items[0].Product)
	assert.Equal(t, "https://img/p1.png", out.Items[0].Product.Image)
	assert.Equal(t, []string{"V1", "V2"}, out.Items[0].Product.Variants)
	assert.True(t, out.Items[2].ProductMissing)
	assert.Nil(t, out.Items[2].Product)
}

func TestWarehouseItems_ReportsItemsWithoutProductID(t *testing.T) {
	stock := append(warehouseStock(), entity.InventoryItem{StorageID: "I4", WarehouseID: "W1", QuantityOnHand: 2})
	uc := newItemsUC(&fakeInventoryRepo{items: stock}, newFakeProductRepo(shirt(), mug()))

	out, err := uc.WarehouseItems(context.Background(), testSession(), "W1")
	require.NoError(t, err)
	require.Len(t, out.Items, 4)
	assert.True(t, out.Items[3].ProductMissing)
	assert.Equal(t, []string{"P3"}, out.MissingProducts)
	assert.Equal(t, []string{"I4"}, out.UnlinkedItems)

	mon, err := uc.Monitoring(context.Background(), testSession(), "W1")
	require.NoError(t, err)
	assert.Equal(t, []string{"I4"}, mon.UnlinkedItems)
	assert.True(t, mon.Items[3].Item.ProductMissing)
}

func TestWarehouseItems_Errors(t *testing.T) {
	uc := newItemsUC(&fakeInventoryRepo{}, newFakeProductRepo())
	_, err := uc.WarehouseItems(context.Background(), testSession(), " ")
	assert.ErrorIs(t, err, domain.ErrWarehouseNeeded)

	boom := errors.New("boom")
	uc = newItemsUC(&fakeInventoryRepo{listErr: boom}, newFakeProductRepo())
	_, err = uc.WarehouseItems(context.Background(), testSession(), "W1")
	assert.ErrorIs(t, err, boom)
}

func TestSuggestions_AccentInsensitiveAndExcluded(t *testing.T) {
	inv := &fakeInventoryRepo{items: warehouseStock()}
	uc := newItemsUC(inv, newFakeProductRepo(shirt(), mug()))

	out, err := uc.Suggestions(context.Background(), testSession(), "W1", "ALGODON", catalog.NewIDSet())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "P1", out[0].ProductID)

	out, err = uc.Suggestions(context.Background(), testSession(), "W1", "", catalog.NewIDSet("P1"))
	require.NoError(t, err)
	require.Len(t, out, 1, "P3 no tiene producto y P1 está excluido")
	assert.Equal(t, "P2", out[0].ProductID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Monitoreo
// ──────────────────────────────────────────────────────────────────────────────

func TestMonitoring_LevelsAndReorderCount(t *testing.T) {
	inv := &fakeInventoryRepo{items: warehouseStock()}
	uc := newItemsUC(inv, newFakeProductRepo(shirt(), mug()))

	out, err := uc.Monitoring(context.Background(), testSession(), "W1")

	require.NoError(t, err)
	require.Len(t, out.Items, 3)

	first := out.Items[0]
	assert.Equal(t, "M / Rojo", first.Variant)
	assert.Equal(t, int64(200), first.MaxLevel)
	assert.InDelta(t, 20.0, first.UsagePercent, 1e-9)
	assert.False(t, first.BelowReorder)

	second := out.Items[1]
	assert.Equal(t, "N/A", second.Variant)
	assert.Equal(t, int64(100), second.MaxLevel)
	assert.True(t, second.BelowReorder)

	assert.Equal(t, 1, out.BelowReorder)
	assert.Equal(t, []string{"P3"}, out.MissingProducts)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta en bodega
// ──────────────────────────────────────────────────────────────────────────────

func TestAddToStore_CreatesOneItemPerVariant(t *testing.T) {
	inv := &fakeInventoryRepo{}
	uc := newItemsUC(inv, newFakeProductRepo(shirt(), mug()))

	out, err := uc.AddToStore(context.Background(), testSession(), "W1", dto.AddToStoreRequest{
		Selections: []dto.AddToStoreSelection{
			{ProductID: "P1", VariantIDs: []string{"V1", "V2", "V1"}},
			{ProductID: "P2", VariantIDs: []string{"X"}},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, out.Created)
	assert.Equal(t, []string{"665f-V1", "665f-V2", "777a-X"}, out.SKUs)
	require.Len(t, inv.created, 3)
	for _, it := range inv.created {
		assert.Equal(t, "SELLER-1", it.SellerID)
		assert.Equal(t, "W1", it.WarehouseID)
		assert.Equal(t, "New", it.Condition)
	}
}

func TestAddToStore_Validation(t *testing.T) {
	ctx := context.Background()
	uc := newItemsUC(&fakeInventoryRepo{}, newFakeProductRepo(shirt()))

	_, err := uc.AddToStore(ctx, testSession(), "", dto.AddToStoreRequest{})
	assert.ErrorIs(t, err, domain.ErrWarehouseNeeded)

	_, err = uc.AddToStore(ctx, testSession(), "W1", dto.AddToStoreRequest{})
	assert.ErrorIs(t, err, domain.ErrNoLineItems)

	_, err = uc.AddToStore(ctx, testSession(), "W1", dto.AddToStoreRequest{
		Selections: []dto.AddToStoreSelection{{ProductID: "P1"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AddToStore(ctx, testSession(), "W1", dto.AddToStoreRequest{
		Selections: []dto.AddToStoreSelection{{ProductID: "P1", VariantIDs: []string{"V9"}}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AddToStore(ctx, testSession(), "W1", dto.AddToStoreRequest{
		Selections: []dto.AddToStoreSelection{{ProductID: "NOPE", VariantIDs: []string{"V1"}}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVariantLabel_Fallbacks(t *testing.T) {
	assert.Equal(t, "L", variantLabel(shirt(), "V2"))
	assert.Equal(t, "V7", variantLabel(shirt(), "V7"))
	assert.Equal(t, "N/A", variantLabel(nil, ""))
}
