package inventory

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-console/internal/domain"
)

func TestCatalog_MarksVariantsAlreadyInWarehouse(t *testing.T) {
	inv := &fakeInventoryRepo{items: warehouseStock()}
	uc := NewCatalogUseCase(newFakeProductRepo(shirt(), mug()), inv, zerolog.Nop())

	out, err := uc.Products(context.Background(), testSession(), "W1", "")

	require.NoError(t, err)
	require.Equal(t, 2, out.Total)
	p1 := out.Products[0]
	assert.Equal(t, "665f", p1.ID)
	assert.Equal(t, "P1", p1.ProductID)
	assert.Equal(t, "https://img/p1.png", p1.Image)
	assert.True(t, p1.InWarehouse)
	require.Len(t, p1.Variants, 2)
	assert.Equal(t, "M / Rojo", p1.Variants[0].Label)
	assert.True(t, p1.Variants[0].InWarehouse, "V1 ya está en W1")
	assert.False(t, p1.Variants[1].InWarehouse, "V2 no está en W1")
	assert.True(t, out.Products[1].InWarehouse)
	assert.Empty(t, out.Products[1].Variants)
}

func TestCatalog_FiltersByNameOrBrandIgnoringAccents(t *testing.T) {
	uc := NewCatalogUseCase(newFakeProductRepo(shirt(), mug()), &fakeInventoryRepo{}, zerolog.Nop())

	out, err := uc.Products(context.Background(), testSession(), "", "ceramica")

	require.NoError(t, err)
	require.Len(t, out.Products, 1)
	assert.Equal(t, "P2", out.Products[0].ProductID)
	assert.False(t, out.Products[0].InWarehouse)
	assert.Equal(t, "ceramica", out.Query)
}

func TestCatalog_WithoutWarehouseSkipsInventory(t *testing.T) {
	inv := &fakeInventoryRepo{listErr: domain.ErrUpstream}
	uc := NewCatalogUseCase(newFakeProductRepo(shirt()), inv, zerolog.Nop())

	out, err := uc.Products(context.Background(), testSession(), "  ", "")

	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	assert.Empty(t, out.WarehouseID)
}

func TestCatalog_PropagatesUpstreamErrors(t *testing.T) {
	products := newFakeProductRepo(shirt())
	products.listErr = domain.ErrUpstream
	uc := NewCatalogUseCase(products, &fakeInventoryRepo{}, zerolog.Nop())
	_, err := uc.Products(context.Background(), testSession(), "W1", "")
	assert.ErrorIs(t, err, domain.ErrUpstream)

	uc = NewCatalogUseCase(newFakeProductRepo(shirt()), &fakeInventoryRepo{listErr: domain.ErrNotFound}, zerolog.Nop())
	_, err = uc.Products(context.Background(), testSession(), "W1", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
