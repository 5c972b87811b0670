package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

func TestClampStockOutQuantity(t *testing.T) {
	cases := []struct {
		requested, onHand, want int64
	}{
		{requested: 5, onHand: 10, want: 5},
		{requested: 50, onHand: 10, want: 10},
		{requested: 0, onHand: 10, want: 1},
		{requested: -4, onHand: 10, want: 1},
		{requested: 3, onHand: 0, want: 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClampStockOutQuantity(tc.requested, tc.onHand), "req=%d onHand=%d", tc.requested, tc.onHand)
	}
}

func TestGenerateBatchNumber(t *testing.T) {
	now := time.Date(2024, time.March, 7, 15, 0, 0, 0, time.UTC)
	got := GenerateBatchNumber("WH-1", now, func(n int) int {
		assert.Equal(t, 1000, n)
		return 42
	})
	assert.Equal(t, "WH-1-20240307-42", got)
}

func TestStockLevel(t *testing.T) {
	lvl := StockLevel(entity.InventoryItem{QuantityOnHand: 30, ReorderPoint: 10, MaximumStockLevel: 60})
	assert.InDelta(t, 50.0, lvl.UsagePercent, 1e-9)
	assert.False(t, lvl.BelowReorder)

	lvl = StockLevel(entity.InventoryItem{QuantityOnHand: 10, ReorderPoint: 10})
	assert.Equal(t, int64(100), lvl.MaxLevel, "máximo por defecto")
	assert.InDelta(t, 10.0, lvl.UsagePercent, 1e-9)
	assert.True(t, lvl.BelowReorder, "igual al punto de reorden cuenta como bajo")

	lvl = StockLevel(entity.InventoryItem{QuantityOnHand: 500, MaximumStockLevel: 100})
	assert.InDelta(t, 100.0, lvl.UsagePercent, 1e-9, "tope en 100")
}
